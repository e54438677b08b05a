package textutil

import (
	"fmt"
	"strconv"
	"strings"
)

// formatPlace converts a numeric place (1, 2, 3, ...) to a string ("1st", "2nd", "3rd", ...).
func FormatPlace(place int) string {
	suffix := "th"
	if place%100 < 11 || place%100 > 13 {
		switch place % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", place, suffix)
}

// FormatPlaceRange renders a run of places ("4th-6th"), collapsing a run of
// one to a single place.
func FormatPlaceRange(from, to int) string {
	if from == to {
		return FormatPlace(from)
	}
	return fmt.Sprintf("%s-%s", FormatPlace(from), FormatPlace(to))
}

// Comma formats n with thousands separators, so 2000000 reads as 2,000,000.
func Comma(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	if len(s) <= 3 {
		return sign + s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s[i : i+3])
	}
	return sign + sb.String()
}

// Decomma strips the separators Comma adds, so pasted-in amounts parse.
func Decomma(s string) string {
	return strings.ReplaceAll(s, ",", "")
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ts4z/divvy/config"
	"github.com/ts4z/divvy/defaults"
	"github.com/ts4z/divvy/distcache"
	"github.com/ts4z/divvy/payout"
	"github.com/ts4z/divvy/protocol"
	"github.com/ts4z/divvy/textutil"
	"github.com/ts4z/divvy/ts"
)

var (
	rawOutput bool
	clock     = ts.NewRealClock()
	cache     *distcache.Cache
)

// parseTriple reads winners, total coins, and minimum coins, tolerating
// thousands separators so amounts can be pasted straight off a spreadsheet.
func parseTriple(args []string) (int, int64, int64, error) {
	winners, err := strconv.Atoi(textutil.Decomma(args[0]))
	if err != nil {
		return 0, 0, 0, payout.Errorf(payout.InvalidWinnerCount, "winners: %v", err)
	}
	totalCoins, err := strconv.ParseInt(textutil.Decomma(args[1]), 10, 64)
	if err != nil {
		return 0, 0, 0, payout.Errorf(payout.InvalidAmount, "total coins: %v", err)
	}
	minCoins, err := strconv.ParseInt(textutil.Decomma(args[2]), 10, 64)
	if err != nil {
		return 0, 0, 0, payout.Errorf(payout.InvalidAmount, "minimum coins: %v", err)
	}
	return winners, totalCoins, minCoins, nil
}

func renderTable(out io.Writer, winners int, d payout.Distribution) {
	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "place\twinners\teach\tsubtotal\n")
	for _, b := range d {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\n",
			textutil.FormatPlaceRange(b.From, b.To), b.Width(),
			textutil.Comma(b.Coins), textutil.Comma(b.Coins*int64(b.Width())))
	}
	fmt.Fprintf(w, "total\t%d\t\t%s\n", winners, textutil.Comma(d.Total()))
	w.Flush()
}

func showDistribution(winners int, totalCoins, minCoins int64) error {
	d, err := cache.Compute(winners, totalCoins, minCoins)
	if err != nil {
		return err
	}
	renderTable(os.Stdout, winners, d)
	if rawOutput {
		out, err := protocol.Marshal(protocol.Encode(winners, totalCoins, minCoins, d))
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 3 {
		winners, totalCoins, minCoins, err := parseTriple(args)
		if err != nil {
			return err
		}
		return showDistribution(winners, totalCoins, minCoins)
	}
	if !term.IsTerminal(int(syscall.Stdin)) {
		return fmt.Errorf("no arguments and no terminal to ask on; see --help")
	}
	return interact(cmd, args)
}

func interact(cmd *cobra.Command, args []string) error {
	fmt.Printf("divvy session (as of %v)\n\n", clock.Now().Format(time.RFC3339))
	fmt.Println("Enter winners, total coins, and minimum coins (minimum is")
	fmt.Println("optional), or a preset name.  q quits.")
	fmt.Println()
	for _, p := range defaults.Presets() {
		fmt.Printf("  %-12s %6s winners %12s coins %8s minimum\n",
			p.Name, textutil.Comma(int64(p.Winners)),
			textutil.Comma(p.TotalCoins), textutil.Comma(p.MinCoins))
	}
	fmt.Println()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("divvy> ")
		if !scanner.Scan() {
			fmt.Println()
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "q" || line == "quit" || line == "exit" {
			return nil
		}

		if p, ok := defaults.ByName(line); ok {
			if err := showDistribution(p.Winners, p.TotalCoins, p.MinCoins); err != nil {
				fmt.Printf("error: %v\n", err)
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 2 {
			fields = append(fields, strconv.FormatInt(config.DefaultMinCoins(), 10))
		}
		if len(fields) != 3 {
			fmt.Printf("error: want a preset name or two or three numbers, got %q\n", line)
			continue
		}
		winners, totalCoins, minCoins, err := parseTriple(fields)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		if err := showDistribution(winners, totalCoins, minCoins); err != nil {
			fmt.Printf("error: %v\n", err)
		}
	}
}

func runExamples(cmd *cobra.Command, args []string) error {
	for _, p := range defaults.Presets() {
		fmt.Printf("%s: %s winners, %s coins, %s minimum\n",
			p.Name, textutil.Comma(int64(p.Winners)),
			textutil.Comma(p.TotalCoins), textutil.Comma(p.MinCoins))
		if err := showDistribution(p.Winners, p.TotalCoins, p.MinCoins); err != nil {
			return err
		}
		fmt.Println()
	}

	// And one that cannot work, so the error surface gets seen too.
	fmt.Println("impossible: 100 winners, 1,000 coins, 100 minimum")
	if err := showDistribution(100, 1000, 100); err != nil {
		fmt.Printf("error: %v\n", err)
	}
	return nil
}

func main() {
	config.Init()
	cache = distcache.New(config.CacheSize(), config.CacheTTL(), clock)

	rootCmd := &cobra.Command{
		Use:   "divvy [winners totalCoins minCoins]",
		Short: "Split a prize pool into a payout table",
		Long: `divvy splits a pool of indivisible coins over ranked winners: contiguous
rank ranges, round awards that never increase with rank, everyone at least
the minimum, and the pool paid out to the coin.

With no arguments it starts an interactive session.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("want no arguments (interactive) or exactly three, got %d", len(args))
			}
			return nil
		},
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVar(&rawOutput, "json", config.RawOutput(), "Also emit the JSON encoding after each table")

	examplesCmd := &cobra.Command{
		Use:   "examples",
		Short: "Print the canned events and what they pay",
		RunE:  runExamples,
	}
	rootCmd.AddCommand(examplesCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

package payout

import (
	"errors"
	"fmt"
)

// Kind says what went wrong without making anyone grep message text.
type Kind int

const (
	// KindNone is what KindOf reports for errors that aren't ours.
	KindNone Kind = iota
	// InvalidWinnerCount: winners is below the floor or not a count at all.
	InvalidWinnerCount
	// InvalidAmount: the pool or the minimum is not a positive amount.
	InvalidAmount
	// InsufficientPool: the pool cannot honor what the table promises.
	InsufficientPool
	// ReconciliationFailure: the leftover would not zero out.  This is an
	// internal defect, not bad input.
	ReconciliationFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidWinnerCount:
		return "invalid winner count"
	case InvalidAmount:
		return "invalid amount"
	case InsufficientPool:
		return "insufficient pool"
	case ReconciliationFailure:
		return "reconciliation failure"
	}
	return "unknown"
}

// Error is a distribution failure with a Kind attached.
type Error struct {
	kind Kind
	err  error
}

func Errorf(kind Kind, f string, more ...any) *Error {
	return &Error{
		kind: kind,
		err:  fmt.Errorf(f, more...),
	}
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Unwrap() error {
	return e.err
}

// KindOf digs the Kind out of err, or KindNone if it isn't one of ours.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return KindNone
}

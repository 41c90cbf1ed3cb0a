// Package errors provides error handling for connectives.
//
// It re-exports github.com/cockroachdb/errors and defines the error kinds a
// run can end with. Kinds are marker sentinels: wrap the cause, then Mark it.
//
//	if os.IsNotExist(err) {
//	    return errors.Mark(errors.Wrapf(err, "open %s", path), errors.ErrMissingInputFile)
//	}
//
//	switch errors.Kind(err) {
//	case errors.ErrMissingInputFile:
//	    ...
//	}
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	WithStack   = crdb.WithStack
	WithMessage = crdb.WithMessage
	Mark        = crdb.Mark
)

// User-facing messages and details
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	WithDetail   = crdb.WithDetail
	WithDetailf  = crdb.WithDetailf
	FlattenHints = crdb.FlattenHints
)

// Error inspection
var (
	Is        = crdb.Is
	IsAny     = crdb.IsAny
	As        = crdb.As
	Unwrap    = crdb.Unwrap
	UnwrapAll = crdb.UnwrapAll
)

// Error kinds
var (
	// ErrMissingInputFile means a required table could not be located
	ErrMissingInputFile = New("missing input file")

	// ErrUnexpected covers every other load/join/aggregate failure
	ErrUnexpected = New("unexpected error")

	// ErrHeterogeneousGroup means a summary group disagreed on a context
	// property and strict mode was requested
	ErrHeterogeneousGroup = New("heterogeneous group")
)

// Kind classifies err into one of the error kinds. Unmarked errors are unexpected.
func Kind(err error) error {
	switch {
	case err == nil:
		return nil
	case Is(err, ErrMissingInputFile):
		return ErrMissingInputFile
	case Is(err, ErrHeterogeneousGroup):
		return ErrHeterogeneousGroup
	default:
		return ErrUnexpected
	}
}

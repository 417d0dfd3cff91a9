package model

import (
	"fmt"
	"strings"
)

// Kind classifies a failed run. Every kind except KindComputation is fixable
// by correcting the uploaded file.
type Kind string

const (
	KindMissingColumns    Kind = "missing_columns"
	KindUnreadableInput   Kind = "unreadable_input"
	KindSheetNotFound     Kind = "sheet_not_found"
	KindUnsupportedFormat Kind = "unsupported_format"
	KindComputation       Kind = "computation"
)

// Error is the only failure value the alternates service returns.
type Error struct {
	Kind    Kind
	Table   string   // logical table for KindMissingColumns
	Missing []string // column names for KindMissingColumns
	Hints   map[string]string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// MissingColumns reports absent required columns. hints maps a missing name
// to a present header that looks like a typo of it; it may be nil.
func MissingColumns(tableName string, missing []string, hints map[string]string) *Error {
	msg := fmt.Sprintf("missing required columns in %s: %s", tableName, strings.Join(missing, ", "))
	for _, m := range missing {
		if h, ok := hints[m]; ok {
			msg += fmt.Sprintf("; found %q, expected %q", h, m)
		}
	}
	return &Error{
		Kind:    KindMissingColumns,
		Table:   tableName,
		Missing: missing,
		Hints:   hints,
		Message: msg,
	}
}

func Unreadable(name string, err error) *Error {
	return &Error{
		Kind:    KindUnreadableInput,
		Message: fmt.Sprintf("cannot read %s: %v", name, err),
		Err:     err,
	}
}

func SheetNotFound(sheet string, err error) *Error {
	return &Error{
		Kind:    KindSheetNotFound,
		Message: fmt.Sprintf("worksheet named '%s' not found", sheet),
		Err:     err,
	}
}

func UnsupportedFormat(name string) *Error {
	return &Error{
		Kind:    KindUnsupportedFormat,
		Message: fmt.Sprintf("unsupported file type: %s (expected .csv, .xlsx or .xls)", name),
	}
}

func Computation(format string, args ...any) *Error {
	return &Error{Kind: KindComputation, Message: fmt.Sprintf(format, args...)}
}

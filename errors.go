package gqlskema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidType  = "invalid_type"
	CodeRequired     = "required"
	CodeUnknownKey   = "unknown_key"
	CodeInvalidEnum  = "invalid_enum"
	CodeUnionNoMatch = "union_no_match"
	CodeDuplicateKey = "duplicate_key"
	CodeParseError   = "parse_error"
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /items/2/price).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected names, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /path
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// Rebase prefixes every issue path in err with base ("/field", "/3").
// Errors that are not Issues become a single parse_error at base.
func Rebase(base string, err error) Issues {
	if err == nil {
		return nil
	}
	child, ok := AsIssues(err)
	if !ok {
		return Issues{{Path: base, Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	out := make(Issues, 0, len(child))
	for _, it := range child {
		p := it.Path
		switch {
		case p == "" || p == "/":
			p = base
		case p[0] == '/':
			p = base + p
		default:
			p = base + "/" + p
		}
		it.Path = p
		out = append(out, it)
	}
	return out
}

// ErrConversion is matched (errors.Is) by every *ConversionError.
var ErrConversion = errors.New("gqlskema: conversion error")

// ConversionError reports that a value could not be converted into an
// instance of a descriptor.
type ConversionError struct {
	Type   string // descriptor name
	Value  any
	Issues Issues
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("Error while converting `%s` to `%s`: %s", renderValue(e.Value), e.Type, e.Issues.Error())
}

func (e *ConversionError) Unwrap() error { return e.Issues }

// Is lets errors.Is(err, ErrConversion) match.
func (e *ConversionError) Is(target error) bool { return target == ErrConversion }

// ErrSyntax is matched (errors.Is) by every *SyntaxError.
var ErrSyntax = errors.New("gqlskema: syntax error")

// SyntaxError reports malformed schema text. Line and Column are 1-based and
// zero when the parser did not report a location.
type SyntaxError struct {
	Source string
	Line   int
	Column int
	Msg    string
	Cause  error
}

func (e *SyntaxError) Error() string {
	b := &strings.Builder{}
	b.WriteString("Syntax Error: ")
	b.WriteString(e.Msg)
	if e.Line > 0 {
		src := e.Source
		if src == "" {
			src = "schema"
		}
		fmt.Fprintf(b, " (%s:%d:%d)", src, e.Line, e.Column)
	}
	return b.String()
}

func (e *SyntaxError) Unwrap() error { return e.Cause }

// Is lets errors.Is(err, ErrSyntax) match.
func (e *SyntaxError) Is(target error) bool { return target == ErrSyntax }

// renderValue formats v for error messages, keeping long values short.
func renderValue(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		s = fmt.Sprintf("%q", t)
	default:
		s = fmt.Sprintf("%v", t)
	}
	const maxLen = 64
	if len(s) > maxLen {
		s = s[:maxLen] + "..."
	}
	return s
}

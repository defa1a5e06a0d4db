// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for text rendering.
// This file defines:
//   - FormatOption (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherFormatOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...FormatOption.
package matrix

import (
	"strings"

	"golang.org/x/text/language"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDelimiter separates the elements of one row.
	DefaultDelimiter = ","

	// DefaultVerb is the fmt verb applied to each element.
	DefaultVerb = "%v"

	// lineBreak separates rows. Never configurable: one row per line.
	lineBreak = "\n"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicDelimiterEmpty   = "matrix: WithDelimiter: delimiter must be non-empty"
	panicDelimiterNewline = "matrix: WithDelimiter: delimiter must not contain a line break"
	panicVerbInvalid      = "matrix: WithVerb: verb must start with '%'"
	panicVerbNewline      = "matrix: WithVerb: verb must not contain a line break"
)

// FormatOption mutates internal format options. Safe to apply repeatedly.
type FormatOption func(*formatOptions)

type formatOptions struct {
	delimiter string
	verb      string
	locale    language.Tag
	localized bool // locale set explicitly; use x/text/message printing
}

// WithDelimiter sets the element separator within a row.
// Panics if d is empty or contains a line break.
func WithDelimiter(d string) FormatOption {
	if d == "" {
		panic(panicDelimiterEmpty)
	}
	if strings.ContainsAny(d, "\r\n") {
		panic(panicDelimiterNewline)
	}

	return func(o *formatOptions) { o.delimiter = d }
}

// WithVerb sets the fmt verb used per element, e.g. "%.2f" or "%5d".
// Panics unless verb starts with '%', or if it contains a line break.
func WithVerb(verb string) FormatOption {
	if !strings.HasPrefix(verb, "%") {
		panic(panicVerbInvalid)
	}
	if strings.ContainsAny(verb, "\r\n") {
		panic(panicVerbNewline)
	}

	return func(o *formatOptions) { o.verb = verb }
}

// WithLocale renders elements through golang.org/x/text/message for tag, so
// digit grouping and decimal marks follow the locale (German: 1.234,5).
// Pick a delimiter that does not collide with the locale's separators.
func WithLocale(tag language.Tag) FormatOption {
	return func(o *formatOptions) {
		o.locale = tag
		o.localized = true
	}
}

func defaultFormatOptions() formatOptions {
	return formatOptions{
		delimiter: DefaultDelimiter,
		verb:      DefaultVerb,
		locale:    language.Und,
	}
}

// gatherFormatOptions applies user options over defaults, left to right.
func gatherFormatOptions(user ...FormatOption) formatOptions {
	o := defaultFormatOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvargs

import (
	"regexp"

	"github.com/yeetrun/kvargs/pkg/coerce"
)

const namePattern = `^[A-Za-z0-9_]+$`

var nameRe = regexp.MustCompile(namePattern)

// ParserFunc converts a matched value before kind coercion. The input is the
// raw token string; returning an error aborts the parse with a ValueError.
type ParserFunc func(value any) (any, error)

// Lenient adapts a best-effort converter such as coerce.BoolValue into a
// ParserFunc that never fails.
func Lenient(fn func(any) any) ParserFunc {
	return func(v any) (any, error) {
		return fn(v), nil
	}
}

// Argument is a declared name=value input.
type Argument struct {
	name        string
	description string
	required    bool
	kind        coerce.Kind
	parser      ParserFunc
	def         any

	value any
}

// ArgumentOption configures an Argument.
type ArgumentOption func(*Argument)

// WithDescription sets the help text.
func WithDescription(desc string) ArgumentOption {
	return func(a *Argument) { a.description = desc }
}

// Required marks the argument as mandatory.
func Required() ArgumentOption {
	return func(a *Argument) { a.required = true }
}

// WithKind selects the coercion applied after the custom parser.
func WithKind(k coerce.Kind) ArgumentOption {
	return func(a *Argument) { a.kind = k }
}

// WithParser sets a custom converter applied before the kind coercion.
func WithParser(fn ParserFunc) ArgumentOption {
	return func(a *Argument) { a.parser = fn }
}

// WithDefault sets the value recorded when an optional argument is omitted.
// The default is stored as given; it is not coerced.
func WithDefault(v any) ArgumentOption {
	return func(a *Argument) { a.def = v }
}

// NewArgument validates name and returns a new Argument.
func NewArgument(name string, opts ...ArgumentOption) (*Argument, error) {
	if !ValidName(name) {
		return nil, &NameError{Name: name}
	}
	a := &Argument{name: name}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// MustArgument is like NewArgument but panics on an invalid name.
func MustArgument(name string, opts ...ArgumentOption) *Argument {
	a, err := NewArgument(name, opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// ValidName reports whether name is a non-empty run of ASCII word characters.
func ValidName(name string) bool {
	return nameRe.MatchString(name)
}

func (a *Argument) Name() string        { return a.name }
func (a *Argument) Description() string { return a.description }
func (a *Argument) IsRequired() bool    { return a.required }
func (a *Argument) Kind() coerce.Kind   { return a.kind }
func (a *Argument) Default() any        { return a.def }

// Value returns the value stored by the most recent successful parse.
func (a *Argument) Value() any { return a.value }

// convert runs the custom parser and then the kind coercion over raw.
func (a *Argument) convert(raw string) (any, error) {
	var v any = raw
	if a.parser != nil {
		out, err := a.parser(v)
		if err != nil {
			return nil, &ValueError{Name: a.name, Value: raw, Err: err}
		}
		v = out
	}
	out, err := a.kind.Coerce(v)
	if err != nil {
		return nil, &ValueError{Name: a.name, Value: raw, Err: err}
	}
	return out, nil
}

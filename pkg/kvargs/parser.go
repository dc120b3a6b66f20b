// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvargs

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/yeetrun/kvargs/pkg/coerce"
	"tailscale.com/types/logger"
	"tailscale.com/util/mak"
)

// DefaultFormat matches name=value tokens.
const DefaultFormat = `^([A-Za-z0-9_]+)=(.*)$`

// Help tokens recognised by Parse when help is enabled.
const (
	helpFlagLong  = "--help"
	helpFlagShort = "-h"
	helpCommand   = "help"
)

// Parser holds an argument schema and the result of the last parse.
//
// A Parser is not safe for concurrent use.
type Parser struct {
	description string
	format      string
	re          *regexp.Regexp
	help        bool
	program     string
	logf        logger.Logf

	arguments []*Argument
	lookup    map[string]*Argument
	parsed    *Args
}

// Option configures a Parser.
type Option func(*Parser) error

// WithProgramDescription sets the text printed at the top of the help message.
func WithProgramDescription(desc string) Option {
	return func(p *Parser) error {
		p.description = desc
		return nil
	}
}

// WithFormat sets the token pattern. The pattern is matched at the start of
// each token; group 1 is the name and group 2 the value.
func WithFormat(pattern string) Option {
	return func(p *Parser) error {
		re, err := compileFormat(pattern)
		if err != nil {
			return err
		}
		p.format = pattern
		p.re = re
		return nil
	}
}

// WithHelp enables or disables help generation and help token handling.
func WithHelp(enabled bool) Option {
	return func(p *Parser) error {
		p.help = enabled
		return nil
	}
}

// WithProgram overrides the program name shown in the usage line.
func WithProgram(name string) Option {
	return func(p *Parser) error {
		p.program = name
		return nil
	}
}

// WithLogf sets the debug logger. The default discards output.
func WithLogf(logf logger.Logf) Option {
	return func(p *Parser) error {
		if logf == nil {
			logf = logger.Discard
		}
		p.logf = logf
		return nil
	}
}

// WithArguments registers arguments in order.
func WithArguments(args ...*Argument) Option {
	return func(p *Parser) error {
		for _, a := range args {
			p.AddArgument(a)
		}
		return nil
	}
}

// New returns a Parser with the default name=value format and help enabled.
func New(opts ...Option) (*Parser, error) {
	p := &Parser{
		format:  DefaultFormat,
		re:      defaultRe,
		help:    true,
		program: filepath.Base(os.Args[0]),
		logf:    logger.Discard,
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// MustNew is like New but panics on error.
func MustNew(opts ...Option) *Parser {
	p, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return p
}

var defaultRe = regexp.MustCompile(DefaultFormat)

func compileFormat(pattern string) (*regexp.Regexp, error) {
	// Tokens match from their first byte, with or without a leading ^.
	re, err := regexp.Compile(`^(?:` + pattern + `)`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if re.NumSubexp() < 2 {
		return nil, fmt.Errorf("%w: %q needs two capture groups, has %d", ErrInvalidFormat, pattern, re.NumSubexp())
	}
	return re, nil
}

// AddArgument registers arg. A later argument with the same name replaces
// the earlier one in lookups; both stay in Arguments.
func (p *Parser) AddArgument(arg *Argument) {
	p.arguments = append(p.arguments, arg)
	mak.Set(&p.lookup, arg.name, arg)
}

// ArgumentSpec is the declarative form of an Argument, as read from a schema
// document.
type ArgumentSpec struct {
	Name        string
	Description string
	Required    bool
	Kind        coerce.Kind
	Parser      ParserFunc
}

// AddArgumentSpec validates spec and registers the resulting Argument.
func (p *Parser) AddArgumentSpec(spec ArgumentSpec) error {
	kind, err := coerce.ParseKind(string(spec.Kind))
	if err != nil {
		return fmt.Errorf("argument %s: %w", spec.Name, err)
	}
	opts := []ArgumentOption{
		WithDescription(spec.Description),
		WithKind(kind),
		WithParser(spec.Parser),
	}
	if spec.Required {
		opts = append(opts, Required())
	}
	arg, err := NewArgument(spec.Name, opts...)
	if err != nil {
		return err
	}
	p.AddArgument(arg)
	return nil
}

// SetParser attaches fn as the custom parser of the declared argument name.
func (p *Parser) SetParser(name string, fn ParserFunc) error {
	a, ok := p.lookup[name]
	if !ok {
		return fmt.Errorf("argument %s is not declared", name)
	}
	a.parser = fn
	return nil
}

// Arguments returns the declared arguments in registration order.
func (p *Parser) Arguments() []*Argument {
	return append([]*Argument(nil), p.arguments...)
}

// Lookup returns the argument registered under name.
func (p *Parser) Lookup(name string) (*Argument, bool) {
	a, ok := p.lookup[name]
	return a, ok
}

func (p *Parser) Description() string { return p.description }
func (p *Parser) Format() string      { return p.format }
func (p *Parser) HelpEnabled() bool   { return p.help }
func (p *Parser) Program() string     { return p.program }

// Value returns the current value of the declared argument name, or nil when
// name is not declared.
func (p *Parser) Value(name string) any {
	if a, ok := p.lookup[name]; ok {
		return a.value
	}
	return nil
}

// Parsed returns the result of the most recent successful Parse, or nil when
// nothing has been parsed or the result was empty.
func (p *Parser) Parsed() *Args {
	if p.parsed.Len() == 0 {
		return nil
	}
	return p.parsed
}

// Parse matches args against the schema. An empty args uses os.Args[1:].
//
// Tokens that do not match the format are skipped. Matched names that are not
// declared are stored as raw strings. Declared arguments absent from the input
// get their default value, or a *MissingArgumentError when required. A
// successful Parse resets the Value of every omitted optional argument to its
// default (nil unless WithDefault was given), so Value never carries over from
// an earlier Parse. On error the previous result and argument values are left
// untouched.
func (p *Parser) Parse(args []string) (*Args, error) {
	if len(args) == 0 {
		args = os.Args[1:]
	}
	return p.ParseTokens(args)
}

// ParseTokens is Parse without the os.Args fallback. Empty tokens still apply
// defaults and the required-argument check.
func (p *Parser) ParseTokens(args []string) (*Args, error) {
	if p.help && wantsHelp(args) {
		return nil, ErrHelp
	}

	parsed := NewArgs()
	values := make(map[*Argument]any)
	for _, tok := range args {
		m := p.re.FindStringSubmatch(tok)
		if m == nil {
			p.logf("kvargs: skipping %q: does not match %s", tok, p.format)
			continue
		}
		name, raw := m[1], m[2]
		arg, ok := p.lookup[name]
		if !ok {
			p.logf("kvargs: %s is not declared, keeping raw value", name)
			parsed.Set(name, raw)
			continue
		}
		v, err := arg.convert(raw)
		if err != nil {
			return nil, err
		}
		values[arg] = v
		parsed.Set(name, v)
	}

	for _, arg := range p.arguments {
		if parsed.Has(arg.name) {
			continue
		}
		if arg.required {
			return nil, &MissingArgumentError{Name: arg.name}
		}
		values[arg] = arg.def
		parsed.Set(arg.name, arg.def)
	}

	for arg, v := range values {
		arg.value = v
	}
	p.parsed = parsed
	return parsed, nil
}

func wantsHelp(args []string) bool {
	for _, a := range args {
		switch a {
		case helpFlagLong, helpFlagShort, helpCommand:
			return true
		}
	}
	return false
}

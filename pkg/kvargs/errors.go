// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvargs

import (
	"errors"
	"fmt"
)

// Sentinel errors. The typed errors below match them with errors.Is.
var (
	// ErrInvalidName is returned when an argument name is not an identifier.
	ErrInvalidName = errors.New("invalid argument name")

	// ErrMissingArgument is returned when a required argument is not supplied.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrInvalidFormat is returned when the token pattern does not compile or
	// has fewer than two capture groups.
	ErrInvalidFormat = errors.New("invalid argument format")

	// ErrInvalidFileType is returned for schema files in an unsupported format.
	ErrInvalidFileType = errors.New("invalid filetype")

	// ErrHelp is returned by Parse when help was requested with -h, --help or
	// help and help is enabled on the parser.
	ErrHelp = errors.New("help requested")
)

// NameError reports an argument name that does not match the identifier
// pattern.
type NameError struct {
	Name string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("argument name must match the pattern '%s': %q", namePattern, e.Name)
}

func (e *NameError) Is(target error) bool {
	return target == ErrInvalidName
}

// MissingArgumentError names a required argument absent from the input.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("missing required argument: %s", e.Name)
}

func (e *MissingArgumentError) Is(target error) bool {
	return target == ErrMissingArgument
}

// ValueError is returned when a custom parser or a kind coercion rejects a
// value. Err holds the underlying failure.
type ValueError struct {
	Name  string // The declared argument name
	Value string // The raw token value
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("invalid value %q for argument %s: %v", e.Value, e.Name, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvargs

import (
	"errors"
	"testing"

	"github.com/yeetrun/kvargs/pkg/coerce"
)

func TestNewArgumentName(t *testing.T) {
	t.Parallel()

	valid := []string{"a", "test", "test2", "_private", "UPPER_case_9", "123"}
	for _, name := range valid {
		a, err := NewArgument(name)
		if err != nil {
			t.Errorf("NewArgument(%q) error: %v", name, err)
			continue
		}
		if a.Name() != name {
			t.Errorf("Name() = %q, want %q", a.Name(), name)
		}
	}

	invalid := []string{"", "bad name", "bad-name", "dot.ted", "tab\t", "ünï", "a=b"}
	for _, name := range invalid {
		_, err := NewArgument(name)
		if !errors.Is(err, ErrInvalidName) {
			t.Errorf("NewArgument(%q) error = %v, want ErrInvalidName", name, err)
		}
		var nerr *NameError
		if !errors.As(err, &nerr) || nerr.Name != name {
			t.Errorf("NewArgument(%q) error = %#v, want *NameError", name, err)
		}
	}
}

func TestMustArgumentPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Error("MustArgument did not panic for an invalid name")
		}
	}()
	MustArgument("bad name")
}

func TestArgumentOptions(t *testing.T) {
	t.Parallel()

	a := MustArgument("port",
		WithDescription("Listen port"),
		Required(),
		WithKind(coerce.Int),
		WithDefault(8080),
	)
	if a.Description() != "Listen port" {
		t.Errorf("Description() = %q", a.Description())
	}
	if !a.IsRequired() {
		t.Errorf("IsRequired() = false, want true")
	}
	if a.Kind() != coerce.Int {
		t.Errorf("Kind() = %q, want %q", a.Kind(), coerce.Int)
	}
	if a.Default() != 8080 {
		t.Errorf("Default() = %#v, want 8080", a.Default())
	}
	if a.Value() != nil {
		t.Errorf("Value() before parse = %#v, want nil", a.Value())
	}
}

func TestAddArgumentSpecRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	p := MustNew()
	err := p.AddArgumentSpec(ArgumentSpec{Name: "x", Kind: coerce.Kind("tuple")})
	if !errors.Is(err, coerce.ErrUnknownKind) {
		t.Fatalf("AddArgumentSpec error = %v, want ErrUnknownKind", err)
	}
	if err := p.AddArgumentSpec(ArgumentSpec{Name: "bad name"}); !errors.Is(err, ErrInvalidName) {
		t.Fatalf("AddArgumentSpec error = %v, want ErrInvalidName", err)
	}
	if len(p.Arguments()) != 0 {
		t.Fatalf("rejected specs were registered: %v", p.Arguments())
	}
	if err := p.AddArgumentSpec(ArgumentSpec{Name: "y", Kind: coerce.Kind("str"), Required: true}); err != nil {
		t.Fatalf("AddArgumentSpec error: %v", err)
	}
	a, ok := p.Lookup("y")
	if !ok || a.Kind() != coerce.String || !a.IsRequired() {
		t.Fatalf("Lookup(y) = %+v, %v", a, ok)
	}
}

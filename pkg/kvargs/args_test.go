// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvargs

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestArgsOrderAndLookup(t *testing.T) {
	t.Parallel()

	a := NewArgs()
	a.Set("b", 1)
	a.Set("a", nil)
	a.Set("c", "x")
	a.Set("b", 2)

	if diff := cmp.Diff([]string{"b", "a", "c"}, a.Keys()); diff != "" {
		t.Fatalf("Keys mismatch (-want +got):\n%s", diff)
	}
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	if got := a.Get("b"); got != 2 {
		t.Fatalf("Get(b) = %#v, want 2", got)
	}
	if got := a.Get("unknown"); got != nil {
		t.Fatalf("Get(unknown) = %#v, want nil", got)
	}
	if !a.Has("a") || a.Has("unknown") {
		t.Fatalf("Has mismatch: a=%v unknown=%v", a.Has("a"), a.Has("unknown"))
	}
	if v, ok := a.Lookup("a"); !ok || v != nil {
		t.Fatalf("Lookup(a) = %#v, %v; want nil, true", v, ok)
	}
}

func TestArgsTypedAccessors(t *testing.T) {
	t.Parallel()

	a := NewArgs()
	a.Set("s", "hello")
	a.Set("n", "12")
	a.Set("f", 2)
	a.Set("yes", "y")
	a.Set("none", nil)

	if s, ok := a.String("s"); !ok || s != "hello" {
		t.Errorf("String(s) = %q, %v", s, ok)
	}
	if _, ok := a.String("n"); !ok {
		t.Errorf("String(n) not ok")
	}
	if n, ok := a.Int("n"); !ok || n != 12 {
		t.Errorf("Int(n) = %d, %v", n, ok)
	}
	if _, ok := a.Int("s"); ok {
		t.Errorf("Int(s) ok, want false")
	}
	if f, ok := a.Float("f"); !ok || f != 2 {
		t.Errorf("Float(f) = %v, %v", f, ok)
	}
	if b, ok := a.Bool("yes"); !ok || !b {
		t.Errorf("Bool(yes) = %v, %v", b, ok)
	}
	if _, ok := a.Bool("none"); ok {
		t.Errorf("Bool(none) ok, want false")
	}
}

func TestArgsNilReceiver(t *testing.T) {
	t.Parallel()

	var a *Args
	if a.Get("x") != nil || a.Len() != 0 || a.Keys() != nil || a.Has("x") {
		t.Fatalf("nil Args should behave as empty")
	}
	if m := a.Map(); len(m) != 0 {
		t.Fatalf("Map() = %v, want empty", m)
	}
}

func TestArgsMarshalJSON(t *testing.T) {
	t.Parallel()

	a := NewArgs()
	a.Set("z", 1)
	a.Set("a", nil)
	a.Set("m", "x")

	got, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if want := `{"z":1,"a":null,"m":"x"}`; string(got) != want {
		t.Fatalf("Marshal = %s, want %s", got, want)
	}
}

func TestArgsSetNilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("Set on nil *Args did not panic")
		}
	}()
	var a *Args
	a.Set("x", 1)
}

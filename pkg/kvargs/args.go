// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvargs

import (
	"bytes"
	"encoding/json"

	"github.com/yeetrun/kvargs/pkg/coerce"
	"tailscale.com/util/mak"
)

// Args is the result of a parse: an insertion-ordered mapping from argument
// name to value. Looking up a name that was never set returns nil rather
// than failing, so declared-but-omitted and unknown names read the same way
// through Get; use Lookup or Has to tell them apart.
type Args struct {
	keys   []string
	values map[string]any
}

// NewArgs returns an empty Args.
func NewArgs() *Args {
	return &Args{}
}

// Get returns the value for name, or nil.
func (a *Args) Get(name string) any {
	if a == nil {
		return nil
	}
	return a.values[name]
}

// Lookup returns the value for name and whether name is present.
func (a *Args) Lookup(name string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.values[name]
	return v, ok
}

// Has reports whether name is present, even with a nil value.
func (a *Args) Has(name string) bool {
	_, ok := a.Lookup(name)
	return ok
}

// Set stores v under name. Re-setting a name keeps its original position.
// Unlike the read methods, Set needs a non-nil *Args; it panics on nil.
func (a *Args) Set(name string, v any) {
	if _, ok := a.values[name]; !ok {
		a.keys = append(a.keys, name)
	}
	mak.Set(&a.values, name, v)
}

// Keys returns the names in insertion order.
func (a *Args) Keys() []string {
	if a == nil {
		return nil
	}
	return append([]string(nil), a.keys...)
}

func (a *Args) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Map returns a copy of the values as a plain map.
func (a *Args) Map() map[string]any {
	out := make(map[string]any, a.Len())
	if a == nil {
		return out
	}
	for _, k := range a.keys {
		out[k] = a.values[k]
	}
	return out
}

// String returns the value for name when it is a string.
func (a *Args) String(name string) (string, bool) {
	s, ok := a.Get(name).(string)
	return s, ok
}

// Int returns the value for name as an int. Strings and other numeric values
// are converted with coerce.IntValue.
func (a *Args) Int(name string) (int, bool) {
	v := a.Get(name)
	if n, ok := v.(int); ok {
		return n, true
	}
	n, ok := coerce.IntValue(v).(int)
	return n, ok
}

// Float returns the value for name as a float64, converting with
// coerce.FloatValue.
func (a *Args) Float(name string) (float64, bool) {
	f, ok := coerce.FloatValue(a.Get(name)).(float64)
	return f, ok
}

// Bool returns the value for name as a bool. Absent values report false,
// false; anything else uses coerce.BoolValue truthiness.
func (a *Args) Bool(name string) (bool, bool) {
	v := a.Get(name)
	if v == nil {
		return false, false
	}
	return coerce.BoolValue(v).(bool), true
}

// MarshalJSON encodes Args as a JSON object with keys in insertion order.
func (a *Args) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range a.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(a.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

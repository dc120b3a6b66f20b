// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coerce converts raw argument strings into typed values.
//
// Two families live here. Kind is the fixed table used by declared arguments:
// its conversions are strict and report an error for malformed input. Bool,
// Float and Int are lenient helpers that never fail; unparseable input comes
// back as nil (Float, Int) or false (Bool). Callers that must tell "missing"
// apart from "malformed" should use the Parse* functions instead.
package coerce

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a kind name is not recognised.
var ErrUnknownKind = errors.New("unknown argument type")

// Kind selects the conversion applied to an argument value.
type Kind string

const (
	None   Kind = ""
	String Kind = "string"
	Int    Kind = "int"
	Float  Kind = "float"
	Bool   Kind = "bool"
)

var kindAliases = map[string]Kind{
	"":        None,
	"none":    None,
	"string":  String,
	"str":     String,
	"int":     Int,
	"integer": Int,
	"float":   Float,
	"number":  Float,
	"double":  Float,
	"bool":    Bool,
	"boolean": Bool,
}

// ParseKind returns the Kind for name. Matching is case-insensitive and accepts
// a few common aliases ("str", "integer", "number", "boolean").
func ParseKind(name string) (Kind, error) {
	k, ok := kindAliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return None, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

func (k Kind) String() string {
	if k == None {
		return "none"
	}
	return string(k)
}

// UnmarshalText implements encoding.TextUnmarshaler so that schema files can
// use any accepted alias.
func (k *Kind) UnmarshalText(text []byte) error {
	v, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

var kindFuncs = map[Kind]func(any) (any, error){
	String: toString,
	Int:    toInt,
	Float:  toFloat,
	Bool:   toBool,
}

// Coerce converts v to the kind. A nil v stays nil for every kind, and None
// returns v unchanged.
func (k Kind) Coerce(v any) (any, error) {
	if v == nil || k == None {
		return v, nil
	}
	fn, ok := kindFuncs[k]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, string(k))
	}
	return fn(v)
}

func toString(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return fmt.Sprint(v), nil
}

func toInt(v any) (any, error) {
	switch v := v.(type) {
	case string:
		return ParseInt(v)
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	}
	if f, ok := number(v); ok {
		return int(f), nil
	}
	return nil, fmt.Errorf("cannot convert %T to int", v)
}

func toFloat(v any) (any, error) {
	switch v := v.(type) {
	case string:
		return ParseFloat(v)
	case bool:
		if v {
			return 1.0, nil
		}
		return 0.0, nil
	}
	if f, ok := number(v); ok {
		return f, nil
	}
	return nil, fmt.Errorf("cannot convert %T to float", v)
}

func toBool(v any) (any, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case string:
		return ParseBool(v)
	}
	if f, ok := number(v); ok {
		return f != 0, nil
	}
	return nil, fmt.Errorf("cannot convert %T to bool", v)
}

// number widens the Go numeric types to float64.
func number(v any) (float64, bool) {
	switch v := v.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}

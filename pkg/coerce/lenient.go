// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coerce

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
)

// numericRe accepts digits, any one separator character, then digits.
// Strings like "1x5" pass it but fail strconv and count as unparseable.
var numericRe = regexp.MustCompile(`^\d*.?\d+?$`)

var (
	truthy = []string{"y", "yes", "t", "true"}
	falsy  = []string{"n", "no", "f", "false"}
)

// BoolValue reports the truthiness of v. Strings in the truthy set are true,
// numeric strings are true when non-zero and everything else is false.
func BoolValue(v any) any {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		s := strings.ToLower(strings.TrimSpace(v))
		if slices.Contains(truthy, s) {
			return true
		}
		if numericRe.MatchString(s) {
			f, err := strconv.ParseFloat(s, 64)
			return err == nil && f != 0
		}
		return false
	}
	if f, ok := number(v); ok {
		return f != 0
	}
	return false
}

// FloatValue returns v as a float64, or nil when v does not look like a number.
func FloatValue(v any) any {
	switch v := v.(type) {
	case bool:
		if v {
			return 1.0
		}
		return 0.0
	case string:
		s := strings.TrimSpace(v)
		if !numericRe.MatchString(s) {
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return f
	}
	if f, ok := number(v); ok {
		return f
	}
	return nil
}

// IntValue is FloatValue truncated towards zero. IntValue("4.1") is 4;
// IntValue("asdf") is nil.
func IntValue(v any) any {
	f, ok := FloatValue(v).(float64)
	if !ok {
		return nil
	}
	return int(f)
}

// ParseBool accepts the truthy/falsy token sets case-insensitively and falls
// back to numeric truthiness.
func ParseBool(s string) (bool, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	switch {
	case slices.Contains(truthy, t):
		return true, nil
	case slices.Contains(falsy, t):
		return false, nil
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", s)
	}
	return f != 0, nil
}

// ParseInt parses a base-10 integer.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", s, err)
	}
	return n, nil
}

// ParseFloat parses a 64-bit float.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float %q: %w", s, err)
	}
	return f, nil
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ftdetect

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/kvargs/pkg/codecutil"
	"gopkg.in/yaml.v3"
)

// FileType is a schema interchange format.
type FileType int

const (
	Unknown FileType = iota
	JSON
	YAML
	TOML
)

// ErrUnknownFileType is returned when a format cannot be named or detected.
var ErrUnknownFileType = errors.New("unable to detect file type")

func (ft FileType) String() string {
	switch ft {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	}
	return "unknown"
}

// Ext returns the canonical file extension, including the dot.
func (ft FileType) Ext() string {
	if ft == Unknown {
		return ""
	}
	return "." + ft.String()
}

// ParseFileType maps a format name or extension ("yaml", ".yml") to a FileType.
func ParseFileType(name string) (FileType, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(name)), ".") {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return Unknown, fmt.Errorf("%w: %q", ErrUnknownFileType, name)
}

// DetectFile reads path (decompressing zstd content) and detects its format.
func DetectFile(path string) (FileType, error) {
	bs, err := codecutil.ReadFile(path)
	if err != nil {
		return Unknown, fmt.Errorf("failed to read file: %w", err)
	}
	return Detect(path, bs)
}

// Detect determines the format of data. The name is consulted first; content
// sniffing is the fallback for unfamiliar extensions.
func Detect(name string, data []byte) (FileType, error) {
	if ft, ok := detectByName(name); ok {
		return ft, nil
	}
	if detectJSON(data) {
		return JSON, nil
	}
	if detectTOML(data) {
		return TOML, nil
	}
	if detectYAML(data) {
		return YAML, nil
	}
	return Unknown, ErrUnknownFileType
}

func detectByName(name string) (FileType, bool) {
	if name == "" {
		return Unknown, false
	}
	base := strings.ToLower(filepath.Base(name))
	base = strings.TrimSuffix(base, codecutil.ZstdExt)
	ft, err := ParseFileType(filepath.Ext(base))
	if err != nil {
		return Unknown, false
	}
	return ft, true
}

func detectJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}

// detectTOML requires at least one key so that plain text does not qualify.
func detectTOML(data []byte) bool {
	var form map[string]any
	md, err := toml.Decode(string(data), &form)
	if err != nil {
		return false
	}
	return len(md.Keys()) > 0
}

// detectYAML checks for a top-level arguments or description key in a YAML
// mapping.
func detectYAML(data []byte) bool {
	var form map[string]any
	if err := yaml.Unmarshal(data, &form); err != nil {
		return false
	}
	_, hasArgs := form["arguments"]
	_, hasDesc := form["description"]
	return hasArgs || hasDesc
}

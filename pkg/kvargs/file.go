// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvargs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/kvargs/pkg/codecutil"
	"github.com/yeetrun/kvargs/pkg/ftdetect"
	"gopkg.in/yaml.v3"
)

// Marshal encodes the schema of p in the given format.
func Marshal(p *Parser, ft ftdetect.FileType) ([]byte, error) {
	return MarshalDocument(p.Document(), ft)
}

// MarshalDocument encodes doc in the given format.
func MarshalDocument(doc Document, ft ftdetect.FileType) ([]byte, error) {
	var buf bytes.Buffer
	switch ft {
	case ftdetect.JSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
	case ftdetect.YAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
	case ftdetect.TOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, fmt.Errorf("failed to encode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidFileType, ft)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes a schema in the given format and builds a Parser from it.
// Unknown keys are rejected.
func Unmarshal(data []byte, ft ftdetect.FileType, opts ...Option) (*Parser, error) {
	doc, err := UnmarshalDocument(data, ft)
	if err != nil {
		return nil, err
	}
	return FromDocument(doc, opts...)
}

// UnmarshalDocument decodes a schema document in the given format.
func UnmarshalDocument(data []byte, ft ftdetect.FileType) (Document, error) {
	var doc Document
	switch ft {
	case ftdetect.JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("failed to parse json: %w", err)
		}
	case ftdetect.YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return Document{}, fmt.Errorf("failed to parse yaml: %w", err)
		}
	case ftdetect.TOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return Document{}, fmt.Errorf("failed to parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return Document{}, fmt.Errorf("failed to parse toml: unknown keys %s", strings.Join(keys, ", "))
		}
	default:
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidFileType, ft)
	}
	return doc, nil
}

// LoadFile reads a schema file. With ftdetect.Unknown the format is detected
// from the file name and contents. Zstd-compressed files are decompressed.
func LoadFile(path string, ft ftdetect.FileType, opts ...Option) (*Parser, error) {
	data, err := codecutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if ft == ftdetect.Unknown {
		ft, err = ftdetect.Detect(path, data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFileType, path, err)
		}
	}
	p, err := Unmarshal(data, ft, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return p, nil
}

// SaveFile writes the schema of p to path. With ftdetect.Unknown the format is
// taken from the file extension. Paths ending in .zst are compressed.
func SaveFile(p *Parser, path string, ft ftdetect.FileType) error {
	if ft == ftdetect.Unknown {
		var err error
		ft, err = ftdetect.Detect(path, nil)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidFileType, path)
		}
	}
	data, err := Marshal(p, ft)
	if err != nil {
		return err
	}
	return codecutil.WriteFile(path, data, 0o644)
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package kvargs

import (
	"fmt"

	"github.com/yeetrun/kvargs/pkg/coerce"
	"tailscale.com/util/set"
)

// Document is the serialized form of a Parser. Custom parser functions,
// defaults and runtime values are not part of it.
//
// Nil pointers encode as null in JSON and YAML and are omitted from TOML, which
// has no null value.
type Document struct {
	Description *string            `json:"description" yaml:"description" toml:"description,omitempty"`
	Format      string             `json:"format,omitempty" yaml:"format,omitempty" toml:"format,omitempty"`
	Help        *bool              `json:"help,omitempty" yaml:"help,omitempty" toml:"help,omitempty"`
	Arguments   []ArgumentDocument `json:"arguments" yaml:"arguments" toml:"arguments"`
}

// ArgumentDocument is the serialized form of an Argument.
type ArgumentDocument struct {
	Name        string       `json:"name" yaml:"name" toml:"name"`
	Description *string      `json:"description" yaml:"description" toml:"description,omitempty"`
	Required    bool         `json:"required" yaml:"required" toml:"required"`
	Type        *coerce.Kind `json:"type" yaml:"type" toml:"type,omitempty"`
}

// Document returns the serializable schema of p.
func (p *Parser) Document() Document {
	help := p.help
	doc := Document{
		Description: optString(p.description),
		Format:      p.format,
		Help:        &help,
		Arguments:   make([]ArgumentDocument, 0, len(p.arguments)),
	}
	for _, a := range p.arguments {
		doc.Arguments = append(doc.Arguments, a.Document())
	}
	return doc
}

// Document returns the serializable form of a.
func (a *Argument) Document() ArgumentDocument {
	ad := ArgumentDocument{
		Name:        a.name,
		Description: optString(a.description),
		Required:    a.required,
	}
	if a.kind != coerce.None {
		k := a.kind
		ad.Type = &k
	}
	return ad
}

// FromDocument builds a Parser from doc. A missing format selects
// DefaultFormat and a missing help flag means help is enabled. Extra options
// are applied after the document's own settings. Use Parser.SetParser to
// attach custom parser functions afterwards.
func FromDocument(doc Document, opts ...Option) (*Parser, error) {
	base := []Option{WithProgramDescription(deref(doc.Description))}
	if doc.Format != "" {
		base = append(base, WithFormat(doc.Format))
	}
	if doc.Help != nil {
		base = append(base, WithHelp(*doc.Help))
	}
	p, err := New(append(base, opts...)...)
	if err != nil {
		return nil, err
	}
	seen := set.Set[string]{}
	for i, ad := range doc.Arguments {
		if seen.Contains(ad.Name) {
			p.logf("kvargs: argument %s declared more than once; the last declaration wins", ad.Name)
		}
		seen.Add(ad.Name)
		spec := ArgumentSpec{
			Name:        ad.Name,
			Description: deref(ad.Description),
			Required:    ad.Required,
		}
		if ad.Type != nil {
			spec.Kind = *ad.Type
		}
		if err := p.AddArgumentSpec(spec); err != nil {
			return nil, fmt.Errorf("arguments[%d]: %w", i, err)
		}
	}
	return p, nil
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

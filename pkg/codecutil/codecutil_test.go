// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codecutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileCompressesZstdSuffix(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	payload := []byte("description: UnitTest\n")

	plain := filepath.Join(dir, "schema.yaml")
	if err := WriteFile(plain, payload, 0o644); err != nil {
		t.Fatalf("WriteFile plain: %v", err)
	}
	raw, err := os.ReadFile(plain)
	if err != nil {
		t.Fatalf("ReadFile plain: %v", err)
	}
	if !bytes.Equal(raw, payload) {
		t.Fatalf("plain contents = %q, want %q", raw, payload)
	}

	packed := filepath.Join(dir, "schema.yaml.zst")
	if err := WriteFile(packed, payload, 0o644); err != nil {
		t.Fatalf("WriteFile zst: %v", err)
	}
	raw, err = os.ReadFile(packed)
	if err != nil {
		t.Fatalf("ReadFile zst: %v", err)
	}
	if !IsZstd(raw) {
		t.Fatalf("expected zstd magic, got %x", raw[:4])
	}

	got, err := ReadFile(packed)
	if err != nil {
		t.Fatalf("codecutil.ReadFile: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("decoded contents = %q, want %q", got, payload)
	}
}

func TestZstdCompressDecompressFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "in.json")
	mid := filepath.Join(dir, "in.json.zst")
	dst := filepath.Join(dir, "out.json")
	payload := bytes.Repeat([]byte(`{"name":"test"}`), 64)
	if err := os.WriteFile(src, payload, 0o644); err != nil {
		t.Fatalf("write src: %v", err)
	}

	if err := ZstdCompress(src, mid); err != nil {
		t.Fatalf("ZstdCompress: %v", err)
	}
	if err := ZstdDecompress(mid, dst); err != nil {
		t.Fatalf("ZstdDecompress: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("round trip mismatch: got %d bytes, want %d", len(got), len(payload))
	}
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codecutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/yeetrun/kvargs/pkg/fileutil"
)

// ZstdExt is the suffix that marks a compressed schema file.
const ZstdExt = ".zst"

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// IsZstd reports whether bs starts with the zstd frame magic.
func IsZstd(bs []byte) bool {
	return bytes.HasPrefix(bs, zstdMagic)
}

// ReadFile returns the contents of name, decompressing zstd frames.
func ReadFile(name string) ([]byte, error) {
	bs, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if !IsZstd(bs) {
		return bs, nil
	}
	out, err := ZstdDecode(bs)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", name, err)
	}
	return out, nil
}

// WriteFile atomically writes data to name, compressing it first when name
// ends in ZstdExt.
func WriteFile(name string, data []byte, perm os.FileMode) error {
	if strings.HasSuffix(strings.ToLower(name), ZstdExt) {
		enc, err := ZstdEncode(data)
		if err != nil {
			return fmt.Errorf("failed to compress %s: %w", name, err)
		}
		data = enc
	}
	return fileutil.WriteFile(name, data, perm)
}

func ZstdEncode(src []byte) ([]byte, error) {
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	defer encoder.Close()
	return encoder.EncodeAll(src, nil), nil
}

func ZstdDecode(src []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer decoder.Close()
	return decoder.DecodeAll(src, nil)
}

func ZstdCompress(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dstFile.Close()

	encoder, err := zstd.NewWriter(dstFile)
	if err != nil {
		return fmt.Errorf("failed to create zstd encoder: %w", err)
	}

	if _, err := io.Copy(encoder, srcFile); err != nil {
		encoder.Close()
		return fmt.Errorf("failed to compress file: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to flush zstd encoder: %w", err)
	}
	return dstFile.Close()
}

func ZstdDecompress(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dstFile.Close()

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	defer decoder.Close()

	if err := decoder.Reset(srcFile); err != nil {
		return fmt.Errorf("failed to reset decoder: %w", err)
	}

	if _, err := decoder.WriteTo(dstFile); err != nil {
		return fmt.Errorf("failed to decompress file: %w", err)
	}

	return dstFile.Close()
}

// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFile writes data to name. It is able to overwrite existing files that
// are in use. It does this by writing to a temporary file next to name and then
// moving it into place.
func WriteFile(name string, data []byte, perm os.FileMode) (err error) {
	if dir := filepath.Dir(name); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tempDst := name + ".tmp"
	f, err := os.OpenFile(tempDst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() {
		f.Close()
		if err == nil {
			err = os.Rename(tempDst, name)
		}
		if err != nil {
			os.Remove(tempDst)
		}
	}()

	if _, err = f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

// Identical reports whether the contents of two files are identical.
func Identical(file1, file2 string) (bool, error) {
	f1, err := os.Open(file1)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open file1: %w", err)
	}
	defer f1.Close()

	f2, err := os.Open(file2)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open file2: %w", err)
	}
	defer f2.Close()

	hasher1 := sha256.New()
	hasher2 := sha256.New()
	if _, err := io.Copy(hasher1, f1); err != nil {
		return false, fmt.Errorf("failed to hash file1: %v", err)
	}
	if _, err := io.Copy(hasher2, f2); err != nil {
		return false, fmt.Errorf("failed to hash file2: %v", err)
	}

	return bytes.Equal(hasher1.Sum(nil), hasher2.Sum(nil)), nil
}

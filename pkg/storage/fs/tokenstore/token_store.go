/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package tokenstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store writes signed status list tokens to the local filesystem. Artifacts
// are world-readable: status lists are public documents.
type Store struct{}

// NewStore creates a filesystem token store.
func NewStore() *Store {
	return &Store{}
}

// Put writes the token at the path named by uri and returns the resolved
// path. Accepts "file:///path" URIs and bare paths. Missing parent
// directories are created.
func (p *Store) Put(_ context.Context, uri string, token []byte) (string, error) {
	path := strings.TrimPrefix(uri, "file://")

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory: %w", err)
	}

	if err := os.WriteFile(path, token, 0o644); err != nil {
		return "", fmt.Errorf("failed to write status list token: %w", err)
	}

	return path, nil
}

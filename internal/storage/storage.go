// Package storage is the upload collaborator: it stores image assets
// before the registry is invoked, so the registry only ever sees an
// already-stored filename.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

type Storage interface {
	Save(ctx context.Context, filename, contentType string, r io.Reader) error
}

// UploadFilename derives a unique stored name from the client-provided
// one: a random prefix plus the sanitized original basename.
func UploadFilename(original string) (string, error) {
	id, err := gonanoid.New(21)
	if err != nil {
		return "", fmt.Errorf("generate upload id: %w", err)
	}

	base := filepath.Base(strings.TrimSpace(original))
	base = strings.ReplaceAll(base, " ", "-")
	if base == "" || base == "." || base == string(filepath.Separator) {
		base = "upload"
	}

	return fmt.Sprintf("%s-%s", id, base), nil
}

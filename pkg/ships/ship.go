// Package ships defines ship records as they appear in a remote catalog:
// the parsed ship.yaml metadata, the folder's locator, and an optional
// preview image. It also knows how to render a ship for display and how to
// download a ship's folder to local disk.
package ships

import (
	"context"

	"github.com/agentstation/shipyard/pkg/errors"
)

// File is one entry of a remote directory listing.
type File struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	DownloadURL string `json:"download_url"`
}

// IsDir reports whether the entry is a directory.
func (f File) IsDir() bool {
	return f.Type == "dir"
}

// Source lists remote folders and downloads remote files.
type Source interface {
	List(ctx context.Context, url string) ([]File, error)
	Download(ctx context.Context, url string) ([]byte, error)
}

// Ship is an immutable catalog record.
type Ship struct {
	metadata Metadata
	locator  string
	image    Image
}

// New builds a Ship. Metadata is required; locator and image may be empty.
func New(meta *Metadata, locator string, image Image) (*Ship, error) {
	if meta == nil {
		return nil, errors.NewValidationError("metadata", nil, "metadata is required")
	}
	return &Ship{metadata: meta.clone(), locator: locator, image: image}, nil
}

// Metadata returns a copy of the ship's metadata.
func (s *Ship) Metadata() Metadata {
	return s.metadata.clone()
}

// Name returns the ship's display name.
func (s *Ship) Name() string {
	return s.metadata.Name
}

// Tags returns a copy of the ship's tags.
func (s *Ship) Tags() []string {
	return append([]string(nil), s.metadata.Tags...)
}

// Locator returns the remote folder URL, or "" when unknown.
func (s *Ship) Locator() string {
	return s.locator
}

// Image returns the ship's preview image.
func (s *Ship) Image() Image {
	return s.image
}

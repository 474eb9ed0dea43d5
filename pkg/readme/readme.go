// Package readme writes a readme.md next to a local ship.yaml, the way ship
// folders are presented in a repository's web view.
package readme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/agentstation/shipyard/internal/fsx"
	"github.com/agentstation/shipyard/pkg/constants"
	pkgerrors "github.com/agentstation/shipyard/pkg/errors"
	"github.com/agentstation/shipyard/pkg/logging"
	"github.com/agentstation/shipyard/pkg/ships"
)

// Generate reads the ship.yaml at yamlPath and writes readme.md into the
// same directory, replacing any previous one. It returns the readme path.
func Generate(yamlPath string) (string, error) {
	data, err := os.ReadFile(yamlPath)
	if err != nil {
		return "", pkgerrors.WrapIO("read", yamlPath, err)
	}
	meta, err := ships.ParseMetadata(data)
	if err != nil {
		return "", err
	}

	dir := filepath.Dir(yamlPath)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", pkgerrors.WrapIO("read", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if err := fsx.WriteFileReplace(dir, constants.ReadmeFileName, []byte(Render(meta, ships.PickImage(names)))); err != nil {
		return "", pkgerrors.WrapIO("write", filepath.Join(dir, constants.ReadmeFileName), err)
	}
	out := filepath.Join(dir, constants.ReadmeFileName)
	logging.Debug().Str("path", out).Msg("Generated readme")
	return out, nil
}

// GenerateAll runs Generate for every <dir>/ship.yaml directly under
// shipsDir. Folders without a ship.yaml are ignored; other failures are
// collected and returned together.
func GenerateAll(shipsDir string) ([]string, error) {
	entries, err := os.ReadDir(shipsDir)
	if err != nil {
		return nil, pkgerrors.WrapIO("read", shipsDir, err)
	}

	var written []string
	var errs []error
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		yamlPath := filepath.Join(shipsDir, e.Name(), constants.MetadataFileName)
		if _, err := os.Stat(yamlPath); errors.Is(err, os.ErrNotExist) {
			continue
		}
		out, err := Generate(yamlPath)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", e.Name(), err))
			continue
		}
		written = append(written, out)
	}
	return written, errors.Join(errs...)
}

// Render returns the readme body for meta. Missing author and version
// fields render as "unknown".
func Render(meta *ships.Metadata, image string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "![](%s)\n", image)
	fmt.Fprintf(&b, "# %s\n", meta.Name)
	fmt.Fprintf(&b, "%s\n\n", meta.Description)
	for _, tag := range meta.Tags {
		fmt.Fprintf(&b, "- %s\n", tag)
	}
	b.WriteString("\n```\n")
	fmt.Fprintf(&b, "author: %s\n", orUnknown(meta.Author))
	fmt.Fprintf(&b, "version: %s\n", orUnknown(meta.Version.String()))
	fmt.Fprintf(&b, "game_version: %s\n", orUnknown(meta.GameVersion.String()))
	b.WriteString("```\n")
	return b.String()
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}

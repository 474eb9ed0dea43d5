package ships

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/agentstation/shipyard/internal/fsx"
	"github.com/agentstation/shipyard/pkg/constants"
	"github.com/agentstation/shipyard/pkg/errors"
	"github.com/agentstation/shipyard/pkg/logging"
)

// Materialize downloads the ship's remote folder into a new directory
// under dest and returns that directory. The directory is named after the
// remote folder; when the name is taken, "(1)", "(2)", ... is appended.
//
// An empty remote listing is not an error: nothing is created and the
// returned path is "".
func (s *Ship) Materialize(ctx context.Context, src Source, dest string) (string, error) {
	if s.locator == "" {
		return "", errors.NewValidationError("locator", "", "ship has no remote folder")
	}
	logger := logging.FromContext(logging.WithShip(ctx, s.Name()))

	files, err := src.List(ctx, s.locator)
	if err != nil {
		return "", errors.WrapResource("list", "ship", s.Name(), err)
	}
	if len(files) == 0 {
		logger.Debug().Str("locator", s.locator).Msg("Remote folder is empty, nothing to download")
		return "", nil
	}

	if err := os.MkdirAll(dest, constants.DirPermissions); err != nil {
		return "", errors.WrapIO("create", dest, err)
	}
	dir, err := fsx.UniqueDir(dest, remoteFolderName(files[0].Path))
	if err != nil {
		return "", errors.WrapIO("create", dest, err)
	}

	for _, f := range files {
		name := filepath.Base(f.Name)
		if f.IsDir() || f.DownloadURL == "" || name == "." || name == ".." || name == string(filepath.Separator) {
			logger.Warn().Str("file", f.Name).Str("type", f.Type).Msg("Skipping entry without downloadable content")
			continue
		}

		data, err := src.Download(ctx, f.DownloadURL)
		if err != nil {
			return dir, errors.WrapResource("download", "file", f.Path, err)
		}
		if err := fsx.WriteFileNoOverwrite(dir, name, data); err != nil {
			return dir, errors.WrapIO("write", filepath.Join(dir, name), err)
		}
		logger.Debug().Str("file", name).Int("bytes", len(data)).Msg("Wrote file")
	}

	logger.Info().Str("path", dir).Int("files", len(files)).Msg("Ship downloaded")
	return dir, nil
}

// remoteFolderName extracts <folder> from "ships/<folder>/<file>". Paths
// without a second segment fall back to their parent directory name.
func remoteFolderName(p string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	if len(segments) >= 2 && segments[1] != "" {
		return segments[1]
	}
	if parent := path.Base(path.Dir(p)); parent != "." && parent != "/" {
		return parent
	}
	return "ship"
}

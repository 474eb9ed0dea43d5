package shipyard

import (
	"context"
	"path"

	"golang.org/x/sync/errgroup"

	"github.com/agentstation/shipyard/internal/github"
	"github.com/agentstation/shipyard/pkg/constants"
	"github.com/agentstation/shipyard/pkg/errors"
	"github.com/agentstation/shipyard/pkg/logging"
	"github.com/agentstation/shipyard/pkg/ships"
)

// Sync runs one pass over every configured repository in order and swaps
// the collected ships in as the new catalog, even when some repositories or
// folders failed. If ctx ends before the pass completes, the previous catalog
// is kept and the result is marked Interrupted.
func (c *client) Sync(ctx context.Context) *Result {
	if ctx == nil {
		ctx = context.Background()
	}
	result := newResult()
	ctx = logging.WithRunID(ctx, result.ID.String())
	log := logging.FromContext(ctx)

	log.Info().Strs("repositories", c.options.repositories).Msg("Starting ship synchronization")

	var collected []*ships.Ship
	for _, id := range c.options.repositories {
		repoShips, rr, skipped := c.syncRepository(ctx, id)
		collected = append(collected, repoShips...)
		result.addRepository(rr, skipped)
	}

	if err := ctx.Err(); err != nil {
		result.Interrupted = true
		log.Warn().Err(err).Msg("Synchronization interrupted, keeping previous catalog")
	} else {
		c.setCatalog(ships.NewCatalog(collected))
	}
	result.finish()

	log.Info().
		Int("ships", result.Ships).
		Int("skipped", len(result.Skipped)).
		Bool("rate_limited", result.RateLimited).
		Bool("interrupted", result.Interrupted).
		Dur("duration", result.Duration).
		Msg("Ship synchronization finished")

	c.hooks.triggerSyncFinished(result)
	return result
}

// syncRepository collects the ships of one repository in listing order.
func (c *client) syncRepository(ctx context.Context, id string) ([]*ships.Ship, RepositoryResult, []SkippedFolder) {
	ctx = logging.WithRepository(ctx, id)
	log := logging.FromContext(ctx)
	rr := RepositoryResult{ID: id}

	if _, err := c.github.Repository(ctx, id); err != nil {
		rr.Err = errors.WrapResource("resolve", "repository", id, err)
		log.Error().Err(err).Bool("rate_limited", errors.IsRateLimited(err)).Msg("Skipping repository")
		return nil, rr, nil
	}

	entries, err := c.github.Contents(ctx, id, constants.ShipsPath)
	if err != nil {
		rr.Err = errors.WrapResource("list", "repository", id, err)
		log.Error().Err(err).Bool("rate_limited", errors.IsRateLimited(err)).Msg("Skipping repository")
		return nil, rr, nil
	}

	var folders []github.Content
	for _, e := range entries {
		if e.Type == "dir" {
			folders = append(folders, e)
		}
	}

	slots := make([]*ships.Ship, len(folders))
	failures := make([]error, len(folders))

	var g errgroup.Group
	g.SetLimit(c.options.concurrency)
	for i, folder := range folders {
		g.Go(func() error {
			slots[i], failures[i] = c.fetchShip(logging.WithShip(ctx, folder.Name), folder)
			return nil
		})
	}
	_ = g.Wait()

	var out []*ships.Ship
	var skipped []SkippedFolder
	for i, folder := range folders {
		if failures[i] != nil {
			log.Warn().Err(failures[i]).Str("ship", folder.Name).Msg("Skipping ship folder")
			skipped = append(skipped, SkippedFolder{Repository: id, Folder: folder.Name, Err: failures[i]})
			continue
		}
		out = append(out, slots[i])
	}

	rr.Ships = len(out)
	rr.Skipped = len(skipped)
	log.Debug().Int("ships", rr.Ships).Int("skipped", rr.Skipped).Msg("Repository synchronized")
	return out, rr, skipped
}

// fetchShip builds the record for one ship folder. The preview image is the
// last .png or .jpg in the listing and is downloaded eagerly.
func (c *client) fetchShip(ctx context.Context, folder github.Content) (*ships.Ship, error) {
	files, err := c.github.List(ctx, folder.URL)
	if err != nil {
		return nil, errors.WrapResource("list", "ship", folder.Path, err)
	}

	var imageFile, metaFile *ships.File
	for i := range files {
		f := &files[i]
		if f.IsDir() {
			continue
		}
		if ships.IsImageFile(f.Name) {
			imageFile = f
		}
		if f.Name == constants.MetadataFileName {
			metaFile = f
		}
	}

	var image ships.Image
	if imageFile != nil && imageFile.DownloadURL != "" {
		data, err := c.github.Download(ctx, imageFile.DownloadURL)
		if err != nil {
			return nil, errors.WrapResource("download", "image", imageFile.Path, err)
		}
		image = ships.NewImage(imageFile.Name, data)
	}

	if metaFile == nil || metaFile.DownloadURL == "" {
		return nil, errors.NewNotFoundError("file", path.Join(folder.Path, constants.MetadataFileName))
	}
	data, err := c.github.Download(ctx, metaFile.DownloadURL)
	if err != nil {
		return nil, errors.WrapResource("download", "metadata", metaFile.Path, err)
	}
	if len(data) > constants.MaxMetadataSize {
		return nil, errors.NewValidationError("metadata", len(data), "ship.yaml is too large")
	}

	meta, err := ships.ParseMetadata(data)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Debug().Str("name", meta.Name).Bool("image", image.Present()).Msg("Fetched ship")
	return ships.New(meta, folder.URL, image)
}

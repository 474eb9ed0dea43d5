package cmdutil

import (
	"context"
	"io"

	"github.com/agentstation/shipyard"
	"github.com/agentstation/shipyard/internal/appcontext"
	"github.com/agentstation/shipyard/internal/cmd/alerts"
	"github.com/agentstation/shipyard/internal/cmd/output"
	"github.com/agentstation/shipyard/pkg/errors"
	"github.com/agentstation/shipyard/pkg/ships"
)

// ErrRateLimited is returned by commands whose pass GitHub rate limited.
var ErrRateLimited = errors.WrapResource("sync", "catalog", "", errors.ErrRateLimited)

// SyncCatalog runs one pass and returns the catalog it produced. A rate
// limited pass is reported on stderr and its partial catalog still returned.
func SyncCatalog(ctx context.Context, app appcontext.Interface, stderr io.Writer) (ships.Catalog, *shipyard.Result, error) {
	client, err := app.Client()
	if err != nil {
		return ships.Catalog{}, nil, err
	}

	result := client.Sync(ctx)
	app.Logger().Debug().
		Str("run_id", result.ID.String()).
		Int("ships", result.Ships).
		Msg(result.Summary())

	if result.RateLimited {
		if err := NoticeWriter(stderr, app).Write(alerts.RateLimited()); err != nil {
			return client.Catalog(), result, err
		}
	}

	return client.Catalog(), result, nil
}

// NoticeWriter returns the writer used for human-facing warnings. They are
// always text, whatever the output format, so piped json stays parseable.
func NoticeWriter(w io.Writer, app appcontext.Interface) *alerts.Writer {
	return alerts.NewWriter(w, output.FormatTable, app.NoColor())
}

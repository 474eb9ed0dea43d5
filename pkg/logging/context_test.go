package logging_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/shipyard/pkg/logging"
)

func TestFromContext(t *testing.T) {
	t.Run("falls back to default", func(t *testing.T) {
		assert.NotNil(t, logging.FromContext(context.Background()))
		assert.NotNil(t, logging.FromContext(nil))
	})

	t.Run("nil logger stores default", func(t *testing.T) {
		ctx := logging.WithLogger(context.Background(), nil)
		assert.NotNil(t, logging.FromContext(ctx))
	})
}

func TestWithError(t *testing.T) {
	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)

	assert.Equal(t, ctx, logging.WithError(ctx, nil))

	ctx = logging.WithError(ctx, errors.New("status 403"))
	logging.FromContext(ctx).Warn().Msg("repository skipped")
	assert.True(t, tl.ContainsAll(`"error":"status 403"`, "repository skipped"))
}

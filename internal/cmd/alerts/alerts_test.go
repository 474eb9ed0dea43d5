package alerts

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/shipyard"
	"github.com/agentstation/shipyard/internal/cmd/output"
	"github.com/agentstation/shipyard/pkg/constants"
)

func TestAlertString(t *testing.T) {
	assert.Equal(t, "✓ done", NewSuccess("done").String())
	assert.Equal(t, "✗ failed: boom", NewError("failed").WithError(errors.New("boom")).String())
	assert.Equal(t, "! careful", NewWarning("careful").String())
	assert.Equal(t, "i note", NewInfo("note").String())
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "warning", LevelWarning.String())
	assert.Equal(t, "unknown(9)", Level(9).String())
	assert.Equal(t, SymbolUnknown, Level(9).Icon())
}

func TestWriterText(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, output.FormatTable, true)

	require.NoError(t, w.Write(NewWarning("2 ships").WithDetails("skipped org/repo/empty")))

	assert.Equal(t, "! 2 ships\n   skipped org/repo/empty\n", buf.String())
}

func TestWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, output.FormatJSON, false)

	require.NoError(t, w.Write(NewError("sync failed").WithError(errors.New("forbidden"))))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "error", got["level"])
	assert.Equal(t, "sync failed", got["message"])
	assert.Equal(t, "forbidden", got["error"])
}

func TestRenderNoColor(t *testing.T) {
	w := NewWriter(&bytes.Buffer{}, output.FormatTable, true)
	assert.Equal(t, "carrier", w.Render(w.Style().Foreground(Accent).Bold(true), "carrier"))
}

func TestRateLimited(t *testing.T) {
	a := RateLimited()
	assert.Equal(t, LevelWarning, a.Level)
	assert.Equal(t, constants.ErrMsgRateLimited, a.Message)
}

func TestForResult(t *testing.T) {
	r := &shipyard.Result{
		Ships:        1,
		Repositories: []shipyard.RepositoryResult{{ID: "org/one", Ships: 1, Skipped: 1}, {ID: "org/two", Err: errors.New("not found")}},
		Skipped:      []shipyard.SkippedFolder{{Repository: "org/one", Folder: "empty", Err: errors.New("no ship.yaml")}},
		Success:      true,
	}

	a := ForResult(r, true)
	assert.Equal(t, LevelSuccess, a.Level)
	assert.Equal(t, r.Summary(), a.Message)
	assert.Equal(t, []string{"org/two: not found", "skipped org/one/empty: no ship.yaml"}, a.Details)

	assert.Empty(t, ForResult(r, false).Details)

	r.Success = false
	r.Interrupted = true
	assert.Equal(t, LevelWarning, ForResult(r, false).Level)
}

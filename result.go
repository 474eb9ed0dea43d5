package shipyard

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/agentstation/shipyard/pkg/errors"
)

// Result describes one synchronization pass.
type Result struct {
	ID          uuid.UUID
	StartedAt   time.Time
	Duration    time.Duration
	Success     bool
	RateLimited bool

	// Interrupted is set when the pass's context ended before it completed.
	// The catalog is left as it was.
	Interrupted bool

	// Ships is the number of ships the pass collected.
	Ships int

	Repositories []RepositoryResult
	Skipped      []SkippedFolder
}

// RepositoryResult is the outcome for one repository. Err is set when the
// repository itself could not be resolved or listed.
type RepositoryResult struct {
	ID      string
	Ships   int
	Skipped int
	Err     error
}

// SkippedFolder records a ship folder that contributed nothing.
type SkippedFolder struct {
	Repository string
	Folder     string
	Err        error
}

func newResult() *Result {
	return &Result{ID: uuid.New(), StartedAt: time.Now()}
}

func (r *Result) addRepository(rr RepositoryResult, skipped []SkippedFolder) {
	r.Repositories = append(r.Repositories, rr)
	r.Skipped = append(r.Skipped, skipped...)
	r.Ships += rr.Ships

	if errors.IsRateLimited(rr.Err) {
		r.RateLimited = true
	}
	for _, s := range skipped {
		if errors.IsRateLimited(s.Err) {
			r.RateLimited = true
		}
	}
}

func (r *Result) finish() {
	r.Duration = time.Since(r.StartedAt)
	r.Success = !r.RateLimited && !r.Interrupted
}

// Failed returns the repositories that could not be synchronized.
func (r *Result) Failed() []RepositoryResult {
	var out []RepositoryResult
	for _, rr := range r.Repositories {
		if rr.Err != nil {
			out = append(out, rr)
		}
	}
	return out
}

// Summary returns a one-line description of the pass.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d ships from %d repositories", r.Ships, len(r.Repositories))
	if n := len(r.Skipped); n > 0 {
		fmt.Fprintf(&b, ", %d skipped", n)
	}
	if n := len(r.Failed()); n > 0 {
		fmt.Fprintf(&b, ", %d repositories failed", n)
	}
	if r.RateLimited {
		b.WriteString(", rate limited")
	}
	if r.Interrupted {
		b.WriteString(", interrupted")
	}
	fmt.Fprintf(&b, " in %s", r.Duration.Round(time.Millisecond))
	return b.String()
}

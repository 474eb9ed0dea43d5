package output

import (
	"strconv"
	"strings"
	"time"

	"github.com/agentstation/shipyard"
	"github.com/agentstation/shipyard/pkg/constants"
	"github.com/agentstation/shipyard/pkg/ships"
)

// ShipView is the serialized form of a ship in json and yaml output. Index is
// the ship's position in the catalog, usable wherever a ship reference is
// accepted.
type ShipView struct {
	Index       int      `json:"index" yaml:"index"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags" yaml:"tags"`
	Author      string   `json:"author,omitempty" yaml:"author,omitempty"`
	Version     string   `json:"version,omitempty" yaml:"version,omitempty"`
	GameVersion string   `json:"game_version,omitempty" yaml:"game_version,omitempty"`
	Image       string   `json:"image,omitempty" yaml:"image,omitempty"`
	ImageSize   int      `json:"image_size,omitempty" yaml:"image_size,omitempty"`
	Locator     string   `json:"locator,omitempty" yaml:"locator,omitempty"`
}

// NewShipView builds the view of s at catalog position index.
func NewShipView(index int, s *ships.Ship) ShipView {
	meta := s.Metadata()
	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}
	image := s.Image()
	return ShipView{
		Index:       index,
		Name:        meta.Name,
		Description: meta.Description,
		Tags:        tags,
		Author:      meta.Author,
		Version:     meta.Version.String(),
		GameVersion: meta.GameVersion.String(),
		Image:       image.Name(),
		ImageSize:   image.Size(),
		Locator:     s.Locator(),
	}
}

// ShipViews builds views for list, taking each ship's index from cat. Ships
// that are not in cat get index -1.
func ShipViews(cat ships.Catalog, list []*ships.Ship) []ShipView {
	positions := make(map[*ships.Ship]int, cat.Len())
	for i, s := range cat.List() {
		positions[s] = i
	}

	views := make([]ShipView, 0, len(list))
	for _, s := range list {
		index, ok := positions[s]
		if !ok {
			index = -1
		}
		views = append(views, NewShipView(index, s))
	}
	return views
}

// ShipsToTableData converts ship views to table format.
func ShipsToTableData(views []ShipView) Data {
	headers := []string{"#", "NAME", "TAGS", "AUTHOR", "VERSION", "GAME VERSION", "IMAGE"}

	rows := make([][]string, 0, len(views))
	for _, v := range views {
		image := "-"
		if v.Image != "" {
			image = v.Image
		}
		rows = append(rows, []string{
			strconv.Itoa(v.Index),
			v.Name,
			Truncate(strings.Join(v.Tags, ", "), constants.MaxDescriptionWidth),
			dash(v.Author),
			dash(v.Version),
			dash(v.GameVersion),
			image,
		})
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignDefault, AlignDefault, AlignDefault, AlignCenter, AlignCenter, AlignDefault},
	}
}

// Truncate shortens s to at most width runes, marking the cut with "...".
func Truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// ResultView is the serialized form of a synchronization pass.
type ResultView struct {
	ID           string           `json:"id" yaml:"id"`
	StartedAt    string           `json:"started_at" yaml:"started_at"`
	Duration     string           `json:"duration" yaml:"duration"`
	Success      bool             `json:"success" yaml:"success"`
	RateLimited  bool             `json:"rate_limited" yaml:"rate_limited"`
	Interrupted  bool             `json:"interrupted,omitempty" yaml:"interrupted,omitempty"`
	Ships        int              `json:"ships" yaml:"ships"`
	Repositories []RepositoryView `json:"repositories" yaml:"repositories"`
	Skipped      []SkippedView    `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// RepositoryView is one repository's outcome within a ResultView.
type RepositoryView struct {
	ID      string `json:"id" yaml:"id"`
	Ships   int    `json:"ships" yaml:"ships"`
	Skipped int    `json:"skipped" yaml:"skipped"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// SkippedView is a skipped folder within a ResultView.
type SkippedView struct {
	Repository string `json:"repository" yaml:"repository"`
	Folder     string `json:"folder" yaml:"folder"`
	Error      string `json:"error" yaml:"error"`
}

// NewResultView builds the view of r.
func NewResultView(r *shipyard.Result) ResultView {
	view := ResultView{
		ID:           r.ID.String(),
		StartedAt:    r.StartedAt.UTC().Format(time.RFC3339),
		Duration:     r.Duration.Round(time.Millisecond).String(),
		Success:      r.Success,
		RateLimited:  r.RateLimited,
		Interrupted:  r.Interrupted,
		Ships:        r.Ships,
		Repositories: make([]RepositoryView, 0, len(r.Repositories)),
	}
	for _, rr := range r.Repositories {
		view.Repositories = append(view.Repositories, RepositoryView{
			ID:      rr.ID,
			Ships:   rr.Ships,
			Skipped: rr.Skipped,
			Error:   errorText(rr.Err),
		})
	}
	for _, s := range r.Skipped {
		view.Skipped = append(view.Skipped, SkippedView{
			Repository: s.Repository,
			Folder:     s.Folder,
			Error:      errorText(s.Err),
		})
	}
	return view
}

func errorText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

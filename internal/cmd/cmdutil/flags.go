// Package cmdutil provides shared flags for shipyard commands.
package cmdutil

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/shipyard/pkg/ships"
)

// FilterFlags holds flags that narrow a ship listing.
type FilterFlags struct {
	Search string
	Author string
	Tag    string
	Limit  int
}

// AddFilterFlags adds listing filter flags to a command.
func AddFilterFlags(cmd *cobra.Command) *FilterFlags {
	flags := &FilterFlags{}

	cmd.Flags().StringVarP(&flags.Search, "search", "s", "",
		"Search term matched against ship names and tags")
	cmd.Flags().StringVar(&flags.Author, "author", "",
		"Only ships by this author")
	cmd.Flags().StringVar(&flags.Tag, "tag", "",
		"Only ships carrying this exact tag")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}

// Apply filters cat with the configured flags, keeping catalog order.
func (f *FilterFlags) Apply(cat ships.Catalog) []*ships.Ship {
	list := cat.Search(f.Search)

	filtered := list[:0:0]
	for _, s := range list {
		if f.Author != "" && !strings.EqualFold(s.Metadata().Author, f.Author) {
			continue
		}
		if f.Tag != "" && !hasTag(s, f.Tag) {
			continue
		}
		filtered = append(filtered, s)
	}

	if f.Limit > 0 && len(filtered) > f.Limit {
		filtered = filtered[:f.Limit]
	}
	return filtered
}

func hasTag(s *ships.Ship, tag string) bool {
	for _, t := range s.Tags() {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

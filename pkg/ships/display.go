package ships

import (
	"fmt"
	"strings"
)

// TagLine returns the ship's tags joined with ", ".
func TagLine(s *Ship) string {
	if s == nil {
		return ""
	}
	return strings.Join(s.metadata.Tags, ", ")
}

// DisplayText renders the ship's detail block. Missing fields render as
// empty strings and a nil ship renders as "".
func DisplayText(s *Ship) string {
	if s == nil {
		return ""
	}
	m := s.metadata
	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n\nAuthor: %s\nVersion: %s\nMade for game version: %s",
		m.Name, TagLine(s), m.Description, m.Author, m.Version, m.GameVersion)
}

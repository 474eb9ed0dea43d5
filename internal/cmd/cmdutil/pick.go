package cmdutil

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/agentstation/shipyard/internal/cmd/alerts"
	"github.com/agentstation/shipyard/pkg/errors"
	"github.com/agentstation/shipyard/pkg/ships"
)

// Interactive reports whether both stdin and stdout are terminals.
func Interactive() bool {
	return isTerminal(os.Stdin) && isTerminal(os.Stdout)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// PickShip resolves the optional ship reference in args. Without one, an
// interactive session chooses from the catalog and anything else fails.
func PickShip(cat ships.Catalog, args []string, interactive bool) (*ships.Ship, error) {
	if len(args) > 0 {
		return cat.Lookup(args[0])
	}
	if !interactive {
		return nil, errors.NewValidationError("ship", nil, "a ship name or index is required")
	}
	if cat.Len() == 0 {
		return nil, errors.NewNotFoundError("ship", "in an empty catalog")
	}

	options := make([]huh.Option[int], 0, cat.Len())
	for i, s := range cat.List() {
		options = append(options, huh.NewOption(pickLabel(s), i))
	}

	theme := huh.ThemeCharm()
	theme.Focused.Title = theme.Focused.Title.Foreground(alerts.Accent)

	var index int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Choose a ship").
				Options(options...).
				Value(&index),
		),
	).WithTheme(theme)

	if err := form.Run(); err != nil {
		return nil, err
	}

	s, ok := cat.Get(index)
	if !ok {
		return nil, errors.NewNotFoundError("ship", fmt.Sprint(index))
	}
	return s, nil
}

func pickLabel(s *ships.Ship) string {
	if tags := ships.TagLine(s); tags != "" {
		return fmt.Sprintf("%s (%s)", s.Name(), tags)
	}
	return s.Name()
}

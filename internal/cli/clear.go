package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/Makepad-fr/focusdash/internal/record"
	"github.com/Makepad-fr/focusdash/internal/ui"
)

type ClearCmd struct {
	Yes bool `short:"y" help:"Do not ask for confirmation"`
}

func (c *ClearCmd) Run(g *Global) error {
	if !c.Yes && !confirm(g, record.ClearConfirmation) {
		ui.Hint(g.Stdout, "cancelled, nothing was changed")
		return nil
	}
	if err := g.Store.ClearAll(g.Ctx); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	ui.OK(g.Stdout, "All data has been cleared. Sample data will be shown until you add your own.")
	return nil
}

// confirm asks a yes/no question on stdin; anything but y/yes is no.
func confirm(g *Global, question string) bool {
	if g.Stdin == nil {
		return false
	}
	fmt.Fprintf(g.Stdout, "%s [y/N] ", question)
	line, err := bufio.NewReader(g.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

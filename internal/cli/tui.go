package cli

import (
	"github.com/Makepad-fr/focusdash/internal/logging"
	"github.com/Makepad-fr/focusdash/internal/store/jsonstore"
	"github.com/Makepad-fr/focusdash/internal/tui"
	"github.com/Makepad-fr/focusdash/internal/watch"
)

type TUICmd struct{}

func (c *TUICmd) Run(g *Global) error {
	opt := tui.Options{
		Store: g.Store,
		Timer: g.NewTimer(),
		Clock: g.Clock,
		Log:   g.Log,
	}

	// Pick up writes made by other dash processes to the same file.
	if js, ok := g.Medium.(*jsonstore.Store); ok && g.Config.WatchEnabled() {
		w, err := watch.New(js.Path(), g.Log)
		if err != nil {
			g.Log.Warn("File watching disabled", logging.Path(js.Path()), logging.Err(err))
		} else {
			defer w.Close()
			opt.Changes = w.Changes()
		}
	}
	return tui.Run(g.Ctx, opt)
}

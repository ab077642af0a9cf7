// Package bringup interprets a declarative session layout against a tmux
// client, issuing create/select/split/send/rename/attach operations
// strictly in order.
package bringup

import (
	"fmt"

	"github.com/v4r-tuwien/verefine-bringup/internal/errors"
	"github.com/v4r-tuwien/verefine-bringup/internal/layout"
	"github.com/v4r-tuwien/verefine-bringup/internal/tmux"
)

// Options control session bringup behavior.
type Options struct {
	// KillExisting destroys a same-named session before creating the new
	// one. Without it bringup fails cleanly on a name collision.
	KillExisting bool
	// Attach connects the invoking terminal to the session after bringup,
	// blocking until the user detaches.
	Attach bool
}

// Executor runs session bringups against an injectable tmux client.
type Executor struct {
	client  tmux.Client
	handler errors.ErrorHandler
}

// NewExecutor creates an executor with the default CLI error handler.
func NewExecutor(client tmux.Client) *Executor {
	return NewExecutorWithHandler(client, errors.NewDefaultCLIHandler())
}

// NewExecutorWithHandler creates an executor with a custom error handler.
func NewExecutorWithHandler(client tmux.Client, handler errors.ErrorHandler) *Executor {
	if client == nil {
		panic("NewExecutor: client dependency cannot be nil")
	}
	if handler == nil {
		panic("NewExecutor: handler dependency cannot be nil")
	}
	return &Executor{client: client, handler: handler}
}

// Up brings up the session described by l: create the detached session,
// apply options, create windows and panes, inject every step in order,
// apply the final selection and rename, and optionally attach.
//
// Any failing operation aborts the bringup with a wrapped error; the one
// deliberate exception is a final pane selection that is out of range,
// which is reported as a warning and skipped.
func (e *Executor) Up(l layout.Layout, opts Options) error {
	if err := l.Validate(); err != nil {
		return err
	}

	exists, err := e.client.HasSession(l.SessionName)
	if err != nil {
		return fmt.Errorf("bringup: %w", err)
	}
	if exists {
		if !opts.KillExisting {
			return fmt.Errorf("bringup: session %s: %w", l.SessionName, tmux.ErrSessionExists)
		}
		e.handler.Warning(fmt.Sprintf("killing existing session %s", l.SessionName))
		if err := e.client.KillSession(l.SessionName); err != nil {
			return fmt.Errorf("bringup: %w", err)
		}
	}

	if err := e.client.NewSession(l.SessionName); err != nil {
		return fmt.Errorf("bringup: %w", err)
	}

	if l.Mouse {
		if err := e.client.SetGlobalOption("mouse", "on"); err != nil {
			return fmt.Errorf("bringup: %w", err)
		}
	}

	if err := e.createWindows(l); err != nil {
		return err
	}

	for wi, w := range l.Windows {
		if err := e.populateWindow(l.SessionName, wi, w); err != nil {
			return err
		}
	}

	if err := e.applyFinalSelection(l); err != nil {
		return err
	}

	if opts.Attach {
		if err := e.client.AttachSession(l.SessionName); err != nil {
			return fmt.Errorf("bringup: %w", err)
		}
	}
	return nil
}

// createWindows creates the windows beyond the session's default window 0
// and applies any window names the layout declares.
func (e *Executor) createWindows(l layout.Layout) error {
	for wi, w := range l.Windows {
		if wi == 0 {
			if w.Name != "" {
				if err := e.client.RenameWindow(l.SessionName, 0, w.Name); err != nil {
					return fmt.Errorf("bringup: %w", err)
				}
			}
			continue
		}
		if err := e.client.NewWindow(l.SessionName, w.Name); err != nil {
			return fmt.Errorf("bringup: %w", err)
		}
	}
	return nil
}

// populateWindow selects a window, splits it into the declared number of
// panes, and injects every pane's steps in order.
func (e *Executor) populateWindow(session string, wi int, w layout.Window) error {
	if err := e.client.SelectWindow(session, wi); err != nil {
		return fmt.Errorf("bringup: %w", err)
	}
	for pi := 1; pi < len(w.Panes); pi++ {
		if err := e.client.SplitWindowHorizontal(session, wi); err != nil {
			return fmt.Errorf("bringup: %w", err)
		}
	}
	for pi, p := range w.Panes {
		for si, s := range p.Steps {
			if err := e.inject(session, wi, pi, s); err != nil {
				return fmt.Errorf("bringup: window %d pane %d step %d: %w", wi, pi, si, err)
			}
		}
	}
	return nil
}

// inject performs a single step: a bare Enter keypress or a literal text
// injection, submitted or not.
func (e *Executor) inject(session string, window, pane int, s layout.Step) error {
	if s.IsEnterOnly() {
		return e.client.SendEnter(session, window, pane)
	}
	return e.client.SendKeys(session, window, pane, s.Keys, s.Submit)
}

// applyFinalSelection selects the layout's final window, selects the final
// pane when it exists, and applies the window rename. A final pane index
// beyond the window's pane count is a warned no-op rather than an error.
func (e *Executor) applyFinalSelection(l layout.Layout) error {
	sel := l.FinalSelection
	if err := e.client.SelectWindow(l.SessionName, sel.Window); err != nil {
		return fmt.Errorf("bringup: %w", err)
	}
	if sel.Pane >= 0 {
		if sel.Pane < len(l.Windows[sel.Window].Panes) {
			if err := e.client.SelectPane(l.SessionName, sel.Window, sel.Pane); err != nil {
				return fmt.Errorf("bringup: %w", err)
			}
		} else {
			e.handler.Warning(fmt.Sprintf(
				"final selection: pane %d does not exist in window %d (%d panes), skipping",
				sel.Pane, sel.Window, len(l.Windows[sel.Window].Panes)))
		}
	}
	if l.RenameTo != "" {
		if err := e.client.RenameWindow(l.SessionName, sel.Window, l.RenameTo); err != nil {
			return fmt.Errorf("bringup: %w", err)
		}
	}
	return nil
}

// Down destroys the named session.
func (e *Executor) Down(session string) error {
	exists, err := e.client.HasSession(session)
	if err != nil {
		return fmt.Errorf("teardown: %w", err)
	}
	if !exists {
		return fmt.Errorf("teardown: session %s: %w", session, tmux.ErrSessionNotFound)
	}
	if err := e.client.KillSession(session); err != nil {
		return fmt.Errorf("teardown: %w", err)
	}
	return nil
}

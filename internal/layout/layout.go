// Package layout defines the declarative session layout descriptor: a
// session holds ordered windows, each window ordered panes, each pane an
// ordered list of key-injection steps interpreted by the bringup executor.
package layout

import (
	"fmt"
)

// Step is a single key injection into a pane. Keys is the literal text to
// inject; Submit appends an Enter keypress in the same injection. A Step
// with empty Keys and Submit true is a detached Enter keypress.
type Step struct {
	Keys   string `toml:"keys"`
	Submit bool   `toml:"submit"`
}

// IsEnterOnly reports whether the step is a bare Enter keypress.
func (s Step) IsEnterOnly() bool {
	return s.Keys == "" && s.Submit
}

// Pane is a pseudo-terminal viewport receiving an ordered list of steps.
type Pane struct {
	Steps []Step `toml:"steps"`
}

// Window is a tab-like subdivision of a session. The first pane exists
// implicitly; each additional pane adds a horizontal split.
type Window struct {
	Name  string `toml:"name,omitempty"`
	Panes []Pane `toml:"panes"`
}

// Selection addresses a window and optionally a pane within it.
// A Pane of -1 means no pane selection.
type Selection struct {
	Window int `toml:"window"`
	Pane   int `toml:"pane"`
}

// Layout is the full declarative descriptor for a session bringup.
type Layout struct {
	SessionName string   `toml:"session_name"`
	Mouse       bool     `toml:"mouse"`
	Windows     []Window `toml:"windows"`

	// FinalSelection is applied after all steps have been injected.
	FinalSelection Selection `toml:"final_selection"`
	// RenameTo, when non-empty, retitles the finally selected window.
	RenameTo string `toml:"rename_to,omitempty"`
}

// Validate checks the structural invariants of the layout. Window and pane
// indices used by steps exist by construction; only the final selection may
// reference a pane index that does not, which the executor treats as a no-op.
func (l *Layout) Validate() error {
	if l.SessionName == "" {
		return fmt.Errorf("layout: session name must not be empty")
	}
	if len(l.Windows) == 0 {
		return fmt.Errorf("layout: at least one window is required")
	}
	for wi, w := range l.Windows {
		if len(w.Panes) == 0 {
			return fmt.Errorf("layout: window %d has no panes", wi)
		}
		for pi, p := range w.Panes {
			for si, s := range p.Steps {
				if s.Keys == "" && !s.Submit {
					return fmt.Errorf("layout: window %d pane %d step %d is empty", wi, pi, si)
				}
			}
		}
	}
	if l.FinalSelection.Window < 0 || l.FinalSelection.Window >= len(l.Windows) {
		return fmt.Errorf("layout: final selection references window %d, have %d windows",
			l.FinalSelection.Window, len(l.Windows))
	}
	if l.FinalSelection.Pane < -1 {
		return fmt.Errorf("layout: final selection pane index %d is invalid", l.FinalSelection.Pane)
	}
	return nil
}

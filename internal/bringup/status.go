package bringup

import (
	"fmt"

	"github.com/v4r-tuwien/verefine-bringup/internal/tmux"
)

// WindowStatus describes one window and its panes.
type WindowStatus struct {
	Index  int
	Name   string
	Active bool
	Panes  []tmux.PaneInfo
}

// SessionStatus is a snapshot of the multiplexer state for one session.
type SessionStatus struct {
	Name    string
	Exists  bool
	Windows []WindowStatus
}

// Status queries the tmux server for the named session's windows and panes.
// A missing session yields Exists=false without an error.
func (e *Executor) Status(session string) (SessionStatus, error) {
	status := SessionStatus{Name: session}

	exists, err := e.client.HasSession(session)
	if err != nil {
		return status, fmt.Errorf("status: %w", err)
	}
	if !exists {
		return status, nil
	}
	status.Exists = true

	windows, err := e.client.ListWindows(session)
	if err != nil {
		return status, fmt.Errorf("status: %w", err)
	}
	for _, w := range windows {
		panes, err := e.client.ListPanes(session, w.Index)
		if err != nil {
			return status, fmt.Errorf("status: %w", err)
		}
		status.Windows = append(status.Windows, WindowStatus{
			Index:  w.Index,
			Name:   w.Name,
			Active: w.Active,
			Panes:  panes,
		})
	}
	return status, nil
}

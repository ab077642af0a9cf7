// Package tmux provides a unified abstraction layer for tmux operations.
package tmux

import (
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strconv"
	"strings"

	"github.com/v4r-tuwien/verefine-bringup/internal/colors"
)

// windowTarget builds a tmux target for a window addressed by index.
func windowTarget(session string, window int) string {
	return fmt.Sprintf("%s:%d", session, window)
}

// paneTarget builds a tmux target for a pane addressed by window and pane index.
func paneTarget(session string, window, pane int) string {
	return fmt.Sprintf("%s:%d.%d", session, window, pane)
}

// NewSession creates a new detached session with the given name.
func (c *DefaultClient) NewSession(name string) error {
	if name == "" {
		return ErrInvalidTarget
	}
	exists, err := c.HasSession(name)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("session %s: %w", name, ErrSessionExists)
	}
	_, stderr, err := c.Run("new-session", "-d", "-s", name)
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return fmt.Errorf("create session %s: %w", name, err)
	}
	return nil
}

// HasSession checks whether a session with the given name exists.
// A missing tmux binary is reported as ErrTmuxNotRunning; a clean
// "no such session" exit is not an error.
func (c *DefaultClient) HasSession(name string) (bool, error) {
	if name == "" {
		return false, ErrInvalidTarget
	}
	_, _, err := c.runCommand("has-session", "-t", "="+name)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, exec.ErrNotFound) {
		return false, ErrTmuxNotRunning
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// tmux exits non-zero both when the session is missing and when
		// no server is running; either way the session does not exist.
		return false, nil
	}
	return false, fmt.Errorf("check session %s: %w", name, err)
}

// KillSession destroys the named session.
func (c *DefaultClient) KillSession(name string) error {
	if name == "" {
		return ErrInvalidTarget
	}
	_, stderr, err := c.Run("kill-session", "-t", "="+name)
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return fmt.Errorf("kill session %s: %w", name, err)
	}
	return nil
}

// SetGlobalOption sets a global tmux option.
func (c *DefaultClient) SetGlobalOption(name, value string) error {
	_, stderr, err := c.Run("set", "-g", name, value)
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return fmt.Errorf("set global option %s: %w", name, err)
	}
	return nil
}

// NewWindow creates a new window in the named session. An empty window
// name lets tmux pick the default title.
func (c *DefaultClient) NewWindow(session, name string) error {
	args := []string{"new-window", "-t", session}
	if name != "" {
		args = append(args, "-n", name)
	}
	_, stderr, err := c.Run(args...)
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return fmt.Errorf("create window in session %s: %w", session, err)
	}
	return nil
}

// SelectWindow makes the given window index the active one.
func (c *DefaultClient) SelectWindow(session string, window int) error {
	target := windowTarget(session, window)
	_, stderr, err := c.Run("select-window", "-t", target)
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return fmt.Errorf("select window %s: %w", target, err)
	}
	return nil
}

// SplitWindowHorizontal splits the given window into a left and right pane.
func (c *DefaultClient) SplitWindowHorizontal(session string, window int) error {
	target := windowTarget(session, window)
	_, stderr, err := c.Run("split-window", "-h", "-t", target)
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return fmt.Errorf("split window %s: %w", target, err)
	}
	return nil
}

// SelectPane makes the given pane index the active one within a window.
// Selecting a pane that does not exist returns ErrPaneNotFound.
func (c *DefaultClient) SelectPane(session string, window, pane int) error {
	target := paneTarget(session, window, pane)
	_, stderr, err := c.Run("select-pane", "-t", target)
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return fmt.Errorf("select pane %s: %w", target, ErrPaneNotFound)
	}
	return nil
}

// SendKeys injects literal text into a pane. When submit is true the text
// is terminated with an Enter keypress in the same injection.
func (c *DefaultClient) SendKeys(session string, window, pane int, keys string, submit bool) error {
	target := paneTarget(session, window, pane)
	args := []string{"send-keys", "-t", target, keys}
	if submit {
		args = append(args, "C-m")
	}
	_, stderr, err := c.Run(args...)
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return fmt.Errorf("send keys to pane %s: %w", target, err)
	}
	return nil
}

// SendEnter simulates a bare Enter keypress in a pane.
func (c *DefaultClient) SendEnter(session string, window, pane int) error {
	target := paneTarget(session, window, pane)
	_, stderr, err := c.Run("send-keys", "-t", target, "C-m")
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return fmt.Errorf("send enter to pane %s: %w", target, err)
	}
	return nil
}

// RenameWindow sets the display title of the given window.
func (c *DefaultClient) RenameWindow(session string, window int, name string) error {
	target := windowTarget(session, window)
	_, stderr, err := c.Run("rename-window", "-t", target, name)
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return fmt.Errorf("rename window %s: %w", target, err)
	}
	return nil
}

// ListWindows returns the windows of the named session in index order.
func (c *DefaultClient) ListWindows(session string) ([]WindowInfo, error) {
	stdout, stderr, err := c.Run("list-windows", "-t", "="+session, "-F", "#{window_index}\t#{window_name}\t#{window_active}")
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return nil, fmt.Errorf("list windows of session %s: %w", session, err)
	}

	var windows []WindowInfo
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		index, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		windows = append(windows, WindowInfo{
			Index:  index,
			Name:   parts[1],
			Active: parts[2] == "1",
		})
	}
	sort.Slice(windows, func(i, j int) bool { return windows[i].Index < windows[j].Index })
	return windows, nil
}

// ListPanes returns the panes of the given window in index order.
func (c *DefaultClient) ListPanes(session string, window int) ([]PaneInfo, error) {
	target := windowTarget(session, window)
	stdout, stderr, err := c.Run("list-panes", "-t", target, "-F", "#{pane_index}\t#{pane_active}\t#{pane_current_command}")
	if err != nil {
		if stderr != "" {
			colors.Debug("stderr: " + stderr)
		}
		return nil, fmt.Errorf("list panes of window %s: %w", target, err)
	}

	var panes []PaneInfo
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) != 3 {
			continue
		}
		index, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}
		panes = append(panes, PaneInfo{
			Index:   index,
			Active:  parts[1] == "1",
			Command: parts[2],
		})
	}
	sort.Slice(panes, func(i, j int) bool { return panes[i].Index < panes[j].Index })
	return panes, nil
}

// Package tmux provides a unified abstraction layer for tmux operations.
// It defines interfaces and types for interacting with tmux sessions, windows, and panes.
package tmux

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/v4r-tuwien/verefine-bringup/internal/colors"
)

// WindowInfo describes a window within a session.
type WindowInfo struct {
	Index  int
	Name   string
	Active bool
}

// PaneInfo describes a pane within a window.
type PaneInfo struct {
	Index   int
	Active  bool
	Command string
}

// Client is an interface that abstracts all tmux operations needed for
// session bringup: create/select/split/send/rename/attach, addressed by
// session name and numeric window/pane indices.
type Client interface {
	// NewSession creates a new detached session with the given name.
	NewSession(name string) error

	// HasSession checks whether a session with the given name exists.
	HasSession(name string) (bool, error)

	// KillSession destroys the named session.
	KillSession(name string) error

	// SetGlobalOption sets a global tmux option (e.g. "mouse" to "on").
	SetGlobalOption(name, value string) error

	// NewWindow creates a new window in the named session.
	NewWindow(session, name string) error

	// SelectWindow makes the given window index the active one.
	SelectWindow(session string, window int) error

	// SplitWindowHorizontal splits the given window into a left and right pane.
	SplitWindowHorizontal(session string, window int) error

	// SelectPane makes the given pane index the active one within a window.
	SelectPane(session string, window, pane int) error

	// SendKeys injects literal text into a pane. When submit is true the
	// text is terminated with an Enter keypress in the same injection.
	SendKeys(session string, window, pane int, keys string, submit bool) error

	// SendEnter simulates a bare Enter keypress in a pane.
	SendEnter(session string, window, pane int) error

	// RenameWindow sets the display title of the given window.
	RenameWindow(session string, window int, name string) error

	// ListWindows returns the windows of the named session in index order.
	ListWindows(session string) ([]WindowInfo, error)

	// ListPanes returns the panes of the given window in index order.
	ListPanes(session string, window int) ([]PaneInfo, error)

	// AttachSession attaches the invoking terminal to the named session and
	// blocks until the user detaches. Inside an existing tmux client it
	// switches the client instead.
	AttachSession(name string) error

	// Run executes a tmux command with the given arguments.
	Run(args ...string) (string, string, error)
}

// DefaultClient implements Client using exec.Command to run tmux.
type DefaultClient struct {
	socketPath string
	timeout    time.Duration
}

// NewDefaultClient creates a new DefaultClient with the given options.
func NewDefaultClient(opts ...ClientOption) *DefaultClient {
	client := &DefaultClient{
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// baseArgs returns the leading tmux arguments shared by all invocations.
func (c *DefaultClient) baseArgs() []string {
	if c.socketPath != "" {
		return []string{"-L", c.socketPath}
	}
	return nil
}

// runCommand executes a tmux command with the given arguments.
// It returns stdout, stderr, and any error that occurred.
func (c *DefaultClient) runCommand(args ...string) (string, string, error) {
	start := time.Now()
	command := ""
	if len(args) > 0 {
		command = args[0]
	}
	colors.Debug(fmt.Sprintf("tmux %s: started (%d args)", command, len(args)))
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	cmdArgs := append(c.baseArgs(), args...)

	cmd := exec.CommandContext(ctx, "tmux", cmdArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	duration := time.Since(start).Seconds()
	if err != nil {
		colors.Debug(fmt.Sprintf("tmux %s: failed after %.3fs: %v", command, duration, err))
	} else {
		colors.Debug(fmt.Sprintf("tmux %s: completed in %.3fs", command, duration))
	}
	return stdout.String(), stderr.String(), err
}

// Run executes a tmux command with the given arguments.
// It returns stdout, stderr, and any error that occurred.
func (c *DefaultClient) Run(args ...string) (string, string, error) {
	stdout, stderr, err := c.runCommand(args...)
	if err != nil {
		return stdout, stderr, fmt.Errorf("tmux command %v failed: %w", args, err)
	}
	return stdout, stderr, nil
}

// AttachSession attaches the invoking terminal to the named session.
// Unlike the other operations this inherits the caller's stdio and
// blocks until the user detaches, so it runs without a timeout.
func (c *DefaultClient) AttachSession(name string) error {
	if name == "" {
		return ErrInvalidTarget
	}

	args := c.baseArgs()
	if os.Getenv("TMUX") != "" {
		// Already inside a tmux client; nested attach is refused by tmux.
		args = append(args, "switch-client", "-t", name)
	} else {
		args = append(args, "attach-session", "-t", name)
	}

	cmd := exec.Command("tmux", args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("attach to session %s: %w", name, err)
	}
	return nil
}

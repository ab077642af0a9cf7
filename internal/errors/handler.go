// Package errors provides error handling abstractions for CLI output.
package errors

import (
	"sync"

	"github.com/v4r-tuwien/verefine-bringup/internal/colors"
)

// ErrorHandler is the interface for error handling.
// Different implementations can handle errors differently based on context.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput abstracts the colors package for testability.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler handles errors by printing to stdout/stderr using the colors package.
type CLIHandler struct {
	colors     ColorOutput
	mu         sync.Mutex
	inHandling bool
}

// NewCLIHandler creates a CLIHandler over the given color output.
func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

// NewDefaultCLIHandler creates a CLIHandler over the real colors package.
func NewDefaultCLIHandler() *CLIHandler {
	return NewCLIHandler(defaultColors{})
}

func (h *CLIHandler) Error(msg string) {
	h.mu.Lock()
	if h.inHandling {
		h.mu.Unlock()
		h.colors.Error(msg)
		return
	}
	h.inHandling = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		h.inHandling = false
		h.mu.Unlock()
	}()

	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	h.colors.Success(msg)
}

// defaultColors adapts the colors package to the ColorOutput interface.
type defaultColors struct{}

func (defaultColors) Error(msgs ...string)   { colors.Error(msgs...) }
func (defaultColors) Warning(msgs ...string) { colors.Warning(msgs...) }
func (defaultColors) Info(msgs ...string)    { colors.Info(msgs...) }
func (defaultColors) Success(msgs ...string) { colors.Success(msgs...) }

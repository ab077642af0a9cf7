package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type capturedOutput struct {
	errors   []string
	warnings []string
	infos    []string
	success  []string
}

func (c *capturedOutput) Error(msgs ...string)   { c.errors = append(c.errors, msgs...) }
func (c *capturedOutput) Warning(msgs ...string) { c.warnings = append(c.warnings, msgs...) }
func (c *capturedOutput) Info(msgs ...string)    { c.infos = append(c.infos, msgs...) }
func (c *capturedOutput) Success(msgs ...string) { c.success = append(c.success, msgs...) }

func TestCLIHandlerRoutesMessages(t *testing.T) {
	out := &capturedOutput{}
	handler := NewCLIHandler(out)

	handler.Error("e1")
	handler.Warning("w1")
	handler.Info("i1")
	handler.Success("s1")

	assert.Equal(t, []string{"e1"}, out.errors)
	assert.Equal(t, []string{"w1"}, out.warnings)
	assert.Equal(t, []string{"i1"}, out.infos)
	assert.Equal(t, []string{"s1"}, out.success)
}

func TestCLIHandlerReentrantError(t *testing.T) {
	out := &capturedOutput{}
	handler := NewCLIHandler(out)

	handler.Error("first")
	handler.Error("second")

	assert.Equal(t, []string{"first", "second"}, out.errors)
}

func TestNewDefaultCLIHandler(t *testing.T) {
	assert.NotNil(t, NewDefaultCLIHandler())
}

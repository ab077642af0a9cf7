// Package tmux provides a unified abstraction layer for tmux operations.
package tmux

import (
	"github.com/stretchr/testify/mock"
)

// MockClient is a mock implementation of Client for testing.
// It uses testify/mock to provide flexible behavior configuration and
// method call tracking for assertions.
//
// Example usage:
//
//	mockClient := new(MockClient)
//	mockClient.On("HasSession", "VEREFINE").Return(false, nil)
//	mockClient.On("NewSession", "VEREFINE").Return(nil)
//
//	err := mockClient.NewSession("VEREFINE")
//	assert.NoError(t, err)
//
//	// Assert that the method was called
//	mockClient.AssertCalled(t, "NewSession", "VEREFINE")
type MockClient struct {
	mock.Mock
}

// NewSession returns a mocked error for session creation.
func (m *MockClient) NewSession(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// HasSession returns a mocked boolean indicating if the named session exists.
func (m *MockClient) HasSession(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

// KillSession returns a mocked error for session destruction.
func (m *MockClient) KillSession(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// SetGlobalOption returns a mocked error when setting a global option.
func (m *MockClient) SetGlobalOption(name, value string) error {
	args := m.Called(name, value)
	return args.Error(0)
}

// NewWindow returns a mocked error for window creation.
func (m *MockClient) NewWindow(session, name string) error {
	args := m.Called(session, name)
	return args.Error(0)
}

// SelectWindow returns a mocked error for window selection.
func (m *MockClient) SelectWindow(session string, window int) error {
	args := m.Called(session, window)
	return args.Error(0)
}

// SplitWindowHorizontal returns a mocked error for window splitting.
func (m *MockClient) SplitWindowHorizontal(session string, window int) error {
	args := m.Called(session, window)
	return args.Error(0)
}

// SelectPane returns a mocked error for pane selection.
func (m *MockClient) SelectPane(session string, window, pane int) error {
	args := m.Called(session, window, pane)
	return args.Error(0)
}

// SendKeys returns a mocked error for key injection.
func (m *MockClient) SendKeys(session string, window, pane int, keys string, submit bool) error {
	args := m.Called(session, window, pane, keys, submit)
	return args.Error(0)
}

// SendEnter returns a mocked error for a bare Enter keypress.
func (m *MockClient) SendEnter(session string, window, pane int) error {
	args := m.Called(session, window, pane)
	return args.Error(0)
}

// RenameWindow returns a mocked error for window renaming.
func (m *MockClient) RenameWindow(session string, window int, name string) error {
	args := m.Called(session, window, name)
	return args.Error(0)
}

// ListWindows returns a mocked window list.
// Configure the return value using:
//
//	mock.On("ListWindows", "VEREFINE").Return([]WindowInfo{{Index: 0, Name: "grasping"}}, nil)
func (m *MockClient) ListWindows(session string) ([]WindowInfo, error) {
	args := m.Called(session)
	return args.Get(0).([]WindowInfo), args.Error(1)
}

// ListPanes returns a mocked pane list.
// Configure the return value using:
//
//	mock.On("ListPanes", "VEREFINE", 0).Return([]PaneInfo{{Index: 0, Active: true}}, nil)
func (m *MockClient) ListPanes(session string, window int) ([]PaneInfo, error) {
	args := m.Called(session, window)
	return args.Get(0).([]PaneInfo), args.Error(1)
}

// AttachSession returns a mocked error for attaching.
func (m *MockClient) AttachSession(name string) error {
	args := m.Called(name)
	return args.Error(0)
}

// Run returns mocked stdout, stderr, and error for a tmux command.
// Configure the return value using:
//
//	mock.On("Run", []string{"list-sessions", "-F", "#{session_name}"}).Return(
//	    "VEREFINE", "", nil)
func (m *MockClient) Run(args ...string) (string, string, error) {
	callArgs := m.Called(args)
	return callArgs.String(0), callArgs.String(1), callArgs.Error(2)
}

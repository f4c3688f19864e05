// Package workspace manages the ephemeral checkout directory used when
// the documentation source is fetched from a git repository. Directories
// are timestamped and removed completely after the build.
package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/i18ndocs/internal/logfields"
)

// Manager creates and cleans up one build's workspace directory.
type Manager struct {
	baseDir string
	tempDir string
}

// NewManager returns a manager rooted at baseDir (os.TempDir when empty).
func NewManager(baseDir string) *Manager {
	if baseDir == "" {
		baseDir = os.TempDir()
	}
	return &Manager{baseDir: baseDir}
}

// Create makes a fresh timestamped workspace directory.
func (m *Manager) Create() error {
	timestamp := time.Now().Format("20060102-150405")
	tempDir := filepath.Join(m.baseDir, fmt.Sprintf("i18ndocs-%s", timestamp))
	if err := os.MkdirAll(tempDir, 0o750); err != nil {
		return fmt.Errorf("create workspace directory: %w", err)
	}
	m.tempDir = tempDir
	slog.Debug("Created workspace", logfields.Path(tempDir))
	return nil
}

// Path returns the workspace directory, empty before Create.
func (m *Manager) Path() string { return m.tempDir }

// Cleanup removes the workspace directory.
func (m *Manager) Cleanup() error {
	if m.tempDir == "" {
		return nil
	}
	if err := os.RemoveAll(m.tempDir); err != nil {
		return fmt.Errorf("remove workspace directory: %w", err)
	}
	slog.Debug("Removed workspace", logfields.Path(m.tempDir))
	m.tempDir = ""
	return nil
}

// Package state remembers wizard UI preferences between runs. Form data is
// never stored here.
package state

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/chamberhq/join/internal/logger"
)

const fileName = "ui-state.json"

// UIState holds persistent UI preferences that carry across runs.
type UIState struct {
	Sidebar PanelState `json:"sidebar"`
	Hints   PanelState `json:"hints"`
}

// PanelState holds a panel visibility preference.
type PanelState struct {
	Visible bool `json:"visible"`
}

// DefaultUIState shows every panel.
func DefaultUIState() *UIState {
	return &UIState{
		Sidebar: PanelState{Visible: true},
		Hints:   PanelState{Visible: true},
	}
}

// Load reads <dataDir>/ui-state.json.
// Returns default state if the file doesn't exist or on error.
func Load(dataDir string) *UIState {
	if dataDir == "" {
		return DefaultUIState()
	}
	path := filepath.Join(dataDir, fileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("Failed to read UI state file: %v", err)
		}
		return DefaultUIState()
	}

	state := DefaultUIState()
	if err := json.Unmarshal(data, state); err != nil {
		logger.Warn("Failed to parse UI state JSON: %v", err)
		return DefaultUIState()
	}
	return state
}

// Save writes the UI state, creating dataDir if needed. An empty dataDir
// disables persistence.
func Save(dataDir string, state *UIState) error {
	if dataDir == "" {
		return nil
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling UI state: %w", err)
	}

	path := filepath.Join(dataDir, fileName)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing UI state file: %w", err)
	}

	logger.Debug("UI state saved to %s", path)
	return nil
}

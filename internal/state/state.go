// internal/state/state.go
package state

import (
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

// State records what the last successful run configured. It exists for the
// status command only; the pipeline never bases decisions on it, since the
// system files are the source of truth.
type State struct {
	RunID         string    `json:"run_id,omitempty"`
	Configured    bool      `json:"configured"`
	ResumeUUID    string    `json:"resume_uuid"`
	SwapDevice    string    `json:"swap_device"`
	BackupPath    string    `json:"backup_path"`
	ConfiguredAt  time.Time `json:"configured_at"`
	LidConfigured bool      `json:"lid_configured"`
}

func Load(ctx context.Context, exec executor.Executor, path string) (*State, error) {
	data, err := exec.ReadFile(ctx, path)
	if err != nil {
		return &State{}, nil
	}
	s := &State{}
	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}
	return s, nil
}

func Save(ctx context.Context, exec executor.Executor, path string, s *State) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	if _, err := exec.Run(ctx, "mkdir -p "+filepath.Dir(path)); err != nil {
		return err
	}
	return exec.WriteFile(ctx, path, data, 0644)
}

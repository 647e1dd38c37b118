// internal/grub/grub.go
package grub

import (
	"context"
	"fmt"
	"time"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

// Apply sets resume=UUID=<uuid> in the bootloader config at path. The
// original file is copied byte-for-byte to a timestamped backup before any
// edit is written; if the backup cannot be written, the config is left
// untouched. Returns the backup path.
func Apply(ctx context.Context, exec executor.Executor, path, resumeUUID string, now time.Time) (string, error) {
	original, err := exec.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	backupPath := fmt.Sprintf("%s.bak.%s", path, now.Format("2006-01-02-150405"))
	if exists, err := exec.FileExists(ctx, backupPath); err != nil {
		return "", err
	} else if exists {
		return "", fmt.Errorf("backup %s already exists, refusing to overwrite", backupPath)
	}
	if err := exec.WriteFile(ctx, backupPath, original, 0644); err != nil {
		return "", fmt.Errorf("writing backup %s: %w", backupPath, err)
	}

	updated, err := SetResumeParam(string(original), resumeUUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	if err := exec.WriteFile(ctx, path, []byte(updated), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return backupPath, nil
}

// CurrentResumeUUID reads the config at path and reports the uuid of its
// resume parameter, or "" when hibernation is not configured.
func CurrentResumeUUID(ctx context.Context, exec executor.Executor, path string) (string, error) {
	data, err := exec.ReadFile(ctx, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return ResumeUUID(string(data)), nil
}

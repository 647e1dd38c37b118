// internal/initramfs/initramfs.go
package initramfs

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

// WriteResumeHint truncate-writes the initramfs resume hint file. Overwrite
// semantics make reruns idempotent without any duplicate detection.
func WriteResumeHint(ctx context.Context, exec executor.Executor, path, resumeUUID string) error {
	dir := filepath.Dir(path)
	if _, err := exec.Run(ctx, "mkdir -p "+dir); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	content := fmt.Sprintf("RESUME=UUID=%s\n", resumeUUID)
	if err := exec.WriteFile(ctx, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Regenerate rebuilds the GRUB menu and then the initramfs for every
// installed kernel. Either command failing aborts; exit status is the only
// signal inspected.
func Regenerate(ctx context.Context, exec executor.Executor) error {
	if _, err := exec.Run(ctx, "update-grub"); err != nil {
		return fmt.Errorf("update-grub: %w", err)
	}
	if _, err := exec.Run(ctx, "update-initramfs -u -k all"); err != nil {
		return fmt.Errorf("update-initramfs: %w", err)
	}
	return nil
}

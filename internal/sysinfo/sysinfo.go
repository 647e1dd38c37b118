// internal/sysinfo/sysinfo.go
package sysinfo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

const meminfoPath = "/proc/meminfo"

// IsRoot reports whether the effective user is root.
func IsRoot(ctx context.Context, exec executor.Executor) (bool, error) {
	out, err := exec.Run(ctx, "id -u")
	if err != nil {
		return false, fmt.Errorf("checking effective user: %w", err)
	}
	return strings.TrimSpace(out) == "0", nil
}

// SecureBootEnabled queries mokutil for the Secure Boot state. A system
// without mokutil (or without EFI variables) is treated as disabled.
func SecureBootEnabled(ctx context.Context, exec executor.Executor) (bool, error) {
	if _, err := exec.Run(ctx, "command -v mokutil"); err != nil {
		return false, nil
	}
	out, err := exec.Run(ctx, "mokutil --sb-state")
	if err != nil {
		// mokutil errors on non-EFI systems; that also means no Secure Boot.
		return false, nil
	}
	return strings.Contains(out, "SecureBoot enabled"), nil
}

// TotalMemoryBytes returns the host's physical memory in bytes, exact: the
// MemTotal kibibyte figure from /proc/meminfo multiplied by 1024. Rounding
// is for display only, never for the swap-size comparison.
func TotalMemoryBytes(ctx context.Context, exec executor.Executor) (uint64, error) {
	data, err := exec.ReadFile(ctx, meminfoPath)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", meminfoPath, err)
	}
	return parseMemTotal(string(data))
}

func parseMemTotal(meminfo string) (uint64, error) {
	for _, line := range strings.Split(meminfo, "\n") {
		if !strings.HasPrefix(line, "MemTotal:") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			break
		}
		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("malformed MemTotal line %q: %w", line, err)
		}
		return kb * 1024, nil
	}
	return 0, fmt.Errorf("no MemTotal entry in meminfo")
}

// HumanSize renders a byte count as GiB with one decimal, for messages only.
func HumanSize(bytes uint64) string {
	gib := float64(bytes) / (1 << 30)
	return fmt.Sprintf("%.1f GiB", gib)
}

// internal/sysinfo/swap.go
package sysinfo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

// List mode: the default tree view decorates partition names with
// box-drawing glyphs even under -n.
const lsblkCmd = "lsblk -b -l -n -p -o NAME,FSTYPE,UUID,SIZE"

// SwapDevice describes a swap partition usable as a hibernation target.
type SwapDevice struct {
	Path      string
	UUID      string
	SizeBytes uint64
}

func (d SwapDevice) String() string {
	return fmt.Sprintf("%s (UUID=%s, %s)", d.Path, d.UUID, HumanSize(d.SizeBytes))
}

// SwapDevices lists block devices carrying a swap filesystem with a valid
// UUID. Swap files do not appear here; only partitions can back resume.
func SwapDevices(ctx context.Context, exec executor.Executor) ([]SwapDevice, error) {
	out, err := exec.Run(ctx, lsblkCmd)
	if err != nil {
		return nil, fmt.Errorf("listing block devices: %w", err)
	}
	return parseLsblk(out)
}

func parseLsblk(out string) ([]SwapDevice, error) {
	var devices []SwapDevice
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 4 {
			continue
		}
		// A line with only three columns is a device without a UUID; such
		// swap cannot back resume and is skipped by the field-count check.
		name, fstype, id, size := fields[0], fields[1], fields[2], fields[3]
		// Older lsblk builds render tree glyphs regardless of -l.
		name = strings.TrimLeft(name, "`|├└─│ ")
		if fstype != "swap" {
			continue
		}
		bytes, err := strconv.ParseUint(size, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("swap device %s has malformed size %q: %w", name, size, err)
		}
		devices = append(devices, SwapDevice{Path: name, UUID: id, SizeBytes: bytes})
	}
	return devices, nil
}

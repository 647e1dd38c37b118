// internal/setup/setup.go
package setup

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/zb-ss/ubuntu-hibernation/internal/config"
	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
	"github.com/zb-ss/ubuntu-hibernation/internal/grub"
	"github.com/zb-ss/ubuntu-hibernation/internal/initramfs"
	"github.com/zb-ss/ubuntu-hibernation/internal/sysinfo"
	"github.com/zb-ss/ubuntu-hibernation/internal/ui"
)

// Plan is the immutable outcome of the precondition checks: the swap device
// hibernation will resume from, the memory it must hold, and the file paths
// to touch. Every later step takes the plan; nothing re-probes the system.
type Plan struct {
	Swap     sysinfo.SwapDevice
	RAMBytes uint64
	Paths    config.Paths
}

// CheckPreconditions validates the environment and resolves the swap device.
// It mutates nothing. Any failure carries the remediation in its message.
func CheckPreconditions(ctx context.Context, exec executor.Executor, paths config.Paths, in io.Reader, assumeYes bool) (*Plan, error) {
	root, err := sysinfo.IsRoot(ctx, exec)
	if err != nil {
		return nil, err
	}
	if !root {
		return nil, fmt.Errorf("this tool must run as root: re-run with sudo")
	}

	enabled, err := sysinfo.SecureBootEnabled(ctx, exec)
	if err != nil {
		return nil, err
	}
	if enabled {
		return nil, fmt.Errorf("Secure Boot is enabled: hibernation resume does not work with Secure Boot, disable it in your firmware settings and re-run")
	}

	devices, err := sysinfo.SwapDevices(ctx, exec)
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return nil, fmt.Errorf("no swap partition found: create a swap partition at least as large as your RAM and re-run (swap files are not supported)")
	}

	swap := devices[0]
	if len(devices) > 1 {
		if assumeYes {
			return nil, fmt.Errorf("found %d swap partitions: run interactively to choose one", len(devices))
		}
		options := make([]string, len(devices))
		for i, d := range devices {
			options[i] = d.String()
		}
		idx, err := ui.Choose(in, "Multiple swap partitions found, which one should hold the hibernation image?", options)
		if err != nil {
			return nil, err
		}
		swap = devices[idx]
	}

	ram, err := sysinfo.TotalMemoryBytes(ctx, exec)
	if err != nil {
		return nil, err
	}
	// Byte-exact on purpose: equal sizes pass, one byte short fails.
	if swap.SizeBytes < ram {
		return nil, fmt.Errorf("swap partition %s is too small for hibernation: %s swap < %s RAM",
			swap.Path, sysinfo.HumanSize(swap.SizeBytes), sysinfo.HumanSize(ram))
	}

	return &Plan{Swap: swap, RAMBytes: ram, Paths: paths}, nil
}

// Run applies the plan: backup and edit the bootloader config, write the
// initramfs resume hint, regenerate the boot artifacts. Fail-fast, no
// rollback; the backup is the recovery path.
func Run(ctx context.Context, exec executor.Executor, plan *Plan, now time.Time) (string, error) {
	backupPath, err := grub.Apply(ctx, exec, plan.Paths.GrubDefault, plan.Swap.UUID, now)
	if err != nil {
		return "", err
	}
	ui.Success("Bootloader config backed up to " + backupPath)
	ui.Success("Kernel resume parameter set to UUID=" + plan.Swap.UUID)

	if err := initramfs.WriteResumeHint(ctx, exec, plan.Paths.ResumeHint, plan.Swap.UUID); err != nil {
		return backupPath, err
	}
	ui.Success("Initramfs resume hint written to " + plan.Paths.ResumeHint)

	ui.Info("Regenerating bootloader menu and initramfs, this can take a minute...")
	if err := initramfs.Regenerate(ctx, exec); err != nil {
		return backupPath, err
	}
	ui.Success("Bootloader menu and initramfs regenerated")

	return backupPath, nil
}

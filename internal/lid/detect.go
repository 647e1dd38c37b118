// internal/lid/detect.go
package lid

import (
	"context"
	"strings"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

const (
	chassisTypePath = "/sys/class/dmi/id/chassis_type"
	lidSwitchPath   = "/proc/acpi/button/lid"
	powerSupplyDir  = "/sys/class/power_supply"
)

// SMBIOS chassis types for portable form factors: Portable, Laptop,
// Notebook, Sub Notebook, Tablet, Convertible, Detachable.
var laptopChassisTypes = map[string]bool{
	"8": true, "9": true, "10": true, "14": true,
	"30": true, "31": true, "32": true,
}

// IsLaptop reports whether the machine looks like a laptop. Any single
// signal is sufficient: portable chassis type, a lid switch, or a battery.
// Probe failures count as a negative signal, never an error.
func IsLaptop(ctx context.Context, exec executor.Executor) bool {
	if data, err := exec.ReadFile(ctx, chassisTypePath); err == nil {
		if laptopChassisTypes[strings.TrimSpace(string(data))] {
			return true
		}
	}
	if HasLidSwitch(ctx, exec) {
		return true
	}
	if out, err := exec.Run(ctx, "ls "+powerSupplyDir); err == nil {
		for _, entry := range strings.Fields(out) {
			if strings.HasPrefix(entry, "BAT") {
				return true
			}
		}
	}
	return false
}

// HasLidSwitch is the narrower predicate gating lid configuration: the ACPI
// lid interface must actually exist, battery or chassis alone is not enough.
func HasLidSwitch(ctx context.Context, exec executor.Executor) bool {
	exists, err := exec.FileExists(ctx, lidSwitchPath)
	return err == nil && exists
}

// RegolithPresent reports whether a Regolith desktop session is available
// for the given home directory. Any single signal is sufficient.
func RegolithPresent(ctx context.Context, exec executor.Executor, home string) bool {
	if exists, err := exec.FileExists(ctx, home+"/.config/regolith3"); err == nil && exists {
		return true
	}
	if _, err := exec.Run(ctx, "command -v regolith-session"); err == nil {
		return true
	}
	if _, err := exec.Run(ctx, "dpkg -s regolith-desktop"); err == nil {
		return true
	}
	return false
}

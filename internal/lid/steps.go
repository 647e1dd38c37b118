// internal/lid/steps.go
package lid

import (
	"context"
	"fmt"
	"strings"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
)

type Step struct {
	Name       string
	Label      string
	BestEffort bool
	// Applicable gates the step on an optional dependency (a directory or
	// tool the system may simply not have). Nil means always applicable.
	// Distinct from Check: not-applicable is a missing feature, not a
	// previously configured one.
	Applicable func(ctx context.Context, exec executor.Executor) (bool, error)
	Check      func(ctx context.Context, exec executor.Executor) (bool, error)
	Apply      func(ctx context.Context, exec executor.Executor) error
}

const polkitRuleFile = "10-enable-hibernate.rules"

const polkitRule = `polkit.addRule(function(action, subject) {
    if ((action.id == "org.freedesktop.login1.hibernate" ||
         action.id == "org.freedesktop.login1.handle-hibernate-key" ||
         action.id == "org.freedesktop.login1.hibernate-ignore-inhibit" ||
         action.id == "org.freedesktop.login1.hibernate-multiple-sessions") &&
        subject.isInGroup("sudo")) {
        return polkit.Result.YES;
    }
});
`

const logindDropInFile = "90-lid-hibernate.conf"

const logindDropIn = `[Login]
HandleLidSwitch=hibernate
HandleLidSwitchExternalPower=hibernate
HandleLidSwitchDocked=ignore
`

const (
	lidCloseKeyPrefix = "wm.lidclose.action."
	xresourcesPower   = "wm.lidclose.action.power: HIBERNATE"
	xresourcesBattery = "wm.lidclose.action.battery: HIBERNATE"
)

// PolkitStep writes the hibernate permission rule once. An existing rule
// file is never rewritten; a system without a polkit rules directory skips
// the step entirely.
func PolkitStep(rulesDir string) Step {
	path := rulesDir + "/" + polkitRuleFile
	return Step{
		Name:  "polkit",
		Label: "Passwordless hibernate permitted for sudo group",
		Applicable: func(ctx context.Context, exec executor.Executor) (bool, error) {
			return exec.FileExists(ctx, rulesDir)
		},
		Check: func(ctx context.Context, exec executor.Executor) (bool, error) {
			return exec.FileExists(ctx, path)
		},
		Apply: func(ctx context.Context, exec executor.Executor) error {
			return exec.WriteFile(ctx, path, []byte(polkitRule), 0644)
		},
	}
}

// LogindStep overwrites the logind drop-in unconditionally; the content is
// fixed, so overwriting is the simplest idempotence.
func LogindStep(dropInDir string) Step {
	path := dropInDir + "/" + logindDropInFile
	return Step{
		Name:  "logind",
		Label: "Lid close set to hibernate (logind)",
		Check: func(ctx context.Context, exec executor.Executor) (bool, error) {
			return false, nil
		},
		Apply: func(ctx context.Context, exec executor.Executor) error {
			if _, err := exec.Run(ctx, "mkdir -p "+dropInDir); err != nil {
				return err
			}
			return exec.WriteFile(ctx, path, []byte(logindDropIn), 0644)
		},
	}
}

// GsettingsStep sets the GNOME power-plugin lid actions as the invoking
// user. The user session may not be running or the schema may be absent, so
// the step is best-effort.
func GsettingsStep(u *User) Step {
	return Step{
		Name:       "gsettings",
		Label:      "GNOME lid actions set to hibernate",
		BestEffort: true,
		Applicable: func(ctx context.Context, exec executor.Executor) (bool, error) {
			_, err := exec.Run(ctx, "command -v gsettings")
			return err == nil, nil
		},
		Check: func(ctx context.Context, exec executor.Executor) (bool, error) {
			return false, nil
		},
		Apply: func(ctx context.Context, exec executor.Executor) error {
			for _, key := range []string{"lid-close-ac-action", "lid-close-battery-action"} {
				cmd := fmt.Sprintf(
					"sudo -u %s DBUS_SESSION_BUS_ADDRESS=unix:path=/run/user/%d/bus gsettings set org.gnome.settings-daemon.plugins.power %s 'hibernate'",
					u.Name, u.UID, key,
				)
				if _, err := exec.Run(ctx, cmd); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// XresourcesStep upserts the Regolith lid-close block in the user's
// Xresources: existing lidclose lines are removed, the hibernate block is
// appended, and ownership is handed back to the user. When both lines are
// already present verbatim the file is not touched at all.
func XresourcesStep(u *User) Step {
	dir := u.Home + "/.config/regolith3"
	path := dir + "/Xresources"
	return Step{
		Name:  "xresources",
		Label: "Regolith lid actions set to hibernate",
		Check: func(ctx context.Context, exec executor.Executor) (bool, error) {
			data, err := exec.ReadFile(ctx, path)
			if err != nil {
				return false, nil
			}
			content := string(data)
			return strings.Contains(content, xresourcesPower) &&
				strings.Contains(content, xresourcesBattery), nil
		},
		Apply: func(ctx context.Context, exec executor.Executor) error {
			var existing string
			if data, err := exec.ReadFile(ctx, path); err == nil {
				existing = string(data)
			}

			var kept []string
			for _, line := range strings.Split(existing, "\n") {
				if strings.Contains(line, lidCloseKeyPrefix) {
					continue
				}
				kept = append(kept, line)
			}
			content := strings.TrimRight(strings.Join(kept, "\n"), "\n")
			if content != "" {
				content += "\n"
			}
			content += xresourcesPower + "\n" + xresourcesBattery + "\n"

			if _, err := exec.Run(ctx, "mkdir -p "+dir); err != nil {
				return err
			}
			if err := exec.WriteFile(ctx, path, []byte(content), 0644); err != nil {
				return err
			}
			// The writer runs as root; hand the file back to its owner.
			_, err := exec.Run(ctx, fmt.Sprintf("chown %d:%d %s %s", u.UID, u.GID, dir, path))
			return err
		},
	}
}

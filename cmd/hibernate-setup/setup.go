// cmd/hibernate-setup/setup.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
	"github.com/zb-ss/ubuntu-hibernation/internal/lid"
	"github.com/zb-ss/ubuntu-hibernation/internal/setup"
	"github.com/zb-ss/ubuntu-hibernation/internal/state"
	"github.com/zb-ss/ubuntu-hibernation/internal/sysinfo"
	"github.com/zb-ss/ubuntu-hibernation/internal/ui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Run the full hibernation setup",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		exec := executor.NewLocalExecutor()

		ui.Header("Hibernation setup")

		paths, err := loadPaths(ctx, exec)
		if err != nil {
			return err
		}

		ok, err := confirm(fmt.Sprintf("This will edit %s and rebuild the initramfs. Continue?", paths.GrubDefault))
		if err != nil {
			return err
		}
		if !ok {
			ui.Info("Nothing changed.")
			return nil
		}

		plan, err := setup.CheckPreconditions(ctx, exec, paths, os.Stdin, yesFlag)
		if err != nil {
			return err
		}
		ui.Info(fmt.Sprintf("Swap partition: %s", plan.Swap))
		ui.Info(fmt.Sprintf("Physical memory: %s", sysinfo.HumanSize(plan.RAMBytes)))

		backupPath, err := setup.Run(ctx, exec, plan, time.Now())
		if err != nil {
			return err
		}

		st := &state.State{
			RunID:        uuid.NewString(),
			Configured:   true,
			ResumeUUID:   plan.Swap.UUID,
			SwapDevice:   plan.Swap.Path,
			BackupPath:   backupPath,
			ConfiguredAt: time.Now(),
		}

		if lid.IsLaptop(ctx, exec) && lid.HasLidSwitch(ctx, exec) {
			ok, err := confirm("Laptop with a lid switch detected. Configure lid close to hibernate?")
			if err != nil {
				return err
			}
			if ok {
				ui.Header("Lid configuration")
				if err := configureLid(ctx, exec, paths.LogindDropInDir, paths.PolkitRulesDir); err != nil {
					return err
				}
				st.LidConfigured = true
			}
		}

		if err := state.Save(ctx, exec, paths.StateFile, st); err != nil {
			return err
		}

		ui.Result("Hibernation configured! Test it after rebooting with: sudo systemctl hibernate")

		// Never reboot implicitly: the prompt only appears when someone can
		// actually answer it.
		if !yesFlag && ui.Interactive() {
			ok, err := confirm("Reboot now to apply the new kernel command line?")
			if err == nil && ok {
				_, _ = exec.Run(ctx, "reboot")
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

// configureLid resolves the invoking sudo user and runs the lid artifact
// writers. Missing SUDO_USER (direct root login) drops the per-user steps.
func configureLid(ctx context.Context, exec executor.Executor, logindDropInDir, polkitRulesDir string) error {
	var u *lid.User
	if name := os.Getenv("SUDO_USER"); name != "" && name != "root" {
		resolved, err := lid.LookupUser(ctx, exec, name)
		if err != nil {
			ui.Warn("Could not resolve invoking user, skipping per-user settings: " + err.Error())
		} else {
			u = resolved
		}
	}

	steps := lid.Steps(ctx, exec, u, logindDropInDir, polkitRulesDir)
	_, err := lid.Configure(ctx, exec, steps)
	return err
}

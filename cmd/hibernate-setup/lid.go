// cmd/hibernate-setup/lid.go
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
	"github.com/zb-ss/ubuntu-hibernation/internal/lid"
	"github.com/zb-ss/ubuntu-hibernation/internal/state"
	"github.com/zb-ss/ubuntu-hibernation/internal/sysinfo"
	"github.com/zb-ss/ubuntu-hibernation/internal/ui"
)

var lidCmd = &cobra.Command{
	Use:   "lid",
	Short: "Configure lid-close hibernation only",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		exec := executor.NewLocalExecutor()

		paths, err := loadPaths(ctx, exec)
		if err != nil {
			return err
		}

		root, err := sysinfo.IsRoot(ctx, exec)
		if err != nil {
			return err
		}
		if !root {
			return fmt.Errorf("this tool must run as root: re-run with sudo")
		}

		if !lid.IsLaptop(ctx, exec) {
			return fmt.Errorf("this machine does not look like a laptop (no portable chassis, lid switch or battery)")
		}
		if !lid.HasLidSwitch(ctx, exec) {
			return fmt.Errorf("no lid switch found at /proc/acpi/button/lid")
		}

		ok, err := confirm("Configure lid close to hibernate?")
		if err != nil {
			return err
		}
		if !ok {
			ui.Info("Nothing changed.")
			return nil
		}

		ui.Header("Lid configuration")
		if err := configureLid(ctx, exec, paths.LogindDropInDir, paths.PolkitRulesDir); err != nil {
			return err
		}

		st, err := state.Load(ctx, exec, paths.StateFile)
		if err != nil {
			return err
		}
		st.LidConfigured = true
		if err := state.Save(ctx, exec, paths.StateFile, st); err != nil {
			return err
		}

		ui.Result("Lid-close hibernation configured")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lidCmd)
}

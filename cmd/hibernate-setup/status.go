// cmd/hibernate-setup/status.go
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
	"github.com/zb-ss/ubuntu-hibernation/internal/grub"
	"github.com/zb-ss/ubuntu-hibernation/internal/state"
	"github.com/zb-ss/ubuntu-hibernation/internal/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current hibernation configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		exec := executor.NewLocalExecutor()

		paths, err := loadPaths(ctx, exec)
		if err != nil {
			return err
		}

		ui.Header("Hibernation status")

		current, err := grub.CurrentResumeUUID(ctx, exec, paths.GrubDefault)
		if err != nil {
			return err
		}
		if current == "" {
			ui.Info("No resume parameter in " + paths.GrubDefault)
		} else {
			ui.Success("Kernel resume parameter: UUID=" + current)
		}

		if data, err := exec.ReadFile(ctx, paths.ResumeHint); err == nil {
			ui.Success("Initramfs resume hint: " + string(trimNewline(data)))
		} else {
			ui.Info("No initramfs resume hint at " + paths.ResumeHint)
		}

		st, err := state.Load(ctx, exec, paths.StateFile)
		if err != nil {
			return err
		}
		if !st.Configured {
			ui.Info("No recorded hibernate-setup run")
			return nil
		}
		fmt.Printf("\n  Configured %s from %s (backup: %s)\n",
			st.ConfiguredAt.Format("2006-01-02 15:04"), st.SwapDevice, st.BackupPath)
		if st.LidConfigured {
			ui.Info("Lid-close hibernation is configured")
		}
		return nil
	},
}

func trimNewline(b []byte) []byte {
	for len(b) > 0 && (b[len(b)-1] == '\n' || b[len(b)-1] == '\r') {
		b = b[:len(b)-1]
	}
	return b
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

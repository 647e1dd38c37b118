// cmd/hibernate-setup/check.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
	"github.com/zb-ss/ubuntu-hibernation/internal/lid"
	"github.com/zb-ss/ubuntu-hibernation/internal/setup"
	"github.com/zb-ss/ubuntu-hibernation/internal/sysinfo"
	"github.com/zb-ss/ubuntu-hibernation/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check hibernation preconditions without changing anything",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		exec := executor.NewLocalExecutor()

		ui.Header("Hibernation preconditions")

		paths, err := loadPaths(ctx, exec)
		if err != nil {
			return err
		}

		plan, err := setup.CheckPreconditions(ctx, exec, paths, os.Stdin, yesFlag)
		if err != nil {
			ui.Error(err.Error())
			return fmt.Errorf("preconditions not met")
		}

		ui.Success(fmt.Sprintf("Swap partition %s can hold %s of RAM", plan.Swap, sysinfo.HumanSize(plan.RAMBytes)))
		if lid.IsLaptop(ctx, exec) && lid.HasLidSwitch(ctx, exec) {
			ui.Info("Laptop with a lid switch detected; `setup` will offer lid configuration")
		}
		ui.Result("System is ready for hibernation setup")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

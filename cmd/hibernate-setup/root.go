// cmd/hibernate-setup/root.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zb-ss/ubuntu-hibernation/internal/config"
	"github.com/zb-ss/ubuntu-hibernation/internal/executor"
	"github.com/zb-ss/ubuntu-hibernation/internal/ui"
)

var (
	yesFlag    bool
	configFlag string
)

var rootCmd = &cobra.Command{
	Use:   "hibernate-setup",
	Short: "Configure an Ubuntu system to hibernate to a swap partition",
	Long:  "hibernate-setup edits the GRUB kernel command line, writes the initramfs resume hint and optionally sets up laptop lid-close hibernation.",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&yesFlag, "yes", false, "answer yes to all prompts (required when stdin is not a terminal)")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultPath, "path overrides file")
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print hibernate-setup version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("hibernate-setup", version)
	},
}

func loadPaths(ctx context.Context, exec executor.Executor) (config.Paths, error) {
	return config.Load(ctx, exec, configFlag)
}

// confirm wraps the interactive prompt with the --yes escape hatch. Without
// a terminal and without --yes there is no way to answer, so fail instead
// of hanging.
func confirm(label string) (bool, error) {
	if yesFlag {
		return true, nil
	}
	if !ui.Interactive() {
		return false, fmt.Errorf("stdin is not a terminal: re-run with --yes")
	}
	return ui.Confirm(os.Stdin, label)
}

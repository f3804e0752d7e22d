package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
	"github.com/stuartp44/hacs-ducobox-connector/internal/runtime"
	"github.com/stuartp44/hacs-ducobox-connector/internal/ui"
	"github.com/stuartp44/hacs-ducobox-connector/internal/util"
)

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Tear the dev stack down",
	Long: `Hand the compose file to 'docker compose down'. Config under
${HA_CONF_DIR} survives; only the container goes away.`,
	RunE: runDown,
}

func init() {
	rootCmd.AddCommand(downCmd)
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), ""))
		return err
	}

	cli := &runtime.ComposeCLI{File: util.ExpandPath(cfg.ComposeFile), Stdout: os.Stdout, Stderr: os.Stderr}
	if err := cli.Down(cmd.Context()); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Tearing the stack down failed", err.Error(), ""))
		return err
	}

	ui.Success("Stack is down")
	return nil
}

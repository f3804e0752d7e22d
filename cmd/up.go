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

var upWait bool

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Bring the dev stack up through the container runtime",
	Long: `Hand the rendered compose file to 'docker compose up -d'. The runtime
owns the container lifecycle; hadev only invokes it. With --wait, block
until the web UI answers or the health budget runs out.`,
	RunE: runUp,
}

func init() {
	rootCmd.AddCommand(upCmd)
	upCmd.Flags().BoolVar(&upWait, "wait", false, "wait until Home Assistant answers on the web UI")
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'hadev init' to create a config file"))
		return err
	}

	composeFile := util.ExpandPath(cfg.ComposeFile)
	if _, err := os.Stat(composeFile); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Compose file not found", composeFile, "run 'hadev render' first"))
		return err
	}

	cli := &runtime.ComposeCLI{File: composeFile, Stdout: os.Stdout, Stderr: os.Stderr}
	if err := cli.Up(cmd.Context()); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Bringing the stack up failed", err.Error(), "run 'hadev validate' to check the environment"))
		return err
	}

	svc := buildService(cfg)
	ui.Success(fmt.Sprintf("Stack is up: http://localhost:%d", svc.Ports[0].HostPort))

	if !upWait {
		fmt.Printf("First boot installs HACS and can take minutes. %s\n", ui.Hint("hadev status --wait"))
		return nil
	}

	probe, err := runtime.ProbeForService(svc)
	if err != nil {
		return err
	}
	fmt.Println(ui.Dim("Waiting for Home Assistant to answer..."))
	if err := probe.Wait(cmd.Context()); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Home Assistant did not come up", err.Error(), "hadev status shows the container's own health log"))
		return err
	}
	ui.Success("Home Assistant is serving")
	return nil
}

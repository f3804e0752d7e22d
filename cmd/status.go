package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
	"github.com/stuartp44/hacs-ducobox-connector/internal/runtime"
	"github.com/stuartp44/hacs-ducobox-connector/internal/stack"
	"github.com/stuartp44/hacs-ducobox-connector/internal/ui"
)

var statusWait bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show what the container runtime reports for the dev container",
	Long: `Read the homeassistant container's state, health verdict and bound
ports from the Docker daemon. The restart policy is "no", so an unhealthy
container stays running until someone acts on it; this is where you notice.`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().BoolVar(&statusWait, "wait", false, "probe the web UI until it answers or the health budget runs out")
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), ""))
		return err
	}

	inspector, err := runtime.NewInspector()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Cannot reach the Docker daemon", err.Error(), "is Docker running?"))
		return err
	}
	defer inspector.Close()

	status, err := inspector.Status(cmd.Context(), stack.ServiceName)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Status unavailable", err.Error(), ""))
		return err
	}

	fmt.Println(ui.Bold(status.Name))
	ui.StatusLine("State", status.State)
	if status.Health != "" {
		health := status.Health
		if status.FailingStreak > 0 {
			health = fmt.Sprintf("%s (%d failed probes)", health, status.FailingStreak)
		}
		ui.StatusLine("Health", health)
		if status.Health == "unhealthy" && status.LastProbe != "" {
			ui.StatusLine("Last probe", status.LastProbe)
		}
	}
	if len(status.Ports) > 0 {
		specs := make([]string, len(status.Ports))
		for i, p := range status.Ports {
			specs[i] = p.String()
		}
		ui.StatusLine("Ports", strings.Join(specs, ", "))
	}

	if status.Health == "unhealthy" {
		ui.Warn("unhealthy containers are left running on purpose (restart policy \"no\"); inspect and restart by hand")
	}

	if !statusWait {
		return nil
	}

	probe, err := runtime.ProbeForService(buildService(cfg))
	if err != nil {
		return err
	}
	fmt.Println(ui.Dim("Waiting for Home Assistant to answer..."))
	if err := probe.Wait(cmd.Context()); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Home Assistant is not serving", err.Error(), ""))
		return err
	}
	ui.Success("Home Assistant is serving")
	return nil
}

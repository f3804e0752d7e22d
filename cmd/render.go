package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stuartp44/hacs-ducobox-connector/internal/compose"
	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
	"github.com/stuartp44/hacs-ducobox-connector/internal/stack"
	"github.com/stuartp44/hacs-ducobox-connector/internal/ui"
	"github.com/stuartp44/hacs-ducobox-connector/internal/util"
)

var renderOutput string

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the docker-compose declaration for the dev stack",
	Long: `Build the Home Assistant service declaration from hadev.yml and write it
as a docker-compose file. ${HA_CONF_DIR} is left for the container runtime
to substitute at 'up' time.`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output compose file path")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'hadev init' to create a config file"))
		return err
	}

	output := cfg.ComposeFile
	if renderOutput != "" {
		output = renderOutput
	}

	svc := buildService(cfg)
	data, err := compose.Render([]*stack.Service{svc})
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to render compose file", err.Error(), ""))
		return err
	}

	if err := os.WriteFile(util.ExpandPath(output), data, 0644); err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to write output", err.Error(), ""))
		return err
	}

	ui.Success(fmt.Sprintf("Generated %s (%s on port %d)", output, svc.Image, svc.Ports[0].HostPort))
	fmt.Printf("Next step: %s\n", ui.Bold("hadev validate"))
	return nil
}

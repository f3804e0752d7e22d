package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stuartp44/hacs-ducobox-connector/internal/check"
	"github.com/stuartp44/hacs-ducobox-connector/internal/config"
	"github.com/stuartp44/hacs-ducobox-connector/internal/ui"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the dev stack before bringing it up",
	Long: `Check everything 'hadev up' depends on: HA_CONF_DIR and the mount
sources exist, PUID/PGID/TZ are set, docker is available, and the rendered
compose file still matches the dev-stack contract.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "run 'hadev init' to create a config file"))
		return err
	}

	fmt.Println(ui.Bold("Validating dev stack..."))

	results, runErr := check.RunAll(cfg)

	passed := 0
	for _, r := range results {
		switch {
		case r.Skipped:
			ui.CheckSkipped(r.Check.DisplayName)
		case len(r.Errors) == 0:
			ui.CheckOK(r.Check.DisplayName, "ok")
			passed++
		default:
			for _, ve := range r.Errors {
				ui.CheckErr(ve.Field, ve.Message, ve.Suggestion)
			}
		}
	}

	fmt.Println()
	if runErr == nil {
		ui.Success(fmt.Sprintf("%d checks passed, 0 errors", passed))
		return nil
	}

	fmt.Printf("%d checks passed, validation failed\n", passed)
	return runErr
}

// cmd/estimate.go - Area estimation command
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mts-client/internal/config"
	"mts-client/internal/output"
	"mts-client/pkg/estimate"
)

// estimateCmd represents the estimate-area command
var estimateCmd = &cobra.Command{
	Use:   "estimate-area [feature files]",
	Short: "Estimate the area a tileset built from the given sources would cover",
	Long: `Estimate the area a tileset built from the given GeoJSON sources would
cover, in whole square kilometers at the requested precision tier.

The computation is local: each feature is validated, the features are covered
with tiles at the zoom level implied by the precision tier, and the geodesic
areas of the cover tiles are summed. No credentials are needed.

The 1cm tier is restricted and must be enabled through support; pass
--force-1cm once it has been enabled for the account.

Examples:
  # Estimate at 10m precision
  mts estimate-area --precision 10m roads.geojson parks.geojson

  # Re-run without validation for inputs that already passed once
  mts estimate-area --precision 1m --no-validation roads.geojson

  # Fine-precision estimate (requires enablement through support)
  mts estimate-area --precision 1cm --force-1cm roads.geojson`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)

	estimateCmd.Flags().StringP("precision", "p", "", "precision tier (10m, 1m, 30cm or 1cm)")
	estimateCmd.Flags().Bool("no-validation", false, "skip feature validation")
	estimateCmd.Flags().Bool("force-1cm", false, "enable the restricted 1cm tier")

	estimateCmd.MarkFlagRequired("precision")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	precision, _ := cmd.Flags().GetString("precision")
	skipValidation, _ := cmd.Flags().GetBool("no-validation")
	force1cm, _ := cmd.Flags().GetBool("force-1cm")

	result, err := estimate.AreaFromPaths(args, estimate.Precision(precision), estimate.Options{
		SkipValidation: skipValidation,
		Force1cm:       force1cm,
	})
	if err != nil {
		return err
	}

	return output.NewPrinter(os.Stdout, cfg.Output.Indent).JSON(result)
}

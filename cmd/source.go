// cmd/source.go - Upload source commands
package cmd

import (
	"github.com/spf13/cobra"

	"mts-client/internal/mts"
	"mts-client/internal/output"
	"mts-client/pkg/feature"
)

// sourceCmd groups the upload-source operations
var sourceCmd = &cobra.Command{
	Use:   "source",
	Short: "Manage the account's upload sources",
	Long: `Manage the GeoJSON upload sources tilesets are built from.

Examples:
  mts source upload my-source roads.geojson parks.geojson
  mts source upload my-source roads.geojson --replace
  mts source validate roads.geojson parks.geojson
  mts source get my-source
  mts source list
  mts source delete my-source`,
}

var sourceUploadCmd = &cobra.Command{
	Use:   "upload [source id] [feature files]",
	Short: "Upload GeoJSON files as a line-delimited source",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSourceUpload,
}

var sourceValidateCmd = &cobra.Command{
	Use:   "validate [feature files]",
	Short: "Validate GeoJSON source files without uploading them",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSourceValidate,
}

var sourceGetCmd = &cobra.Command{
	Use:   "get [source id]",
	Short: "Show the metadata of an upload source",
	Args:  cobra.ExactArgs(1),
	RunE:  runSourceGet,
}

var sourceListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's upload sources",
	Args:  cobra.NoArgs,
	RunE:  runSourceList,
}

var sourceDeleteCmd = &cobra.Command{
	Use:   "delete [source id]",
	Short: "Delete an upload source",
	Args:  cobra.ExactArgs(1),
	RunE:  runSourceDelete,
}

func init() {
	rootCmd.AddCommand(sourceCmd)
	sourceCmd.AddCommand(sourceUploadCmd, sourceValidateCmd, sourceGetCmd, sourceListCmd, sourceDeleteCmd)

	sourceUploadCmd.Flags().Bool("replace", false, "replace an existing source instead of appending")
	sourceUploadCmd.Flags().Bool("no-validation", false, "skip feature validation")
}

func runSourceUpload(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	replace, _ := cmd.Flags().GetBool("replace")
	skipValidation, _ := cmd.Flags().GetBool("no-validation")

	body, err := handler.UploadSource(cmd.Context(), args[0], args[1:], mts.UploadOptions{
		Replace:        replace,
		SkipValidation: skipValidation,
	})
	if err != nil {
		return err
	}
	return printer.Raw(body)
}

func runSourceValidate(cmd *cobra.Command, args []string) error {
	if err := feature.ValidateFiles(args); err != nil {
		return err
	}
	return output.NewPrinter(cmd.OutOrStdout(), 0).Line("✔ valid")
}

func runSourceGet(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	body, err := handler.Source(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printer.Raw(body)
}

func runSourceList(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	body, err := handler.ListSources(cmd.Context())
	if err != nil {
		return err
	}
	return printer.Raw(body)
}

func runSourceDelete(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	if err := handler.DeleteSource(cmd.Context(), args[0]); err != nil {
		return err
	}
	return printer.Line("Source deleted.")
}

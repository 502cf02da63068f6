// cmd/tileset.go - Tileset lifecycle commands
package cmd

import (
	"github.com/spf13/cobra"

	"mts-client/internal/mts"
)

// tilesetCmd groups the tileset lifecycle operations
var tilesetCmd = &cobra.Command{
	Use:   "tileset",
	Short: "Manage the account's tilesets",
	Long: `Manage the tileset lifecycle: create a tileset from an uploaded source and
a recipe, publish it, watch its processing jobs, and update or delete it.

Examples:
  mts tileset create my-tileset --name "Roads" --recipe recipe.json
  mts tileset publish my-tileset
  mts tileset status my-tileset
  mts tileset jobs my-tileset --stage processing
  mts tileset tilejson my-tileset other-tileset
  mts tileset list --visibility private
  mts tileset recipe get my-tileset
  mts tileset delete my-tileset`,
}

var tilesetCreateCmd = &cobra.Command{
	Use:   "create [handle]",
	Short: "Create a tileset from a recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runTilesetCreate,
}

var tilesetPublishCmd = &cobra.Command{
	Use:   "publish [handle]",
	Short: "Queue a publish job for a tileset",
	Args:  cobra.ExactArgs(1),
	RunE:  runTilesetPublish,
}

var tilesetUpdateCmd = &cobra.Command{
	Use:   "update [handle]",
	Short: "Update a tileset's name, description or visibility",
	Args:  cobra.ExactArgs(1),
	RunE:  runTilesetUpdate,
}

var tilesetDeleteCmd = &cobra.Command{
	Use:   "delete [handle]",
	Short: "Delete a tileset",
	Args:  cobra.ExactArgs(1),
	RunE:  runTilesetDelete,
}

var tilesetStatusCmd = &cobra.Command{
	Use:   "status [handle]",
	Short: "Show a tileset's status, derived from its latest job",
	Args:  cobra.ExactArgs(1),
	RunE:  runTilesetStatus,
}

var tilesetTileJSONCmd = &cobra.Command{
	Use:   "tilejson [handles]",
	Short: "Fetch the tileJSON of one or more tilesets",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTilesetTileJSON,
}

var tilesetJobsCmd = &cobra.Command{
	Use:   "jobs [handle]",
	Short: "List a tileset's processing jobs",
	Args:  cobra.ExactArgs(1),
	RunE:  runTilesetJobs,
}

var tilesetJobCmd = &cobra.Command{
	Use:   "job [handle] [job id]",
	Short: "Show one processing job of a tileset",
	Args:  cobra.ExactArgs(2),
	RunE:  runTilesetJob,
}

var tilesetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the account's tilesets",
	Args:  cobra.NoArgs,
	RunE:  runTilesetList,
}

var tilesetRecipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Inspect and update tileset recipes",
}

var tilesetRecipeGetCmd = &cobra.Command{
	Use:   "get [handle]",
	Short: "Show a tileset's recipe",
	Args:  cobra.ExactArgs(1),
	RunE:  runTilesetRecipeGet,
}

var tilesetRecipeUpdateCmd = &cobra.Command{
	Use:   "update [handle] [recipe file]",
	Short: "Replace a tileset's recipe",
	Args:  cobra.ExactArgs(2),
	RunE:  runTilesetRecipeUpdate,
}

var tilesetRecipeValidateCmd = &cobra.Command{
	Use:   "validate [recipe file]",
	Short: "Validate a recipe against the service",
	Args:  cobra.ExactArgs(1),
	RunE:  runTilesetRecipeValidate,
}

func init() {
	rootCmd.AddCommand(tilesetCmd)
	tilesetCmd.AddCommand(
		tilesetCreateCmd, tilesetPublishCmd, tilesetUpdateCmd, tilesetDeleteCmd,
		tilesetStatusCmd, tilesetTileJSONCmd, tilesetJobsCmd, tilesetJobCmd,
		tilesetListCmd, tilesetRecipeCmd,
	)
	tilesetRecipeCmd.AddCommand(tilesetRecipeGetCmd, tilesetRecipeUpdateCmd, tilesetRecipeValidateCmd)

	tilesetCreateCmd.Flags().String("name", "", "display name of the tileset")
	tilesetCreateCmd.Flags().String("description", "", "tileset description")
	tilesetCreateCmd.Flags().String("recipe", "", "recipe file (falls back to the configured default)")
	tilesetCreateCmd.Flags().Bool("private", false, "create the tileset as private")
	tilesetCreateCmd.MarkFlagRequired("name")

	tilesetUpdateCmd.Flags().String("name", "", "display name of the tileset")
	tilesetUpdateCmd.Flags().String("description", "", "tileset description")
	tilesetUpdateCmd.Flags().Bool("private", false, "make the tileset private")

	tilesetTileJSONCmd.Flags().Bool("secure", true, "ask the service to answer over HTTPS")

	tilesetJobsCmd.Flags().String("stage", "", "filter jobs by stage")
	tilesetJobsCmd.Flags().Int("limit", 100, "maximum number of jobs listed")

	tilesetListCmd.Flags().String("type", "", "filter by tileset type")
	tilesetListCmd.Flags().String("visibility", "", "filter by visibility (public, private)")
	tilesetListCmd.Flags().String("sortby", "", "sort order (created, modified)")
	tilesetListCmd.Flags().Int("limit", 100, "maximum number of tilesets listed")
}

func tilesetOptions(cmd *cobra.Command) mts.TilesetOptions {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	private, _ := cmd.Flags().GetBool("private")
	recipe, _ := cmd.Flags().GetString("recipe")

	return mts.TilesetOptions{
		Name:        name,
		Description: description,
		Private:     private,
		RecipePath:  recipe,
	}
}

func runTilesetCreate(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	body, err := handler.CreateTileset(cmd.Context(), args[0], tilesetOptions(cmd))
	if err != nil {
		return err
	}
	return printer.Raw(body)
}

func runTilesetPublish(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	body, studioURL, err := handler.PublishTileset(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := printer.Raw(body); err != nil {
		return err
	}
	return printer.Line("Tileset job received. Visit " + studioURL + " to view the status of your tileset.")
}

func runTilesetUpdate(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	if err := handler.UpdateTileset(cmd.Context(), args[0], tilesetOptions(cmd)); err != nil {
		return err
	}
	return printer.Line("Tileset updated.")
}

func runTilesetDelete(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	if err := handler.DeleteTileset(cmd.Context(), args[0]); err != nil {
		return err
	}
	return printer.Line("Tileset deleted.")
}

func runTilesetStatus(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	status, err := handler.TilesetStatus(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printer.JSON(status)
}

func runTilesetTileJSON(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	secure, _ := cmd.Flags().GetBool("secure")
	body, err := handler.TileJSON(cmd.Context(), args, secure)
	if err != nil {
		return err
	}
	return printer.Raw(body)
}

func runTilesetJobs(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	stage, _ := cmd.Flags().GetString("stage")
	limit, _ := cmd.Flags().GetInt("limit")

	body, err := handler.ListJobs(cmd.Context(), args[0], stage, limit)
	if err != nil {
		return err
	}
	return printer.Raw(body)
}

func runTilesetJob(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	body, err := handler.Job(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	return printer.Raw(body)
}

func runTilesetList(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	tsType, _ := cmd.Flags().GetString("type")
	visibility, _ := cmd.Flags().GetString("visibility")
	sortBy, _ := cmd.Flags().GetString("sortby")
	limit, _ := cmd.Flags().GetInt("limit")

	body, err := handler.ListTilesets(cmd.Context(), mts.ListOptions{
		Type:       tsType,
		Visibility: visibility,
		SortBy:     sortBy,
		Limit:      limit,
	})
	if err != nil {
		return err
	}
	return printer.Raw(body)
}

func runTilesetRecipeGet(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	body, err := handler.Recipe(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printer.Raw(body)
}

func runTilesetRecipeUpdate(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	if err := handler.UpdateRecipe(cmd.Context(), args[0], args[1]); err != nil {
		return err
	}
	return printer.Line("Updated recipe.")
}

func runTilesetRecipeValidate(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	body, err := handler.ValidateRecipeFile(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	return printer.Raw(body)
}

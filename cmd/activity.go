// cmd/activity.go - Account activity report command
package cmd

import (
	"github.com/spf13/cobra"

	"mts-client/internal/mts"
)

// activityCmd represents the activity command
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the account's tileset activity report",
	Long: `Show one page of the account's tileset activity report. When the service
paginates, the reply carries the start token of the next page; pass it back
with --start to continue.

Examples:
  mts activity --sortby requests --orderby desc --limit 50
  mts activity --start eyJ0aWxlc2V0...`,
	Args: cobra.NoArgs,
	RunE: runActivity,
}

func init() {
	rootCmd.AddCommand(activityCmd)

	activityCmd.Flags().String("sortby", "requests", "sort key")
	activityCmd.Flags().String("orderby", "desc", "sort direction (asc, desc)")
	activityCmd.Flags().Int("limit", 100, "maximum number of entries per page")
	activityCmd.Flags().String("start", "", "pagination token from a previous page")
}

func runActivity(cmd *cobra.Command, args []string) error {
	handler, printer, err := newHandler()
	if err != nil {
		return err
	}

	sortBy, _ := cmd.Flags().GetString("sortby")
	orderBy, _ := cmd.Flags().GetString("orderby")
	limit, _ := cmd.Flags().GetInt("limit")
	start, _ := cmd.Flags().GetString("start")

	page, err := handler.Activity(cmd.Context(), mts.ActivityOptions{
		SortBy:  sortBy,
		OrderBy: orderBy,
		Limit:   limit,
		Start:   start,
	})
	if err != nil {
		return err
	}
	return printer.JSON(page)
}

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/bulletin/internal/config"
	"github.com/thenoetrevino/bulletin/internal/converters"
	"github.com/thenoetrevino/bulletin/internal/models"
	"github.com/thenoetrevino/bulletin/internal/services/activity"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent activities",
		Long:  "List recent activities, pinned first and newest first.",
		RunE:  runList,
	}

	cmd.Flags().String("project", "", "Only show activities of this project ID")
	cmd.Flags().Bool("active", false, "Only show active activities")
	cmd.Flags().Int("limit", 0, "Maximum number of activities (0 for all)")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	projectID, _ := cmd.Flags().GetString("project")
	activeOnly, _ := cmd.Flags().GetBool("active")
	limit, _ := cmd.Flags().GetInt("limit")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	application, db, err := openApp(ctx, cmd, cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	activities, err := application.ActivityService.List(ctx, activity.ListOptions{
		ProjectID:  projectID,
		ActiveOnly: activeOnly,
		Limit:      limit,
	})
	if err != nil {
		return fmt.Errorf("failed to list activities: %w", err)
	}

	out := cmd.OutOrStdout()
	if quietMode {
		for _, a := range activities {
			fmt.Fprintln(out, a.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(out).Encode(map[string]any{
			"success":    true,
			"activities": activities,
		})
	}

	if len(activities) == 0 {
		fmt.Fprintln(out, "No activities found")
		return nil
	}

	fmt.Fprintln(out, activityTable(activities))
	return nil
}

func activityTable(activities []*models.Activity) *uitable.Table {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Date"), bold.Sprint("Type"), bold.Sprint("Flags"), bold.Sprint("Headline"))
	for _, a := range activities {
		tbl.AddRow(a.ID, converters.FormatPickerText(a.DateAdded), a.Type, flags(a), a.Headline)
	}
	return tbl
}

func flags(a *models.Activity) string {
	out := ""
	if a.Pinned {
		out += "pinned "
	}
	if a.Active {
		out += "active"
	} else {
		out += "inactive"
	}
	return out
}

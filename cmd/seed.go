package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/bulletin/internal/app"
	"github.com/thenoetrevino/bulletin/internal/config"
	"github.com/thenoetrevino/bulletin/internal/database"
	"github.com/thenoetrevino/bulletin/internal/models"
	"github.com/thenoetrevino/bulletin/internal/services/commentperiod"
	"github.com/thenoetrevino/bulletin/internal/services/project"
)

const seedLockTimeout = 5 * time.Second

// SeedCmd returns the seed subcommand, which fills an empty database with
// sample projects, comment periods and activities. A database that already
// has projects is left alone.
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Add sample data",
		RunE:  runSeed,
	}
}

type seedProject struct {
	name        string
	description string
	periods     []string
}

var seedProjects = []seedProject{
	{
		name:        "Harbour Bridge Renewal",
		description: "Replacement of the harbour bridge deck",
		periods:     []string{"Draft design", "Environmental assessment"},
	},
	{
		name:        "North Valley Mine",
		description: "Proposed open pit copper mine",
		periods:     []string{"Scoping"},
	},
	{
		name:        "Coastal Trail",
		description: "Shared use trail along the coast",
	},
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	lockCtx, cancel := context.WithTimeout(ctx, seedLockTimeout)
	defer cancel()
	unlock, err := database.Lock(lockCtx, dbPath(cmd, cfg))
	if err != nil {
		return err
	}
	defer func() {
		if err := unlock(); err != nil {
			log.Printf("Error releasing database lock: %v", err)
		}
	}()

	application, db, err := openApp(ctx, cmd, cfg)
	if err != nil {
		return err
	}
	defer closeDB(db)

	existing, err := application.ProjectService.GetAll(ctx, 1, 1, models.DefaultProjectSort)
	if err != nil {
		return fmt.Errorf("failed to inspect database: %w", err)
	}
	if len(existing) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Database already has projects, nothing seeded")
		return nil
	}

	n, err := seed(cmd, application)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d activities\n", n)
	return nil
}

func seed(cmd *cobra.Command, application *app.App) (int, error) {
	ctx := cmd.Context()
	today := time.Now().Truncate(24 * time.Hour)
	count := 0

	for i, sp := range seedProjects {
		p, err := application.ProjectService.Create(ctx, project.CreateProjectRequest{
			Name:        sp.name,
			Description: sp.description,
		})
		if err != nil {
			return count, fmt.Errorf("failed to create project %q: %w", sp.name, err)
		}

		var firstPeriod *models.CommentPeriod
		for j, name := range sp.periods {
			start := today.AddDate(0, 0, 14*j)
			period, err := application.PeriodService.Create(ctx, commentperiod.CreatePeriodRequest{
				ProjectID: p.ID,
				Name:      name,
				StartDate: start,
				EndDate:   start.AddDate(0, 0, 30),
			})
			if err != nil {
				return count, fmt.Errorf("failed to create comment period %q: %w", name, err)
			}
			if firstPeriod == nil {
				firstPeriod = period
			}
		}

		news := &models.Activity{
			Headline:  sp.name + " project page launched",
			Content:   "Read about **" + sp.name + "**.\n\n" + sp.description + ".",
			DateAdded: today.AddDate(0, 0, -i),
			ProjectID: p.ID,
			Active:    true,
			Pinned:    i == 0,
			Type:      "News",
		}
		if _, err := application.ActivityService.Add(ctx, news); err != nil {
			return count, fmt.Errorf("failed to create activity: %w", err)
		}
		count++

		if firstPeriod == nil {
			continue
		}
		pcp := &models.Activity{
			Headline:  "Have your say: " + firstPeriod.Name,
			Content:   "The " + firstPeriod.Name + " comment period is open.",
			DateAdded: today.AddDate(0, 0, -i),
			ProjectID: p.ID,
			Active:    true,
			Type:      models.TypePublicCommentPeriod,
			PCP:       firstPeriod.ID,
		}
		if _, err := application.ActivityService.Add(ctx, pcp); err != nil {
			return count, fmt.Errorf("failed to create activity: %w", err)
		}
		count++
	}

	return count, nil
}

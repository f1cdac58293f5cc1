// ABOUTME: Plan generation CLI command
// ABOUTME: Drives the full pipeline from intent flags to a synced calendar
package cli

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/planforge/planforge/gcal"
	"github.com/planforge/planforge/models"
	"github.com/planforge/planforge/pipeline"
	"github.com/planforge/planforge/planner"
)

// GeneratePlanCommand generates a plan, persists it and syncs the calendar.
func GeneratePlanCommand(database *sql.DB, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	user := fs.String("user", "", "Owner user id (required)")
	title := fs.String("title", "", "Project title (required)")
	description := fs.String("description", "", "Project description")
	start := fs.String("start", "", "Start date YYYY-MM-DD (required)")
	weeks := fs.Int("weeks", 4, "Duration in weeks")
	personnel := fs.String("personnel", "", "Available personnel, comma-separated")
	domain := fs.String("domain", "", "Project domain/sector")
	tasks := fs.String("tasks", "", "Tasks to resolve, comma-separated (required)")
	priorities := fs.String("priorities", "", "Priority notes")
	budget := fs.String("budget", "", "Budget")
	constraints := fs.String("constraints", "", "Optional constraints")
	offline := fs.Bool("offline", false, "Skip the inference endpoint, use the deterministic planner")
	noSync := fs.Bool("no-sync", false, "Persist the plan without calendar sync")
	useExisting := fs.Bool("use-existing", false, "Sync into an existing calendar")
	calendarID := fs.String("calendar-id", "", "Existing calendar id (with --use-existing)")
	calendarName := fs.String("calendar-name", "", "Name for the new calendar")
	fs.Parse(args)

	if *user == "" || *title == "" || *start == "" || *tasks == "" {
		return fmt.Errorf("--user, --title, --start and --tasks are required")
	}

	ownerID, err := uuid.Parse(*user)
	if err != nil {
		return fmt.Errorf("invalid --user id: %w", err)
	}

	intent := models.ProjectIntent{
		Title:         *title,
		Description:   *description,
		StartDate:     *start,
		DurationWeeks: *weeks,
		Personnel:     *personnel,
		Domain:        *domain,
		Tasks:         *tasks,
		Priorities:    *priorities,
		Budget:        *budget,
		Constraints:   *constraints,
	}

	var client *planner.Client
	if !*offline && os.Getenv("OPENAI_API_KEY") != "" {
		client = planner.NewClient(planner.ClientConfigFromEnv())
	}

	orchestrator := &pipeline.Orchestrator{
		DB:        database,
		Generator: planner.NewGenerator(client),
	}
	if !*noSync {
		orchestrator.Calendar = gcal.NewSessionManager(database, gcal.NewOAuthConfig())
	}

	result, err := orchestrator.Run(context.Background(), intent, ownerID, models.SyncOptions{
		UseExisting:  *useExisting,
		CalendarID:   *calendarID,
		CalendarName: *calendarName,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Project created: %s (ID: %s)\n", result.Plan.Title, result.ProjectID)
	fmt.Printf("  Tasks: %d, milestones: %d\n", len(result.TaskIDs), len(result.MilestoneIDs))
	if result.CalendarID != "" {
		fmt.Printf("  Calendar %s: %d events created, %d failed\n", result.CalendarID, result.EventsCreated, result.EventsFailed)
	}
	if result.Warning != "" {
		fmt.Printf("  ⚠ %s\n", result.Warning)
	}

	return nil
}

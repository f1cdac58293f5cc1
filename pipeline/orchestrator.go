// ABOUTME: Orchestrator sequencing generate, materialize, acquire and sync
// ABOUTME: Authentication failures downgrade to a warning once the plan is persisted
package pipeline

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"google.golang.org/api/calendar/v3"

	"github.com/google/uuid"
	"github.com/planforge/planforge/gcal"
	"github.com/planforge/planforge/models"
	"github.com/planforge/planforge/planner"
)

// ClientProvider acquires an authorized calendar service for a user.
// Satisfied by *gcal.SessionManager.
type ClientProvider interface {
	AcquireClient(ctx context.Context, userID uuid.UUID) (*calendar.Service, error)
}

type Orchestrator struct {
	DB        *sql.DB
	Generator *planner.Generator

	// Calendar is optional; when nil the pipeline persists the plan and
	// skips synchronization entirely.
	Calendar ClientProvider
}

// Run executes one full pipeline pass: generate a plan for the intent,
// persist it for ownerID, then project it onto the user's calendar. Once
// the plan is materialized, calendar problems never discard it — they
// surface as a warning on the result instead.
func (o *Orchestrator) Run(ctx context.Context, intent models.ProjectIntent, ownerID uuid.UUID, opts models.SyncOptions) (*models.SyncResult, error) {
	plan := o.Generator.Generate(ctx, intent)

	materialized, err := Materialize(o.DB, plan, intent, ownerID)
	if err != nil {
		return nil, fmt.Errorf("materialize plan: %w", err)
	}

	result := &models.SyncResult{
		ProjectID:    materialized.ProjectID,
		TaskIDs:      materialized.TaskIDs,
		MilestoneIDs: materialized.MilestoneIDs,
		Plan:         plan,
	}

	if o.Calendar == nil {
		result.Warning = "calendar sync disabled"
		return result, nil
	}

	svc, err := o.Calendar.AcquireClient(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gcal.ErrNotConnected) {
			result.Warning = "calendar not connected; plan saved without calendar events"
		} else {
			result.Warning = fmt.Sprintf("calendar client unavailable: %v", err)
		}
		return result, nil
	}

	outcome, err := gcal.SyncPlan(ctx, svc, plan, opts)
	if outcome != nil {
		result.CalendarID = outcome.CalendarID
		result.EventsCreated = outcome.Created
		result.EventsFailed = outcome.Failed
	}
	if err != nil {
		log.Printf("calendar sync for project %s: %v", materialized.ProjectID, err)
		result.Warning = err.Error()
	}

	return result, nil
}

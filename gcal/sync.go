// ABOUTME: Calendar synchronizer projecting plan events onto Google Calendar
// ABOUTME: Creates or reuses a calendar and inserts one event per plan event, counting failures
package gcal

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/planforge/planforge/models"
	"github.com/planforge/planforge/planner"
)

const (
	// DefaultTimeZone is the zone stamped on every synced event.
	DefaultTimeZone = "America/Lima"

	defaultCalendarID = "primary"

	// perEventTimeout bounds each insert; failed inserts are counted, not
	// retried, so the bound can be short.
	perEventTimeout = 15 * time.Second

	// eventPause spaces inserts to respect the API rate limits.
	eventPause = 250 * time.Millisecond
)

// Google Calendar color ids per event kind.
var kindColors = map[string]string{
	models.EventKindMilestone: "11", // tomato
	models.EventKindMeeting:   "9",  // blueberry
	models.EventKindTask:      "10", // basil
}

// SyncOutcome summarizes one synchronization pass.
type SyncOutcome struct {
	CalendarID string
	Created    int
	Failed     int
}

// SyncPlan projects the plan's events onto the calendar service. Individual
// event failures are logged and counted; the only hard failure is when
// events existed but none could be created.
func SyncPlan(ctx context.Context, svc *calendar.Service, plan *models.ProjectPlan, opts models.SyncOptions) (*SyncOutcome, error) {
	calendarID := resolveCalendar(ctx, svc, plan, opts)
	outcome := &SyncOutcome{CalendarID: calendarID}

	for i, planEvent := range plan.Events {
		if i > 0 {
			time.Sleep(eventPause)
		}

		event, err := buildEvent(planEvent)
		if err != nil {
			log.Printf("skipping event %q: %v", planEvent.Title, err)
			outcome.Failed++
			continue
		}

		callCtx, cancel := context.WithTimeout(ctx, perEventTimeout)
		_, err = svc.Events.Insert(calendarID, event).Context(callCtx).Do()
		cancel()

		if err != nil {
			log.Printf("failed to create event %q: %v", planEvent.Title, err)
			outcome.Failed++
			continue
		}
		outcome.Created++
	}

	if outcome.Created == 0 && len(plan.Events) > 0 {
		return outcome, fmt.Errorf("no calendar events could be created (%d failed)", outcome.Failed)
	}

	return outcome, nil
}

// resolveCalendar picks the target calendar: an existing one when requested,
// otherwise a freshly created container, degrading to primary on failure.
func resolveCalendar(ctx context.Context, svc *calendar.Service, plan *models.ProjectPlan, opts models.SyncOptions) string {
	if opts.UseExisting {
		if opts.CalendarID != "" {
			return opts.CalendarID
		}
		return defaultCalendarID
	}

	name := opts.CalendarName
	if name == "" {
		name = "📋 " + plan.Title
	}

	created, err := svc.Calendars.Insert(&calendar.Calendar{
		Summary:  name,
		TimeZone: DefaultTimeZone,
	}).Context(ctx).Do()
	if err != nil {
		log.Printf("failed to create calendar %q, using primary: %v", name, err)
		return defaultCalendarID
	}

	return created.Id
}

func buildEvent(planEvent models.PlanEvent) (*calendar.Event, error) {
	start, err := planner.ParseEventTime(planEvent.Start)
	if err != nil {
		return nil, fmt.Errorf("invalid start %q", planEvent.Start)
	}
	end, err := planner.ParseEventTime(planEvent.End)
	if err != nil {
		return nil, fmt.Errorf("invalid end %q", planEvent.End)
	}

	colorID, ok := kindColors[planEvent.Kind]
	if !ok {
		colorID = kindColors[models.EventKindTask]
	}

	return &calendar.Event{
		Summary:     planEvent.Title,
		Description: buildDescription(planEvent),
		ColorId:     colorID,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: DefaultTimeZone,
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: DefaultTimeZone,
		},
	}, nil
}

func buildDescription(planEvent models.PlanEvent) string {
	var parts []string
	if planEvent.Description != "" {
		parts = append(parts, planEvent.Description)
	}
	if planEvent.Owner != "" {
		parts = append(parts, "Responsable: "+planEvent.Owner)
	}
	if planEvent.RelatedTaskID != "" {
		parts = append(parts, "Tarea: "+planEvent.RelatedTaskID)
	}
	return strings.Join(parts, "\n")
}

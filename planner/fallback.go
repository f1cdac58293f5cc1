// ABOUTME: Deterministic plan synthesis used when model generation is unusable
// ABOUTME: Lays out comma-separated tasks sequentially from the intent start date
package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/planforge/planforge/models"
)

const (
	fallbackTaskSpanDays   = 2
	fallbackStaggerDays    = 3
	fallbackStartTime      = "09:00"
	fallbackEndTime        = "17:00"
	fallbackHoursPerTask   = 16
	fallbackWeeklyHours    = 40
	fallbackDefaultWeeks   = 4
	fallbackDefaultOwner   = "Equipo"
	fallbackTimeZoneOffset = "-05:00" // America/Lima
)

// FallbackPlan synthesizes a plan from the intent alone. It is pure: the
// same intent always yields an identical plan.
func FallbackPlan(intent models.ProjectIntent) *models.ProjectPlan {
	start, err := time.Parse(dateLayout, intent.StartDate)
	if err != nil {
		start = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	weeks := intent.DurationWeeks
	if weeks <= 0 {
		weeks = fallbackDefaultWeeks
	}
	end := start.AddDate(0, 0, weeks*7)

	personnel := splitList(intent.Personnel)
	owner := fallbackDefaultOwner
	if len(personnel) > 0 {
		owner = personnel[0]
	} else {
		personnel = []string{fallbackDefaultOwner}
	}

	names := splitList(intent.Tasks)
	if len(names) == 0 {
		names = []string{"Planning", "Execution", "Review"}
	}

	tasks := make([]models.PlanTask, 0, len(names))
	schedule := make(map[string][]string, len(names))

	for i, name := range names {
		taskStart := start.AddDate(0, 0, i*fallbackStaggerDays)
		taskEnd := taskStart.AddDate(0, 0, fallbackTaskSpanDays)

		priority := models.PriorityMedium
		if i < 2 {
			priority = models.PriorityHigh
		}

		task := models.PlanTask{
			ID:            fmt.Sprintf("t%d", i+1),
			Name:          name,
			Description:   fmt.Sprintf("Resolve: %s", name),
			Priority:      priority,
			Owner:         owner,
			StartDate:     taskStart.Format(dateLayout),
			EndDate:       taskEnd.Format(dateLayout),
			StartTime:     fallbackStartTime,
			EndTime:       fallbackEndTime,
			DurationHours: fallbackHoursPerTask,
			Kind:          models.EventKindTask,
			Status:        models.TaskStatusPending,
		}
		tasks = append(tasks, task)

		day := task.StartDate
		schedule[day] = append(schedule[day], name)
	}

	allocation := make(map[string]float64, len(personnel))
	for _, person := range personnel {
		allocation[person] = fallbackWeeklyHours
	}

	events := []models.PlanEvent{
		{
			Title:       fmt.Sprintf("Kickoff: %s", intent.Title),
			Description: "Project kickoff meeting",
			Start:       start.Format(dateLayout) + "T09:00:00" + fallbackTimeZoneOffset,
			End:         start.Format(dateLayout) + "T10:00:00" + fallbackTimeZoneOffset,
			Owner:       owner,
			Kind:        models.EventKindMeeting,
		},
		{
			Title:       fmt.Sprintf("Delivery: %s", intent.Title),
			Description: "Final project delivery",
			Start:       end.Format(dateLayout) + "T16:00:00" + fallbackTimeZoneOffset,
			End:         end.Format(dateLayout) + "T17:00:00" + fallbackTimeZoneOffset,
			Owner:       owner,
			Kind:        models.EventKindMilestone,
		},
	}

	risks := []models.PlanRisk{
		{
			Description: "Sequential task layout leaves no slack for delays",
			Probability: models.PriorityMedium,
			Mitigation:  "Review progress at each task boundary and reprioritize",
			Owner:       owner,
		},
	}

	return &models.ProjectPlan{
		Title:            intent.Title,
		Description:      intent.Description,
		StartDate:        start.Format(dateLayout),
		EndDate:          end.Format(dateLayout),
		DurationWeeks:    weeks,
		Personnel:        personnel,
		Domain:           intent.Domain,
		Tasks:            tasks,
		DailySchedule:    schedule,
		Events:           events,
		WeeklyAllocation: allocation,
		Risks:            risks,
		StrategySummary:  fmt.Sprintf("Sequential execution of %d tasks over %d weeks, staggered every %d days.", len(tasks), weeks, fallbackStaggerDays),
	}
}

// splitList splits comma-separated free text into trimmed, non-empty items.
func splitList(text string) []string {
	var items []string
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}

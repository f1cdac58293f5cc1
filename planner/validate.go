// ABOUTME: Schema validation for generated project plans
// ABOUTME: Normalizes enums, checks dates and required fields, warns on dangling references
package planner

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/planforge/planforge/models"
)

const dateLayout = "2006-01-02"

// ValidatePlan checks an untrusted plan against the schema contract and
// normalizes enum values in place. Dangling task references are logged but
// never fatal.
func ValidatePlan(plan *models.ProjectPlan) error {
	if strings.TrimSpace(plan.Title) == "" {
		return fmt.Errorf("plan missing title")
	}
	if _, err := time.Parse(dateLayout, plan.StartDate); err != nil {
		return fmt.Errorf("invalid start date %q: %w", plan.StartDate, err)
	}
	if _, err := time.Parse(dateLayout, plan.EndDate); err != nil {
		return fmt.Errorf("invalid end date %q: %w", plan.EndDate, err)
	}
	if plan.DurationWeeks <= 0 {
		return fmt.Errorf("invalid duration: %d weeks", plan.DurationWeeks)
	}
	if len(plan.Tasks) == 0 {
		return fmt.Errorf("plan has no tasks")
	}

	taskIDs := make(map[string]bool, len(plan.Tasks))

	for i := range plan.Tasks {
		task := &plan.Tasks[i]

		if strings.TrimSpace(task.ID) == "" {
			return fmt.Errorf("task %d missing id", i)
		}
		if strings.TrimSpace(task.Name) == "" {
			return fmt.Errorf("task %q missing name", task.ID)
		}

		priority, err := normalizeLevel(task.Priority)
		if err != nil {
			return fmt.Errorf("task %q: %w", task.ID, err)
		}
		task.Priority = priority

		if _, err := time.Parse(dateLayout, task.StartDate); err != nil {
			return fmt.Errorf("task %q invalid start date %q", task.ID, task.StartDate)
		}
		if _, err := time.Parse(dateLayout, task.EndDate); err != nil {
			return fmt.Errorf("task %q invalid end date %q", task.ID, task.EndDate)
		}

		if task.Kind == "" {
			task.Kind = models.EventKindTask
		}
		if task.Status == "" {
			task.Status = models.TaskStatusPending
		}

		taskIDs[task.ID] = true
	}

	for i := range plan.Events {
		event := &plan.Events[i]

		if strings.TrimSpace(event.Title) == "" {
			return fmt.Errorf("event %d missing title", i)
		}

		kind := strings.ToLower(strings.TrimSpace(event.Kind))
		switch kind {
		case models.EventKindTask, models.EventKindMeeting, models.EventKindMilestone:
			event.Kind = kind
		case "":
			event.Kind = models.EventKindTask
		default:
			return fmt.Errorf("event %q has unknown kind %q", event.Title, event.Kind)
		}

		if _, err := ParseEventTime(event.Start); err != nil {
			return fmt.Errorf("event %q invalid start %q", event.Title, event.Start)
		}
		if _, err := ParseEventTime(event.End); err != nil {
			return fmt.Errorf("event %q invalid end %q", event.Title, event.End)
		}

		if event.RelatedTaskID != "" && !taskIDs[event.RelatedTaskID] {
			log.Printf("plan %q: event %q references unknown task %q", plan.Title, event.Title, event.RelatedTaskID)
		}
	}

	for i := range plan.Risks {
		risk := &plan.Risks[i]
		probability, err := normalizeLevel(risk.Probability)
		if err != nil {
			return fmt.Errorf("risk %d: %w", i, err)
		}
		risk.Probability = probability
	}

	// Dangling dependencies are tolerated, matching the producer
	for _, task := range plan.Tasks {
		for _, dep := range task.Dependencies {
			if !taskIDs[dep] {
				log.Printf("plan %q: task %q depends on unknown task %q", plan.Title, task.ID, dep)
			}
		}
	}

	return nil
}

// normalizeLevel maps a priority/probability value onto the high/medium/low
// enum, accepting the Spanish spellings the producer occasionally emits.
func normalizeLevel(value string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case models.PriorityHigh, "alta":
		return models.PriorityHigh, nil
	case models.PriorityMedium, "media", "":
		return models.PriorityMedium, nil
	case models.PriorityLow, "baja":
		return models.PriorityLow, nil
	default:
		return "", fmt.Errorf("unknown level %q", value)
	}
}

// ParseEventTime accepts RFC 3339 timestamps, with or without an offset.
func ParseEventTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", value)
}

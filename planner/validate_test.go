// ABOUTME: Tests for plan schema validation
// ABOUTME: Covers enum normalization, date checks and tolerated dangling references
package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/planforge/models"
)

func minimalPlan() *models.ProjectPlan {
	return &models.ProjectPlan{
		Title:         "Minimal",
		StartDate:     "2025-02-03",
		EndDate:       "2025-03-03",
		DurationWeeks: 4,
		Tasks: []models.PlanTask{
			{
				ID:        "t1",
				Name:      "Only task",
				Priority:  "high",
				StartDate: "2025-02-03",
				EndDate:   "2025-02-05",
			},
		},
	}
}

func TestValidatePlanAcceptsMinimal(t *testing.T) {
	plan := minimalPlan()
	require.NoError(t, ValidatePlan(plan))

	// Defaults filled in during validation
	assert.Equal(t, models.EventKindTask, plan.Tasks[0].Kind)
	assert.Equal(t, models.TaskStatusPending, plan.Tasks[0].Status)
}

func TestValidatePlanNormalizesLevels(t *testing.T) {
	plan := minimalPlan()
	plan.Tasks[0].Priority = "ALTA"
	plan.Risks = []models.PlanRisk{{Description: "r", Probability: "Baja"}}

	require.NoError(t, ValidatePlan(plan))
	assert.Equal(t, models.PriorityHigh, plan.Tasks[0].Priority)
	assert.Equal(t, models.PriorityLow, plan.Risks[0].Probability)
}

func TestValidatePlanRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ProjectPlan)
	}{
		{"missing title", func(p *models.ProjectPlan) { p.Title = " " }},
		{"bad start date", func(p *models.ProjectPlan) { p.StartDate = "03/02/2025" }},
		{"bad end date", func(p *models.ProjectPlan) { p.EndDate = "soon" }},
		{"zero duration", func(p *models.ProjectPlan) { p.DurationWeeks = 0 }},
		{"no tasks", func(p *models.ProjectPlan) { p.Tasks = nil }},
		{"task without id", func(p *models.ProjectPlan) { p.Tasks[0].ID = "" }},
		{"task without name", func(p *models.ProjectPlan) { p.Tasks[0].Name = "" }},
		{"unknown priority", func(p *models.ProjectPlan) { p.Tasks[0].Priority = "urgent" }},
		{"bad task date", func(p *models.ProjectPlan) { p.Tasks[0].StartDate = "week one" }},
		{"unknown event kind", func(p *models.ProjectPlan) {
			p.Events = []models.PlanEvent{{Title: "E", Kind: "party", Start: "2025-02-03T09:00:00-05:00", End: "2025-02-03T10:00:00-05:00"}}
		}},
		{"bad event timestamp", func(p *models.ProjectPlan) {
			p.Events = []models.PlanEvent{{Title: "E", Kind: "meeting", Start: "tomorrow", End: "2025-02-03T10:00:00-05:00"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := minimalPlan()
			tt.mutate(plan)
			assert.Error(t, ValidatePlan(plan))
		})
	}
}

func TestValidatePlanToleratesDanglingReferences(t *testing.T) {
	plan := minimalPlan()
	plan.Tasks[0].Dependencies = []string{"t99"}
	plan.Events = []models.PlanEvent{{
		Title:         "Review",
		Kind:          models.EventKindMeeting,
		Start:         "2025-02-04T09:00:00-05:00",
		End:           "2025-02-04T10:00:00-05:00",
		RelatedTaskID: "t42",
	}}

	// Dangling references are logged, never fatal
	assert.NoError(t, ValidatePlan(plan))
}

func TestParseEventTime(t *testing.T) {
	withOffset, err := ParseEventTime("2025-02-03T09:00:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, 9, withOffset.Hour())

	naive, err := ParseEventTime("2025-02-03T09:00:00")
	require.NoError(t, err)
	assert.Equal(t, 9, naive.Hour())

	_, err = ParseEventTime("yesterday")
	assert.Error(t, err)
}

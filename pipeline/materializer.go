// ABOUTME: Plan materializer converting a validated plan into persisted domain records
// ABOUTME: Creates the project first, then config snapshot, tasks and milestones
package pipeline

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/planforge/planforge/db"
	"github.com/planforge/planforge/models"
	"github.com/planforge/planforge/planner"
)

const dateLayout = "2006-01-02"

// MaterializedPlan lists the records created for one plan.
type MaterializedPlan struct {
	ProjectID    uuid.UUID
	TaskIDs      []uuid.UUID
	MilestoneIDs []uuid.UUID
}

// Materialize persists the plan as Project/ProjectConfig/Task/Milestone
// records owned by ownerID. The project record is created first and must
// exist; later failures are logged and skipped — there is no rollback, the
// caller reports exact counts instead of promising atomicity.
func Materialize(database *sql.DB, plan *models.ProjectPlan, intent models.ProjectIntent, ownerID uuid.UUID) (*MaterializedPlan, error) {
	startDate, err := time.Parse(dateLayout, plan.StartDate)
	if err != nil {
		return nil, fmt.Errorf("plan start date: %w", err)
	}
	endDate, err := time.Parse(dateLayout, plan.EndDate)
	if err != nil {
		return nil, fmt.Errorf("plan end date: %w", err)
	}

	project := &models.Project{
		OwnerID:     ownerID,
		Title:       plan.Title,
		Description: plan.Description,
		Domain:      plan.Domain,
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if err := db.CreateProject(database, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	result := &MaterializedPlan{ProjectID: project.ID}

	if err := saveConfigSnapshot(database, project.ID, plan, intent); err != nil {
		log.Printf("project %s: failed to save config snapshot: %v", project.ID, err)
	}

	for _, planTask := range plan.Tasks {
		task, err := taskRecord(project.ID, planTask)
		if err != nil {
			log.Printf("project %s: skipping task %q: %v", project.ID, planTask.ID, err)
			continue
		}
		if err := db.CreateTask(database, task); err != nil {
			log.Printf("project %s: failed to create task %q: %v", project.ID, planTask.ID, err)
			continue
		}
		result.TaskIDs = append(result.TaskIDs, task.ID)
	}

	for _, event := range plan.Events {
		if event.Kind != models.EventKindMilestone {
			continue
		}
		milestone, err := milestoneRecord(project.ID, event)
		if err != nil {
			log.Printf("project %s: skipping milestone %q: %v", project.ID, event.Title, err)
			continue
		}
		if err := db.CreateMilestone(database, milestone); err != nil {
			log.Printf("project %s: failed to create milestone %q: %v", project.ID, event.Title, err)
			continue
		}
		result.MilestoneIDs = append(result.MilestoneIDs, milestone.ID)
	}

	return result, nil
}

func saveConfigSnapshot(database *sql.DB, projectID uuid.UUID, plan *models.ProjectPlan, intent models.ProjectIntent) error {
	intentJSON, err := json.Marshal(intent)
	if err != nil {
		return fmt.Errorf("marshal intent: %w", err)
	}
	planJSON, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal plan: %w", err)
	}

	return db.CreateProjectConfig(database, &models.ProjectConfig{
		ProjectID:  projectID,
		IntentJSON: string(intentJSON),
		PlanJSON:   string(planJSON),
	})
}

func taskRecord(projectID uuid.UUID, planTask models.PlanTask) (*models.Task, error) {
	startDate, err := time.Parse(dateLayout, planTask.StartDate)
	if err != nil {
		return nil, fmt.Errorf("start date %q", planTask.StartDate)
	}
	endDate, err := time.Parse(dateLayout, planTask.EndDate)
	if err != nil {
		return nil, fmt.Errorf("end date %q", planTask.EndDate)
	}

	return &models.Task{
		ProjectID:     projectID,
		PlanTaskID:    planTask.ID,
		Name:          planTask.Name,
		Description:   planTask.Description,
		Priority:      planTask.Priority,
		Owner:         planTask.Owner,
		StartDate:     startDate,
		EndDate:       endDate,
		StartTime:     planTask.StartTime,
		EndTime:       planTask.EndTime,
		DurationHours: planTask.DurationHours,
		Kind:          planTask.Kind,
		Status:        planTask.Status,
	}, nil
}

func milestoneRecord(projectID uuid.UUID, event models.PlanEvent) (*models.Milestone, error) {
	dueAt, err := planner.ParseEventTime(event.Start)
	if err != nil {
		return nil, fmt.Errorf("timestamp %q", event.Start)
	}

	return &models.Milestone{
		ProjectID:     projectID,
		Title:         event.Title,
		Description:   event.Description,
		DueAt:         dueAt,
		Owner:         event.Owner,
		RelatedTaskID: event.RelatedTaskID,
	}, nil
}

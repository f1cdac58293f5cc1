// ABOUTME: Task database operations
// ABOUTME: Handles task creation and per-project listing for materialized plans
package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/planforge/planforge/models"
)

func CreateTask(db *sql.DB, task *models.Task) error {
	task.ID = uuid.New()
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now

	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if task.Kind == "" {
		task.Kind = models.EventKindTask
	}
	if task.Status == "" {
		task.Status = models.TaskStatusPending
	}

	_, err := db.Exec(`
		INSERT INTO tasks (id, project_id, plan_task_id, name, description, priority, owner,
			start_date, end_date, start_time, end_time, duration_hours, kind, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, task.ID.String(), task.ProjectID.String(), task.PlanTaskID, task.Name, task.Description,
		task.Priority, task.Owner, task.StartDate, task.EndDate, task.StartTime, task.EndTime,
		task.DurationHours, task.Kind, task.Status, task.CreatedAt, task.UpdatedAt)

	return err
}

func ListTasksByProject(db *sql.DB, projectID uuid.UUID) ([]models.Task, error) {
	rows, err := db.Query(`
		SELECT id, project_id, plan_task_id, name, description, priority, owner,
			start_date, end_date, start_time, end_time, duration_hours, kind, status, created_at, updated_at
		FROM tasks
		WHERE project_id = ?
		ORDER BY start_date, created_at
	`, projectID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var durationHours sql.NullFloat64

		if err := rows.Scan(&t.ID, &t.ProjectID, &t.PlanTaskID, &t.Name, &t.Description,
			&t.Priority, &t.Owner, &t.StartDate, &t.EndDate, &t.StartTime, &t.EndTime,
			&durationHours, &t.Kind, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}

		if durationHours.Valid {
			t.DurationHours = durationHours.Float64
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

func UpdateTaskStatus(db *sql.DB, id uuid.UUID, status string) error {
	_, err := db.Exec(`
		UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?
	`, status, time.Now(), id.String())
	return err
}

// ABOUTME: Milestone database operations
// ABOUTME: Handles milestone creation and per-project listing
package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/planforge/planforge/models"
)

func CreateMilestone(db *sql.DB, milestone *models.Milestone) error {
	milestone.ID = uuid.New()
	milestone.CreatedAt = time.Now()

	_, err := db.Exec(`
		INSERT INTO milestones (id, project_id, title, description, due_at, owner, related_task_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, milestone.ID.String(), milestone.ProjectID.String(), milestone.Title, milestone.Description,
		milestone.DueAt, milestone.Owner, milestone.RelatedTaskID, milestone.CreatedAt)

	return err
}

func ListMilestonesByProject(db *sql.DB, projectID uuid.UUID) ([]models.Milestone, error) {
	rows, err := db.Query(`
		SELECT id, project_id, title, description, due_at, owner, related_task_id, created_at
		FROM milestones
		WHERE project_id = ?
		ORDER BY due_at
	`, projectID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var milestones []models.Milestone
	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Title, &m.Description, &m.DueAt,
			&m.Owner, &m.RelatedTaskID, &m.CreatedAt); err != nil {
			return nil, err
		}
		milestones = append(milestones, m)
	}

	return milestones, rows.Err()
}

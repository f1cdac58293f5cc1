// ABOUTME: Project database operations
// ABOUTME: Handles project creation and lookups for materialized plans
package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/planforge/planforge/models"
)

func CreateProject(db *sql.DB, project *models.Project) error {
	project.ID = uuid.New()
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now

	_, err := db.Exec(`
		INSERT INTO projects (id, owner_id, title, description, domain, start_date, end_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, project.ID.String(), project.OwnerID.String(), project.Title, project.Description, project.Domain,
		project.StartDate, project.EndDate, project.CreatedAt, project.UpdatedAt)

	return err
}

func GetProject(db *sql.DB, id uuid.UUID) (*models.Project, error) {
	project := &models.Project{}

	err := db.QueryRow(`
		SELECT id, owner_id, title, description, domain, start_date, end_date, created_at, updated_at
		FROM projects WHERE id = ?
	`, id.String()).Scan(
		&project.ID,
		&project.OwnerID,
		&project.Title,
		&project.Description,
		&project.Domain,
		&project.StartDate,
		&project.EndDate,
		&project.CreatedAt,
		&project.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return project, nil
}

func ListProjects(db *sql.DB, ownerID uuid.UUID, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := db.Query(`
		SELECT id, owner_id, title, description, domain, start_date, end_date, created_at, updated_at
		FROM projects
		WHERE owner_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, ownerID.String(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Title, &p.Description, &p.Domain,
			&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

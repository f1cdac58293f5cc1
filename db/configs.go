// ABOUTME: Project configuration snapshot operations
// ABOUTME: Stores the original intent and generated plan for audit and regeneration
package db

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/planforge/planforge/models"
)

func CreateProjectConfig(db *sql.DB, config *models.ProjectConfig) error {
	config.ID = uuid.New()
	config.CreatedAt = time.Now()

	_, err := db.Exec(`
		INSERT INTO project_configs (id, project_id, intent_json, plan_json, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, config.ID.String(), config.ProjectID.String(), config.IntentJSON, config.PlanJSON, config.CreatedAt)

	return err
}

func GetProjectConfig(db *sql.DB, projectID uuid.UUID) (*models.ProjectConfig, error) {
	config := &models.ProjectConfig{}

	err := db.QueryRow(`
		SELECT id, project_id, intent_json, plan_json, created_at
		FROM project_configs
		WHERE project_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, projectID.String()).Scan(
		&config.ID,
		&config.ProjectID,
		&config.IntentJSON,
		&config.PlanJSON,
		&config.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return config, nil
}

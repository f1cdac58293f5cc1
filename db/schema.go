// ABOUTME: Database schema definitions and migrations
// ABOUTME: Handles SQLite table creation for projects, tasks, milestones and credentials
package db

import (
	"database/sql"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	owner_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	domain TEXT,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_projects_owner_id ON projects(owner_id);

CREATE TABLE IF NOT EXISTS project_configs (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	intent_json TEXT NOT NULL,
	plan_json TEXT NOT NULL,
	created_at DATETIME NOT NULL,
	FOREIGN KEY (project_id) REFERENCES projects(id)
);

CREATE INDEX IF NOT EXISTS idx_project_configs_project_id ON project_configs(project_id);

CREATE TABLE IF NOT EXISTS tasks (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	plan_task_id TEXT,
	name TEXT NOT NULL,
	description TEXT,
	priority TEXT NOT NULL DEFAULT 'medium' CHECK(priority IN ('high', 'medium', 'low')),
	owner TEXT,
	start_date DATE NOT NULL,
	end_date DATE NOT NULL,
	start_time TEXT,
	end_time TEXT,
	duration_hours REAL,
	kind TEXT NOT NULL DEFAULT 'task',
	status TEXT NOT NULL DEFAULT 'pending' CHECK(status IN ('pending', 'in_progress', 'done')),
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,
	FOREIGN KEY (project_id) REFERENCES projects(id)
);

CREATE INDEX IF NOT EXISTS idx_tasks_project_id ON tasks(project_id);
CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);

CREATE TABLE IF NOT EXISTS milestones (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	due_at DATETIME NOT NULL,
	owner TEXT,
	related_task_id TEXT,
	created_at DATETIME NOT NULL,
	FOREIGN KEY (project_id) REFERENCES projects(id)
);

CREATE INDEX IF NOT EXISTS idx_milestones_project_id ON milestones(project_id);

CREATE TABLE IF NOT EXISTS oauth_credentials (
	user_id TEXT PRIMARY KEY,
	access_token TEXT NOT NULL,
	refresh_token TEXT NOT NULL,
	expiry DATETIME NOT NULL,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
);
`

func InitSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}

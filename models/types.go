// ABOUTME: Data models for the plan generation and calendar sync pipeline
// ABOUTME: Defines ProjectIntent, ProjectPlan and persisted Project/Task/Milestone records
package models

import (
	"time"

	"github.com/google/uuid"
)

// ProjectIntent is the user-supplied description of a desired project.
// It lives for a single generation request and is never persisted as-is.
type ProjectIntent struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	StartDate     string `json:"start_date"` // YYYY-MM-DD
	DurationWeeks int    `json:"duration_weeks"`
	Personnel     string `json:"personnel"` // free text, comma-separated
	Domain        string `json:"domain"`
	Tasks         string `json:"tasks"` // free text, comma-separated
	Priorities    string `json:"priorities"`
	Budget        string `json:"budget"`
	Constraints   string `json:"constraints,omitempty"`
}

// ProjectPlan is the validated, structured output of plan generation.
// The JSON tags are the wire contract with the inference endpoint; the
// upstream producer speaks Spanish keys, enum values stay English.
type ProjectPlan struct {
	Title            string              `json:"titulo"`
	Description      string              `json:"descripcion"`
	StartDate        string              `json:"fecha_inicio"`
	EndDate          string              `json:"fecha_fin"`
	DurationWeeks    int                 `json:"duracion_semanas"`
	Personnel        []string            `json:"personal"`
	Domain           string              `json:"dominio"`
	Tasks            []PlanTask          `json:"tareas"`
	DailySchedule    map[string][]string `json:"cronograma_diario"`
	Events           []PlanEvent         `json:"eventos"`
	WeeklyAllocation map[string]float64  `json:"carga_semanal"`
	Risks            []PlanRisk          `json:"riesgos"`
	StrategySummary  string              `json:"resumen_estrategia"`
}

type PlanTask struct {
	ID            string   `json:"id"`
	Name          string   `json:"nombre"`
	Description   string   `json:"descripcion"`
	Priority      string   `json:"prioridad"`
	Owner         string   `json:"responsable"`
	StartDate     string   `json:"fecha_inicio"`
	EndDate       string   `json:"fecha_fin"`
	StartTime     string   `json:"hora_inicio"`
	EndTime       string   `json:"hora_fin"`
	DurationHours float64  `json:"duracion_horas"`
	Dependencies  []string `json:"dependencias,omitempty"`
	Kind          string   `json:"tipo"`
	Status        string   `json:"estado"`
}

type PlanEvent struct {
	Title         string `json:"titulo"`
	Description   string `json:"descripcion"`
	Start         string `json:"inicio"` // RFC 3339
	End           string `json:"fin"`
	Owner         string `json:"responsable"`
	Kind          string `json:"tipo"`
	RelatedTaskID string `json:"tarea_relacionada,omitempty"`
}

type PlanRisk struct {
	Description string `json:"descripcion"`
	Probability string `json:"probabilidad"`
	Mitigation  string `json:"mitigacion"`
	Owner       string `json:"responsable"`
}

// Priority and probability levels.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Plan event kinds.
const (
	EventKindTask      = "task"
	EventKindMeeting   = "meeting"
	EventKindMilestone = "milestone"
)

// Task status constants.
const (
	TaskStatusPending    = "pending"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

// Project is the persisted record derived from a plan. Ownership is
// exclusive: one owning user, set at creation, immutable.
type Project struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Domain      string    `json:"domain,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProjectConfig captures the original intent plus the full generated plan
// as an opaque snapshot, kept for audit and regeneration.
type ProjectConfig struct {
	ID         uuid.UUID `json:"id"`
	ProjectID  uuid.UUID `json:"project_id"`
	IntentJSON string    `json:"intent_json"`
	PlanJSON   string    `json:"plan_json"`
	CreatedAt  time.Time `json:"created_at"`
}

type Task struct {
	ID            uuid.UUID `json:"id"`
	ProjectID     uuid.UUID `json:"project_id"`
	PlanTaskID    string    `json:"plan_task_id,omitempty"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Priority      string    `json:"priority"`
	Owner         string    `json:"owner,omitempty"`
	StartDate     time.Time `json:"start_date"`
	EndDate       time.Time `json:"end_date"`
	StartTime     string    `json:"start_time,omitempty"`
	EndTime       string    `json:"end_time,omitempty"`
	DurationHours float64   `json:"duration_hours,omitempty"`
	Kind          string    `json:"kind"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type Milestone struct {
	ID            uuid.UUID `json:"id"`
	ProjectID     uuid.UUID `json:"project_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	DueAt         time.Time `json:"due_at"`
	Owner         string    `json:"owner,omitempty"`
	RelatedTaskID string    `json:"related_task_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// OAuthCredential is the one-per-user calendar credential. It is mutated
// only by the OAuth session manager and never leaves the pipeline.
type OAuthCredential struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	Expiry       time.Time `json:"expiry"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SyncOptions controls calendar selection during synchronization.
type SyncOptions struct {
	UseExisting  bool
	CalendarID   string
	CalendarName string
}

// SyncResult is the transient summary of one orchestration run.
type SyncResult struct {
	CalendarID    string       `json:"calendar_id,omitempty"`
	EventsCreated int          `json:"events_created"`
	EventsFailed  int          `json:"events_failed"`
	ProjectID     uuid.UUID    `json:"project_id"`
	TaskIDs       []uuid.UUID  `json:"task_ids"`
	MilestoneIDs  []uuid.UUID  `json:"milestone_ids"`
	Plan          *ProjectPlan `json:"plan"`
	Warning       string       `json:"warning,omitempty"`
}

// ABOUTME: Tests for project, task, milestone and config persistence
// ABOUTME: Covers creation, lookups and per-project listings
package db

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planforge/planforge/models"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func TestCreateAndGetProject(t *testing.T) {
	database := testDB(t)
	ownerID := uuid.New()

	project := &models.Project{
		OwnerID:     ownerID,
		Title:       "Launch",
		Description: "Product launch",
		Domain:      "software",
		StartDate:   date("2025-01-01"),
		EndDate:     date("2025-01-15"),
	}
	require.NoError(t, CreateProject(database, project))
	assert.NotEqual(t, uuid.Nil, project.ID)

	stored, err := GetProject(database, project.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Launch", stored.Title)
	assert.Equal(t, ownerID, stored.OwnerID)
	assert.Equal(t, "2025-01-01", stored.StartDate.Format("2006-01-02"))
}

func TestGetProjectMissing(t *testing.T) {
	database := testDB(t)

	stored, err := GetProject(database, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestListProjectsByOwner(t *testing.T) {
	database := testDB(t)
	owner := uuid.New()
	other := uuid.New()

	for i, title := range []string{"One", "Two"} {
		project := &models.Project{
			OwnerID:   owner,
			Title:     title,
			StartDate: date("2025-01-01").AddDate(0, 0, i),
			EndDate:   date("2025-02-01"),
		}
		require.NoError(t, CreateProject(database, project))
	}
	stranger := &models.Project{OwnerID: other, Title: "Theirs", StartDate: date("2025-01-01"), EndDate: date("2025-02-01")}
	require.NoError(t, CreateProject(database, stranger))

	projects, err := ListProjects(database, owner, 0)
	require.NoError(t, err)
	assert.Len(t, projects, 2)
	for _, project := range projects {
		assert.Equal(t, owner, project.OwnerID)
	}
}

func TestCreateAndListTasks(t *testing.T) {
	database := testDB(t)

	project := &models.Project{OwnerID: uuid.New(), Title: "P", StartDate: date("2025-01-01"), EndDate: date("2025-02-01")}
	require.NoError(t, CreateProject(database, project))

	task := &models.Task{
		ProjectID:     project.ID,
		PlanTaskID:    "t1",
		Name:          "Design",
		Priority:      models.PriorityHigh,
		Owner:         "Ana",
		StartDate:     date("2025-01-01"),
		EndDate:       date("2025-01-03"),
		StartTime:     "09:00",
		EndTime:       "17:00",
		DurationHours: 16,
		Kind:          models.EventKindTask,
		Status:        models.TaskStatusPending,
	}
	require.NoError(t, CreateTask(database, task))

	// Defaults applied when fields are left empty
	bare := &models.Task{ProjectID: project.ID, Name: "Bare", StartDate: date("2025-01-04"), EndDate: date("2025-01-06")}
	require.NoError(t, CreateTask(database, bare))
	assert.Equal(t, models.PriorityMedium, bare.Priority)
	assert.Equal(t, models.TaskStatusPending, bare.Status)

	tasks, err := ListTasksByProject(database, project.ID)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "Design", tasks[0].Name)
	assert.Equal(t, float64(16), tasks[0].DurationHours)
}

func TestUpdateTaskStatus(t *testing.T) {
	database := testDB(t)

	project := &models.Project{OwnerID: uuid.New(), Title: "P", StartDate: date("2025-01-01"), EndDate: date("2025-02-01")}
	require.NoError(t, CreateProject(database, project))

	task := &models.Task{ProjectID: project.ID, Name: "T", StartDate: date("2025-01-01"), EndDate: date("2025-01-02")}
	require.NoError(t, CreateTask(database, task))

	require.NoError(t, UpdateTaskStatus(database, task.ID, models.TaskStatusDone))

	tasks, err := ListTasksByProject(database, project.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusDone, tasks[0].Status)
}

func TestCreateAndListMilestones(t *testing.T) {
	database := testDB(t)

	project := &models.Project{OwnerID: uuid.New(), Title: "P", StartDate: date("2025-01-01"), EndDate: date("2025-02-01")}
	require.NoError(t, CreateProject(database, project))

	milestone := &models.Milestone{
		ProjectID:     project.ID,
		Title:         "Delivery",
		DueAt:         date("2025-02-01").Add(17 * time.Hour),
		Owner:         "Ana",
		RelatedTaskID: "t3",
	}
	require.NoError(t, CreateMilestone(database, milestone))

	milestones, err := ListMilestonesByProject(database, project.ID)
	require.NoError(t, err)
	require.Len(t, milestones, 1)
	assert.Equal(t, "Delivery", milestones[0].Title)
	assert.Equal(t, "t3", milestones[0].RelatedTaskID)
}

func TestProjectConfigSnapshot(t *testing.T) {
	database := testDB(t)

	project := &models.Project{OwnerID: uuid.New(), Title: "P", StartDate: date("2025-01-01"), EndDate: date("2025-02-01")}
	require.NoError(t, CreateProject(database, project))

	config := &models.ProjectConfig{
		ProjectID:  project.ID,
		IntentJSON: `{"title":"P"}`,
		PlanJSON:   `{"titulo":"P"}`,
	}
	require.NoError(t, CreateProjectConfig(database, config))

	stored, err := GetProjectConfig(database, project.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, `{"titulo":"P"}`, stored.PlanJSON)

	none, err := GetProjectConfig(database, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, none)
}

// ABOUTME: Tests for the calendar synchronizer against a fake Calendar API
// ABOUTME: Verifies per-event failure counting and calendar selection fallbacks
package gcal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/planforge/planforge/models"
)

// fakeCalendarAPI records inserts and fails the event summaries it is told to.
type fakeCalendarAPI struct {
	failCalendarCreate bool
	failSummaries      map[string]bool

	calendarsCreated int
	eventsBySummary  map[string]string // summary -> calendar id
}

func (f *fakeCalendarAPI) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/calendars":
			if f.failCalendarCreate {
				http.Error(w, "quota exceeded", http.StatusForbidden)
				return
			}
			f.calendarsCreated++
			json.NewEncoder(w).Encode(calendar.Calendar{Id: fmt.Sprintf("cal_%d", f.calendarsCreated)})

		case r.Method == http.MethodPost && strings.HasSuffix(r.URL.Path, "/events"):
			calendarID := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/calendars/"), "/events")

			var event calendar.Event
			if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			if f.failSummaries[event.Summary] {
				http.Error(w, "backend error", http.StatusInternalServerError)
				return
			}
			if f.eventsBySummary == nil {
				f.eventsBySummary = make(map[string]string)
			}
			f.eventsBySummary[event.Summary] = calendarID
			event.Id = "evt_" + event.Summary
			json.NewEncoder(w).Encode(event)

		default:
			http.Error(w, "unexpected call: "+r.URL.Path, http.StatusNotFound)
		}
	}
}

func fakeService(t *testing.T, api *fakeCalendarAPI) *calendar.Service {
	t.Helper()
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)

	service, err := calendar.NewService(context.Background(),
		option.WithEndpoint(server.URL),
		option.WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return service
}

func planWithEvents(summaries ...string) *models.ProjectPlan {
	plan := &models.ProjectPlan{Title: "Launch"}
	for _, summary := range summaries {
		plan.Events = append(plan.Events, models.PlanEvent{
			Title: summary,
			Start: "2025-01-06T09:00:00-05:00",
			End:   "2025-01-06T10:00:00-05:00",
			Kind:  models.EventKindTask,
		})
	}
	return plan
}

func TestSyncPlanCountsPartialFailures(t *testing.T) {
	api := &fakeCalendarAPI{failSummaries: map[string]bool{"E2": true, "E4": true}}
	service := fakeService(t, api)

	outcome, err := SyncPlan(context.Background(), service, planWithEvents("E1", "E2", "E3", "E4", "E5"), models.SyncOptions{})

	require.NoError(t, err)
	assert.Equal(t, 3, outcome.Created)
	assert.Equal(t, 2, outcome.Failed)
	assert.Equal(t, "cal_1", outcome.CalendarID)
}

func TestSyncPlanCreatesNamedCalendar(t *testing.T) {
	api := &fakeCalendarAPI{}
	service := fakeService(t, api)

	outcome, err := SyncPlan(context.Background(), service, planWithEvents("E1"), models.SyncOptions{CalendarName: "Sprint"})

	require.NoError(t, err)
	assert.Equal(t, 1, api.calendarsCreated)
	assert.Equal(t, "cal_1", outcome.CalendarID)
	assert.Equal(t, "cal_1", api.eventsBySummary["E1"])
}

func TestSyncPlanFallsBackToPrimaryOnCalendarFailure(t *testing.T) {
	api := &fakeCalendarAPI{failCalendarCreate: true}
	service := fakeService(t, api)

	outcome, err := SyncPlan(context.Background(), service, planWithEvents("E1"), models.SyncOptions{})

	require.NoError(t, err)
	assert.Equal(t, "primary", outcome.CalendarID)
	assert.Equal(t, "primary", api.eventsBySummary["E1"])
}

func TestSyncPlanUsesExistingCalendar(t *testing.T) {
	api := &fakeCalendarAPI{}
	service := fakeService(t, api)

	outcome, err := SyncPlan(context.Background(), service, planWithEvents("E1"), models.SyncOptions{
		UseExisting: true,
		CalendarID:  "work-calendar",
	})

	require.NoError(t, err)
	assert.Equal(t, 0, api.calendarsCreated)
	assert.Equal(t, "work-calendar", outcome.CalendarID)
}

func TestSyncPlanErrorsWhenNothingCreated(t *testing.T) {
	api := &fakeCalendarAPI{failSummaries: map[string]bool{"E1": true, "E2": true}}
	service := fakeService(t, api)

	outcome, err := SyncPlan(context.Background(), service, planWithEvents("E1", "E2"), models.SyncOptions{UseExisting: true})

	assert.Error(t, err)
	assert.Equal(t, 0, outcome.Created)
	assert.Equal(t, 2, outcome.Failed)
}

func TestSyncPlanEmptyEvents(t *testing.T) {
	api := &fakeCalendarAPI{}
	service := fakeService(t, api)

	outcome, err := SyncPlan(context.Background(), service, planWithEvents(), models.SyncOptions{UseExisting: true})

	require.NoError(t, err)
	assert.Equal(t, 0, outcome.Created)
	assert.Equal(t, 0, outcome.Failed)
}

func TestBuildEventColorsByKind(t *testing.T) {
	milestone, err := buildEvent(models.PlanEvent{
		Title: "Delivery",
		Start: "2025-01-15T16:00:00-05:00",
		End:   "2025-01-15T17:00:00-05:00",
		Kind:  models.EventKindMilestone,
		Owner: "Ana",
	})
	require.NoError(t, err)

	meeting, err := buildEvent(models.PlanEvent{
		Title: "Kickoff",
		Start: "2025-01-01T09:00:00-05:00",
		End:   "2025-01-01T10:00:00-05:00",
		Kind:  models.EventKindMeeting,
	})
	require.NoError(t, err)

	assert.NotEqual(t, milestone.ColorId, meeting.ColorId)
	assert.Equal(t, DefaultTimeZone, milestone.Start.TimeZone)
	assert.Contains(t, milestone.Description, "Ana")

	_, err = buildEvent(models.PlanEvent{Title: "Bad", Start: "nope", End: "2025-01-01T10:00:00"})
	assert.Error(t, err)
}

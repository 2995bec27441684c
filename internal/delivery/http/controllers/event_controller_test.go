package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"eventsite/internal/delivery/http/helpers"
	"eventsite/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	event  *domain.Event
	err    error
	lastID string
}

func (f *fakeEventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	f.lastID = id
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

func TestGetEventByID_Success(t *testing.T) {
	svc := &fakeEventService{event: &domain.Event{ID: "fall-festival", Name: "Fall Festival"}}
	ctrl := NewEventController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/events/fall-festival", nil)
	req.SetPathValue("eventID", "fall-festival")
	rr := httptest.NewRecorder()
	ctrl.GetEventByID(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp struct {
		Data  *domain.Event     `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Fall Festival", resp.Data.Name)
	assert.Equal(t, "fall-festival", svc.lastID)
}

func TestGetEventByID_NotFound(t *testing.T) {
	svc := &fakeEventService{err: domain.ErrNotFound}
	ctrl := NewEventController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/events/gone", nil)
	req.SetPathValue("eventID", "gone")
	rr := httptest.NewRecorder()
	ctrl.GetEventByID(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, helpers.ErrCodeNotFound, resp.Error.Code)
}

func TestGetEventByID_MissingID(t *testing.T) {
	ctrl := NewEventController(testLogger, &fakeEventService{})

	req := httptest.NewRequest(http.MethodGet, "/api/events/", nil)
	rr := httptest.NewRecorder()
	ctrl.GetEventByID(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, helpers.ErrCodeBadRequest, resp.Error.Code)
}

func TestGetEventByID_UnexpectedError(t *testing.T) {
	svc := &fakeEventService{err: errors.New("template blew up")}
	ctrl := NewEventController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/events/broken", nil)
	req.SetPathValue("eventID", "broken")
	rr := httptest.NewRecorder()
	ctrl.GetEventByID(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	var resp helpers.APIResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	assert.Equal(t, helpers.ErrCodeInternalError, resp.Error.Code)
}

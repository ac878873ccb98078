package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/study-planner/internal/models"
	"github.com/noah-isme/study-planner/pkg/config"
	appErrors "github.com/noah-isme/study-planner/pkg/errors"
)

func newClient(baseURL, token string) *SchedulerClient {
	return New(config.SchedulerConfig{BaseURL: baseURL, AuthToken: token}, nil)
}

func TestGenerateDecodesTimetable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		var req models.ScheduleRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 5.0, req.DailyHours)
		assert.Equal(t, "daily", req.ScheduleType)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"timetable": map[string]interface{}{
				"2025-01-05": []map[string]interface{}{{"subject": "Math", "hours": 3}},
			},
			"model_trained": true,
		})
	}))
	defer srv.Close()

	tt, err := newClient(srv.URL, "secret").Generate(context.Background(), models.ScheduleRequest{
		DailyHours:   5,
		ScheduleType: "daily",
	})
	require.NoError(t, err)
	assert.Equal(t, 3.0, tt.HoursOn("2025-01-05"))
}

func TestGenerateSurfacesRejectionVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "No subjects provided"})
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "").Generate(context.Background(), models.ScheduleRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrSchedulerRejected.Code, appErr.Code)
	assert.Equal(t, "No subjects provided", appErr.Message)
}

func TestGenerateTransportFailureIsGeneric(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newClient(srv.URL, "").Generate(context.Background(), models.ScheduleRequest{})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrGenerateFailed.Code, appErr.Code)
	assert.Equal(t, appErrors.ErrGenerateFailed.Message, appErr.Message)
}

func TestRescheduleUsesOwnPathAndFailureCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reschedule", r.URL.Path)
		// Missing timetable and no error string: treated as a failed call.
		json.NewEncoder(w).Encode(map[string]interface{}{})
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "").Reschedule(context.Background(), models.ScheduleRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrRescheduleFailed.Code, appErrors.FromError(err).Code)
}

func TestSaveReturnsIdentifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/save_timetable", r.URL.Path)

		var req struct {
			Title     string           `json:"title"`
			Timetable models.Timetable `json:"timetable"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Midterms", req.Title)

		json.NewEncoder(w).Encode(map[string]interface{}{"status": "ok", "timetable_id": 17})
	}))
	defer srv.Close()

	id, err := newClient(srv.URL, "").Save(context.Background(), "Midterms", models.Timetable{
		"2025-01-05": {{Subject: "Math", Hours: 3}},
	})
	require.NoError(t, err)
	assert.Equal(t, "17", id)
}

func TestSaveFailureIsIndistinguishable(t *testing.T) {
	responses := []string{
		`{"error":"unauthorized"}`,
		`{"status":"error"}`,
		`{}`,
	}
	for _, body := range responses {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(body))
		}))

		_, err := newClient(srv.URL, "").Save(context.Background(), "Midterms", models.Timetable{})
		srv.Close()
		require.Error(t, err, body)
		appErr := appErrors.FromError(err)
		assert.Equal(t, appErrors.ErrSaveFailed.Code, appErr.Code, body)
		assert.Equal(t, appErrors.ErrSaveFailed.Message, appErr.Message, body)
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]interface{}{"timetable": map[string]interface{}{}})
	}))
	defer srv.Close()

	_, err := newClient(srv.URL, "").Generate(context.Background(), models.ScheduleRequest{})
	require.NoError(t, err)
}

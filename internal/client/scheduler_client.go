package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/noah-isme/study-planner/internal/models"
	"github.com/noah-isme/study-planner/pkg/config"
	appErrors "github.com/noah-isme/study-planner/pkg/errors"
)

const (
	generatePath   = "/api/generate"
	reschedulePath = "/api/reschedule"
	savePath       = "/api/save_timetable"
)

// SchedulerClient talks to the remote scheduling service. Every operation is
// a single round trip: no retries, and no client-side timeout — a hung call
// blocks only its own caller.
type SchedulerClient struct {
	baseURL   string
	authToken string
	http      *http.Client
	logger    *zap.Logger
}

// New constructs a SchedulerClient from configuration.
func New(cfg config.SchedulerConfig, logger *zap.Logger) *SchedulerClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchedulerClient{
		baseURL:   cfg.BaseURL,
		authToken: cfg.AuthToken,
		http:      &http.Client{},
		logger:    logger,
	}
}

type scheduleResponse struct {
	Timetable models.Timetable `json:"timetable"`
	Variant   *string          `json:"variant"`
	Error     string           `json:"error"`
}

type saveRequest struct {
	Title     string           `json:"title"`
	Timetable models.Timetable `json:"timetable"`
}

type saveResponse struct {
	Status      string      `json:"status"`
	TimetableID json.Number `json:"timetable_id"`
	Error       string      `json:"error"`
}

// Generate asks the service for a fresh timetable.
func (c *SchedulerClient) Generate(ctx context.Context, req models.ScheduleRequest) (models.Timetable, error) {
	return c.schedule(ctx, generatePath, req, appErrors.ErrGenerateFailed)
}

// Reschedule regenerates around updated constraints without changing subject
// identity. Same contract as Generate.
func (c *SchedulerClient) Reschedule(ctx context.Context, req models.ScheduleRequest) (models.Timetable, error) {
	return c.schedule(ctx, reschedulePath, req, appErrors.ErrRescheduleFailed)
}

// Save persists the timetable under a title and returns the service's opaque
// identifier. Every failure — auth included — maps to the same generic save
// failure; the client cannot and must not tell them apart.
func (c *SchedulerClient) Save(ctx context.Context, title string, tt models.Timetable) (string, error) {
	var out saveResponse
	if err := c.post(ctx, savePath, saveRequest{Title: title, Timetable: tt}, &out); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrSaveFailed.Code, appErrors.ErrSaveFailed.Status, appErrors.ErrSaveFailed.Message)
	}
	if out.Status != "ok" || out.TimetableID == "" {
		return "", appErrors.Clone(appErrors.ErrSaveFailed, "")
	}
	return out.TimetableID.String(), nil
}

func (c *SchedulerClient) schedule(ctx context.Context, path string, req models.ScheduleRequest, generic *appErrors.Error) (models.Timetable, error) {
	var out scheduleResponse
	if err := c.post(ctx, path, req, &out); err != nil {
		return nil, appErrors.Wrap(err, generic.Code, generic.Status, generic.Message)
	}
	if out.Error != "" {
		// Service-reported rejections surface verbatim to the user.
		return nil, appErrors.Clone(appErrors.ErrSchedulerRejected, out.Error)
	}
	if out.Timetable == nil {
		return nil, appErrors.Clone(generic, "")
	}
	return out.Timetable, nil
}

func (c *SchedulerClient) post(ctx context.Context, path string, payload, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("scheduler call failed", zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	// The service reports rejections inside the JSON body, also on non-2xx
	// statuses, so decode before judging the status code.
	return json.NewDecoder(resp.Body).Decode(out)
}

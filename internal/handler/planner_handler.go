package handler

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/study-planner/internal/dto"
	"github.com/noah-isme/study-planner/internal/service"
	appErrors "github.com/noah-isme/study-planner/pkg/errors"
	"github.com/noah-isme/study-planner/pkg/response"
)

const maxSubjectRows = 256

type plannerService interface {
	Generate(ctx context.Context, req dto.PlanRequest) (*dto.PlanView, error)
	GenerateVariant(ctx context.Context, req dto.PlanRequest) (*dto.PlanView, error)
	Reschedule(ctx context.Context, req dto.PlanRequest) (*dto.PlanView, error)
	Save(ctx context.Context, req dto.SaveRequest) (string, error)
	Export(req dto.ExportRequest) (*dto.ExportResult, error)
	Download(token string) (*os.File, string, error)
	Restore(ctx context.Context) (*dto.PlanView, error)
	Views(dailyHours string, unavailableDates []string) *dto.PlanView
}

// PlannerHandler exposes the planning surface endpoints.
type PlannerHandler struct {
	service plannerService
}

// NewPlannerHandler constructs the handler.
func NewPlannerHandler(svc *service.PlannerService) *PlannerHandler {
	return &PlannerHandler{service: svc}
}

// Generate builds a fresh timetable from the submitted form state.
func (h *PlannerHandler) Generate(c *gin.Context) {
	h.handlePlan(c, h.service.Generate)
}

// GenerateVariant builds an alternative timetable for the same constraints.
func (h *PlannerHandler) GenerateVariant(c *gin.Context) {
	h.handlePlan(c, h.service.GenerateVariant)
}

// Reschedule regenerates the timetable around updated constraints.
func (h *PlannerHandler) Reschedule(c *gin.Context) {
	h.handlePlan(c, h.service.Reschedule)
}

// Save persists the latest timetable under a user-supplied title.
func (h *PlannerHandler) Save(c *gin.Context) {
	var req dto.SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid save payload"))
		return
	}
	id, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"timetableId": id})
}

// Export renders the latest timetable into a downloadable document.
func (h *PlannerHandler) Export(c *gin.Context) {
	var req dto.ExportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid export payload"))
			return
		}
	}
	result, err := h.service.Export(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result)
}

// Download streams a previously exported document by signed token.
func (h *PlannerHandler) Download(c *gin.Context) {
	file, name, err := h.service.Download(c.Param("token"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer file.Close() //nolint:errcheck

	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read export"))
		return
	}
	contentType := "application/pdf"
	if filepath.Ext(name) == ".csv" {
		contentType = "text/csv"
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(name)))
	c.DataFromReader(http.StatusOK, info.Size(), contentType, file, nil)
}

// Restore consumes the one-shot handoff buffer and renders its timetable.
func (h *PlannerHandler) Restore(c *gin.Context) {
	views, err := h.service.Restore(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views)
}

// Views recomputes the table/chart/calendar bundle for the latest timetable.
func (h *PlannerHandler) Views(c *gin.Context) {
	views := h.service.Views(c.Query("dailyHours"), c.QueryArray("unavailable"))
	response.JSON(c, http.StatusOK, views)
}

func (h *PlannerHandler) handlePlan(c *gin.Context, run func(context.Context, dto.PlanRequest) (*dto.PlanView, error)) {
	var req dto.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid plan payload"))
		return
	}
	if len(req.Subjects) > maxSubjectRows {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "subjects exceeds supported limit"))
		return
	}
	views, err := run(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, views)
}

package service

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/noah-isme/study-planner/internal/dto"
	"github.com/noah-isme/study-planner/internal/form"
	"github.com/noah-isme/study-planner/internal/models"
	"github.com/noah-isme/study-planner/internal/state"
	"github.com/noah-isme/study-planner/internal/view"
	appErrors "github.com/noah-isme/study-planner/pkg/errors"
	"github.com/noah-isme/study-planner/pkg/export"
)

const documentTitle = "Study Planner — Timetable"

type scheduleCaller interface {
	Generate(ctx context.Context, req models.ScheduleRequest) (models.Timetable, error)
	Reschedule(ctx context.Context, req models.ScheduleRequest) (models.Timetable, error)
	Save(ctx context.Context, title string, tt models.Timetable) (string, error)
}

type handoffInbox interface {
	Take(ctx context.Context) (models.Timetable, bool, error)
}

type exportStore interface {
	Save(filename string, data []byte) (string, error)
	Open(filename string) (*os.File, error)
}

type downloadSigner interface {
	Generate(exportID, relPath string) (string, time.Time, error)
	Parse(token string) (exportID, relPath string, expiresAt time.Time, err error)
}

type pdfRenderer interface {
	Render(blocks []export.DateBlock, title string) ([]byte, error)
}

type csvRenderer interface {
	Render(blocks []export.DateBlock) ([]byte, error)
}

// PlannerConfig tunes the planner service.
type PlannerConfig struct {
	APIPrefix         string
	DefaultDailyHours float64
}

// PlannerService is the command controller behind the planning surface:
// generate, reschedule, save, export and restore all dispatch through it,
// keeping presentation wiring out of the transformation pipeline.
type PlannerService struct {
	client    scheduleCaller
	store     *state.TimetableStore
	inbox     handoffInbox
	files     exportStore
	signer    downloadSigner
	pdf       pdfRenderer
	csv       csvRenderer
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	cfg       PlannerConfig

	now func() time.Time
}

// PlannerServiceParams collects the collaborators for construction.
type PlannerServiceParams struct {
	Client  scheduleCaller
	Store   *state.TimetableStore
	Inbox   handoffInbox
	Files   exportStore
	Signer  downloadSigner
	PDF     pdfRenderer
	CSV     csvRenderer
	Metrics *MetricsService
	Logger  *zap.Logger
	Config  PlannerConfig
}

// NewPlannerService constructs the service.
func NewPlannerService(p PlannerServiceParams) *PlannerService {
	if p.Logger == nil {
		p.Logger = zap.NewNop()
	}
	if p.PDF == nil {
		p.PDF = export.NewPDFExporter()
	}
	if p.CSV == nil {
		p.CSV = export.NewCSVExporter()
	}
	if p.Config.DefaultDailyHours <= 0 {
		p.Config.DefaultDailyHours = 5
	}
	if p.Config.APIPrefix == "" {
		p.Config.APIPrefix = "/api/v1"
	}
	if p.Store == nil {
		p.Store = state.NewTimetableStore()
	}
	return &PlannerService{
		client:    p.Client,
		store:     p.Store,
		inbox:     p.Inbox,
		files:     p.Files,
		signer:    p.Signer,
		pdf:       p.PDF,
		csv:       p.CSV,
		metrics:   p.Metrics,
		validator: validator.New(),
		logger:    p.Logger,
		cfg:       p.Config,
		now:       time.Now,
	}
}

// Generate collects the form rows, builds the request payload and asks the
// scheduling service for a fresh timetable.
func (s *PlannerService) Generate(ctx context.Context, req dto.PlanRequest) (*dto.PlanView, error) {
	result, err := s.plan(ctx, req, nil, s.client.Generate)
	s.metrics.RecordCommand("generate", err)
	return result, err
}

// GenerateVariant runs Generate with a fresh variant token so the service
// produces an alternative plan for the same constraints.
func (s *PlannerService) GenerateVariant(ctx context.Context, req dto.PlanRequest) (*dto.PlanView, error) {
	variant := strconv.FormatInt(s.now().UnixMilli(), 10)
	result, err := s.plan(ctx, req, &variant, s.client.Generate)
	s.metrics.RecordCommand("generate_variant", err)
	return result, err
}

// Reschedule regenerates around updated constraints. The variant token is
// a generate-only flavor and is never sent here.
func (s *PlannerService) Reschedule(ctx context.Context, req dto.PlanRequest) (*dto.PlanView, error) {
	result, err := s.plan(ctx, req, nil, s.client.Reschedule)
	s.metrics.RecordCommand("reschedule", err)
	return result, err
}

func (s *PlannerService) plan(ctx context.Context, req dto.PlanRequest, variant *string, call func(context.Context, models.ScheduleRequest) (models.Timetable, error)) (*dto.PlanView, error) {
	subjects, err := form.CollectSubjects(req.Subjects)
	if err != nil {
		return nil, err
	}
	scheduleReq, err := BuildScheduleRequest(req, subjects, variant, s.cfg.DefaultDailyHours)
	if err != nil {
		return nil, err
	}

	token := s.store.Begin()
	tt, err := call(ctx, scheduleReq)
	if err != nil {
		return nil, err
	}
	if !s.store.Install(token, tt) {
		s.logger.Warn("stale schedule response discarded", zap.Uint64("token", token))
	}

	// Render whatever is current: either the timetable just installed or a
	// newer one that beat this response home.
	snapshot, _ := s.store.Snapshot()
	bundle := s.views(snapshot, scheduleReq.DailyHours, scheduleReq.UnavailableDates)
	bundle.Variant = variant
	return bundle, nil
}

// Views recomputes the presentation bundle from the latest timetable. An
// empty store yields views over an empty timetable rather than an error.
func (s *PlannerService) Views(dailyHours string, unavailableDates []string) *dto.PlanView {
	snapshot, ok := s.store.Snapshot()
	if !ok {
		snapshot = models.Timetable{}
	}
	budget := form.ParseFloat(dailyHours, s.cfg.DefaultDailyHours)
	return s.views(snapshot, budget, NormalizeDates(unavailableDates))
}

// Save persists the latest timetable on the scheduling service under the
// given title and returns its opaque identifier.
func (s *PlannerService) Save(ctx context.Context, req dto.SaveRequest) (string, error) {
	if err := s.validator.Struct(req); err != nil {
		s.metrics.RecordCommand("save", appErrors.ErrValidation)
		return "", appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "title is required")
	}
	snapshot, ok := s.store.Snapshot()
	if !ok {
		err := appErrors.Clone(appErrors.ErrPrecondition, "generate a timetable first")
		s.metrics.RecordCommand("save", err)
		return "", err
	}
	id, err := s.client.Save(ctx, req.Title, snapshot)
	s.metrics.RecordCommand("save", err)
	if err != nil {
		return "", err
	}
	return id, nil
}

// Export renders the latest timetable into a stored document and returns a
// signed download link.
func (s *PlannerService) Export(req dto.ExportRequest) (*dto.ExportResult, error) {
	result, err := s.export(req)
	s.metrics.RecordCommand("export", err)
	return result, err
}

func (s *PlannerService) export(req dto.ExportRequest) (*dto.ExportResult, error) {
	snapshot, ok := s.store.Snapshot()
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrPrecondition, "generate a timetable first")
	}

	format := req.Format
	if format == "" {
		format = "pdf"
	}

	blocks := exportBlocks(snapshot)
	var payload []byte
	var err error
	switch format {
	case "csv":
		payload, err = s.csv.Render(blocks)
	case "pdf":
		payload, err = s.pdf.Render(blocks, documentTitle)
	default:
		err = appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		return nil, err
	}

	filename := fmt.Sprintf("timetable_%s.%s", s.now().UTC().Format("20060102_150405"), format)
	relPath, err := s.files.Save(filename, payload)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store export")
	}

	token, expiresAt, err := s.signer.Generate(uuid.NewString(), relPath)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign download link")
	}

	return &dto.ExportResult{
		File:      relPath,
		Format:    format,
		URL:       fmt.Sprintf("%s/planner/export/%s", s.cfg.APIPrefix, token),
		ExpiresAt: expiresAt,
	}, nil
}

// Download resolves a signed token to the stored export file.
func (s *PlannerService) Download(token string) (*os.File, string, error) {
	_, relPath, _, err := s.signer.Parse(token)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "download link invalid or expired")
	}
	file, err := s.files.Open(relPath)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrNotFound.Code, appErrors.ErrNotFound.Status, "export file not found")
	}
	return file, relPath, nil
}

// Restore consumes the one-shot handoff inbox and installs the carried
// timetable as the latest. Consumption happens at most once: a second call
// reports that nothing is waiting.
func (s *PlannerService) Restore(ctx context.Context) (*dto.PlanView, error) {
	tt, found, err := s.inbox.Take(ctx)
	if err != nil {
		err = appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read handoff buffer")
		s.metrics.RecordCommand("restore", err)
		return nil, err
	}
	if !found {
		err := appErrors.Clone(appErrors.ErrNotFound, "no saved timetable waiting")
		s.metrics.RecordCommand("restore", err)
		return nil, err
	}
	s.store.Install(s.store.Begin(), tt)
	s.metrics.RecordCommand("restore", nil)
	return s.views(tt, s.cfg.DefaultDailyHours, nil), nil
}

func (s *PlannerService) views(tt models.Timetable, dailyBudget float64, unavailableDates []string) *dto.PlanView {
	return &dto.PlanView{
		Timetable: tt,
		Table:     view.Table(tt),
		Chart:     view.Chart(tt, dailyBudget),
		Calendar:  view.Calendar(tt, unavailableDates, dailyBudget, s.now()),
	}
}

func exportBlocks(tt models.Timetable) []export.DateBlock {
	blocks := make([]export.DateBlock, 0, len(tt))
	for _, date := range tt.Dates() {
		slots := make([]export.SlotLine, 0, len(tt[date]))
		for _, slot := range tt[date] {
			slots = append(slots, export.SlotLine{Subject: slot.Subject, Hours: slot.Hours})
		}
		blocks = append(blocks, export.DateBlock{Date: date, Slots: slots})
	}
	return blocks
}

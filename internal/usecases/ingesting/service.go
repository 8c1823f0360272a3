package ingesting

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic"
	"github.com/vfg2006/smart-inventory-api/infrastructure/repository"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"github.com/vfg2006/smart-inventory-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/ingester.go -package=mocks

const (
	OperationTriggerWorkflow = "trigger_workflow"
	OperationRecordRun       = "record_ingestion_run"
)

var (
	ErrSessionNotFound  = errors.New("ingest session not found")
	ErrUploadNotAllowed = errors.New("upload not allowed while the preview is empty or has validation errors")
	ErrAuditDisabled    = errors.New("ingestion audit log is disabled")
)

type Ingester interface {
	StartSession(ctx context.Context, fileName string, content []byte) (*SessionView, error)
	ReplaceFile(ctx context.Context, id, fileName string, content []byte) (*SessionView, error)
	GetSession(id string) (*SessionView, error)
	Upload(ctx context.Context, id string) (*domain.UploadOutcome, *SessionView, error)
	ClearSession(id string) (*SessionView, error)
	Ingest(ctx context.Context, fileName string, r io.Reader) (*domain.UploadOutcome, error)
	ListRuns(ctx context.Context) ([]domain.IngestionRun, error)
}

type Service struct {
	cfg      *config.Config
	boltic   boltic.BolticIntegrator
	runsRepo repository.IngestionRunRepository
	sessions *SessionStore
	now      func() time.Time
}

// NewService builds the ingest use case. runsRepo may be nil, which disables the
// audit log.
func NewService(
	cfg *config.Config,
	bolticService boltic.BolticIntegrator,
	runsRepo repository.IngestionRunRepository,
	sessions *SessionStore,
) *Service {
	return &Service{
		cfg:      cfg,
		boltic:   bolticService,
		runsRepo: runsRepo,
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *Service) StartSession(ctx context.Context, fileName string, content []byte) (*SessionView, error) {
	id, state, err := s.sessions.Create(fileName, content)
	if err != nil {
		return nil, fmt.Errorf("create ingest session: %w", err)
	}

	return s.preview(id, state.Generation, content)
}

func (s *Service) ReplaceFile(ctx context.Context, id, fileName string, content []byte) (*SessionView, error) {
	state, err := s.sessions.Replace(id, fileName, content)
	if err != nil {
		return nil, err
	}

	return s.preview(id, state.Generation, content)
}

func (s *Service) GetSession(id string) (*SessionView, error) {
	state, err := s.sessions.Get(id)
	if err != nil {
		return nil, err
	}
	return NewSessionView(id, state), nil
}

// Upload ingests the full file of the session. The session only records the
// outcome if no newer file was selected or the session was not cleared meanwhile.
func (s *Service) Upload(ctx context.Context, id string) (*domain.UploadOutcome, *SessionView, error) {
	started, content, err := s.sessions.BeginUpload(id)
	if err != nil {
		return nil, nil, err
	}

	outcome, ingestErr := s.Ingest(ctx, started.FileName, bytes.NewReader(content))

	final, err := s.sessions.Dispatch(id, UploadFinished{
		Generation: started.Generation,
		Outcome:    outcome,
		Err:        ingestErr,
	})
	if err != nil {
		return outcome, nil, err
	}

	if final.Generation != started.Generation {
		logrus.WithFields(logrus.Fields{
			"session_id": id,
			"generation": started.Generation,
		}).Info("ingest: discarding outcome of a superseded upload")
	}

	return outcome, NewSessionView(id, final), ingestErr
}

func (s *Service) ClearSession(id string) (*SessionView, error) {
	state, err := s.sessions.Clear(id)
	if err != nil {
		return nil, err
	}
	return NewSessionView(id, state), nil
}

// Ingest parses the whole file, normalizes it and upserts it into sales_history.
// The workflow trigger and the audit write are secondary: their failures are
// reported in the outcome and never change the primary result.
func (s *Service) Ingest(ctx context.Context, fileName string, r io.Reader) (*domain.UploadOutcome, error) {
	run := s.newRun(domain.IngestionSourceCSV, fileName)

	parsed, err := ParseCSV(r, 0)
	if err != nil {
		run.Status = domain.IngestionStatusRejected
		run.Message = UserMessage(err)
		s.recordRun(ctx, run)
		return nil, err
	}

	records := Normalize(parsed.Rows, s.now())
	run.RowsReceived = len(parsed.Rows)
	run.RowsValid = len(records)

	if len(records) == 0 {
		run.Status = domain.IngestionStatusRejected
		run.Message = UserMessage(domain.ErrNoValidRows)
		s.recordRun(ctx, run)
		return nil, domain.ErrNoValidRows
	}

	result, err := s.boltic.UpsertSales(ctx, records)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"file_name": fileName,
			"rows":      len(records),
			"error":     err.Error(),
		}).Error("ingest: upsert into sales_history failed")

		run.Status = domain.IngestionStatusFailed
		run.Failed = len(records)
		run.Message = UserMessage(err)
		s.recordRun(ctx, run)
		return nil, err
	}

	outcome := &domain.UploadOutcome{
		Primary:   *result,
		Secondary: []domain.SecondaryOutcome{},
		RowsValid: len(records),
	}

	run.Inserted = result.Inserted
	run.Updated = result.Updated

	if result.Success {
		outcome.Message = SuccessMessage(result)
		run.Status = domain.IngestionStatusSucceeded

		trigger := s.triggerSalesSync(ctx, domain.IngestionSourceCSV, len(records))
		outcome.Secondary = append(outcome.Secondary, trigger)
		run.WorkflowTriggered = trigger.Succeeded
	} else {
		outcome.Message = FailureMessage(result)
		run.Status = domain.IngestionStatusFailed
		run.Failed = len(result.Errors)
	}

	run.Message = outcome.Message
	if audit, ok := s.recordRun(ctx, run); ok {
		outcome.Secondary = append(outcome.Secondary, audit)
	}

	logrus.WithFields(logrus.Fields{
		"file_name": fileName,
		"rows":      len(records),
		"inserted":  result.Inserted,
		"updated":   result.Updated,
		"success":   result.Success,
	}).Info("ingest: upload finished")

	return outcome, nil
}

func (s *Service) ListRuns(ctx context.Context) ([]domain.IngestionRun, error) {
	if s.runsRepo == nil {
		return nil, ErrAuditDisabled
	}

	limit := s.cfg.Ingest.RecentRuns
	if limit <= 0 {
		limit = 20
	}

	runs, err := s.runsRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list ingestion runs: %w", err)
	}
	return runs, nil
}

func (s *Service) preview(id string, generation uint64, content []byte) (*SessionView, error) {
	var action Action
	result, err := ParseCSV(bytes.NewReader(content), s.cfg.Ingest.PreviewRows)
	if err != nil {
		action = PreviewFailed{Generation: generation, Err: err}
	} else {
		action = PreviewReady{Generation: generation, Result: result}
	}

	state, err := s.sessions.Dispatch(id, action)
	if err != nil {
		return nil, err
	}
	return NewSessionView(id, state), nil
}

func (s *Service) triggerSalesSync(ctx context.Context, source string, rows int) domain.SecondaryOutcome {
	workflow := s.cfg.Boltic.SalesSyncWorkflow
	outcome := domain.SecondaryOutcome{Operation: OperationTriggerWorkflow + ":" + workflow}

	err := s.boltic.TriggerWorkflow(ctx, workflow, map[string]any{
		"source":     source,
		"rows_count": rows,
	})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"workflow": workflow,
			"error":    err.Error(),
		}).Warn("ingest: workflow trigger failed")
		outcome.Error = err.Error()
		return outcome
	}

	outcome.Succeeded = true
	return outcome
}

func (s *Service) newRun(source, fileName string) *domain.IngestionRun {
	return &domain.IngestionRun{
		Source:    source,
		FileName:  fileName,
		CreatedAt: s.now().UTC(),
	}
}

// recordRun writes the audit entry when the audit log is enabled. ok is false when
// nothing was attempted.
func (s *Service) recordRun(ctx context.Context, run *domain.IngestionRun) (domain.SecondaryOutcome, bool) {
	if s.runsRepo == nil {
		return domain.SecondaryOutcome{}, false
	}

	outcome := domain.SecondaryOutcome{Operation: OperationRecordRun}

	id, err := utils.GenerateIDWithPrefix("run", 12)
	if err == nil {
		run.ID = id
		err = s.runsRepo.Save(ctx, run)
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"source": run.Source,
			"error":  err.Error(),
		}).Warn("ingest: could not record ingestion run")
		outcome.Error = err.Error()
		return outcome, true
	}

	outcome.Succeeded = true
	return outcome, true
}

func SuccessMessage(result *domain.UpsertResult) string {
	return fmt.Sprintf("Successfully ingested %d rows (%d new, %d updated)",
		result.Total(), result.Inserted, result.Updated)
}

func FailureMessage(result *domain.UpsertResult) string {
	return fmt.Sprintf("Upload failed: %d errors", len(result.Errors))
}

// UserMessage renders an ingest error as the text shown to the operator.
func UserMessage(err error) string {
	var parseErr *domain.FileParseError
	var netErr *domain.NetworkError

	switch {
	case errors.Is(err, domain.ErrNoValidRows):
		return "No valid rows found in CSV"
	case errors.As(err, &parseErr):
		return "Failed to parse CSV: " + parseErr.Err.Error()
	case errors.As(err, &netErr):
		return "Upload failed: " + netErr.Err.Error()
	default:
		msg := err.Error()
		first, size := utf8.DecodeRuneInString(msg)
		if first == utf8.RuneError {
			return msg
		}
		return string(unicode.ToUpper(first)) + msg[size:]
	}
}

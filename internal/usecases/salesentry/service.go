package salesentry

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic"
	"github.com/vfg2006/smart-inventory-api/infrastructure/repository"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"github.com/vfg2006/smart-inventory-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/submitter.go -package=mocks

type Submitter interface {
	Submit(ctx context.Context, entries []domain.SalesEntry) (*SubmitResult, error)
}

type SubmitResult struct {
	Submitted int    `json:"submitted"`
	Skipped   int    `json:"skipped"`
	Message   string `json:"message"`
}

type Service struct {
	boltic   boltic.BolticIntegrator
	runsRepo repository.IngestionRunRepository
	now      func() time.Time
}

// NewService builds the manual entry use case. runsRepo may be nil.
func NewService(bolticService boltic.BolticIntegrator, runsRepo repository.IngestionRunRepository) *Service {
	return &Service{
		boltic:   bolticService,
		runsRepo: runsRepo,
		now:      time.Now,
	}
}

// Submit keeps only complete entries and posts them in one call to the sales
// endpoint. When nothing is complete the call is never made.
func (s *Service) Submit(ctx context.Context, entries []domain.SalesEntry) (*SubmitResult, error) {
	complete := FilterComplete(entries)
	if len(complete) == 0 {
		return nil, domain.ErrNoCompleteEntries
	}

	run := &domain.IngestionRun{
		Source:       domain.IngestionSourceManual,
		RowsReceived: len(entries),
		RowsValid:    len(complete),
		CreatedAt:    s.now().UTC(),
	}

	if err := s.boltic.SubmitSalesEntries(ctx, complete); err != nil {
		logrus.WithFields(logrus.Fields{
			"entries": len(complete),
			"error":   err.Error(),
		}).Error("salesentry: failed to submit entries")

		run.Status = domain.IngestionStatusFailed
		run.Failed = len(complete)
		run.Message = err.Error()
		s.recordRun(ctx, run)
		return nil, err
	}

	result := &SubmitResult{
		Submitted: len(complete),
		Skipped:   len(entries) - len(complete),
		Message:   fmt.Sprintf("Successfully sent %d sales entries to Boltic workflow!", len(complete)),
	}

	run.Status = domain.IngestionStatusSucceeded
	run.Message = result.Message
	s.recordRun(ctx, run)

	return result, nil
}

// FilterComplete keeps entries with every field present and units_sold > 0. Text
// fields are trimmed.
func FilterComplete(entries []domain.SalesEntry) []domain.SalesEntry {
	complete := make([]domain.SalesEntry, 0, len(entries))
	for _, entry := range entries {
		entry.Date = strings.TrimSpace(entry.Date)
		entry.StoreID = strings.TrimSpace(entry.StoreID)
		entry.SKUID = strings.TrimSpace(entry.SKUID)

		if entry.Date == "" || entry.StoreID == "" || entry.SKUID == "" || entry.UnitsSold <= 0 {
			continue
		}
		complete = append(complete, entry)
	}
	return complete
}

func (s *Service) recordRun(ctx context.Context, run *domain.IngestionRun) {
	if s.runsRepo == nil {
		return
	}

	id, err := utils.GenerateIDWithPrefix("run", 12)
	if err == nil {
		run.ID = id
		err = s.runsRepo.Save(ctx, run)
	}
	if err != nil {
		logrus.WithError(err).Warn("salesentry: could not record ingestion run")
	}
}

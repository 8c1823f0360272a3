package eventing

import (
	"context"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/fynd"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
)

//go:generate mockgen -source=service.go -destination=mocks/receiver.go -package=mocks

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const recentEventsLimit = 20

var (
	ErrInvalidPayload   = errors.New("invalid webhook payload")
	ErrUnsupportedEvent = errors.New("unsupported webhook event")
)

// SupportedEvents are forwarded to the Boltic workflow; anything else is acknowledged and dropped.
var SupportedEvents = []string{
	"company/product/create",
	"company/inventory/update",
	"application/order/placed",
}

type Receiver interface {
	Receive(ctx context.Context, body []byte, signature string) (*domain.ReceivedEvent, error)
	Status() *domain.WebhookStatus
}

type Service struct {
	cfg    *config.Config
	fynd   fynd.FyndIntegrator
	boltic boltic.BolticIntegrator
	now    func() time.Time

	mu     sync.Mutex
	recent []domain.ReceivedEvent
}

func NewService(cfg *config.Config, fyndService fynd.FyndIntegrator, bolticService boltic.BolticIntegrator) *Service {
	return &Service{
		cfg:    cfg,
		fynd:   fyndService,
		boltic: bolticService,
		now:    time.Now,
	}
}

// Receive authenticates a Fynd delivery and forwards supported events to the
// fynd events workflow.
func (s *Service) Receive(ctx context.Context, body []byte, signature string) (*domain.ReceivedEvent, error) {
	if err := s.fynd.VerifySignature(body, signature); err != nil {
		return nil, err
	}

	var event domain.PlatformEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, errors.Wrap(ErrInvalidPayload, err.Error())
	}
	if event.Event.Name == "" || event.Event.Type == "" {
		return nil, errors.Wrap(ErrInvalidPayload, "missing event name or type")
	}

	received := domain.ReceivedEvent{
		Key:        event.Key(),
		CompanyID:  event.CompanyID,
		ReceivedAt: s.now().UTC(),
	}

	if !isSupported(received.Key) {
		logrus.WithField("event", received.Key).Info("webhook: ignoring unsupported event")
		s.remember(received)
		return &received, ErrUnsupportedEvent
	}

	payload := map[string]any{
		"event":      received.Key,
		"company_id": event.CompanyID,
		"payload":    event.Payload,
	}

	err := s.boltic.TriggerWorkflow(ctx, s.cfg.Boltic.FyndEventWorkflow, payload)
	if err != nil {
		received.Error = err.Error()
		logrus.WithFields(logrus.Fields{
			"event":    received.Key,
			"workflow": s.cfg.Boltic.FyndEventWorkflow,
			"error":    err.Error(),
		}).Error("webhook: failed to forward event")
		s.remember(received)
		return &received, err
	}

	received.Forwarded = true
	logrus.WithFields(logrus.Fields{
		"event":      received.Key,
		"company_id": event.CompanyID,
	}).Info("webhook: event forwarded")
	s.remember(received)

	return &received, nil
}

func (s *Service) Status() *domain.WebhookStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	recent := make([]domain.ReceivedEvent, len(s.recent))
	copy(recent, s.recent)

	return &domain.WebhookStatus{
		Configured: s.cfg.Fynd.WebhookSecret != "" && s.cfg.Boltic.FyndEventWorkflow != "",
		Events:     SupportedEvents,
		Recent:     recent,
	}
}

// remember keeps the newest deliveries first.
func (s *Service) remember(event domain.ReceivedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recent = append([]domain.ReceivedEvent{event}, s.recent...)
	if len(s.recent) > recentEventsLimit {
		s.recent = s.recent[:recentEventsLimit]
	}
}

func isSupported(key string) bool {
	for _, e := range SupportedEvents {
		if e == key {
			return true
		}
	}
	return false
}

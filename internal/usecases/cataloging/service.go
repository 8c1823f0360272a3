package cataloging

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/fynd"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=service.go -destination=mocks/cataloger.go -package=mocks

const (
	DefaultPageSize = 20
	MaxPageSize     = 100

	// DefaultPause keeps bulk creation under the platform rate limit.
	DefaultPause = time.Second
)

var ErrEmptyCatalog = errors.New("catalog file has no products")

type Cataloger interface {
	ListProducts(ctx context.Context, pageNo, pageSize int) (*domain.CatalogPage, error)
	PopulateProducts(ctx context.Context, products []domain.CatalogProduct, pause time.Duration) (*domain.PopulateSummary, error)
}

type Service struct {
	fynd  fynd.FyndIntegrator
	sleep func(ctx context.Context, d time.Duration) error
}

func NewService(fyndService fynd.FyndIntegrator) *Service {
	return &Service{
		fynd:  fyndService,
		sleep: sleepContext,
	}
}

func (s *Service) ListProducts(ctx context.Context, pageNo, pageSize int) (*domain.CatalogPage, error) {
	if pageNo < 1 {
		pageNo = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	return s.fynd.ListProducts(ctx, pageNo, pageSize)
}

// PopulateProducts creates every product one by one, waiting pause between
// requests. A failed product is recorded and does not stop the run.
func (s *Service) PopulateProducts(ctx context.Context, products []domain.CatalogProduct, pause time.Duration) (*domain.PopulateSummary, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	summary := &domain.PopulateSummary{
		Succeeded: make([]string, 0, len(products)),
		Failed:    make(map[string]string),
	}

	for i, product := range products {
		if i > 0 && pause > 0 {
			if err := s.sleep(ctx, pause); err != nil {
				return summary, err
			}
		}

		uid, err := s.fynd.CreateProduct(ctx, product)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"item_code": product.ItemCode,
				"error":     err.Error(),
			}).Warn("catalog: failed to create product")
			summary.Failed[product.ItemCode] = errors.Cause(err).Error()
			continue
		}

		logrus.WithFields(logrus.Fields{
			"item_code": product.ItemCode,
			"uid":       uid,
		}).Info("catalog: product created")
		summary.Succeeded = append(summary.Succeeded, product.ItemCode)
	}

	return summary, nil
}

type catalogFile struct {
	Products []domain.CatalogProduct `yaml:"products"`
}

// LoadCatalog reads a YAML catalog with a top-level "products" list.
func LoadCatalog(r io.Reader) ([]domain.CatalogProduct, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCatalog
		}
		return nil, errors.Wrap(err, "decode catalog")
	}

	products := make([]domain.CatalogProduct, 0, len(file.Products))
	for i, p := range file.Products {
		p.ItemCode = strings.TrimSpace(p.ItemCode)
		if p.ItemCode == "" || strings.TrimSpace(p.Name) == "" {
			return nil, errors.Errorf("product #%d: name and item_code are required", i+1)
		}
		if !p.Price.IsPositive() {
			return nil, errors.Errorf("product %s: price must be positive", p.ItemCode)
		}
		products = append(products, p)
	}

	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	return products, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package fynd

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	fynddomain "github.com/vfg2006/smart-inventory-api/infrastructure/integrator/fynd/domain"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/fynd/fyndclient"
	"github.com/vfg2006/smart-inventory-api/internal/config"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"github.com/vfg2006/smart-inventory-api/pkg/utils"
)

//go:generate mockgen -source=service.go -destination=mocks/integrator.go -package=mocks

const currencyINR = "INR"

var ErrInvalidSignature = errors.New("invalid webhook signature")

type FyndIntegrator interface {
	CreateProduct(ctx context.Context, product domain.CatalogProduct) (int64, error)
	ListProducts(ctx context.Context, pageNo, pageSize int) (*domain.CatalogPage, error)
	VerifySignature(body []byte, signature string) error
}

type FyndService struct {
	cfg    *config.Config
	Client fyndclient.Client
}

func New(cfg *config.Config, client fyndclient.Client) FyndIntegrator {
	return &FyndService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *FyndService) CreateProduct(ctx context.Context, product domain.CatalogProduct) (int64, error) {
	req := FactoryProductRequest(product)
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("fynd: create product payload\n%s", utils.PrettyJson(req))
	}

	resp, err := s.Client.CreateProduct(ctx, req)
	if err != nil {
		return 0, errors.Wrapf(err, "create product %s", product.ItemCode)
	}

	logrus.WithFields(logrus.Fields{
		"item_code": product.ItemCode,
		"uid":       resp.UID,
	}).Debug("fynd: product created")

	return resp.UID, nil
}

func (s *FyndService) ListProducts(ctx context.Context, pageNo, pageSize int) (*domain.CatalogPage, error) {
	resp, err := s.Client.ListProducts(ctx, pageNo, pageSize)
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}

	page := &domain.CatalogPage{
		Items:    make([]domain.CatalogItem, 0, len(resp.Items)),
		PageNo:   pageNo,
		PageSize: pageSize,
		HasNext:  resp.Page.HasNext,
		Total:    resp.Page.ItemTotal,
	}
	for _, item := range resp.Items {
		page.Items = append(page.Items, domain.CatalogItem{
			UID:      item.UID,
			Name:     item.Name,
			ItemCode: item.ItemCode,
			Slug:     item.Slug,
			Brand:    item.Brand.Name,
			Category: item.Category.Name,
			IsActive: item.IsActive,
		})
	}

	return page, nil
}

// VerifySignature checks the hex HMAC-SHA256 of the raw body against x-fp-signature.
// Without a configured secret every request is rejected.
func (s *FyndService) VerifySignature(body []byte, signature string) error {
	secret := s.cfg.Fynd.WebhookSecret
	if secret == "" {
		return errors.Wrap(ErrInvalidSignature, "webhook secret not configured")
	}

	got, err := hex.DecodeString(strings.TrimSpace(signature))
	if err != nil || len(got) == 0 {
		return ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}

// FactoryProductRequest builds the catalog payload. The listed price is the cost price
// and the effective price is what the customer pays.
func FactoryProductRequest(product domain.CatalogProduct) fynddomain.ProductRequest {
	request := fynddomain.ProductRequest{
		Name:        product.Name,
		Brand:       fynddomain.Named{Name: product.Brand},
		Category:    fynddomain.Named{Name: product.Category},
		ItemCode:    product.ItemCode,
		Description: product.Description,
		Sizes: []fynddomain.Size{{
			Size:             product.Size,
			Price:            product.CostPrice().InexactFloat64(),
			PriceEffective:   product.Price.InexactFloat64(),
			Currency:         currencyINR,
			SellerIdentifier: product.ItemCode,
		}},
		IsActive: true,
		Slug:     strings.ToLower(product.ItemCode),
	}
	if product.Department != "" {
		request.Departments = []string{product.Department}
	}
	return request
}

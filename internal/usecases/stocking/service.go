package stocking

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/smart-inventory-api/infrastructure/integrator/boltic"
	"github.com/vfg2006/smart-inventory-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=service.go -destination=mocks/stocker.go -package=mocks

type Stocker interface {
	List(ctx context.Context) ([]domain.InventoryItemView, error)
	Update(ctx context.Context, storeID, skuID string, update domain.InventoryUpdate) (*domain.InventoryItemView, error)
}

type Service struct {
	boltic boltic.BolticIntegrator
}

func NewService(bolticService boltic.BolticIntegrator) *Service {
	return &Service{boltic: bolticService}
}

// List returns every snapshot row with its store and SKU names and stock status.
func (s *Service) List(ctx context.Context) ([]domain.InventoryItemView, error) {
	var (
		inventory []domain.InventorySnapshot
		stores    []domain.Store
		skus      []domain.SKU
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		inventory, err = s.boltic.ListInventory(gctx)
		return err
	})
	g.Go(func() (err error) {
		stores, err = s.boltic.ListStores(gctx)
		return err
	})
	g.Go(func() (err error) {
		skus, err = s.boltic.ListSKUs(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	storeNames := make(map[string]string, len(stores))
	for _, store := range stores {
		storeNames[store.StoreID] = store.StoreName
	}
	skuNames := make(map[string]string, len(skus))
	for _, sku := range skus {
		skuNames[sku.SKUID] = sku.SKUName
	}

	views := make([]domain.InventoryItemView, 0, len(inventory))
	for _, item := range inventory {
		views = append(views, domain.InventoryItemView{
			InventorySnapshot: item,
			StoreName:         storeNames[item.StoreID],
			SKUName:           skuNames[item.SKUID],
			Status:            item.Status(),
		})
	}

	return views, nil
}

// Update applies a partial edit to one snapshot row and upserts it back.
func (s *Service) Update(ctx context.Context, storeID, skuID string, update domain.InventoryUpdate) (*domain.InventoryItemView, error) {
	inventory, err := s.boltic.ListInventory(ctx)
	if err != nil {
		return nil, err
	}

	key := domain.InventoryKey(storeID, skuID)
	var current *domain.InventorySnapshot
	for i := range inventory {
		if inventory[i].Key() == key {
			current = &inventory[i]
			break
		}
	}
	if current == nil {
		return nil, fmt.Errorf("inventory item %s: %w", key, domain.ErrNotFound)
	}

	updated := Apply(*current, update)
	if err := Validate(updated); err != nil {
		return nil, err
	}

	result, err := s.boltic.UpsertInventory(ctx, []domain.InventorySnapshot{updated})
	if err != nil {
		return nil, err
	}
	if !result.Success {
		return nil, fmt.Errorf("upsert inventory %s rejected: %s", key, strings.Join(result.Errors, "; "))
	}

	logrus.WithFields(logrus.Fields{
		"store_id": storeID,
		"sku_id":   skuID,
	}).Info("inventory: snapshot updated")

	return &domain.InventoryItemView{
		InventorySnapshot: updated,
		Status:            updated.Status(),
	}, nil
}

// Apply copies the non-nil fields of update onto item.
func Apply(item domain.InventorySnapshot, update domain.InventoryUpdate) domain.InventorySnapshot {
	if update.OnHandQty != nil {
		item.OnHandQty = *update.OnHandQty
	}
	if update.SafetyStock != nil {
		item.SafetyStock = *update.SafetyStock
	}
	if update.ReorderMultiple != nil {
		item.ReorderMultiple = *update.ReorderMultiple
	}
	if update.VendorEmail != nil {
		item.VendorEmail = strings.TrimSpace(*update.VendorEmail)
	}
	return item
}

func Validate(item domain.InventorySnapshot) error {
	switch {
	case item.OnHandQty < 0:
		return fmt.Errorf("%w: on_hand_qty must not be negative", domain.ErrInvalidInput)
	case item.SafetyStock < 0:
		return fmt.Errorf("%w: safety_stock must not be negative", domain.ErrInvalidInput)
	case item.ReorderMultiple <= 0:
		return fmt.Errorf("%w: reorder_multiple must be positive", domain.ErrInvalidInput)
	}

	if item.VendorEmail != "" {
		if _, err := mail.ParseAddress(item.VendorEmail); err != nil {
			return fmt.Errorf("%w: vendor_email is not a valid address", domain.ErrInvalidInput)
		}
	}
	return nil
}

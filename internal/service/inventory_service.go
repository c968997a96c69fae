package service

import (
	"context"
	"fmt"

	"go-ims/internal/model"
	"go-ims/internal/repository"
	"go-ims/internal/ws"
)

type InventoryService interface {
	GetProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	CreateProduct(ctx context.Context, product *model.Product) error
	UpdateProduct(ctx context.Context, id uint, product *model.Product) (int64, error)
	DeleteProduct(ctx context.Context, id uint) (int64, error)
}

type inventoryService struct {
	productRepo repository.ProductRepository
	hub         Broadcaster
}

func NewInventoryService(pRepo repository.ProductRepository, hub Broadcaster) InventoryService {
	if hub == nil {
		hub = NopBroadcaster()
	}
	return &inventoryService{productRepo: pRepo, hub: hub}
}

func (s *inventoryService) GetProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return s.productRepo.FindAll(ctx, filter)
}

func (s *inventoryService) CreateProduct(ctx context.Context, product *model.Product) error {
	if err := s.productRepo.Create(ctx, product); err != nil {
		return err
	}
	s.hub.Publish(ws.Event{
		Type:    "stock_update",
		Action:  "product_created",
		Data:    productPayload(product.PID, product),
		Message: fmt.Sprintf("product '%s' created", product.Name),
	})
	return nil
}

func (s *inventoryService) UpdateProduct(ctx context.Context, id uint, product *model.Product) (int64, error) {
	changes, err := s.productRepo.Update(ctx, id, product)
	if err != nil {
		return 0, err
	}
	if changes > 0 {
		s.hub.Publish(ws.Event{
			Type:    "stock_update",
			Action:  "product_updated",
			Data:    productPayload(id, product),
			Message: fmt.Sprintf("product '%s' updated", product.Name),
		})
	}
	return changes, nil
}

func (s *inventoryService) DeleteProduct(ctx context.Context, id uint) (int64, error) {
	changes, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	if changes > 0 {
		s.hub.Publish(ws.Event{
			Type:   "stock_update",
			Action: "product_deleted",
			Data:   map[string]interface{}{"pid": id},
		})
	}
	return changes, nil
}

func productPayload(id uint, p *model.Product) map[string]interface{} {
	return map[string]interface{}{
		"pid":   id,
		"name":  p.Name,
		"qty":   p.Qty,
		"price": p.Price,
	}
}

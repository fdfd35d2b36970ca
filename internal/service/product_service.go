// internal/service/product_service.go
package service

import (
	"context"
	"log"

	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/model"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/queue"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/repository"
)

type ProductService struct {
	Repo   repository.ProductRepositoryInterface
	Events queue.Queue
}

func (s *ProductService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.Repo.ListAll(ctx)
}

// CreateProduct inserts the product and returns the assigned identifier
func (s *ProductService) CreateProduct(ctx context.Context, p *model.Product) (int, error) {
	if err := s.Repo.Create(ctx, p); err != nil {
		return 0, err
	}
	s.publishEvent("product", "created", p.ProductID)
	return p.ProductID, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int, u model.ProductUpdate) error {
	if err := s.Repo.Update(ctx, id, u); err != nil {
		return err
	}
	s.publishEvent("product", "updated", id)
	return nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publishEvent("product", "deleted", id)
	return nil
}

func (s *ProductService) publishEvent(entity, action string, id int) {
	if s.Events == nil {
		return
	}
	ev := queue.EntityEvent{Entity: entity, Action: action, ID: id}
	if err := s.Events.Publish(queue.TopicEntityEvents, ev); err != nil {
		log.Println("⚠️ failed to publish entity event:", err)
	}
}

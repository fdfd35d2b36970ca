// internal/service/customer_service.go
package service

import (
	"context"
	"log"

	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/model"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/queue"
	"github.com/DanEinstein/E-commerce-CRUD-Operations/internal/repository"
)

type CustomerService struct {
	Repo   repository.CustomerRepositoryInterface
	Events queue.Queue
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	return s.Repo.ListAll(ctx)
}

// CreateCustomer inserts the customer and returns the assigned identifier
func (s *CustomerService) CreateCustomer(ctx context.Context, c *model.Customer) (int, error) {
	if err := s.Repo.Create(ctx, c); err != nil {
		return 0, err
	}
	s.publish("customer", "created", c.CustomerID)
	return c.CustomerID, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*model.Customer, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *CustomerService) UpdateCustomer(ctx context.Context, id int, u model.CustomerUpdate) error {
	if err := s.Repo.Update(ctx, id, u); err != nil {
		return err
	}
	s.publish("customer", "updated", id)
	return nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, id int) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish("customer", "deleted", id)
	return nil
}

// publish is best-effort; a queue failure never fails the request.
func (s *CustomerService) publish(entity, action string, id int) {
	if s.Events == nil {
		return
	}
	ev := queue.EntityEvent{Entity: entity, Action: action, ID: id}
	if err := s.Events.Publish(queue.TopicEntityEvents, ev); err != nil {
		log.Println("⚠️ failed to publish entity event:", err)
	}
}

package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"varejo/internal/errors"
	"varejo/internal/model"
	"varejo/internal/repository"
)

// ClientUpdateInput carries optional client mutations; nil fields are untouched.
type ClientUpdateInput struct {
	Name    *string
	Email   *string
	Phone   *string
	CpfCnpj *string
	Address *string
}

// ClientService exposes client CRUD operations.
type ClientService interface {
	CreateClient(ctx context.Context, client *model.Client) (*model.Client, error)
	GetClient(ctx context.Context, id uint) (*model.Client, error)
	ListClients(ctx context.Context, name, email string, limit, offset int) ([]model.Client, error)
	UpdateClient(ctx context.Context, id uint, input ClientUpdateInput) (*model.Client, error)
	DeleteClient(ctx context.Context, id uint) error
}

type clientService struct {
	repo repository.ClientRepository
}

// NewClientService creates a new client service.
func NewClientService(repo repository.ClientRepository) ClientService {
	return &clientService{repo: repo}
}

// uniqueClientFields lists the unique columns scanned on create, in a fixed
// order. The first collision wins; empty values are skipped.
var uniqueClientFields = []struct {
	column string
	value  func(*model.Client) string
}{
	{"email", func(c *model.Client) string { return c.Email }},
	{"phone", func(c *model.Client) string {
		if c.Phone == nil {
			return ""
		}
		return *c.Phone
	}},
	{"cpf_cnpj", func(c *model.Client) string { return c.CpfCnpj }},
}

// CreateClient checks every unique column before persisting the record.
func (s *clientService) CreateClient(ctx context.Context, client *model.Client) (*model.Client, error) {
	for _, field := range uniqueClientFields {
		value := field.value(client)
		if value == "" {
			continue
		}
		existing, err := s.repo.FindByField(ctx, field.column, value)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check unique %s: %w", field.column, err)
		}
		if existing != nil {
			return nil, &errors.FieldConflictError{Field: field.column, Value: value}
		}
	}

	if err := s.repo.Create(ctx, client); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, &errors.FieldConflictError{Field: "email", Value: client.Email}
		}
		return nil, fmt.Errorf("create client: %w", err)
	}
	return client, nil
}

func (s *clientService) GetClient(ctx context.Context, id uint) (*model.Client, error) {
	client, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, &errors.ClientNotFoundError{ID: id}
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, name, email string, limit, offset int) ([]model.Client, error) {
	return s.repo.List(ctx, name, email, limit, offset)
}

// UpdateClient applies the non-nil input fields and persists the record.
func (s *clientService) UpdateClient(ctx context.Context, id uint, input ClientUpdateInput) (*model.Client, error) {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		client.Name = *input.Name
	}
	if input.Email != nil {
		client.Email = *input.Email
	}
	if input.Phone != nil {
		client.Phone = input.Phone
	}
	if input.CpfCnpj != nil {
		client.CpfCnpj = *input.CpfCnpj
	}
	if input.Address != nil {
		client.Address = *input.Address
	}

	if err := s.repo.Update(ctx, client); err != nil {
		if err == gorm.ErrDuplicatedKey {
			return nil, &errors.FieldConflictError{Field: "email", Value: client.Email}
		}
		return nil, fmt.Errorf("update client: %w", err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, id uint) error {
	client, err := s.GetClient(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, client); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}

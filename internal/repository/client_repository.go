package repository

import (
	"context"

	"gorm.io/gorm"

	"varejo/internal/model"
)

// ClientRepository defines client persistence operations.
type ClientRepository interface {
	Create(ctx context.Context, client *model.Client) error
	Update(ctx context.Context, client *model.Client) error
	FindByID(ctx context.Context, id uint) (*model.Client, error)
	// FindByField looks up a client by one of the unique columns
	// (email, phone, cpf_cnpj). The column name comes from a fixed
	// list owned by the service, never from request input.
	FindByField(ctx context.Context, column string, value string) (*model.Client, error)
	List(ctx context.Context, name, email string, limit, offset int) ([]model.Client, error)
	Delete(ctx context.Context, client *model.Client) error
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository builds a GORM-backed repository.
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *clientRepository) Update(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Save(client).Error
}

func (r *clientRepository) FindByID(ctx context.Context, id uint) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindByField(ctx context.Context, column string, value string) (*model.Client, error) {
	var client model.Client
	if err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context, name, email string, limit, offset int) ([]model.Client, error) {
	query := r.db.WithContext(ctx).Model(&model.Client{})
	if name != "" {
		query = query.Where("name LIKE ?", "%"+name+"%")
	}
	if email != "" {
		query = query.Where("email LIKE ?", "%"+email+"%")
	}

	var clients []model.Client
	if err := query.Offset(offset).Limit(limit).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) Delete(ctx context.Context, client *model.Client) error {
	return r.db.WithContext(ctx).Delete(client).Error
}

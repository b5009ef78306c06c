package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/silkroute/order-tracking-service/internal/domain"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/postgres/mappers"
	"github.com/silkroute/order-tracking-service/internal/infrastructure/postgres/models"
)

type DefaultUserRepository struct {
	DB *gorm.DB
}

func NewDefaultUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{DB: db}
}

func (r *DefaultUserRepository) CreateUser(user *domain.User) error {
	userModel := mappers.ToGORMUser(user)
	if err := r.DB.Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: email already registered", domain.ErrValidation)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.ID = userModel.ID
	return nil
}

func (r *DefaultUserRepository) GetUserByID(userID uint) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainUser(&userModel), nil
}

func (r *DefaultUserRepository) GetUserByEmail(email string) (*domain.User, error) {
	var userModel models.UserModel
	if err := r.DB.First(&userModel, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return mappers.ToDomainUser(&userModel), nil
}

func (r *DefaultUserRepository) GetUsers(skip, limit int) ([]*domain.User, error) {
	var userModels []models.UserModel
	if err := r.DB.Offset(skip).Limit(limit).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	users := make([]*domain.User, len(userModels))
	for i := range userModels {
		users[i] = mappers.ToDomainUser(&userModels[i])
	}

	return users, nil
}

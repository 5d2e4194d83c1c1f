package repository

import (
	"context"

	"gorm.io/gorm"

	"dailydiet/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindBySessionID(ctx context.Context, sessionID string) (*model.User, error)
	ListBySessionID(ctx context.Context, sessionID string) ([]model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindBySessionID resolves a session token to a single user. When several
// users share the token the oldest row wins.
func (r *userRepository) FindBySessionID(ctx context.Context, sessionID string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ListBySessionID(ctx context.Context, sessionID string) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

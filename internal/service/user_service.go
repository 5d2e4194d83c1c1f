package service

import (
	"context"
	"fmt"

	"dailydiet/internal/model"
	"dailydiet/internal/repository"
	"dailydiet/internal/session"
)

// UserService exposes the user registry.
type UserService interface {
	// Register creates a new user. When sessionID is empty a fresh token is
	// minted; otherwise the presented token is reused, so a returning client
	// accumulates users under one session. minted tells the transport layer
	// whether it has a new token to persist.
	Register(ctx context.Context, name, email, sessionID string) (user *model.User, token string, minted bool, err error)
	// ListBySession returns every user sharing the caller's session token.
	ListBySession(ctx context.Context, sessionID string) ([]model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Register(ctx context.Context, name, email, sessionID string) (*model.User, string, bool, error) {
	minted := false
	if sessionID == "" {
		sessionID = session.NewToken()
		minted = true
	}

	user := &model.User{
		SessionID: sessionID,
		Name:      name,
		Email:     email,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, "", false, fmt.Errorf("create user: %w", err)
	}
	return user, sessionID, minted, nil
}

func (s *userService) ListBySession(ctx context.Context, sessionID string) ([]model.User, error) {
	return s.repo.ListBySessionID(ctx, sessionID)
}

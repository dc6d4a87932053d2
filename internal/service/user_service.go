package service

import (
	"context"

	"ecommerce_backend/internal/models"
	"ecommerce_backend/internal/repository"
)

// UserService covers the protected account operations. Registration and
// login live in AuthService.
type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int) (models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Replace overwrites the profile; the submitted password is re-hashed.
func (s *UserService) Replace(ctx context.Context, id int, username, password, email string) (models.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return models.User{}, err
	}
	return s.users.Update(ctx, models.User{
		ID:           id,
		Username:     username,
		PasswordHash: hash,
		Email:        email,
	})
}

func (s *UserService) Delete(ctx context.Context, id int) (models.User, error) {
	return s.users.Delete(ctx, id)
}

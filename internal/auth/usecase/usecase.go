package usecase

import (
	"github.com/palloncino/storage-server-app-01/internal/auth/domain"
	"github.com/palloncino/storage-server-app-01/internal/auth/dto"
)

// AuthUsecase issues and verifies bearer tokens and handles account
// creation. VerifyToken is the single entry point both the middleware and
// the explicit verification endpoint go through.
type AuthUsecase interface {
	Login(req *dto.LoginRequest) (token string, user *domain.User, err error)
	Signup(req *dto.SignupRequest) (*domain.User, error)
	VerifyToken(raw string) (*domain.User, error)
}

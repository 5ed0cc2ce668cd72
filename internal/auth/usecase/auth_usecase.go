package usecase

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/palloncino/storage-server-app-01/internal/auth/domain"
	"github.com/palloncino/storage-server-app-01/internal/auth/dto"
	"github.com/palloncino/storage-server-app-01/internal/auth/repository"
	"github.com/palloncino/storage-server-app-01/pkg/apperror"
	"github.com/palloncino/storage-server-app-01/pkg/config"
)

// Claims are the identity claims carried by every issued token.
type Claims struct {
	jwt.RegisteredClaims
	UserID int    `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Login(req *dto.LoginRequest) (string, *domain.User, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return "", nil, apperror.Wrap(apperror.Internal, "Error during login", err)
	}
	if user == nil {
		return "", nil, apperror.New(apperror.Auth, "Invalid email or password, there is no user with that email")
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return "", nil, apperror.New(apperror.Auth, "Invalid email or password, the credentials do not match")
	}

	token, err := u.issueToken(user)
	if err != nil {
		return "", nil, apperror.Wrap(apperror.Internal, "Error during login", err)
	}
	return token, user, nil
}

func (u *authUsecase) Signup(req *dto.SignupRequest) (*domain.User, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error registering user", err)
	}
	if existing != nil {
		return nil, apperror.New(apperror.Conflict, "User already exists with the same email")
	}

	// The hash happens here, explicitly, not in a persistence hook.
	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error registering user", err)
	}

	user := &domain.User{
		Username:    req.Username,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Password:    hashed,
		Role:        domain.RoleUser,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error registering user", err)
	}
	return user, nil
}

// VerifyToken parses and validates a bearer token, then resolves the subject
// against the store. Bad tokens come back as Auth errors, a vanished subject
// as NotFound, so callers can log distinct reasons.
func (u *authUsecase) VerifyToken(raw string) (*domain.User, error) {
	claims, err := u.parseToken(raw)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error verifying token", err)
	}
	if user == nil {
		return nil, apperror.New(apperror.NotFound, "User not found")
	}
	return user, nil
}

func (u *authUsecase) issueToken(user *domain.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(u.config.TokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *authUsecase) parseToken(raw string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperror.Wrap(apperror.Auth, "Invalid or expired token", err)
	}
	return claims, nil
}

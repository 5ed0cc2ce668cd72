package usecase

import (
	"github.com/palloncino/storage-server-app-01/internal/auth/domain"
	"github.com/palloncino/storage-server-app-01/internal/auth/repository"
	"github.com/palloncino/storage-server-app-01/internal/user/dto"
	"github.com/palloncino/storage-server-app-01/pkg/apperror"
)

// UserUsecase covers account administration: listing, profile edits and
// bulk deletion.
type UserUsecase interface {
	GetUsers() ([]domain.User, error)
	EditUser(req *dto.EditUserRequest) (*domain.User, error)
	DeleteUsers(ids []int) (int64, error)
}

// userUsecase implements UserUsecase on top of the auth user repository.
type userUsecase struct {
	userRepo repository.UserRepository
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository) UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

func (u *userUsecase) GetUsers() ([]domain.User, error) {
	users, err := u.userRepo.FindAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error retrieving users", err)
	}
	return users, nil
}

// EditUser applies the submitted fields to an existing account. The
// password is re-hashed only when the submitted value differs from the
// stored hash, so echoing the record back unchanged never double-hashes it.
func (u *userUsecase) EditUser(req *dto.EditUserRequest) (*domain.User, error) {
	user, err := u.userRepo.FindByID(req.ID)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error updating user", err)
	}
	if user == nil {
		return nil, apperror.New(apperror.NotFound, "User not found")
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.CompanyName != "" {
		user.CompanyName = req.CompanyName
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Password != "" && req.Password != user.Password {
		hashed, err := repository.HashPassword(req.Password)
		if err != nil {
			return nil, apperror.Wrap(apperror.Internal, "Error updating user", err)
		}
		user.Password = hashed
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error updating user", err)
	}
	return user, nil
}

func (u *userUsecase) DeleteUsers(ids []int) (int64, error) {
	count, err := u.userRepo.DeleteByIDs(ids)
	if err != nil {
		return 0, apperror.Wrap(apperror.Internal, "Error deleting users", err)
	}
	if count == 0 {
		return 0, apperror.New(apperror.NotFound, "No users found with the given IDs.")
	}
	return count, nil
}

package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palloncino/storage-server-app-01/internal/auth/domain"
	"github.com/palloncino/storage-server-app-01/internal/auth/dto"
	"github.com/palloncino/storage-server-app-01/internal/auth/repository"
	"github.com/palloncino/storage-server-app-01/pkg/apperror"
	"github.com/palloncino/storage-server-app-01/pkg/config"
)

// fakeUserRepo is an in-memory UserRepository that records mutations.
type fakeUserRepo struct {
	users   map[int]*domain.User
	nextID  int
	creates int
	updates int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*domain.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(user *domain.User) error {
	user.ID = f.nextID
	f.nextID++
	copied := *user
	f.users[user.ID] = &copied
	f.creates++
	return nil
}

func (f *fakeUserRepo) FindByID(id int) (*domain.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*domain.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAll() ([]domain.User, error) {
	var all []domain.User
	for _, user := range f.users {
		all = append(all, *user)
	}
	return all, nil
}

func (f *fakeUserRepo) Update(user *domain.User) error {
	copied := *user
	f.users[user.ID] = &copied
	f.updates++
	return nil
}

func (f *fakeUserRepo) DeleteByIDs(ids []int) (int64, error) {
	var count int64
	for _, id := range ids {
		if _, ok := f.users[id]; ok {
			delete(f.users, id)
			count++
		}
	}
	return count, nil
}

func testConfig(expiry time.Duration) *config.Config {
	return &config.Config{JWTSecret: "test-secret", TokenExpiry: expiry}
}

func seedUser(t *testing.T, repo repository.UserRepository, email, password string) *domain.User {
	t.Helper()
	hashed, err := repository.HashPassword(password)
	require.NoError(t, err)
	user := &domain.User{
		Username:    "anna",
		FirstName:   "Anna",
		LastName:    "Rossi",
		CompanyName: "ACME",
		Email:       email,
		Password:    hashed,
		Role:        domain.RoleUser,
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig(time.Hour))
	seeded := seedUser(t, repo, "anna@example.com", "password1")

	token, user, err := uc.Login(&dto.LoginRequest{Email: "anna@example.com", Password: "password1"})
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, seeded.ID, user.ID)

	// The claims resolve back to the same identity.
	resolved, err := uc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, resolved.ID)
	assert.Equal(t, seeded.Email, resolved.Email)
	assert.Equal(t, domain.RoleUser, resolved.Role)
}

func TestLoginUnknownEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig(time.Hour))

	_, _, err := uc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	require.Error(t, err)
	appErr := apperror.From(err, "")
	assert.Equal(t, apperror.Auth, appErr.Type)
}

func TestLoginWrongPasswordMutatesNothing(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig(time.Hour))
	seedUser(t, repo, "anna@example.com", "password1")
	creates, updates := repo.creates, repo.updates

	token, _, err := uc.Login(&dto.LoginRequest{Email: "anna@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Empty(t, token)
	appErr := apperror.From(err, "")
	assert.Equal(t, apperror.Auth, appErr.Type)
	assert.Equal(t, creates, repo.creates)
	assert.Equal(t, updates, repo.updates)
}

func TestSignupStoresHashNotPlaintext(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig(time.Hour))

	user, err := uc.Signup(&dto.SignupRequest{
		Username:    "marco",
		FirstName:   "Marco",
		LastName:    "Bianchi",
		CompanyName: "ACME",
		Email:       "marco@example.com",
		Password:    "password1",
	})
	require.NoError(t, err)

	stored, err := repo.FindByID(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "password1", stored.Password)
	assert.True(t, repository.CheckPasswordHash("password1", stored.Password))
	assert.Equal(t, domain.RoleUser, stored.Role)
}

func TestSignupDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig(time.Hour))
	seedUser(t, repo, "anna@example.com", "password1")

	_, err := uc.Signup(&dto.SignupRequest{
		Username:    "anna2",
		FirstName:   "Anna",
		LastName:    "Verdi",
		CompanyName: "ACME",
		Email:       "anna@example.com",
		Password:    "password2",
	})
	require.Error(t, err)
	appErr := apperror.From(err, "")
	assert.Equal(t, apperror.Conflict, appErr.Type)
}

func TestVerifyTokenExpired(t *testing.T) {
	repo := newFakeUserRepo()
	// Negative expiry makes every issued token already expired.
	uc := NewAuthUsecase(repo, testConfig(-time.Minute))
	seedUser(t, repo, "anna@example.com", "password1")

	token, _, err := uc.Login(&dto.LoginRequest{Email: "anna@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = uc.VerifyToken(token)
	require.Error(t, err)
	appErr := apperror.From(err, "")
	assert.Equal(t, apperror.Auth, appErr.Type)
}

func TestVerifyTokenGarbage(t *testing.T) {
	uc := NewAuthUsecase(newFakeUserRepo(), testConfig(time.Hour))

	_, err := uc.VerifyToken("not.a.token")
	require.Error(t, err)
	appErr := apperror.From(err, "")
	assert.Equal(t, apperror.Auth, appErr.Type)
}

func TestVerifyTokenForDeletedUser(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAuthUsecase(repo, testConfig(time.Hour))
	seeded := seedUser(t, repo, "anna@example.com", "password1")

	token, _, err := uc.Login(&dto.LoginRequest{Email: "anna@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = repo.DeleteByIDs([]int{seeded.ID})
	require.NoError(t, err)

	_, err = uc.VerifyToken(token)
	require.Error(t, err)
	appErr := apperror.From(err, "")
	assert.Equal(t, apperror.NotFound, appErr.Type)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	repo := newFakeUserRepo()
	issuer := NewAuthUsecase(repo, testConfig(time.Hour))
	seedUser(t, repo, "anna@example.com", "password1")

	token, _, err := issuer.Login(&dto.LoginRequest{Email: "anna@example.com", Password: "password1"})
	require.NoError(t, err)

	verifier := NewAuthUsecase(repo, &config.Config{JWTSecret: "rotated-secret", TokenExpiry: time.Hour})
	_, err = verifier.VerifyToken(token)
	require.Error(t, err)
	appErr := apperror.From(err, "")
	assert.Equal(t, apperror.Auth, appErr.Type)
}

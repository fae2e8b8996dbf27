package service

import (
	"context"
	"testing"

	"catalog/internal/model"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byEmail    map[string]*model.User
	byUsername map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail:    map[string]*model.User{},
		byUsername: map[string]*model.User{},
	}
}

func (f *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	u.ID = uuid.New()
	f.byEmail[u.Email] = u
	f.byUsername[u.Username] = u
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func TestCreateUserAndLogin(t *testing.T) {
	secret := []byte("test_secret")
	svc := NewUserService(newFakeUserRepo(), secret)

	created, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret!",
		Role:     model.RoleManager,
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleManager, created.Role)

	res, err := svc.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(res.Token, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, created.ID.String(), claims["sub"])
	assert.Equal(t, model.RoleManager, claims["role"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), []byte("test_secret"))

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "correct",
		Role:     model.RoleStaff,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	svc := NewUserService(newFakeUserRepo(), []byte("test_secret"))

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "eve",
		Email:    "eve@example.com",
		Password: "s3cret!",
		Role:     "superuser",
	})
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, []byte("test_secret"))

	_, err := svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "s3cret!",
		Role:     model.RoleStaff,
	})
	require.NoError(t, err)

	_, err = svc.CreateUser(context.Background(), CreateUserRequest{
		Username: "carol2",
		Email:    "carol@example.com",
		Password: "s3cret!",
		Role:     model.RoleStaff,
	})
	assert.ErrorIs(t, err, ErrConflict)
}

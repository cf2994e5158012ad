package application_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-shop-cart/internal/application"
	"github.com/oksasatya/go-shop-cart/internal/domain/entity"
	"github.com/oksasatya/go-shop-cart/internal/domain/repository"
	"github.com/oksasatya/go-shop-cart/internal/infrastructure/elastic"
	"github.com/oksasatya/go-shop-cart/pkg/helpers"
	"github.com/oksasatya/go-shop-cart/pkg/mailer"
)

func init() {
	helpers.PasswordCost = bcrypt.MinCost
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	if err := args.Error(0); err != nil {
		return err
	}
	u.ID = "user-1"
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *mockUserRepository) List(ctx context.Context) ([]*entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]*entity.User)
	return users, args.Error(1)
}

type fakeSearch struct {
	indexed []string
	err     error
	lastQ   string
	size    int
}

func (f *fakeSearch) IndexUser(_ context.Context, u *entity.User) error {
	f.indexed = append(f.indexed, u.ID)
	return f.err
}

func (f *fakeSearch) SearchUsers(_ context.Context, q string, size int) ([]elastic.UserDoc, error) {
	f.lastQ, f.size = q, size
	return []elastic.UserDoc{{ID: "user-1"}}, nil
}

type fakePublisher struct {
	jobs []mailer.EmailJob
	err  error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if job, ok := body.(mailer.EmailJob); ok {
		f.jobs = append(f.jobs, job)
	}
	return f.err
}

func registerInput() application.RegisterInput {
	return application.RegisterInput{
		Email:       "jane@example.com",
		Password:    "secret1",
		FullName:    "Jane Doe",
		Age:         31,
		Address:     entity.Address{Country: "NL", State: "NH", Street: "Damrak 1", PostalCode: "1012"},
		PhoneNumber: "+31200000000",
	}
}

func newUserService(r *mockUserRepository) (*application.UserService, *helpers.JWTManager) {
	jwt := helpers.NewJWTManager("test-secret", helpers.DefaultTokenTTL)
	return application.NewUserService(r, jwt, helpers.NewNopLogger()), jwt
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates user with hashed password and returns token", func(t *testing.T) {
		r := &mockUserRepository{}
		search := &fakeSearch{}
		pub := &fakePublisher{}
		svc, jwt := newUserService(r)
		svc.WithSearch(search).WithMail(pub, "Shop")

		in := registerInput()
		r.On("GetByEmail", mock.Anything, in.Email).Return(nil, repository.ErrNotFound).Once()
		r.On("Create", mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == in.Email && u.Password != in.Password &&
				helpers.CompareHashAndPassword(u.Password, in.Password) && u.Address == in.Address
		})).Return(nil).Once()

		token, err := svc.Register(ctx, in)
		require.NoError(t, err)

		claims, err := jwt.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, in.Email, claims.Email)

		assert.Equal(t, []string{"user-1"}, search.indexed)
		require.Len(t, pub.jobs, 1)
		assert.Equal(t, in.Email, pub.jobs[0].To)
		assert.Equal(t, "welcome", pub.jobs[0].Template)
		r.AssertExpectations(t)
	})

	t.Run("existing email fails regardless of other fields", func(t *testing.T) {
		r := &mockUserRepository{}
		svc, _ := newUserService(r)

		in := registerInput()
		in.FullName = "Someone Else"
		in.Password = "different"
		r.On("GetByEmail", mock.Anything, in.Email).Return(&entity.User{ID: "user-0", Email: in.Email}, nil).Once()

		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, application.ErrAlreadyRegistered)
		r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lost insert race maps to already registered", func(t *testing.T) {
		r := &mockUserRepository{}
		svc, _ := newUserService(r)

		r.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound).Once()
		r.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := svc.Register(ctx, registerInput())
		assert.ErrorIs(t, err, application.ErrAlreadyRegistered)
	})

	t.Run("store failure is not a business error", func(t *testing.T) {
		r := &mockUserRepository{}
		svc, _ := newUserService(r)

		dbErr := errors.New("connection refused")
		r.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, dbErr).Once()

		_, err := svc.Register(ctx, registerInput())
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, application.ErrAlreadyRegistered)
	})

	t.Run("password over 72 bytes is rejected as input", func(t *testing.T) {
		r := &mockUserRepository{}
		svc, _ := newUserService(r)

		in := registerInput()
		in.Password = strings.Repeat("a", 73)
		r.On("GetByEmail", mock.Anything, in.Email).Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Register(ctx, in)
		assert.ErrorIs(t, err, application.ErrPasswordTooLong)
		r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("side effect failures do not fail registration", func(t *testing.T) {
		r := &mockUserRepository{}
		svc, _ := newUserService(r)
		svc.WithSearch(&fakeSearch{err: errors.New("es down")}).WithMail(&fakePublisher{err: errors.New("amqp closed")}, "Shop")

		r.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, repository.ErrNotFound).Once()
		r.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

		token, err := svc.Register(ctx, registerInput())
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := helpers.HashPassword("secret1")
	require.NoError(t, err)
	stored := &entity.User{ID: "user-7", Email: "jane@example.com", Password: hash}

	t.Run("valid credentials", func(t *testing.T) {
		r := &mockUserRepository{}
		svc, jwt := newUserService(r)
		r.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil).Once()

		token, err := svc.Login(ctx, stored.Email, "secret1")
		require.NoError(t, err)
		claims, err := jwt.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-7", claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		r := &mockUserRepository{}
		svc, _ := newUserService(r)
		r.On("GetByEmail", mock.Anything, stored.Email).Return(stored, nil).Once()

		_, err := svc.Login(ctx, stored.Email, "secret2")
		assert.ErrorIs(t, err, application.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		r := &mockUserRepository{}
		svc, _ := newUserService(r)
		r.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Login(ctx, "ghost@example.com", "secret1")
		assert.ErrorIs(t, err, application.ErrNotRegistered)
	})
}

func TestUserService_GetUser(t *testing.T) {
	r := &mockUserRepository{}
	svc, _ := newUserService(r)
	r.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()
	r.On("GetByID", mock.Anything, "user-1").Return(&entity.User{ID: "user-1"}, nil).Once()

	u, err := svc.GetUser(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, u)

	u, err = svc.GetUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)
}

func TestUserService_SearchUsers(t *testing.T) {
	svc, _ := newUserService(&mockUserRepository{})

	docs, err := svc.SearchUsers(context.Background(), "jane", 5)
	require.NoError(t, err)
	assert.Empty(t, docs, "search disabled yields no hits")

	search := &fakeSearch{}
	svc.WithSearch(search)

	_, err = svc.SearchUsers(context.Background(), "jane", 500)
	require.NoError(t, err)
	assert.Equal(t, 50, search.size)

	_, err = svc.SearchUsers(context.Background(), "jane", 0)
	require.NoError(t, err)
	assert.Equal(t, 10, search.size)
	assert.Equal(t, "jane", search.lastQ)
}

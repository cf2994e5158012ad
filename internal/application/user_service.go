package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/oksasatya/go-shop-cart/internal/domain/entity"
	repo "github.com/oksasatya/go-shop-cart/internal/domain/repository"
	"github.com/oksasatya/go-shop-cart/internal/infrastructure/elastic"
	"github.com/oksasatya/go-shop-cart/pkg/helpers"
	"github.com/oksasatya/go-shop-cart/pkg/mailer"
	tpl "github.com/oksasatya/go-shop-cart/pkg/mailer/templates"
)

// UserSearch is the users search index. Optional.
type UserSearch interface {
	IndexUser(ctx context.Context, u *entity.User) error
	SearchUsers(ctx context.Context, q string, size int) ([]elastic.UserDoc, error)
}

// JobPublisher enqueues background jobs. Optional.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type UserService struct {
	Repo    repo.UserRepository
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Search  UserSearch
	Mail    JobPublisher
	AppName string
}

func NewUserService(repo repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, JWT: jwt, Logger: logger}
}

// WithSearch enables indexing on register and SearchUsers.
func (s *UserService) WithSearch(search UserSearch) *UserService {
	s.Search = search
	return s
}

// WithMail enables the welcome email job on register.
func (s *UserService) WithMail(pub JobPublisher, appName string) *UserService {
	s.Mail = pub
	s.AppName = appName
	return s
}

type RegisterInput struct {
	Email       string
	Password    string
	FullName    string
	Age         int
	Address     entity.Address
	PhoneNumber string
}

// Register creates the account and returns a bearer token for it.
// The email check and the insert are separate statements; the unique index settles races.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (string, error) {
	existing, err := s.Repo.GetByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return "", fmt.Errorf("lookup email: %w", err)
	}
	if existing != nil {
		return "", ErrAlreadyRegistered
	}

	hash, err := helpers.HashPassword(in.Password)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{
		Email:       in.Email,
		Password:    hash,
		FullName:    in.FullName,
		Age:         in.Age,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return "", ErrAlreadyRegistered
		}
		return "", fmt.Errorf("create user: %w", err)
	}
	usersRegistered.Add(1)

	token, _, err := s.JWT.GenerateToken(u.ID, u.Email)
	if err != nil {
		s.log().WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return "", err
	}

	s.indexUser(ctx, u)
	s.enqueueWelcome(ctx, u)
	return token, nil
}

// Login verifies the password and returns a fresh bearer token.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return "", fmt.Errorf("lookup email: %w", err)
	}
	if u == nil {
		return "", ErrNotRegistered
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return "", ErrInvalidCredentials
	}
	token, _, err := s.JWT.GenerateToken(u.ID, "")
	if err != nil {
		s.log().WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		return "", err
	}
	logins.Add(1)
	return token, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// GetUser returns nil without error when no user has that id.
func (s *UserService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// SearchUsers queries the users index; size is clamped to 1..50 (default 10).
func (s *UserService) SearchUsers(ctx context.Context, q string, size int) ([]elastic.UserDoc, error) {
	if s.Search == nil {
		return []elastic.UserDoc{}, nil
	}
	if size <= 0 {
		size = 10
	}
	if size > 50 {
		size = 50
	}
	return s.Search.SearchUsers(ctx, q, size)
}

func (s *UserService) indexUser(ctx context.Context, u *entity.User) {
	if s.Search == nil {
		return
	}
	if err := s.Search.IndexUser(ctx, u); err != nil {
		s.log().WithError(err).WithField("user_id", u.ID).Warn("es index failed")
	}
}

func (s *UserService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Mail == nil {
		return
	}
	data := tpl.ToMap(tpl.EmailData{
		Name:    u.FullName,
		Email:   u.Email,
		AppName: s.AppName,
		Type:    tpl.Welcome,
		TimeAt:  time.Now().UTC(),
	})
	job := mailer.EmailJob{To: u.Email, Template: tpl.Welcome, Data: data}
	if err := s.Mail.PublishJSON(ctx, job); err != nil {
		s.log().WithError(err).WithField("user_id", u.ID).Warn("failed to publish welcome email")
	}
}

func (s *UserService) log() *logrus.Logger {
	if s.Logger == nil {
		return helpers.NewNopLogger()
	}
	return s.Logger
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/franciscosanchezn/pizza-orders-api/internal/models"
	"github.com/franciscosanchezn/pizza-orders-api/internal/repository"
)

// UserService is the account directory: account creation, lookup and
// password authentication.
type UserService interface {
	// CreateUser creates an account. The email is required and stored
	// lowercased; the password is bcrypt-hashed before storage.
	CreateUser(ctx context.Context, email, password, name string) (*models.User, error)
	// CreateSuperuser creates an account with staff and superuser flags set.
	CreateSuperuser(ctx context.Context, email, password string) (*models.User, error)
	// Authenticate verifies email+password and returns the account.
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type userService struct {
	db    *gorm.DB
	users repository.UserRepository
}

// NewUserService builds a UserService over the given database handle.
func NewUserService(db *gorm.DB) UserService {
	return &userService{db: db, users: repository.NewUserRepository(db)}
}

// NormalizeEmail lowercases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) CreateUser(ctx context.Context, email, password, name string) (*models.User, error) {
	email = NormalizeEmail(email)
	if email == "" {
		return nil, models.ErrEmailRequired
	}

	user := &models.User{
		Email:    email,
		Name:     name,
		IsActive: true,
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		users := repository.NewUserRepository(tx)
		if _, err := users.FindByEmail(ctx, email); err == nil {
			return models.ErrEmailTaken
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return users.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	log.WithField("email", user.Email).Info("User created")
	return user, nil
}

func (s *userService) CreateSuperuser(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.CreateUser(ctx, email, password, "")
	if err != nil {
		return nil, err
	}

	user.IsStaff = true
	user.IsSuperuser = true
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", models.ErrUnauthenticated)
		}
		return nil, err
	}
	if !user.IsActive || !user.CheckPassword(password) {
		return nil, fmt.Errorf("%w: invalid credentials", models.ErrUnauthenticated)
	}
	return user, nil
}

func (s *userService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %d", models.ErrNotFound, id)
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, email)
		}
		return nil, err
	}
	return user, nil
}

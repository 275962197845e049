package service

import (
	"Catalog/internal/model"
	"Catalog/internal/repo"
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const minPasswordLen = 6

// UserService — регистрация, вход и профиль пользователя.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

// ProfileUpdate — частичное обновление профиля.
type ProfileUpdate struct {
	Username     *string
	Email        *string
	ProfilePhoto *string
	Password     *string
}

// Register создаёт пользователя с bcrypt-хешем пароля.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = normalizeEmail(email)
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return nil, invalid(fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
	}
	if err := s.ensureFree(ctx, username, email, 0); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.CreateUser(ctx, &model.User{
		Username:     username,
		Email:        email,
		Password:     string(hash),
		ProfilePhoto: model.DefaultProfilePhoto,
	})
}

// Login проверяет email и пароль.
func (s *UserService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.repo.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *UserService) Profile(ctx context.Context, id int64) (*model.User, error) {
	u, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return u, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) (*model.User, error) {
	updates := map[string]any{}
	var username, email string
	if upd.Username != nil {
		username = strings.TrimSpace(*upd.Username)
		if err := validateUsername(username); err != nil {
			return nil, err
		}
		updates["username"] = username
	}
	if upd.Email != nil {
		email = normalizeEmail(*upd.Email)
		if err := validateEmail(email); err != nil {
			return nil, err
		}
		updates["email"] = email
	}
	if err := s.ensureFree(ctx, username, email, id); err != nil {
		return nil, err
	}
	if upd.ProfilePhoto != nil {
		photo := strings.TrimSpace(*upd.ProfilePhoto)
		if photo == "" {
			photo = model.DefaultProfilePhoto
		}
		updates["profile_photo"] = photo
	}
	if upd.Password != nil {
		if utf8.RuneCountInString(*upd.Password) < minPasswordLen {
			return nil, invalid(fmt.Sprintf("Password must be at least %d characters", minPasswordLen))
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updates["password"] = string(hash)
	}

	u, err := s.repo.UpdateUser(ctx, id, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	return u, nil
}

// DeleteAccount удаляет пользователя вместе с его товарами и блокировками.
func (s *UserService) DeleteAccount(ctx context.Context, id int64) error {
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// ensureFree проверяет занятость username/email; пустые значения пропускаются, selfID — сам пользователь.
func (s *UserService) ensureFree(ctx context.Context, username, email string, selfID int64) error {
	if username != "" {
		u, err := s.repo.GetUserByUsername(ctx, username)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check username: %w", err)
		}
		if u != nil && u.ID != selfID {
			return ErrUsernameTaken
		}
	}
	if email != "" {
		u, err := s.repo.GetUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check email: %w", err)
		}
		if u != nil && u.ID != selfID {
			return ErrEmailTaken
		}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < 3 || n > 32 {
		return invalid("Username must be between 3 and 32 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return invalid("Email is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid("Please provide a valid email")
	}
	return nil
}

package usecase

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"staff-scheduler/internal/auth"
	"staff-scheduler/internal/model"
	"staff-scheduler/internal/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase struct {
	users  repository.UserRepository
	tokens *auth.TokenService
	log    *logrus.Logger
}

func NewAuthUsecase(users repository.UserRepository, tokens *auth.TokenService, log *logrus.Logger) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens, log: log}
}

type Session struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      *model.User `json:"user"`
}

func (u *AuthUsecase) Login(email, password string) (*Session, error) {
	// 1. Cari user berdasarkan email
	user, err := u.users.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	// 2. Bandingkan password (input vs hash di DB)
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		u.log.WithField("user_id", user.ID).Warn("Login rejected: wrong password")
		return nil, ErrUnauthorized
	}
	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	// 3. Buat token JWT
	token, expires, err := u.tokens.Issue(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	u.log.WithField("user_id", user.ID).Info("User logged in")
	return &Session{Token: token, ExpiresAt: expires, User: user}, nil
}

func (u *AuthUsecase) Me(userID uint) (*model.User, error) {
	user, err := u.users.GetByID(userID)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

func (u *AuthUsecase) ChangePassword(userID uint, current, next string) error {
	user, err := u.users.GetByID(userID)
	if err != nil {
		return notFound(err, "user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrUnauthorized
	}
	hash, err := HashPassword(next)
	if err != nil {
		return err
	}
	return u.users.UpdatePassword(userID, hash)
}

func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", invalid("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

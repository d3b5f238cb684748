package usecase

import (
	"errors"
	"fmt"
	"strings"

	"staff-scheduler/internal/model"
	"staff-scheduler/internal/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type UserUsecase struct {
	repo repository.UserRepository
	log  *logrus.Logger
}

func NewUserUsecase(repo repository.UserRepository, log *logrus.Logger) *UserUsecase {
	return &UserUsecase{repo: repo, log: log}
}

type UserFilter struct {
	Role       string
	ActiveOnly bool
	Search     string
}

type UserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
	Position string
	MinHours int
	MaxHours int
}

func (u *UserUsecase) List(f UserFilter) ([]model.User, error) {
	users, err := u.repo.GetAll(f.Role, f.ActiveOnly)
	if err != nil {
		return nil, err
	}
	if f.Search == "" {
		return users, nil
	}
	q := strings.ToLower(f.Search)
	filtered := users[:0]
	for _, user := range users {
		if strings.Contains(strings.ToLower(user.Name), q) || strings.Contains(strings.ToLower(user.Email), q) {
			filtered = append(filtered, user)
		}
	}
	return filtered, nil
}

func (u *UserUsecase) Get(id uint) (*model.User, error) {
	user, err := u.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "user")
	}
	return user, nil
}

// Register is the admin-side account creation. Passwords are stored hashed.
func (u *UserUsecase) Register(in UserInput) (*model.User, error) {
	if err := checkHours(in.MinHours, in.MaxHours); err != nil {
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if _, err := u.repo.GetByEmail(email); err == nil {
		return nil, fmt.Errorf("email %s: %w", email, ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = model.RoleEmployee
	}

	user := &model.User{
		Name:     in.Name,
		Email:    email,
		Password: hash,
		Role:     role,
		Phone:    in.Phone,
		Position: in.Position,
		IsActive: true,
		MinHours: in.MinHours,
		MaxHours: in.MaxHours,
	}
	if err := u.repo.Create(user); err != nil {
		return nil, err
	}
	u.log.WithFields(logrus.Fields{"user_id": user.ID, "role": user.Role}).Info("User created")
	return user, nil
}

// Update changes profile fields. An empty password keeps the current one.
func (u *UserUsecase) Update(id uint, in UserInput) (*model.User, error) {
	if err := checkHours(in.MinHours, in.MaxHours); err != nil {
		return nil, err
	}
	user, err := u.repo.GetByID(id)
	if err != nil {
		return nil, notFound(err, "user")
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email != "" && email != user.Email {
		if other, err := u.repo.GetByEmail(email); err == nil && other.ID != id {
			return nil, fmt.Errorf("email %s: %w", email, ErrConflict)
		}
		user.Email = email
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	user.Phone = in.Phone
	user.Position = in.Position
	user.MinHours = in.MinHours
	user.MaxHours = in.MaxHours

	if in.Password != "" {
		hash, err := HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	if err := u.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetActive deactivates or reactivates an account. Admins cannot lock
// themselves out.
func (u *UserUsecase) SetActive(actorID, id uint, active bool) error {
	if actorID == id && !active {
		return invalid("cannot deactivate your own account")
	}
	if _, err := u.repo.GetByID(id); err != nil {
		return notFound(err, "user")
	}
	if err := u.repo.SetActive(id, active); err != nil {
		return err
	}
	u.log.WithFields(logrus.Fields{"user_id": id, "active": active, "by": actorID}).Info("User activation changed")
	return nil
}

func checkHours(minH, maxH int) error {
	if minH < 0 || maxH < 0 {
		return invalid("hours cannot be negative")
	}
	if maxH > 0 && minH > maxH {
		return invalid("min_hours cannot exceed max_hours")
	}
	return nil
}

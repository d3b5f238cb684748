package repository

import (
	"staff-scheduler/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	WithTx(tx *gorm.DB) UserRepository
	Create(user *model.User) error
	GetByID(id uint) (*model.User, error)
	GetByEmail(email string) (*model.User, error)
	GetAll(role string, activeOnly bool) ([]model.User, error)
	GetActiveEmployees() ([]model.User, error)
	GetAdmins() ([]model.User, error)
	Update(user *model.User) error
	SetActive(id uint, active bool) error
	UpdatePassword(id uint, hash string) error
	Delete(id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) WithTx(tx *gorm.DB) UserRepository {
	return &userRepository{tx}
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *userRepository) GetAll(role string, activeOnly bool) ([]model.User, error) {
	var users []model.User
	query := r.db.Order("name asc")
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&users).Error
	return users, err
}

// GetActiveEmployees returns the roster used by auto-generation, in id order so
// generation is deterministic.
func (r *userRepository) GetActiveEmployees() ([]model.User, error) {
	var users []model.User
	err := r.db.Where("role = ? AND is_active = ?", model.RoleEmployee, true).Order("id asc").Find(&users).Error
	return users, err
}

func (r *userRepository) GetAdmins() ([]model.User, error) {
	var users []model.User
	err := r.db.Where("role = ? AND is_active = ?", model.RoleAdmin, true).Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Save(user).Error
}

func (r *userRepository) SetActive(id uint, active bool) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Update("is_active", active).Error
}

func (r *userRepository) UpdatePassword(id uint, hash string) error {
	return r.db.Model(&model.User{}).Where("id = ?", id).Update("password", hash).Error
}

func (r *userRepository) Delete(id uint) error {
	return r.db.Delete(&model.User{}, id).Error
}

// Package repository contains the repository layer for the ElectroWay API
package repository

import (
	"github.com/electroway/electrowayapi/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

// NewUserRepository creates a new repository for user records
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

// CreateUser inserts a new user. A duplicate email surfaces as
// gorm.ErrDuplicatedKey via the unique index on the email column.
func (r *UserRepository) CreateUser(user *models.UserModel) error {
	return r.DB.Create(user).Error
}

// GetUserByEmail gets a user by its lowercased email
func (r *UserRepository) GetUserByEmail(email string) (*models.UserModel, error) {
	var user models.UserModel
	err := r.DB.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CountUsers returns the total number of registered users
func (r *UserRepository) CountUsers() (int64, error) {
	var count int64
	err := r.DB.Model(&models.UserModel{}).Count(&count).Error
	return count, err
}

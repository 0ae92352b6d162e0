// Package models contains the models for the ElectroWay API
package models

import (
	"time"
)

const UsersTableName = "users"

// UserModel is an identity record. The email is stored lowercased and is
// the natural key; the password is stored only as a bcrypt hash.
type UserModel struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	Username       string    `gorm:"not null" json:"username"`
	HashedPassword string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (UserModel) TableName() string {
	return UsersTableName
}

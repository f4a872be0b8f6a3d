package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are UUIDv7 strings assigned by the
// domain, so the column carries no database default.
type UserModel struct {
	ID         string  `gorm:"type:varchar(36);primaryKey"`
	Name       string  `gorm:"type:varchar(100);not null"`
	Email      string  `gorm:"type:varchar(255);uniqueIndex:uq_users_email;not null"`
	Password   string  `gorm:"type:varchar(255);not null"`
	Role       string  `gorm:"type:varchar(16);not null;index"`
	Bio        *string `gorm:"type:text"`
	Avatar     *string `gorm:"type:varchar(512)"`
	IsVerified bool    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// Package model contains the GORM persistence models. They mirror the
// domain entities but carry the database-specific tags and constraints.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is the persistence shape of entity.User.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"size:60;not null"`
	Email        string    `gorm:"size:255;not null;uniqueIndex"`
	Address      string    `gorm:"size:400;not null"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"size:8;not null;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name.
func (UserModel) TableName() string {
	return "users"
}

// StoreModel is the persistence shape of entity.Store.
type StoreModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string     `gorm:"size:255;not null"`
	Email     string     `gorm:"size:255;not null;uniqueIndex"`
	Address   string     `gorm:"size:400;not null"`
	OwnerID   *uuid.UUID `gorm:"type:uuid;index"`
	Owner     *UserModel `gorm:"foreignKey:OwnerID"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name.
func (StoreModel) TableName() string {
	return "stores"
}

// RatingModel is the persistence shape of entity.Rating. The composite
// unique index is the hard one-rating-per-(user,store) constraint the
// upsert relies on.
type RatingModel struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store"`
	StoreID   uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_user_store"`
	User      *UserModel  `gorm:"foreignKey:UserID"`
	Store     *StoreModel `gorm:"foreignKey:StoreID"`
	Value     int         `gorm:"not null;check:value >= 1 AND value <= 5"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name.
func (RatingModel) TableName() string {
	return "ratings"
}

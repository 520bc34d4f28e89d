// Package userrepo persists user accounts. Usernames and emails are unique
// at the database level; the wallet column never goes below zero.
package userrepo

import (
	"time"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/domain/model/user"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserDTO is the row of the users table.
type UserDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Username     string          `gorm:"size:150;uniqueIndex;not null"`
	Email        string          `gorm:"size:254;uniqueIndex;not null"`
	PasswordHash string          `gorm:"size:255;not null"`
	FirstName    string          `gorm:"size:150"`
	LastName     string          `gorm:"size:150"`
	Phone        string          `gorm:"size:20"`
	Address      string
	Role         int             `gorm:"index"`
	Wallet       decimal.Decimal `gorm:"type:numeric(12,2)"`
	LastLogin    *time.Time
	Language     string `gorm:"size:2"`
	Active       bool
	CreatedAt    time.Time
}

func (UserDTO) TableName() string {
	return "users"
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:           u.ID().Bytes(),
		Username:     u.Username(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Phone:        u.Phone(),
		Address:      u.Address(),
		Role:         int(u.Role()),
		Wallet:       u.Wallet().Decimal(),
		LastLogin:    u.LastLogin(),
		Language:     string(u.Language()),
		Active:       u.IsActive(),
		CreatedAt:    u.CreatedAt(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	wallet, err := kernel.NewMoney(dto.Wallet)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(user.RestoreParams{
		ID:           id,
		Username:     dto.Username,
		Email:        dto.Email,
		PasswordHash: dto.PasswordHash,
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Phone:        dto.Phone,
		Address:      dto.Address,
		Role:         user.Role(dto.Role),
		Wallet:       wallet,
		LastLogin:    dto.LastLogin,
		Language:     user.Language(dto.Language),
		Active:       dto.Active,
		CreatedAt:    dto.CreatedAt,
	})
}

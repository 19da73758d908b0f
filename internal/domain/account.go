package domain

import "time"

type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	FirstName    string    `gorm:"size:120;not null" json:"firstName"`
	LastName     string    `gorm:"size:120;not null" json:"lastName"`
	PasswordHash string    `gorm:"size:1024;not null" json:"-"`
	SessionToken string    `gorm:"size:2048" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

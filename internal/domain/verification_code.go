package domain

import "time"

// VerificationCode is a one-time signup code. Several may exist per email;
// only the most recently created live one is authoritative.
type VerificationCode struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"size:255;not null;index:idx_verification_codes_email_created,priority:1" json:"email"`
	Code      string    `gorm:"size:16;not null" json:"-"`
	CreatedAt time.Time `gorm:"not null;index:idx_verification_codes_email_created,priority:2;index" json:"created_at"`
}

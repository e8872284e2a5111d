package model

import (
	"time"

	"github.com/google/uuid"
)

// PendingTransaction represents the database model for OTP challenges
type PendingTransaction struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	BeneficiaryID uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID    uuid.UUID `gorm:"type:uuid;not null"`
	SponsorshipID uuid.UUID `gorm:"type:uuid;not null;index"`
	AmountCents   int64     `gorm:"not null"`
	OtpHash       string    `gorm:"not null;size:255"` // one-way hash, plaintext is never stored
	OtpIssuedAt   time.Time `gorm:"not null"`
	OtpExpiresAt  time.Time `gorm:"not null;index"`
	Status        string    `gorm:"not null;size:50;index"`
	Notes         string    `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for PendingTransaction
func (PendingTransaction) TableName() string {
	return "pending_transactions"
}

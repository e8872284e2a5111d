package model

import (
	"time"

	"github.com/google/uuid"
)

// Sponsorship represents the database model for sponsorship allocations
type Sponsorship struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	SponsorID      uuid.UUID `gorm:"type:uuid;not null;index"`
	BeneficiaryID  uuid.UUID `gorm:"type:uuid;not null;index"`
	WalletID       uuid.UUID `gorm:"type:uuid;not null"`
	TotalCents     int64     `gorm:"not null"` // fixed allocation total in cents
	RemainingCents int64     `gorm:"not null"`
	Status         string    `gorm:"not null;size:50;index"`
	Notes          string    `gorm:"type:text"`
	ExpiresAt      *time.Time
	CreatedAt      time.Time `gorm:"not null"`
	UpdatedAt      time.Time `gorm:"not null"`

	Categories []SponsorshipCategory `gorm:"foreignKey:SponsorshipID;references:ID"`
}

// TableName specifies the table name for Sponsorship
func (Sponsorship) TableName() string {
	return "sponsorships"
}

// SponsorshipCategory links a sponsorship to one allowed spending category
type SponsorshipCategory struct {
	SponsorshipID uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for SponsorshipCategory
func (SponsorshipCategory) TableName() string {
	return "sponsorship_categories"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// ExecutedTransaction represents the database model for execution records
type ExecutedTransaction struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	PendingTransactionID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"` // one execution per challenge
	SponsorshipID        uuid.UUID `gorm:"type:uuid;not null;index"`
	SourceWalletID       uuid.UUID `gorm:"type:uuid;not null"`
	DestinationAddress   string    `gorm:"not null;size:255"`
	AmountCents          int64     `gorm:"not null"`
	TransferID           string    `gorm:"size:255;index"`
	OnchainRef           string    `gorm:"size:255"`
	Status               string    `gorm:"not null;size:50;index"`
	FailureNotes         string    `gorm:"type:text"`
	CreatedAt            time.Time `gorm:"not null"`
	UpdatedAt            time.Time `gorm:"not null"`
}

// TableName specifies the table name for ExecutedTransaction
func (ExecutedTransaction) TableName() string {
	return "executed_transactions"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Beneficiary represents the database model for sponsorship recipients
type Beneficiary struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LookupKey string    `gorm:"uniqueIndex;not null;size:255"`
	Contact   string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Beneficiary
func (Beneficiary) TableName() string {
	return "beneficiaries"
}

// Vendor represents the database model for redeeming vendors
type Vendor struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name             string    `gorm:"not null;size:255"`
	ReceivingAddress string    `gorm:"not null;size:255"`
	CreatedAt        time.Time `gorm:"not null"`

	ApprovedCategories []VendorCategory `gorm:"foreignKey:VendorID;references:ID"`
}

// TableName specifies the table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}

// VendorCategory links a vendor to one category it is approved to transact in
type VendorCategory struct {
	VendorID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt  time.Time `gorm:"not null"`
}

// TableName specifies the table name for VendorCategory
func (VendorCategory) TableName() string {
	return "vendor_categories"
}

// Category represents the database model for spending categories
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex;not null;size:255"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// Wallet represents the cached sponsor-side view of a custody wallet
type Wallet struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Address        string    `gorm:"uniqueIndex;not null;size:255"`
	SpendableCents int64     `gorm:"not null;default:0"`
	FeeTokenCents  int64     `gorm:"not null;default:0"`
	RefreshedAt    time.Time
	CreatedAt      time.Time `gorm:"not null"`
}

// TableName specifies the table name for Wallet
func (Wallet) TableName() string {
	return "wallets"
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is the sponsor-side cached view of a custody wallet. The cached
// balances are advisory only: they are refreshed through the gateway before
// any debit decision and re-verified immediately before committing a debit.
type Wallet struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	Address        string
	SpendableCents int64 // stablecoin balance usable for transfers
	FeeTokenCents  int64 // gas/fee-token balance required to execute transfers
	RefreshedAt    time.Time
	CreatedAt      time.Time
}

// GetSpendable returns the cached spendable balance as a 2-decimal string
func (w *Wallet) GetSpendable() string {
	return AmountInCentsToString(w.SpendableCents)
}

// CanFund checks the cached balances against the amount and a configured
// minimum fee-token threshold
func (w *Wallet) CanFund(amountCents, minFeeTokenCents int64) bool {
	return w.SpendableCents >= amountCents && w.FeeTokenCents >= minFeeTokenCents
}

// Beneficiary is the recipient of sponsorship allocations, resolved by an
// out-of-band lookup key (phone number or similar contact handle)
type Beneficiary struct {
	ID        uuid.UUID
	LookupKey string // unique, used by sponsors and vendors to reference the beneficiary
	Contact   string // notification channel address for OTP delivery
	CreatedAt time.Time
}

// Vendor redeems sponsorship funds for goods in approved categories
type Vendor struct {
	ID                  uuid.UUID
	Name                string
	ReceivingAddress    string // registered wallet address for settlements
	ApprovedCategoryIDs []uuid.UUID
	CreatedAt           time.Time
}

// ApprovedFor reports whether the vendor may transact in the given category
func (v *Vendor) ApprovedFor(categoryID uuid.UUID) bool {
	for _, id := range v.ApprovedCategoryIDs {
		if id == categoryID {
			return true
		}
	}
	return false
}

// Category is a spending restriction bucket (groceries, medicine, ...)
type Category struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

package models

import "time"

// Unlock grants a user visibility into a listing's unmasked contact.
// At most one Unlock exists per (UserID, ListingID) pair.
type Unlock struct {
	UserID    string `json:"user_id"`
	ListingID string `json:"listing_id"`

	// PaymentProvider and PaymentReference record paid provenance. Both are
	// nil for free unlocks.
	PaymentProvider  *string `json:"payment_provider,omitempty"`
	PaymentReference *string `json:"payment_reference,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Unlock model.
func (u Unlock) TableName() string {
	return "unlocks"
}

// ContactView is the contact projection of a listing as seen by a caller.
// PhoneE164 is set only when Unlocked is true.
type ContactView struct {
	Unlocked    bool   `json:"unlocked"`
	MaskedPhone string `json:"masked_phone"`
	PhoneE164   string `json:"phone_e164,omitempty"`
}

// UnlockResult reports the outcome of an unlock request.
type UnlockResult struct {
	Unlocked        bool `json:"unlocked"`
	AlreadyUnlocked bool `json:"already_unlocked"`
}

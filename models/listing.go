package models

import (
	"time"
)

// ListingStatus is the moderation state of a listing.
type ListingStatus string

const (
	// ListingPending is the initial state, awaiting moderation.
	ListingPending ListingStatus = "PENDING"

	// ListingLive is an approved, publicly visible listing.
	ListingLive ListingStatus = "LIVE"

	// ListingRejected is a listing turned down by an administrator.
	ListingRejected ListingStatus = "REJECTED"
)

// IsValid reports whether s is one of the known listing states.
func (s ListingStatus) IsValid() bool {
	switch s {
	case ListingPending, ListingLive, ListingRejected:
		return true
	}
	return false
}

// PriceType tells whether the asking price is open to negotiation.
type PriceType string

const (
	PriceFixed      PriceType = "FIXED"
	PriceNegotiable PriceType = "NEGOTIABLE"
)

// Address groups the free-text location fields of a listing.
type Address struct {
	Line1    string `json:"line1"`
	Locality string `json:"locality"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

// Listing is a property offering owned by exactly one promoter.
//
// PricePerUnitArea is always derived from TotalPrice and TotalArea and is
// never accepted from clients.
type Listing struct {
	ID         string `json:"id"`
	PromoterID string `json:"promoter_id"`

	PropertyType     string    `json:"property_type"`
	TotalPrice       int64     `json:"total_price"`
	TotalArea        float64   `json:"total_area"`
	PricePerUnitArea float64   `json:"price_per_unit_area"`
	PriceType        PriceType `json:"price_type"`

	Title       string  `json:"title"`
	Description string  `json:"description"`
	Address     Address `json:"address"`

	Bedrooms       int        `json:"bedrooms"`
	Bathrooms      int        `json:"bathrooms"`
	Furnishing     string     `json:"furnishing"`
	Amenities      StringList `json:"amenities"`
	AmenitiesPrice *int64     `json:"amenities_price,omitempty"`
	ImageURLs      StringList `json:"image_urls"`

	Status          ListingStatus `json:"status"`
	ReviewedAt      *time.Time    `json:"reviewed_at,omitempty"`
	ReviewedBy      *string       `json:"reviewed_by,omitempty"`
	RejectionReason *string       `json:"rejection_reason,omitempty"`

	UnlockCount int64     `json:"unlock_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Listing model.
func (l Listing) TableName() string {
	return "listings"
}

// RecomputePricePerUnitArea refreshes the derived price per unit area from
// the current price and area.
func (l *Listing) RecomputePricePerUnitArea() {
	l.PricePerUnitArea = PricePerUnitArea(l.TotalPrice, l.TotalArea)
}

// PricePerUnitArea returns totalPrice / totalArea, or zero when the area is
// not positive.
func PricePerUnitArea(totalPrice int64, totalArea float64) float64 {
	if totalArea <= 0 {
		return 0
	}
	return float64(totalPrice) / totalArea
}

// ListingDraft is the promoter-supplied payload for a new listing.
//
// Validation tags are evaluated by validators.RequestValidator, which
// reports every violated field at once.
type ListingDraft struct {
	PropertyType string    `json:"property_type" validate:"required"`
	TotalPrice   int64     `json:"total_price" validate:"required,gt=0"`
	TotalArea    float64   `json:"total_area" validate:"required,gt=0"`
	PriceType    PriceType `json:"price_type" validate:"required,oneof=FIXED NEGOTIABLE"`

	Title       string  `json:"title" validate:"max=200"`
	Description string  `json:"description" validate:"max=5000"`
	Address     Address `json:"address"`

	Bedrooms       int      `json:"bedrooms" validate:"gte=0"`
	Bathrooms      int      `json:"bathrooms" validate:"gte=0"`
	Furnishing     string   `json:"furnishing"`
	Amenities      []string `json:"amenities" validate:"dive,required"`
	AmenitiesPrice *int64   `json:"amenities_price,omitempty" validate:"omitempty,gte=0"`
	ImageURLs      []string `json:"image_urls" validate:"dive,url"`

	// AgreementAccepted is the commission agreement gate; it must be true.
	AgreementAccepted bool `json:"agreement_accepted" validate:"eq=true"`
}

// ListingUpdate is a partial edit of a listing by its owner.
// Only non-nil fields are applied. It deliberately has no status field.
type ListingUpdate struct {
	PropertyType   *string    `json:"property_type,omitempty" validate:"omitempty,min=1"`
	TotalPrice     *int64     `json:"total_price,omitempty" validate:"omitempty,gt=0"`
	TotalArea      *float64   `json:"total_area,omitempty" validate:"omitempty,gt=0"`
	PriceType      *PriceType `json:"price_type,omitempty" validate:"omitempty,oneof=FIXED NEGOTIABLE"`
	Title          *string    `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description    *string    `json:"description,omitempty" validate:"omitempty,max=5000"`
	Address        *Address   `json:"address,omitempty"`
	Bedrooms       *int       `json:"bedrooms,omitempty" validate:"omitempty,gte=0"`
	Bathrooms      *int       `json:"bathrooms,omitempty" validate:"omitempty,gte=0"`
	Furnishing     *string    `json:"furnishing,omitempty"`
	Amenities      []string   `json:"amenities,omitempty" validate:"omitempty,dive,required"`
	AmenitiesPrice *int64     `json:"amenities_price,omitempty" validate:"omitempty,gte=0"`
	ImageURLs      []string   `json:"image_urls,omitempty" validate:"omitempty,dive,url"`
}

// IsEmpty reports whether the update changes nothing.
func (u ListingUpdate) IsEmpty() bool {
	return u.PropertyType == nil && u.TotalPrice == nil && u.TotalArea == nil &&
		u.PriceType == nil && u.Title == nil && u.Description == nil &&
		u.Address == nil && u.Bedrooms == nil && u.Bathrooms == nil &&
		u.Furnishing == nil && u.Amenities == nil && u.AmenitiesPrice == nil &&
		u.ImageURLs == nil
}

// Apply copies every non-nil field of u into l and recomputes the derived
// price per unit area. Status and review metadata are never touched.
func (u ListingUpdate) Apply(l *Listing) {
	if u.PropertyType != nil {
		l.PropertyType = *u.PropertyType
	}
	if u.TotalPrice != nil {
		l.TotalPrice = *u.TotalPrice
	}
	if u.TotalArea != nil {
		l.TotalArea = *u.TotalArea
	}
	if u.PriceType != nil {
		l.PriceType = *u.PriceType
	}
	if u.Title != nil {
		l.Title = *u.Title
	}
	if u.Description != nil {
		l.Description = *u.Description
	}
	if u.Address != nil {
		l.Address = *u.Address
	}
	if u.Bedrooms != nil {
		l.Bedrooms = *u.Bedrooms
	}
	if u.Bathrooms != nil {
		l.Bathrooms = *u.Bathrooms
	}
	if u.Furnishing != nil {
		l.Furnishing = *u.Furnishing
	}
	if u.Amenities != nil {
		l.Amenities = StringList(u.Amenities)
	}
	if u.AmenitiesPrice != nil {
		l.AmenitiesPrice = u.AmenitiesPrice
	}
	if u.ImageURLs != nil {
		l.ImageURLs = StringList(u.ImageURLs)
	}

	l.RecomputePricePerUnitArea()
}

// NewListingFromDraft builds a PENDING listing owned by promoterID.
func NewListingFromDraft(draft ListingDraft, id, promoterID string, now time.Time) Listing {
	listing := Listing{
		ID:             id,
		PromoterID:     promoterID,
		PropertyType:   draft.PropertyType,
		TotalPrice:     draft.TotalPrice,
		TotalArea:      draft.TotalArea,
		PriceType:      draft.PriceType,
		Title:          draft.Title,
		Description:    draft.Description,
		Address:        draft.Address,
		Bedrooms:       draft.Bedrooms,
		Bathrooms:      draft.Bathrooms,
		Furnishing:     draft.Furnishing,
		Amenities:      StringList(draft.Amenities),
		AmenitiesPrice: draft.AmenitiesPrice,
		ImageURLs:      StringList(draft.ImageURLs),
		Status:         ListingPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	listing.RecomputePricePerUnitArea()

	return listing
}

// ListingReview is the admin decision applied atomically with a status change.
type ListingReview struct {
	ListingID       string
	Status          ListingStatus
	ReviewedBy      string
	ReviewedAt      time.Time
	RejectionReason *string
}

// SearchFilter restricts the public search projection. Nil bounds mean
// "no bound"; both bounds are inclusive.
type SearchFilter struct {
	MinPricePerUnitArea *float64
	MaxPricePerUnitArea *float64
}

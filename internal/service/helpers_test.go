package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-estate/models"
)

var testNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

// sequenceIDs hands out ids in order.
type sequenceIDs struct {
	ids  []string
	next int
}

func (s *sequenceIDs) Generate() string {
	id := s.ids[s.next%len(s.ids)]
	s.next++
	return id
}

var (
	promoter = models.AuthenticatedUser{UserID: "promoter-1", Role: models.RolePromoter}
	rival    = models.AuthenticatedUser{UserID: "promoter-2", Role: models.RolePromoter}
	admin    = models.AuthenticatedUser{UserID: "admin-1", Role: models.RoleAdmin}
	customer = models.AuthenticatedUser{UserID: "customer-1", Role: models.RoleCustomer}
)

func liveListing() models.Listing {
	return models.Listing{
		ID:               "listing-1",
		PromoterID:       promoter.UserID,
		PropertyType:     "APARTMENT",
		TotalPrice:       5_000_000,
		TotalArea:        1000,
		PricePerUnitArea: 5000,
		PriceType:        models.PriceFixed,
		Status:           models.ListingLive,
		CreatedAt:        testNow,
		UpdatedAt:        testNow,
	}
}

func pendingListing() models.Listing {
	l := liveListing()
	l.Status = models.ListingPending
	return l
}

func ctxBg() context.Context { return context.Background() }

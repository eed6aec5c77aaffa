package service

import (
	"time"

	"github.com/MKhiriev/go-estate/models"
)

// idGenerator issues identifiers for new entities.
type idGenerator interface {
	Generate() string
}

// utcNow is the default clock. Postgres keeps microseconds, so timestamps
// are truncated to keep returned values equal to stored ones.
func utcNow() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func isOwnerOrAdmin(caller *models.AuthenticatedUser, listing models.Listing) bool {
	if caller == nil {
		return false
	}
	return caller.HasRole(models.RoleAdmin) || caller.UserID == listing.PromoterID
}

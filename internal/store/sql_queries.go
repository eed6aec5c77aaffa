package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-estate/models"
)

// Table names come from the models so the schema has a single name per entity.
var (
	usersTable         = models.User{}.TableName()
	listingsTable      = models.Listing{}.TableName()
	unlocksTable       = models.Unlock{}.TableName()
	paymentOrdersTable = models.PaymentOrder{}.TableName()
)

var userColumns = []string{
	"id", "email", "password_hash", "role", "verified", "phone", "name", "created_at",
}

var listingColumns = []string{
	"id",
	"promoter_id",
	"property_type",
	"total_price",
	"total_area",
	"price_per_unit_area",
	"price_type",
	"title",
	"description",
	"address_line1",
	"address_locality",
	"address_city",
	"address_state",
	"address_pincode",
	"bedrooms",
	"bathrooms",
	"furnishing",
	"amenities",
	"amenities_price",
	"image_urls",
	"status",
	"reviewed_at",
	"reviewed_by",
	"rejection_reason",
	"unlock_count",
	"created_at",
	"updated_at",
}

var paymentOrderColumns = []string{
	"id",
	"provider",
	"status",
	"user_id",
	"listing_id",
	"amount",
	"currency",
	"provider_order_id",
	"provider_payment_id",
	"provider_signature",
	"paid_at",
	"created_at",
	"updated_at",
}

// ── users ─────────────────────────────────────────────────────────────────────

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return wrapBuild(b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Email, user.PasswordHash, user.Role, user.Verified, user.Phone, user.Name, user.CreatedAt).
		ToSql())
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return wrapBuild(b.Select(userColumns...).From(usersTable).Where(where).ToSql())
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.UserID, &u.Email, &u.PasswordHash, &u.Role, &u.Verified, &u.Phone, &u.Name, &u.CreatedAt)
	return u, err
}

// ── listings ──────────────────────────────────────────────────────────────────

func buildCreateListingQuery(b sq.StatementBuilderType, l models.Listing) (string, []any, error) {
	return wrapBuild(b.Insert(listingsTable).
		Columns(listingColumns...).
		Values(
			l.ID,
			l.PromoterID,
			l.PropertyType,
			l.TotalPrice,
			l.TotalArea,
			l.PricePerUnitArea,
			l.PriceType,
			l.Title,
			l.Description,
			l.Address.Line1,
			l.Address.Locality,
			l.Address.City,
			l.Address.State,
			l.Address.Pincode,
			l.Bedrooms,
			l.Bathrooms,
			l.Furnishing,
			l.Amenities,
			l.AmenitiesPrice,
			l.ImageURLs,
			l.Status,
			l.ReviewedAt,
			l.ReviewedBy,
			l.RejectionReason,
			l.UnlockCount,
			l.CreatedAt,
			l.UpdatedAt,
		).
		ToSql())
}

func selectListings(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(listingColumns...).From(listingsTable)
}

func buildGetListingQuery(b sq.StatementBuilderType, listingID string) (string, []any, error) {
	return wrapBuild(selectListings(b).Where(sq.Eq{"id": listingID}).ToSql())
}

func buildListListingsQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return wrapBuild(selectListings(b).Where(where).OrderBy("created_at DESC", "id DESC").ToSql())
}

// buildSearchLiveListingsQuery restricts to LIVE listings and applies the
// inclusive price per unit area bounds present in filter.
func buildSearchLiveListingsQuery(b sq.StatementBuilderType, filter models.SearchFilter) (string, []any, error) {
	conditions := sq.And{sq.Eq{"status": models.ListingLive}}
	if filter.MinPricePerUnitArea != nil {
		conditions = append(conditions, sq.GtOrEq{"price_per_unit_area": *filter.MinPricePerUnitArea})
	}
	if filter.MaxPricePerUnitArea != nil {
		conditions = append(conditions, sq.LtOrEq{"price_per_unit_area": *filter.MaxPricePerUnitArea})
	}

	return wrapBuild(selectListings(b).Where(conditions).OrderBy("created_at DESC", "id DESC").ToSql())
}

// buildUpdateListingQuery writes the owner-editable columns. Status and
// review metadata are never part of the SET list.
func buildUpdateListingQuery(b sq.StatementBuilderType, l models.Listing) (string, []any, error) {
	return wrapBuild(b.Update(listingsTable).
		Set("property_type", l.PropertyType).
		Set("total_price", l.TotalPrice).
		Set("total_area", l.TotalArea).
		Set("price_per_unit_area", l.PricePerUnitArea).
		Set("price_type", l.PriceType).
		Set("title", l.Title).
		Set("description", l.Description).
		Set("address_line1", l.Address.Line1).
		Set("address_locality", l.Address.Locality).
		Set("address_city", l.Address.City).
		Set("address_state", l.Address.State).
		Set("address_pincode", l.Address.Pincode).
		Set("bedrooms", l.Bedrooms).
		Set("bathrooms", l.Bathrooms).
		Set("furnishing", l.Furnishing).
		Set("amenities", l.Amenities).
		Set("amenities_price", l.AmenitiesPrice).
		Set("image_urls", l.ImageURLs).
		Set("updated_at", l.UpdatedAt).
		Where(sq.Eq{"id": l.ID, "promoter_id": l.PromoterID}).
		Where(sq.NotEq{"status": models.ListingLive}).
		ToSql())
}

// buildReviewListingQuery is the single conditional write of a moderation
// decision: status and review metadata change together or not at all.
func buildReviewListingQuery(b sq.StatementBuilderType, r models.ListingReview) (string, []any, error) {
	return wrapBuild(b.Update(listingsTable).
		Set("status", r.Status).
		Set("reviewed_at", r.ReviewedAt).
		Set("reviewed_by", r.ReviewedBy).
		Set("rejection_reason", r.RejectionReason).
		Set("updated_at", r.ReviewedAt).
		Where(sq.Eq{"id": r.ListingID, "status": models.ListingPending}).
		ToSql())
}

func buildIncrementUnlockCountQuery(b sq.StatementBuilderType, listingID string) (string, []any, error) {
	return wrapBuild(b.Update(listingsTable).
		Set("unlock_count", sq.Expr("unlock_count + 1")).
		Where(sq.Eq{"id": listingID}).
		ToSql())
}

func scanListing(row rowScanner) (models.Listing, error) {
	var l models.Listing
	err := row.Scan(
		&l.ID,
		&l.PromoterID,
		&l.PropertyType,
		&l.TotalPrice,
		&l.TotalArea,
		&l.PricePerUnitArea,
		&l.PriceType,
		&l.Title,
		&l.Description,
		&l.Address.Line1,
		&l.Address.Locality,
		&l.Address.City,
		&l.Address.State,
		&l.Address.Pincode,
		&l.Bedrooms,
		&l.Bathrooms,
		&l.Furnishing,
		&l.Amenities,
		&l.AmenitiesPrice,
		&l.ImageURLs,
		&l.Status,
		&l.ReviewedAt,
		&l.ReviewedBy,
		&l.RejectionReason,
		&l.UnlockCount,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

// ── unlocks ───────────────────────────────────────────────────────────────────

func insertUnlock(b sq.StatementBuilderType, u models.Unlock) sq.InsertBuilder {
	return b.Insert(unlocksTable).
		Columns("user_id", "listing_id", "payment_provider", "payment_reference", "created_at").
		Values(u.UserID, u.ListingID, u.PaymentProvider, u.PaymentReference, u.CreatedAt)
}

func buildCreateUnlockQuery(b sq.StatementBuilderType, u models.Unlock) (string, []any, error) {
	return wrapBuild(insertUnlock(b, u).ToSql())
}

// buildUpsertUnlockQuery relies on the (user_id, listing_id) unique
// constraint; the conflict clause is understood by PostgreSQL and SQLite.
func buildUpsertUnlockQuery(b sq.StatementBuilderType, u models.Unlock) (string, []any, error) {
	return wrapBuild(insertUnlock(b, u).Suffix("ON CONFLICT (user_id, listing_id) DO NOTHING").ToSql())
}

func buildUnlockExistsQuery(b sq.StatementBuilderType, userID, listingID string) (string, []any, error) {
	return wrapBuild(b.Select("1").
		From(unlocksTable).
		Where(sq.Eq{"user_id": userID, "listing_id": listingID}).
		Limit(1).
		ToSql())
}

// ── payment orders ────────────────────────────────────────────────────────────

func buildCreatePaymentOrderQuery(b sq.StatementBuilderType, o models.PaymentOrder) (string, []any, error) {
	return wrapBuild(b.Insert(paymentOrdersTable).
		Columns(paymentOrderColumns...).
		Values(
			o.ID,
			o.Provider,
			o.Status,
			o.UserID,
			o.ListingID,
			o.Amount,
			o.Currency,
			o.ProviderOrderID,
			o.ProviderPaymentID,
			o.ProviderSignature,
			o.PaidAt,
			o.CreatedAt,
			o.UpdatedAt,
		).
		ToSql())
}

func buildGetPaymentOrderQuery(b sq.StatementBuilderType, providerOrderID string) (string, []any, error) {
	return wrapBuild(b.Select(paymentOrderColumns...).
		From(paymentOrdersTable).
		Where(sq.Eq{"provider_order_id": providerOrderID}).
		ToSql())
}

func buildFindCreatedPaymentOrderQuery(b sq.StatementBuilderType, userID, listingID string) (string, []any, error) {
	return wrapBuild(b.Select(paymentOrderColumns...).
		From(paymentOrdersTable).
		Where(sq.Eq{"user_id": userID, "listing_id": listingID, "status": models.PaymentCreated}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql())
}

// buildSettlePaymentOrderQuery only moves orders still in CREATED, so a
// settled order is never reversed.
func buildSettlePaymentOrderQuery(b sq.StatementBuilderType, s models.PaymentOrderSettlement) (string, []any, error) {
	var paidAt any
	if s.Status == models.PaymentPaid {
		paidAt = s.SettledAt
	}

	return wrapBuild(b.Update(paymentOrdersTable).
		Set("status", s.Status).
		Set("provider_payment_id", s.ProviderPaymentID).
		Set("provider_signature", s.ProviderSignature).
		Set("paid_at", paidAt).
		Set("updated_at", s.SettledAt).
		Where(sq.Eq{"provider_order_id": s.ProviderOrderID, "status": models.PaymentCreated}).
		ToSql())
}

func scanPaymentOrder(row rowScanner) (models.PaymentOrder, error) {
	var o models.PaymentOrder
	err := row.Scan(
		&o.ID,
		&o.Provider,
		&o.Status,
		&o.UserID,
		&o.ListingID,
		&o.Amount,
		&o.Currency,
		&o.ProviderOrderID,
		&o.ProviderPaymentID,
		&o.ProviderSignature,
		&o.PaidAt,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	return o, err
}

func wrapBuild(query string, args []any, err error) (string, []any, error) {
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

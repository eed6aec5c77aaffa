package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/service"
	"github.com/MKhiriev/go-estate/models"
)

// fakeAuthService resolves tokens from a fixed table.
type fakeAuthService struct {
	tokens     map[string]models.AuthenticatedUser
	registerFn func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.User, error)
}

func (f *fakeAuthService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	return f.loginFn(ctx, req)
}

func (f *fakeAuthService) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: "token-" + user.UserID}, nil
}

func (f *fakeAuthService) ParseToken(_ context.Context, tokenString string) (models.AuthenticatedUser, error) {
	if tokenString == "expired" {
		return models.AuthenticatedUser{}, service.ErrTokenIsExpired
	}
	user, ok := f.tokens[tokenString]
	if !ok {
		return models.AuthenticatedUser{}, service.ErrTokenIsInvalid
	}
	return user, nil
}

type fakeListingService struct {
	createFn  func(ctx context.Context, caller models.AuthenticatedUser, draft models.ListingDraft) (models.Listing, error)
	editFn    func(ctx context.Context, caller models.AuthenticatedUser, id string, update models.ListingUpdate) (models.Listing, error)
	approveFn func(ctx context.Context, caller models.AuthenticatedUser, id string) (models.Listing, error)
	rejectFn  func(ctx context.Context, caller models.AuthenticatedUser, id, reason string) (models.Listing, error)
	byStatus  func(ctx context.Context, caller models.AuthenticatedUser, status models.ListingStatus) ([]models.Listing, error)
	mineFn    func(ctx context.Context, caller models.AuthenticatedUser) ([]models.Listing, error)
	getFn     func(ctx context.Context, caller *models.AuthenticatedUser, id string) (models.Listing, error)
	searchFn  func(ctx context.Context, filter models.SearchFilter) ([]models.Listing, error)
}

func (f *fakeListingService) CreateListing(ctx context.Context, caller models.AuthenticatedUser, draft models.ListingDraft) (models.Listing, error) {
	return f.createFn(ctx, caller, draft)
}

func (f *fakeListingService) EditListing(ctx context.Context, caller models.AuthenticatedUser, id string, update models.ListingUpdate) (models.Listing, error) {
	return f.editFn(ctx, caller, id, update)
}

func (f *fakeListingService) ApproveListing(ctx context.Context, caller models.AuthenticatedUser, id string) (models.Listing, error) {
	return f.approveFn(ctx, caller, id)
}

func (f *fakeListingService) RejectListing(ctx context.Context, caller models.AuthenticatedUser, id, reason string) (models.Listing, error) {
	return f.rejectFn(ctx, caller, id, reason)
}

func (f *fakeListingService) ListPendingListings(ctx context.Context, caller models.AuthenticatedUser) ([]models.Listing, error) {
	return f.byStatus(ctx, caller, models.ListingPending)
}

func (f *fakeListingService) ListListingsByStatus(ctx context.Context, caller models.AuthenticatedUser, status models.ListingStatus) ([]models.Listing, error) {
	return f.byStatus(ctx, caller, status)
}

func (f *fakeListingService) ListMyListings(ctx context.Context, caller models.AuthenticatedUser) ([]models.Listing, error) {
	return f.mineFn(ctx, caller)
}

func (f *fakeListingService) GetListing(ctx context.Context, caller *models.AuthenticatedUser, id string) (models.Listing, error) {
	return f.getFn(ctx, caller, id)
}

func (f *fakeListingService) SearchLiveListings(ctx context.Context, filter models.SearchFilter) ([]models.Listing, error) {
	return f.searchFn(ctx, filter)
}

type fakeContactService struct {
	getFn    func(ctx context.Context, caller *models.AuthenticatedUser, id string) (models.ContactView, error)
	unlockFn func(ctx context.Context, caller models.AuthenticatedUser, id string) (models.UnlockResult, error)
}

func (f *fakeContactService) GetContact(ctx context.Context, caller *models.AuthenticatedUser, id string) (models.ContactView, error) {
	return f.getFn(ctx, caller, id)
}

func (f *fakeContactService) UnlockContact(ctx context.Context, caller models.AuthenticatedUser, id string) (models.UnlockResult, error) {
	return f.unlockFn(ctx, caller, id)
}

type fakePaymentService struct {
	enabled   bool
	secretSig string
	createFn  func(ctx context.Context, caller models.AuthenticatedUser, req models.CreateOrderRequest) (models.CreateOrderResult, error)
	verifyFn  func(ctx context.Context, caller models.AuthenticatedUser, req models.VerifyPaymentRequest) (models.VerifyPaymentResult, error)
	webhookFn func(ctx context.Context, event models.PaymentWebhookEvent, signature string) error
}

func (f *fakePaymentService) Enabled() bool { return f.enabled }

func (f *fakePaymentService) CreatePaymentOrder(ctx context.Context, caller models.AuthenticatedUser, req models.CreateOrderRequest) (models.CreateOrderResult, error) {
	return f.createFn(ctx, caller, req)
}

func (f *fakePaymentService) VerifyPayment(ctx context.Context, caller models.AuthenticatedUser, req models.VerifyPaymentRequest) (models.VerifyPaymentResult, error) {
	return f.verifyFn(ctx, caller, req)
}

func (f *fakePaymentService) VerifyWebhookSignature(_ []byte, signature string) bool {
	return signature == f.secretSig
}

func (f *fakePaymentService) HandleWebhook(ctx context.Context, event models.PaymentWebhookEvent, signature string) error {
	return f.webhookFn(ctx, event, signature)
}

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(_ context.Context) string {
	return f.version
}

var (
	promoterCaller = models.AuthenticatedUser{UserID: "promoter-1", Role: models.RolePromoter}
	adminCaller    = models.AuthenticatedUser{UserID: "admin-1", Role: models.RoleAdmin}
	customerCaller = models.AuthenticatedUser{UserID: "customer-1", Role: models.RoleCustomer}
)

type testServices struct {
	auth     *fakeAuthService
	listings *fakeListingService
	contacts *fakeContactService
	payments *fakePaymentService
}

// newTestRouter wires fakes into a full router. Tokens "promoter", "admin"
// and "customer" authenticate the matching callers.
func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()

	fakes := &testServices{
		auth: &fakeAuthService{tokens: map[string]models.AuthenticatedUser{
			"promoter": promoterCaller,
			"admin":    adminCaller,
			"customer": customerCaller,
		}},
		listings: &fakeListingService{},
		contacts: &fakeContactService{},
		payments: &fakePaymentService{enabled: true, secretSig: "good-signature"},
	}

	services := &service.Services{
		AuthService:    fakes.auth,
		ListingService: fakes.listings,
		ContactService: fakes.contacts,
		PaymentService: fakes.payments,
		AppInfoService: &fakeAppInfoService{version: "1.2.3"},
	}

	return NewHandler(services, 0, logger.Nop()).Init(), fakes
}

func doRequest(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// serviceStub satisfies every service with an empty fake. Tests copy it and
// replace the services they exercise.
var serviceStub = service.Services{
	AuthService:    &fakeAuthService{},
	ListingService: &fakeListingService{},
	ContactService: &fakeContactService{},
	PaymentService: &fakePaymentService{},
	AppInfoService: &fakeAppInfoService{},
}

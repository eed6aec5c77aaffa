package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/mock"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/validators"
	"github.com/MKhiriev/go-estate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSignKey = "0123456789abcdef0123456789abcdef"

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc, err := NewAuthService(repo, config.App{TokenSignKey: testSignKey}, logger.Nop())
	require.NoError(t, err)

	auth := svc.(*authService)
	auth.bcryptCost = bcrypt.MinCost
	auth.ids = &sequenceIDs{ids: []string{"user-1"}}
	auth.now = fixedNow
	return auth, repo
}

func validRegistration() models.RegisterRequest {
	return models.RegisterRequest{
		Email:    "  Promoter@Example.com ",
		Password: "correct horse battery",
		Role:     models.RolePromoter,
		Phone:    "+919876543210",
		Name:     "Asha",
	}
}

func TestNewAuthService_ShortSignKey(t *testing.T) {
	svc, err := NewAuthService(nil, config.App{TokenSignKey: "short"}, logger.Nop())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrTokenSignKeyTooShort)
}

func TestNewAuthService_Defaults(t *testing.T) {
	svc, err := NewAuthService(nil, config.App{TokenSignKey: testSignKey}, logger.Nop())
	require.NoError(t, err)

	auth := svc.(*authService)
	assert.Equal(t, config.DefaultTokenIssuer, auth.tokenIssuer)
	assert.Equal(t, config.DefaultTokenDuration, auth.tokenDuration)
}

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, user models.User) (models.User, error) {
			assert.Equal(t, "user-1", user.UserID)
			assert.Equal(t, "promoter@example.com", user.Email)
			assert.Equal(t, models.RolePromoter, user.Role)
			assert.Equal(t, testNow, user.CreatedAt)
			assert.Empty(t, user.Password)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse battery")))
			return user, nil
		})

	user, err := svc.RegisterUser(ctxBg(), validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.UserID)
}

func TestAuthService_RegisterUser_AdminRefused(t *testing.T) {
	svc, _ := newTestAuthService(t)

	req := validRegistration()
	req.Role = models.RoleAdmin

	_, err := svc.RegisterUser(ctxBg(), req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestAuthService_RegisterUser_InvalidFields(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.RegisterUser(ctxBg(), models.RegisterRequest{
		Email:    "not-an-email",
		Password: "short",
		Role:     models.RoleCustomer,
		Phone:    "98765",
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	var validationErr *validators.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.ElementsMatch(t, []string{"email", "password", "phone"}, validationErr.Fields)
}

func TestAuthService_RegisterUser_DuplicateEmail(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(ctxBg(), validRegistration())
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: "user-1", Email: "promoter@example.com", PasswordHash: string(hash), Role: models.RolePromoter}

	tests := []struct {
		name     string
		password string
		found    models.User
		findErr  error
		wantErr  error
	}{
		{name: "success", password: "correct horse battery", found: stored},
		{name: "wrong password", password: "wrong horse battery", found: stored, wantErr: ErrWrongCredentials},
		{name: "unknown email", password: "correct horse battery", findErr: store.ErrUserNotFound, wantErr: ErrWrongCredentials},
		{name: "store down", password: "correct horse battery", findErr: store.ErrExecutingQuery, wantErr: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService(t)
			repo.EXPECT().FindUserByEmail(gomock.Any(), "promoter@example.com").Return(tt.found, tt.findErr)

			user, err := svc.Login(ctxBg(), models.LoginRequest{Email: "Promoter@example.com", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.UserID, user.UserID)
		})
	}
}

func TestAuthService_WrongCredentialsIsUnauthorized(t *testing.T) {
	assert.ErrorIs(t, ErrWrongCredentials, ErrUnauthorized)
	assert.ErrorIs(t, ErrTokenIsExpired, ErrUnauthorized)
	assert.ErrorIs(t, ErrTokenIsInvalid, ErrUnauthorized)
}

func TestAuthService_TokenRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.CreateToken(ctxBg(), models.User{UserID: "user-1", Role: models.RoleAdmin, Email: "root@example.com"})
	require.NoError(t, err)

	caller, err := svc.ParseToken(ctxBg(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.AuthenticatedUser{UserID: "user-1", Role: models.RoleAdmin, Email: "root@example.com"}, caller)
}

func TestAuthService_ParseToken_Rejections(t *testing.T) {
	svc, _ := newTestAuthService(t)

	other, err := NewAuthService(nil, config.App{TokenSignKey: strings.Repeat("x", 32)}, logger.Nop())
	require.NoError(t, err)
	foreign, err := other.CreateToken(ctxBg(), models.User{UserID: "user-1", Role: models.RoleCustomer})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctxBg(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsInvalid)

	_, err = svc.ParseToken(ctxBg(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsInvalid)

	svc.tokenDuration = time.Nanosecond
	short, err := svc.CreateToken(ctxBg(), models.User{UserID: "user-1", Role: models.RoleCustomer})
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = svc.ParseToken(ctxBg(), short.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_CreateToken_UnknownRole(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.CreateToken(ctxBg(), models.User{UserID: "user-1", Role: "ROOT"})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/MKhiriev/go-estate/internal/store"
	"github.com/MKhiriev/go-estate/internal/utils"
	"github.com/MKhiriev/go-estate/internal/validators"
	"github.com/MKhiriev/go-estate/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator
	ids       idGenerator
	now       func() time.Time

	// bcryptCost is the work factor used when hashing new passwords.
	bcryptCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// It refuses to start with a sign key shorter than
// [config.MinTokenSignKeyLength] bytes. The returned service is safe for
// concurrent use; all state is read-only after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) (AuthService, error) {
	if len(cfg.TokenSignKey) < config.MinTokenSignKeyLength {
		return nil, fmt.Errorf("%w: need at least %d bytes", ErrTokenSignKeyTooShort, config.MinTokenSignKeyLength)
	}

	issuer := cfg.TokenIssuer
	if issuer == "" {
		issuer = config.DefaultTokenIssuer
	}
	duration := cfg.TokenDuration
	if duration <= 0 {
		duration = config.DefaultTokenDuration
	}

	return &authService{
		userRepository: userRepository,
		validator:      validators.NewRequestValidator(),
		ids:            utils.NewUUIDGenerator(),
		now:            utcNow,
		bcryptCost:     bcrypt.DefaultCost,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    issuer,
		tokenDuration:  duration,
		logger:         logger,
	}, nil
}

// RegisterUser creates a new CUSTOMER or PROMOTER account.
//
// Returns the persisted user or:
//   - ErrInvalidInput listing every violated field.
//   - ErrForbidden for a self-registered ADMIN.
//   - ErrConflict if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("func", "*authService.RegisterUser").Msg("invalid registration data")
		return models.User{}, mapValidationError(err)
	}
	if req.Role == models.RoleAdmin {
		log.Warn().Str("func", "*authService.RegisterUser").Str("email", req.Email).Msg("admin self-registration refused")
		return models.User{}, fmt.Errorf("%w: admin accounts cannot self-register", ErrForbidden)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	user := models.User{
		UserID:       a.ids.Generate(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         req.Role,
		Phone:        req.Phone,
		Name:         req.Name,
		CreatedAt:    a.now(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.RegisterUser").Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, mapStoreError(err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user. An unknown email and a wrong
// password both yield ErrWrongCredentials.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.User{}, mapValidationError(err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "*authService.Login").Msg("unknown email")
			return models.User{}, ErrWrongCredentials
		}
		log.Err(err).Str("func", "*authService.Login").Msg("user search by email failed")
		return models.User{}, mapStoreError(err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Debug().Str("func", "*authService.Login").Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, models.AuthenticatedUser{
		UserID: user.UserID,
		Role:   user.Role,
		Email:  user.Email,
	}, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.CreateToken").Msg("error creating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Expired tokens yield ErrTokenIsExpired; any other validation failure
// (signature, issuer, malformed, unknown role) yields ErrTokenIsInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.AuthenticatedUser, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.AuthenticatedUser{}, ErrTokenIsExpired
		}
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("invalid token")
		return models.AuthenticatedUser{}, ErrTokenIsInvalid
	}

	return token.User, nil
}

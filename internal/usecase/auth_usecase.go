package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/janhvi13092005/doc-talk-connect/internal/converter"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/repository"
	"github.com/janhvi13092005/doc-talk-connect/internal/service"
	"github.com/janhvi13092005/doc-talk-connect/pkg/jwt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrNameRequired       = errors.New("please enter your name")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
)

const bearerTokenType = "Bearer"

type AuthUsecase interface {
	SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.UserResponse, error)
	SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.TokenResponse, error)
	SignOut(ctx context.Context, refreshToken string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	sessions     service.SessionStore
	hashCost     int
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	sessions service.SessionStore,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		auditService: auditService,
		jwtService:   jwtService,
		sessions:     sessions,
		hashCost:     bcrypt.DefaultCost,
	}
}

// SignUp creates a patient account and its profile in one transaction.
// The display name is split on the first space into first and last name.
func (u *authUsecase) SignUp(ctx context.Context, req *dto.SignUpRequest) (*dto.UserResponse, error) {
	firstName, lastName := splitName(req.Name)
	if firstName == "" {
		return nil, ErrNameRequired
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), u.hashCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Password: string(hashedPassword),
		RoleID:   entity.RoleIDPatient,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	profile := &entity.Profile{
		ID:        user.ID,
		FirstName: &firstName,
	}
	if lastName != "" {
		profile.LastName = &lastName
	}

	if err := u.profileRepo.Create(tx, profile); err != nil {
		u.log.Warnf("Failed to create profile: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	resp := converter.UserToResponse(user)
	if err := u.auditService.LogCreate(ctx, nil, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), resp); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return resp, nil
}

func (u *authUsecase) SignIn(ctx context.Context, req *dto.SignInRequest) (*dto.TokenResponse, error) {
	// Find user by email (read-only, no transaction needed)
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	tokens, err := u.issueTokens(ctx, jwt.Identity{UserID: user.ID, Email: user.Email, RoleID: user.RoleID})
	if err != nil {
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, nil, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return tokens, nil
}

// SignOut revokes the access token of the current request and, when supplied
// and owned by the same user, the paired refresh token.
func (u *authUsecase) SignOut(ctx context.Context, refreshToken string) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return ErrSessionRequired
	}
	accessTokenID, _ := middleware.GetTokenIDFromContext(ctx)

	refreshTokenID := ""
	if refreshToken != "" {
		claims, err := u.jwtService.ValidateTokenOfType(refreshToken, jwt.RefreshToken)
		if err == nil && claims.UserID == userID {
			refreshTokenID = claims.TokenID
		}
	}

	if err := u.sessions.Close(ctx, userID, accessTokenID, refreshTokenID); err != nil {
		return err
	}

	if err := u.auditService.LogCreate(ctx, nil, &userID, entity.AuditActionUserLogout, "user", userID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}
	return nil
}

// RefreshToken rotates a refresh token. Each refresh token is accepted once.
func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateTokenOfType(req.RefreshToken, jwt.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	consumed, err := u.sessions.Consume(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		return nil, err
	}
	if !consumed {
		return nil, ErrTokenRevoked
	}

	// Reload so a changed role is reflected in the new tokens
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return u.issueTokens(ctx, jwt.Identity{UserID: user.ID, Email: user.Email, RoleID: user.RoleID})
}

func (u *authUsecase) GetCurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrSessionRequired
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, id jwt.Identity) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(id)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(id)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	err = u.sessions.Open(ctx, id.UserID,
		service.TokenGrant{ID: accessTokenID, TTL: u.jwtService.GetAccessExpiry()},
		service.TokenGrant{ID: refreshTokenID, TTL: u.jwtService.GetRefreshExpiry()},
	)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    bearerTokenType,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

// splitName splits "Jane van Doe" into "Jane" and "van Doe".
func splitName(name string) (string, string) {
	name = strings.Join(strings.Fields(name), " ")
	first, last, _ := strings.Cut(name, " ")
	return first, last
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

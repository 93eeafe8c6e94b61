package accountapp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonuar/Donacrypto/internal/apperr"
	accountEntity "github.com/jonuar/Donacrypto/internal/core/account"
	accountPort "github.com/jonuar/Donacrypto/internal/ports/account"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

// AccountService is the identity directory surface: provisioning, login and
// logout. The core services never touch credentials; they consume identity
// only through the directory port.
type AccountService struct {
	AccountRepository accountPort.AccountRepository
	Blacklist         accountPort.TokenBlacklist
	jwtKey            []byte
}

func NewAccountService(repo accountPort.AccountRepository, blacklist accountPort.TokenBlacklist, jwtKey []byte) *AccountService {
	return &AccountService{
		AccountRepository: repo,
		Blacklist:         blacklist,
		jwtKey:            jwtKey,
	}
}

// Register provisions a new account with role follower or creator.
func (s *AccountService) Register(ctx context.Context, username, email, password, role, firstName, lastName string) (*accountPort.AccountDTO, error) {
	if username == "" || email == "" || password == "" {
		return nil, fmt.Errorf("%w: username, email and password are required", apperr.ErrValidation)
	}
	if role != accountEntity.RoleFollower && role != accountEntity.RoleCreator {
		return nil, fmt.Errorf("%w: role must be follower or creator", apperr.ErrValidation)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	acc := &accountEntity.Account{
		ID:        uuid.Must(uuid.NewV4()),
		Username:  username,
		Email:     email,
		Role:      role,
		FirstName: firstName,
		LastName:  lastName,
		Password:  string(hashed),
	}

	created, err := s.AccountRepository.Create(ctx, acc)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username or email already taken", apperr.ErrConflict)
		}
		return nil, err
	}
	return toDTO(created), nil
}

// Login verifies credentials and issues a signed token.
func (s *AccountService) Login(ctx context.Context, email, password string) (*accountPort.LoginResponse, error) {
	acc, err := s.AccountRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	expiresAt := time.Now().Add(tokenLifetime)
	token, err := s.generateJWT(acc, expiresAt)
	if err != nil {
		return nil, errors.New("could not generate token")
	}

	return &accountPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// Logout revokes the presented token by blacklisting its jti for the
// remainder of its lifetime.
func (s *AccountService) Logout(ctx context.Context, tokenString string) error {
	claims := &jwt.StandardClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.jwtKey, nil
	})
	if err != nil || claims.Id == "" {
		return fmt.Errorf("%w: invalid token", apperr.ErrValidation)
	}

	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl <= 0 {
		return nil // already expired, nothing to revoke
	}
	return s.Blacklist.Revoke(ctx, claims.Id, ttl)
}

// GetProfile returns the caller's own account, sans credentials.
func (s *AccountService) GetProfile(ctx context.Context, accountID string) (*accountPort.AccountDTO, error) {
	acc, err := s.AccountRepository.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account", apperr.ErrNotFound)
		}
		return nil, err
	}
	return toDTO(acc), nil
}

func (s *AccountService) generateJWT(acc *accountEntity.Account, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   acc.ID.String(),
		Issuer:    "donacrypto",
		Id:        uuid.Must(uuid.NewV4()).String(),
		ExpiresAt: expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

func toDTO(acc *accountEntity.Account) *accountPort.AccountDTO {
	return &accountPort.AccountDTO{
		ID:        acc.ID.String(),
		Username:  acc.Username,
		Email:     acc.Email,
		Role:      acc.Role,
		FirstName: acc.FirstName,
		LastName:  acc.LastName,
		Bio:       acc.Bio,
		AvatarURL: acc.AvatarURL,
		CreatedAt: acc.CreatedAt,
	}
}

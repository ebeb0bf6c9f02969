package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/zmtwc/planner/internal/config"
	"github.com/zmtwc/planner/internal/db"
	"github.com/zmtwc/planner/internal/model"
)

const (
	saltCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789)(*&^%$#@!~"
	saltLength  = 8
)

type CredentialStore interface {
	CreateCredential(ctx context.Context, username, passwordHash, salt string) (int64, error)
	GetCredentialByUsername(ctx context.Context, username string) (*model.Credential, error)
}

// AuthService owns credential hashing and token issuance/validation.
// The signing secret is fixed at construction and read-only afterwards.
type AuthService struct {
	repo      CredentialStore
	jwtSecret []byte
	issuer    string
	tokenTTL  time.Duration
}

type authClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

func NewAuthService(repo CredentialStore, cfg config.AuthConfig) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is required", ErrMisconfigured)
	}

	tokenTTL, err := time.ParseDuration(cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JWT_TOKEN_TTL", ErrMisconfigured)
	}

	if cfg.Issuer == "" {
		return nil, fmt.Errorf("%w: JWT_ISSUER is required", ErrMisconfigured)
	}

	return &AuthService{
		repo:      repo,
		jwtSecret: []byte(cfg.JWTSecret),
		issuer:    cfg.Issuer,
		tokenTTL:  tokenTTL,
	}, nil
}

// Register stores a fresh salted credential and returns the created
// user. A taken username maps to ErrConflict.
func (s *AuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	salt, err := generateSalt()
	if err != nil {
		return nil, err
	}

	id, err := s.repo.CreateCredential(ctx, username, saltedHash(password, salt), salt)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return nil, fmt.Errorf("%w: username already taken", ErrConflict)
		}
		return nil, err
	}

	return &model.User{ID: id, Username: username}, nil
}

// Login re-derives the stored digest from the presented password and the
// stored salt. An unknown username is NotFound, a digest mismatch is
// Unauthorized.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.AuthenticateResponse, error) {
	cred, err := s.repo.GetCredentialByUsername(ctx, username)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, fmt.Errorf("%w: user doesn't exist", ErrNotFound)
		}
		return nil, err
	}

	if saltedHash(password, cred.Salt) != cred.PasswordHash {
		return nil, fmt.Errorf("%w: incorrect password", ErrUnauthorized)
	}

	token, err := s.IssueToken(cred.ID, username)
	if err != nil {
		return nil, err
	}

	return &model.AuthenticateResponse{ID: cred.ID, Token: token}, nil
}

// IssueToken signs claims {iss, sub, username, iat, exp} with the
// process secret. exp is iat plus the configured validity window.
func (s *AuthService) IssueToken(userID int64, username string) (string, error) {
	now := time.Now()
	claims := authClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ParseToken verifies signature, expiry and issuer. Every failure wraps
// ErrUnauthorized; the wrapped message is for logs only, callers observe
// a single outcome.
func (s *AuthService) ParseToken(tokenStr string) (*model.AuthUser, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrUnauthorized
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: signature or expiry check failed", ErrUnauthorized)
	}

	if claims.Issuer != s.issuer {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrUnauthorized)
	}

	// The subject is produced by IssueToken and always numeric; a
	// non-numeric one means the token was not ours.
	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed subject", ErrUnauthorized)
	}

	return &model.AuthUser{ID: userID, Username: claims.Username}, nil
}

// generateSalt draws saltLength characters uniformly from saltCharset
// using crypto/rand.
func generateSalt() (string, error) {
	max := big.NewInt(int64(len(saltCharset)))
	salt := make([]byte, saltLength)
	for i := range salt {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		salt[i] = saltCharset[idx.Int64()]
	}
	return string(salt), nil
}

// saltedHash is the stored credential digest:
// hex(SHA-256(password || salt)). Deterministic so login can re-derive
// and compare.
func saltedHash(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/pingpong-league/internal/domain/player"
	idgen "github.com/riskibarqy/pingpong-league/internal/platform/id"
)

const tokenIssuer = "pingpong-league"

// AuthService issues and verifies password-less bearer tokens. A player
// registers with name and email and receives an HS256 JWT; login requires
// both to match an existing player.
type AuthService struct {
	playerRepo player.Repository
	idGen      idgen.Generator
	secret     []byte
	tokenTTL   time.Duration
	now        func() time.Time
}

func NewAuthService(playerRepo player.Repository, idGen idgen.Generator, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		playerRepo: playerRepo,
		idGen:      idGen,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		now:        time.Now,
	}
}

type tokenClaims struct {
	PlayerID int64  `json:"player_id"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// AuthResult is a freshly issued token together with the player it belongs to.
type AuthResult struct {
	Token  string
	Player player.Player
}

type RegisterInput struct {
	Name  string
	Email string
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" {
		return AuthResult{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if email == "" {
		return AuthResult{}, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("get player by email: %w", err)
	}
	if exists {
		return AuthResult{}, fmt.Errorf("%w: a player with this email already exists", ErrConflict)
	}

	created, err := s.playerRepo.Create(ctx, player.Player{Name: name, Email: email})
	if err != nil {
		if errors.Is(err, player.ErrEmailTaken) {
			return AuthResult{}, fmt.Errorf("%w: a player with this email already exists", ErrConflict)
		}
		return AuthResult{}, fmt.Errorf("create player: %w", err)
	}

	token, err := s.issueToken(created)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	return AuthResult{Token: token, Player: created}, nil
}

type LoginInput struct {
	Name  string
	Email string
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	email := strings.TrimSpace(input.Email)
	name := strings.TrimSpace(input.Name)

	p, exists, err := s.playerRepo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("get player by email: %w", err)
	}
	if !exists || p.Name != name {
		return AuthResult{}, fmt.Errorf("%w: no player found with this name and email", ErrUnauthorized)
	}

	token, err := s.issueToken(p)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}

	return AuthResult{Token: token, Player: p}, nil
}

// VerifyAccessToken implements the router's TokenVerifier.
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (player.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.VerifyAccessToken")
	defer span.End()

	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil {
		return player.Principal{}, fmt.Errorf("%w: invalid token: %v", ErrUnauthorized, err)
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return player.Principal{}, fmt.Errorf("%w: invalid token claims", ErrUnauthorized)
	}

	return player.Principal{PlayerID: claims.PlayerID, Name: claims.Name}, nil
}

func (s *AuthService) issueToken(p player.Player) (string, error) {
	jti, err := s.idGen.NewID()
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	now := s.now()
	claims := tokenClaims{
		PlayerID: p.ID,
		Name:     p.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    tokenIssuer,
			Subject:   fmt.Sprintf("%d", p.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

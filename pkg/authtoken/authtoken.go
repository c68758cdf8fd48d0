package authtoken

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "univent-venue-service"

var (
	// ErrInvalidToken возвращается при невалидном или просроченном токене
	ErrInvalidToken = errors.New("authtoken: invalid token")

	// ErrWrongTokenKind возвращается, когда refresh токен используется как access (и наоборот)
	ErrWrongTokenKind = errors.New("authtoken: wrong token kind")
)

// Kind тип токена
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Claims полезная нагрузка JWT токена
type Claims struct {
	Role     string `json:"role"`
	FullName string `json:"full_name"`
	Kind     Kind   `json:"kind"`
	jwt.RegisteredClaims
}

// UserID возвращает subject токена как числовой ID пользователя
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: non-numeric subject %q", ErrInvalidToken, c.Subject)
	}
	return id, nil
}

// Manager выпускает и валидирует HS256 токены
type Manager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewManager создает менеджер токенов
func NewManager(secret string, accessTTL, refreshTTL time.Duration) *Manager {
	return &Manager{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// Pair пара access/refresh токенов
type Pair struct {
	AccessToken  string
	RefreshToken string
}

// IssuePair выпускает пару токенов для пользователя
func (m *Manager) IssuePair(userID int64, role, fullName string) (*Pair, error) {
	access, err := m.issue(userID, role, fullName, KindAccess, m.accessTTL)
	if err != nil {
		return nil, err
	}

	refresh, err := m.issue(userID, role, fullName, KindRefresh, m.refreshTTL)
	if err != nil {
		return nil, err
	}

	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (m *Manager) issue(userID int64, role, fullName string, kind Kind, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Role:     role,
		FullName: fullName,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("authtoken: failed to sign token: %w", err)
	}

	return signed, nil
}

// ParseAccess валидирует access токен и возвращает его claims
func (m *Manager) ParseAccess(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Kind != KindAccess {
		return nil, ErrWrongTokenKind
	}

	return claims, nil
}

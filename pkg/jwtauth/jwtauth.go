// Package jwtauth выпуск и проверка пар access/refresh токенов (HS256)
package jwtauth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

// Типы токенов
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
	TokenTypeBearer  = "bearer"
)

var (
	// ErrInvalidToken возвращается, когда токен не прошёл проверку
	ErrInvalidToken = errors.New("jwtauth: invalid token")

	// ErrTokenExpired возвращается, когда срок действия токена истёк
	ErrTokenExpired = errors.New("jwtauth: token has expired")

	// ErrInvalidTokenType возвращается, когда передан токен другого типа
	ErrInvalidTokenType = errors.New("jwtauth: invalid token type")

	// ErrInvalidCredentials возвращается при неверном логине или пароле
	ErrInvalidCredentials = errors.New("jwtauth: invalid credentials")
)

// Config настройки выпуска токенов
type Config struct {
	Username      string
	Password      string // пароль в открытом виде или bcrypt хеш ($2a$/$2b$/$2y$)
	AccessSecret  string
	RefreshSecret string
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

// Claims полезная нагрузка токена
type Claims struct {
	Type string `json:"type"`
	jwt.RegisteredClaims
}

// TokenPair пара токенов, выдаваемая при входе
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
}

// Manager выпускает и проверяет токены
type Manager struct {
	cfg Config
	now func() time.Time
}

// NewManager создает менеджер токенов
func NewManager(cfg Config) *Manager {
	return &Manager{cfg: cfg, now: time.Now}
}

// Authenticate проверяет логин и пароль (сравнение за постоянное время) и выдаёт пару токенов
func (m *Manager) Authenticate(username, password string) (*TokenPair, error) {
	if m.cfg.Username == "" || m.cfg.Password == "" {
		return nil, ErrInvalidCredentials
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(m.cfg.Username)) == 1
	passOK := m.passwordMatches(password)
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}
	return m.IssuePair(username)
}

func (m *Manager) passwordMatches(password string) bool {
	if isBcryptHash(m.cfg.Password) {
		return bcrypt.CompareHashAndPassword([]byte(m.cfg.Password), []byte(password)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(m.cfg.Password)) == 1
}

func isBcryptHash(s string) bool {
	return strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$")
}

// Refresh проверяет refresh токен и выдаёт новую пару
func (m *Manager) Refresh(refreshToken string) (*TokenPair, error) {
	subject, err := m.verify(refreshToken, m.cfg.RefreshSecret, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}
	return m.IssuePair(subject)
}

// VerifyAccess проверяет access токен и возвращает имя пользователя
func (m *Manager) VerifyAccess(accessToken string) (string, error) {
	return m.verify(accessToken, m.cfg.AccessSecret, TokenTypeAccess)
}

// IssuePair выпускает access и refresh токены для пользователя
func (m *Manager) IssuePair(subject string) (*TokenPair, error) {
	access, err := m.sign(subject, TokenTypeAccess, m.cfg.AccessSecret, m.cfg.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := m.sign(subject, TokenTypeRefresh, m.cfg.RefreshSecret, m.cfg.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: TokenTypeBearer}, nil
}

func (m *Manager) sign(subject, tokenType, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwtauth: %s token secret is not configured", tokenType)
	}
	now := m.now()
	claims := Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (m *Manager) verify(tokenString, secret, expectedType string) (string, error) {
	var claims Claims
	parser := jwt.Parser{
		ValidMethods: []string{jwt.SigningMethodHS256.Alg()},
	}
	_, err := parser.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) && validationErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Type != expectedType {
		return "", ErrInvalidTokenType
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}

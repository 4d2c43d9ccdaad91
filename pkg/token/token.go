package token

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the session payload carried in the auth cookie.
type Claims struct {
	FarmerID string `json:"uid"`
	jwt.RegisteredClaims
}

type Manager struct {
	secret       []byte
	cookieName   string
	cookieSecure bool
	ttl          time.Duration
}

func NewManager(secret, cookieName string, cookieSecure bool) *Manager {
	return &Manager{
		secret:       []byte(secret),
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		ttl:          30 * 24 * time.Hour,
	}
}

func (m *Manager) CookieName() string { return m.cookieName }

func (m *Manager) Sign(farmerID string) (string, error) {
	claims := &Claims{
		FarmerID: farmerID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

func (m *Manager) Parse(tokenStr string) (*Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if c, ok := tok.Claims.(*Claims); ok && tok.Valid {
		return c, nil
	}
	return nil, errors.New("invalid token")
}

// AuthCookie builds the session cookie for a signed token.
func (m *Manager) AuthCookie(tok string) *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    tok,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.cookieSecure,
		Expires:  time.Now().Add(m.ttl),
	}
}

// ClearCookie expires the session cookie.
func (m *Manager) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.cookieSecure,
		MaxAge:   -1,
	}
}

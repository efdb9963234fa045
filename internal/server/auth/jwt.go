// Package auth issues and verifies the HS256 bearer tokens handed out after
// a successful verification or login.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/studentteacher/internal/common"
	"github.com/dmitrijs2005/studentteacher/internal/server/config"
	"github.com/dmitrijs2005/studentteacher/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the role claim next to the registered subject and expiry.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and parses access tokens with a shared secret.
type Issuer struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewIssuer(secret []byte, expiry time.Duration) (*Issuer, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("%w: empty token secret", common.ErrConfiguration)
	}
	if expiry <= 0 {
		return nil, fmt.Errorf("%w: token expiry must be positive, got %s", common.ErrConfiguration, expiry)
	}
	return &Issuer{secret: secret, expiry: expiry, now: time.Now}, nil
}

// IssuerFromConfig reads SecretKey and TokenExpireTime. A bare integer
// expire time is minutes; anything else must be a Go duration.
func IssuerFromConfig(cfg *config.Config) (*Issuer, error) {
	expiry, err := ParseExpireTime(cfg.TokenExpireTime)
	if err != nil {
		return nil, err
	}
	return NewIssuer([]byte(cfg.SecretKey), expiry)
}

func ParseExpireTime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: token expire time is not set", common.ErrConfiguration)
	}
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Minute, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: bad token expire time %q", common.ErrConfiguration, s)
	}
	return d, nil
}

// WithClock replaces the clock Parse checks expiry against.
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	i.now = now
	return i
}

// Issue signs a token for userID with the given role that expires at
// now plus the configured lifetime.
func (i *Issuer) Issue(userID string, role models.Role, now time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(i.expiry)),
		},
	})

	s, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return s, nil
}

// Parse verifies the signature and expiry of tokenString.
func (i *Issuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

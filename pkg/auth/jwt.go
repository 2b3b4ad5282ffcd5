package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// TokenIssuer creates and validates HS256 bearer tokens.
type TokenIssuer struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenIssuer creates a token issuer.
func NewTokenIssuer(secret, issuer string, ttl time.Duration) (issuerObj *TokenIssuer) {
	issuerObj = &TokenIssuer{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}
	return issuerObj
}

// Generate issues a signed token for a username.
func (t *TokenIssuer) Generate(username string) (tokenString string, err error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    t.issuer,
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err = token.SignedString(t.secret)
	if err != nil {
		err = errors.Wrap(err, "failed to sign token")
		return tokenString, err
	}

	return tokenString, err
}

// Validate parses a token string and returns the subject username.
func (t *TokenIssuer) Validate(tokenString string) (username string, err error) {
	claims := &jwt.RegisteredClaims{}

	var token *jwt.Token
	token, err = jwt.ParseWithClaims(tokenString, claims, func(tok *jwt.Token) (key interface{}, keyErr error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			keyErr = errors.Errorf("unexpected signing method: %v", tok.Header["alg"])
			return key, keyErr
		}
		key = t.secret
		return key, keyErr
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if err != nil {
		err = errors.Wrap(err, "failed to parse token")
		return username, err
	}

	if !token.Valid {
		err = errors.New("invalid token")
		return username, err
	}

	if t.issuer != "" && claims.Issuer != t.issuer {
		err = errors.New("invalid token issuer")
		return username, err
	}

	username = claims.Subject
	if username == "" {
		err = errors.New("token has no subject")
		return username, err
	}

	return username, err
}

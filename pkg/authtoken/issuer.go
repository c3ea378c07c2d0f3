package authtoken

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/tillpoint/posaccess/pkg/rbac"
	"github.com/tillpoint/posaccess/pkg/scopes"
)

// Issuer signs principals into tokens.
type Issuer struct {
	key      []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewIssuer returns an Issuer for cfg. cfg.SigningKey is required.
func NewIssuer(cfg Config) (*Issuer, error) {
	if cfg.SigningKey == "" {
		return nil, ErrMissingSigningKey
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Issuer{
		key:      []byte(cfg.SigningKey),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      ttl,
		now:      time.Now,
	}, nil
}

// Issue signs p. A non-positive ttl uses the configured default.
func (i *Issuer) Issue(p *rbac.Principal, ttl time.Duration) (string, error) {
	if p == nil || p.ID == "" {
		return "", ErrMissingSubject
	}
	if p.Role == "" {
		return "", ErrMissingRole
	}
	if ttl <= 0 {
		ttl = i.ttl
	}

	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   p.ID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: string(p.Role),
	}
	if i.audience != "" {
		claims.Audience = jwt.ClaimStrings{i.audience}
	}
	for _, r := range p.Roles {
		claims.Roles = append(claims.Roles, string(r))
	}
	if len(p.Permissions) > 0 {
		perms := make([]string, len(p.Permissions))
		for n, perm := range p.Permissions {
			perms[n] = string(perm)
		}
		claims.Scope = scopes.Join(scopes.Normalize(perms))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
}

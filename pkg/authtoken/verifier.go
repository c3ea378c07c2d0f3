package authtoken

import (
	"errors"
	"log/slog"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tillpoint/posaccess/pkg/logger"
	"github.com/tillpoint/posaccess/pkg/rbac"
	"github.com/tillpoint/posaccess/pkg/scopes"
)

// Verifier validates tokens and decodes them into principals.
type Verifier struct {
	key     []byte
	catalog *rbac.Catalog
	parser  *jwt.Parser
	log     *slog.Logger
}

// NewVerifier returns a Verifier for cfg. A nil catalog means rbac.Default().
func NewVerifier(cfg Config, catalog *rbac.Catalog, log *slog.Logger) (*Verifier, error) {
	if cfg.SigningKey == "" {
		return nil, ErrMissingSigningKey
	}
	if catalog == nil {
		catalog = rbac.Default()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(cfg.Leeway),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &Verifier{
		key:     []byte(cfg.SigningKey),
		catalog: catalog,
		parser:  jwt.NewParser(opts...),
		log:     log,
	}, nil
}

// Verify validates token and returns the principal it carries.
func (v *Verifier) Verify(token string) (*rbac.Principal, error) {
	claims := new(Claims)
	_, err := v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return v.key, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, errors.Join(ErrInvalidToken, ErrExpiredToken)
	case err != nil:
		return nil, errors.Join(ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}
	if claims.Role == "" {
		return nil, ErrMissingRole
	}
	return v.principal(claims), nil
}

func (v *Verifier) principal(c *Claims) *rbac.Principal {
	p := &rbac.Principal{ID: c.Subject, Role: rbac.Role(c.Role)}

	for _, raw := range c.Roles {
		role, err := v.catalog.ParseRole(raw)
		if err != nil {
			v.log.Warn("dropping unknown role claim", logger.UserID(c.Subject), logger.Role(raw))
			continue
		}
		p.Roles = append(p.Roles, role)
	}
	for _, raw := range scopes.Parse(c.Scope) {
		perm, err := v.catalog.ParsePermission(raw)
		if err != nil {
			v.log.Warn("dropping unknown scope", logger.UserID(c.Subject), logger.Permission(raw))
			continue
		}
		p.Permissions = append(p.Permissions, perm)
	}
	return p
}

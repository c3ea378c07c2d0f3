package authtoken

import "errors"

var (
	ErrMissingSigningKey = errors.New("authtoken: missing signing key")
	ErrInvalidToken      = errors.New("authtoken: invalid token")
	ErrExpiredToken      = errors.New("authtoken: token expired")
	ErrMissingSubject    = errors.New("authtoken: missing subject")
	ErrMissingRole       = errors.New("authtoken: missing role")
)

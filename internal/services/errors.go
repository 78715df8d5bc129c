package services

import "errors"

// Business-rule rejections the handlers translate to 400 responses.
var (
	// ErrEmailTaken is returned when registering with an email that is
	// already present in the identity store.
	ErrEmailTaken = errors.New("user already exists")

	// ErrInvalidCredentials is returned on any login failure. It is
	// deliberately generic so callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrOwnerRoleImmutable is returned when a promotion targets the owner.
	ErrOwnerRoleImmutable = errors.New("cannot change owner role")
)

package domain

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNotRecyclable   = errors.New("material is not recyclable")
)

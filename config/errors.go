package config

import "github.com/pkg/errors"

var (
	ErrNotFound = errors.New("property not found")
	ErrFinal    = errors.New("property is final")
	ErrType     = errors.New("property has wrong type")
	ErrFormat   = errors.New("unsupported document format")
)

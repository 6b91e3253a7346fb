package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrNoDriversAvailable = fmt.Errorf("%w: no drivers available", ErrInvalidInput)
	ErrInvalidCredentials = errors.New("invalid credentials")
)

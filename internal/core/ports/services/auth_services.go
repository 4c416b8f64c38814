package services

import (
	"context"
	"time"
)

// AuthSvc authenticates the till operator.
type AuthSvc interface {
	// Login checks the operator credentials and returns a signed token.
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

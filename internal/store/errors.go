package store

import "errors"

// ErrDuplicateKey indicates an insert for a key that already exists.
var ErrDuplicateKey = errors.New("duplicate key")

// ErrNotFound indicates the requested key is not present.
var ErrNotFound = errors.New("not found")

// ErrNegativeQuantity indicates a rejected delta that would take a stock
// entry below zero while the policy forbids negative quantities.
var ErrNegativeQuantity = errors.New("quantity may not go negative")

package store

import (
	"go.uber.org/zap"

	"github.com/rsarkis/stockroom/internal/domain/models"
)

// AccountDirectory keeps operator credentials in memory. Passwords are
// stored exactly as entered; there is no hashing layer in front of this
// directory and no way to change a password once registered.
type AccountDirectory struct {
	creds  map[string]models.Credential
	events *zap.Logger
}

// NewAccountDirectory builds an empty account directory.
func NewAccountDirectory(events *zap.Logger) *AccountDirectory {
	if events == nil {
		events = zap.NewNop()
	}
	return &AccountDirectory{
		creds:  make(map[string]models.Credential),
		events: events,
	}
}

// Register stores a new username/password pair. An already-registered
// username yields ErrDuplicateKey and keeps the original password.
func (d *AccountDirectory) Register(username, password string) error {
	if _, ok := d.creds[username]; ok {
		d.events.Warn("attempt to create duplicate username", zap.String("username", username))
		return ErrDuplicateKey
	}

	d.creds[username] = models.Credential{Username: username, Password: password}
	d.events.Info("created user account", zap.String("username", username))
	return nil
}

// Authenticate reports whether username exists and password matches the
// stored value exactly.
func (d *AccountDirectory) Authenticate(username, password string) bool {
	cred, ok := d.creds[username]
	if ok && cred.Password == password {
		d.events.Info("user logged in", zap.String("username", username))
		return true
	}

	d.events.Warn("failed login attempt", zap.String("username", username))
	return false
}

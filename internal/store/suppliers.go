package store

import (
	"iter"
	"slices"

	"go.uber.org/zap"

	"github.com/rsarkis/stockroom/internal/domain/models"
)

// SupplierDirectory keeps supplier contact records keyed by name, in
// first-add order.
type SupplierDirectory struct {
	records map[string]*models.SupplierRecord
	order   []string
	events  *zap.Logger
}

// NewSupplierDirectory builds an empty supplier directory.
func NewSupplierDirectory(events *zap.Logger) *SupplierDirectory {
	if events == nil {
		events = zap.NewNop()
	}
	return &SupplierDirectory{
		records: make(map[string]*models.SupplierRecord),
		events:  events,
	}
}

// Add stores a new supplier record. A name already present yields
// ErrDuplicateKey and leaves the stored record untouched.
func (d *SupplierDirectory) Add(rec models.SupplierRecord) error {
	if _, ok := d.records[rec.Name]; ok {
		d.events.Warn("attempt to add duplicate supplier", zap.String("name", rec.Name))
		return ErrDuplicateKey
	}

	stored := rec
	d.records[rec.Name] = &stored
	d.order = append(d.order, rec.Name)

	d.events.Info("added supplier", zap.String("name", rec.Name))
	return nil
}

// Update overwrites the address, phone number and email of an existing
// supplier unconditionally. A missing name yields ErrNotFound.
func (d *SupplierDirectory) Update(name, address, phoneNumber, email string) error {
	rec, ok := d.records[name]
	if !ok {
		d.events.Warn("attempt to update non-existent supplier", zap.String("name", name))
		return ErrNotFound
	}

	rec.Address = address
	rec.PhoneNumber = phoneNumber
	rec.Email = email

	d.events.Info("updated supplier",
		zap.String("name", name),
		zap.String("address", address),
		zap.String("phone", phoneNumber),
		zap.String("email", email))
	return nil
}

// Delete removes the record for name, or yields ErrNotFound.
func (d *SupplierDirectory) Delete(name string) error {
	if _, ok := d.records[name]; !ok {
		d.events.Warn("attempt to delete non-existent supplier", zap.String("name", name))
		return ErrNotFound
	}

	delete(d.records, name)
	d.order = slices.DeleteFunc(d.order, func(s string) bool { return s == name })

	d.events.Info("deleted supplier", zap.String("name", name))
	return nil
}

// Get returns a copy of the record for name, if present.
func (d *SupplierDirectory) Get(name string) (models.SupplierRecord, bool) {
	rec, ok := d.records[name]
	if !ok {
		return models.SupplierRecord{}, false
	}
	return *rec, true
}

// Len reports the number of suppliers on file.
func (d *SupplierDirectory) Len() int {
	return len(d.records)
}

// All yields record snapshots in first-add order; the sequence restarts on
// every range.
func (d *SupplierDirectory) All() iter.Seq[models.SupplierRecord] {
	return func(yield func(models.SupplierRecord) bool) {
		for _, name := range d.order {
			if !yield(*d.records[name]) {
				return
			}
		}
	}
}

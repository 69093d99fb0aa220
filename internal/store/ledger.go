// Package store holds the in-memory keyed collections behind the operator
// console: accounts, suppliers, memos and the stock ledger. Collections live
// for the process lifetime and are owned by a single console session; none
// of them is safe for concurrent use.
package store

import (
	"iter"
	"slices"

	"go.uber.org/zap"

	"github.com/rsarkis/stockroom/internal/domain/models"
)

// AlertLevel classifies a stock quantity against the policy bands.
type AlertLevel int

const (
	AlertNone AlertLevel = iota
	AlertLow
	AlertHigh
)

// String renders the level the way it appears in the event log.
func (a AlertLevel) String() string {
	switch a {
	case AlertLow:
		return "LOW_STOCK"
	case AlertHigh:
		return "HIGH_STOCK"
	default:
		return "OK"
	}
}

// Policy holds the stock-level thresholds and replenishment settings.
type Policy struct {
	LowThreshold      int
	HighThreshold     int
	ReplenishQuantity int
	AllowNegative     bool
}

// DefaultPolicy returns the policy used when nothing is configured:
// low below 5, high above 20, reorders of 10, negative quantities allowed.
func DefaultPolicy() Policy {
	return Policy{
		LowThreshold:      5,
		HighThreshold:     20,
		ReplenishQuantity: 10,
		AllowNegative:     true,
	}
}

// Classify maps a quantity to its alert band. Both boundaries are
// exclusive: a quantity equal to LowThreshold or HighThreshold is in the
// quiet band. Classification never has side effects; acting on the result
// (notices, reorder prompts) is the caller's business.
func (p Policy) Classify(quantity int) AlertLevel {
	switch {
	case quantity < p.LowThreshold:
		return AlertLow
	case quantity > p.HighThreshold:
		return AlertHigh
	default:
		return AlertNone
	}
}

// Ledger tracks stock entries keyed by SKU. Iteration follows the order in
// which SKUs were first created.
type Ledger struct {
	entries map[string]*models.StockEntry
	order   []string
	policy  Policy
	events  *zap.Logger
}

// NewLedger builds an empty ledger governed by the given policy. The events
// logger receives one line per mutation; nil disables event logging.
func NewLedger(policy Policy, events *zap.Logger) *Ledger {
	if events == nil {
		events = zap.NewNop()
	}
	return &Ledger{
		entries: make(map[string]*models.StockEntry),
		policy:  policy,
		events:  events,
	}
}

// Policy returns the stock policy the ledger was built with.
func (l *Ledger) Policy() Policy {
	return l.policy
}

// ApplyDelta adds delta to the quantity recorded for sku, creating the
// entry at quantity zero first if the SKU is unknown. The category label is
// overwritten with the supplied value on every call. The returned alert
// level classifies the resulting quantity.
//
// When the policy forbids negative quantities and the delta would produce
// one, ErrNegativeQuantity is returned and the ledger is left untouched.
func (l *Ledger) ApplyDelta(sku, category string, delta int) (models.StockEntry, AlertLevel, error) {
	entry, exists := l.entries[sku]
	if !exists {
		entry = &models.StockEntry{SKU: sku}
	}

	next := entry.Quantity + delta
	if next < 0 && !l.policy.AllowNegative {
		l.events.Warn("rejected delta below zero",
			zap.String("sku", sku),
			zap.Int("delta", delta),
			zap.Int("quantity", entry.Quantity))
		return models.StockEntry{}, AlertNone, ErrNegativeQuantity
	}

	if !exists {
		l.entries[sku] = entry
		l.order = append(l.order, sku)
	}
	entry.Category = category
	entry.Quantity = next

	l.events.Info("updated inventory",
		zap.String("sku", sku),
		zap.String("category", category),
		zap.Int("delta", delta),
		zap.Int("quantity", next))

	return *entry, l.policy.Classify(next), nil
}

// Get returns a copy of the entry for sku, if present.
func (l *Ledger) Get(sku string) (models.StockEntry, bool) {
	entry, ok := l.entries[sku]
	if !ok {
		return models.StockEntry{}, false
	}
	return *entry, true
}

// Remove deletes the entry for sku. A missing SKU yields ErrNotFound and
// leaves the ledger unchanged.
func (l *Ledger) Remove(sku string) error {
	if _, ok := l.entries[sku]; !ok {
		l.events.Warn("attempt to delete non-existent sku", zap.String("sku", sku))
		return ErrNotFound
	}

	delete(l.entries, sku)
	l.order = slices.DeleteFunc(l.order, func(s string) bool { return s == sku })

	l.events.Info("deleted inventory", zap.String("sku", sku))
	return nil
}

// Len reports the number of entries in the ledger.
func (l *Ledger) Len() int {
	return len(l.entries)
}

// All yields entry snapshots in first-creation order. The sequence may be
// ranged over any number of times; each pass restarts from the beginning.
func (l *Ledger) All() iter.Seq[models.StockEntry] {
	return func(yield func(models.StockEntry) bool) {
		for _, sku := range l.order {
			if !yield(*l.entries[sku]) {
				return
			}
		}
	}
}

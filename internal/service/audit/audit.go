// Package audit sweeps the reporting database against the stock policy and
// appends low/high stock notices to the event log. It reads only the
// reporting database, never the in-memory collections, so it is safe to run
// while the console session is active.
package audit

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/rsarkis/stockroom/internal/domain/models"
	"github.com/rsarkis/stockroom/internal/store"
)

// InventoryReporter is the slice of the reporting repository the audit needs.
type InventoryReporter interface {
	InventoryReport(ctx context.Context) ([]models.StockEntry, error)
}

// Summary counts report rows per alert band.
type Summary struct {
	Total int
	Low   int
	High  int
}

// Service implements the scheduled stock audit.
type Service struct {
	repo   InventoryReporter
	policy store.Policy
	events *zap.Logger
	logger *zap.Logger
}

// NewService wires a new audit service instance.
func NewService(repo InventoryReporter, policy store.Policy, events, logger *zap.Logger) *Service {
	if events == nil {
		events = zap.NewNop()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, policy: policy, events: events, logger: logger}
}

// Run classifies every row of the inventory report and logs one notice per
// item outside the quiet band, plus a closing summary line.
func (s *Service) Run(ctx context.Context) (Summary, error) {
	entries, err := s.repo.InventoryReport(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("load inventory report: %w", err)
	}

	var sum Summary
	for _, entry := range entries {
		sum.Total++
		switch s.policy.Classify(entry.Quantity) {
		case store.AlertLow:
			sum.Low++
			s.events.Warn("LOW_STOCK",
				zap.String("sku", entry.SKU),
				zap.String("category", entry.Category),
				zap.Int("quantity", entry.Quantity),
				zap.Int("threshold", s.policy.LowThreshold))
		case store.AlertHigh:
			sum.High++
			s.events.Warn("HIGH_STOCK",
				zap.String("sku", entry.SKU),
				zap.String("category", entry.Category),
				zap.Int("quantity", entry.Quantity),
				zap.Int("threshold", s.policy.HighThreshold))
		}
	}

	s.events.Info("stock audit completed",
		zap.Int("items", sum.Total),
		zap.Int("low", sum.Low),
		zap.Int("high", sum.High))

	return sum, nil
}

package store

import (
	"errors"
	"testing"
)

func TestPolicyClassify(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name     string
		quantity int
		expected AlertLevel
	}{
		{"far_negative", -100, AlertLow},
		{"zero", 0, AlertLow},
		{"just_below_low", 4, AlertLow},
		{"at_low_boundary", 5, AlertNone},
		{"just_above_low", 6, AlertNone},
		{"at_high_boundary", 20, AlertNone},
		{"just_above_high", 21, AlertHigh},
		{"far_high", 1000, AlertHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := policy.Classify(tt.quantity); got != tt.expected {
				t.Errorf("Classify(%d) = %v, want %v", tt.quantity, got, tt.expected)
			}
		})
	}
}

func TestLedgerApplyDeltaCreatesAtZero(t *testing.T) {
	ledger := NewLedger(DefaultPolicy(), nil)

	entry, level, err := ledger.ApplyDelta("A1", "Widgets", 3)
	if err != nil {
		t.Fatalf("ApplyDelta failed: %v", err)
	}

	if entry.Quantity != 3 {
		t.Errorf("Expected quantity 3, got %d", entry.Quantity)
	}
	if entry.Category != "Widgets" {
		t.Errorf("Expected category Widgets, got %s", entry.Category)
	}
	if level != AlertLow {
		t.Errorf("Expected AlertLow for quantity 3, got %v", level)
	}
}

func TestLedgerApplyDeltaAccumulates(t *testing.T) {
	tests := []struct {
		name             string
		d1, d2           int
		cat1, cat2       string
		expectedQuantity int
	}{
		{"two_positive", 7, 5, "Widgets", "Widgets", 12},
		{"positive_then_negative", 10, -3, "Widgets", "Widgets", 7},
		{"category_overwrite", 6, 2, "Widgets", "Gadgets", 8},
		{"goes_negative", 2, -9, "Widgets", "Widgets", -7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ledger := NewLedger(DefaultPolicy(), nil)

			if _, _, err := ledger.ApplyDelta("SKU-1", tt.cat1, tt.d1); err != nil {
				t.Fatalf("First ApplyDelta failed: %v", err)
			}
			entry, _, err := ledger.ApplyDelta("SKU-1", tt.cat2, tt.d2)
			if err != nil {
				t.Fatalf("Second ApplyDelta failed: %v", err)
			}

			if entry.Quantity != tt.expectedQuantity {
				t.Errorf("Expected quantity %d, got %d", tt.expectedQuantity, entry.Quantity)
			}
			if entry.Category != tt.cat2 {
				t.Errorf("Expected category %s from second call, got %s", tt.cat2, entry.Category)
			}
			if ledger.Len() != 1 {
				t.Errorf("Expected a single entry, got %d", ledger.Len())
			}
		})
	}
}

func TestLedgerNegativePolicy(t *testing.T) {
	policy := DefaultPolicy()
	policy.AllowNegative = false
	ledger := NewLedger(policy, nil)

	if _, _, err := ledger.ApplyDelta("A1", "Widgets", 3); err != nil {
		t.Fatalf("ApplyDelta failed: %v", err)
	}

	_, _, err := ledger.ApplyDelta("A1", "Gadgets", -5)
	if !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("Expected ErrNegativeQuantity, got %v", err)
	}

	// The rejected delta must leave the entry untouched, category included.
	entry, ok := ledger.Get("A1")
	if !ok {
		t.Fatal("Entry A1 disappeared after rejected delta")
	}
	if entry.Quantity != 3 {
		t.Errorf("Expected quantity 3 after rejection, got %d", entry.Quantity)
	}
	if entry.Category != "Widgets" {
		t.Errorf("Expected category Widgets after rejection, got %s", entry.Category)
	}

	// A rejected creation must not insert the SKU at all.
	if _, _, err := ledger.ApplyDelta("B2", "Widgets", -1); !errors.Is(err, ErrNegativeQuantity) {
		t.Fatalf("Expected ErrNegativeQuantity on negative creation, got %v", err)
	}
	if _, ok := ledger.Get("B2"); ok {
		t.Error("Rejected creation left an entry behind")
	}
}

func TestLedgerRemove(t *testing.T) {
	ledger := NewLedger(DefaultPolicy(), nil)

	if err := ledger.Remove("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for absent SKU, got %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("Remove of absent SKU changed the ledger, len %d", ledger.Len())
	}

	if _, _, err := ledger.ApplyDelta("A1", "Widgets", 10); err != nil {
		t.Fatalf("ApplyDelta failed: %v", err)
	}

	if err := ledger.Remove("A1"); err != nil {
		t.Fatalf("First Remove failed: %v", err)
	}
	if err := ledger.Remove("A1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound on second Remove, got %v", err)
	}
	if ledger.Len() != 0 {
		t.Errorf("Expected empty ledger, len %d", ledger.Len())
	}
}

func TestLedgerAllOrderAndRestart(t *testing.T) {
	ledger := NewLedger(DefaultPolicy(), nil)

	for _, sku := range []string{"C3", "A1", "B2"} {
		if _, _, err := ledger.ApplyDelta(sku, "Widgets", 10); err != nil {
			t.Fatalf("ApplyDelta %s failed: %v", sku, err)
		}
	}
	// A later delta must not move A1 from its creation position.
	if _, _, err := ledger.ApplyDelta("A1", "Widgets", 1); err != nil {
		t.Fatalf("ApplyDelta failed: %v", err)
	}

	collect := func() []string {
		var skus []string
		for entry := range ledger.All() {
			skus = append(skus, entry.SKU)
		}
		return skus
	}

	expected := []string{"C3", "A1", "B2"}
	for pass := 0; pass < 2; pass++ {
		got := collect()
		if len(got) != len(expected) {
			t.Fatalf("Pass %d: expected %d entries, got %d", pass, len(expected), len(got))
		}
		for i := range expected {
			if got[i] != expected[i] {
				t.Errorf("Pass %d: position %d = %s, want %s", pass, i, got[i], expected[i])
			}
		}
	}
}

func TestLedgerLowStockReorderScenario(t *testing.T) {
	ledger := NewLedger(DefaultPolicy(), nil)

	entry, level, err := ledger.ApplyDelta("A1", "Widgets", 3)
	if err != nil {
		t.Fatalf("ApplyDelta failed: %v", err)
	}
	if level != AlertLow {
		t.Fatalf("Expected AlertLow at quantity 3, got %v", level)
	}

	// Operator accepts the one-shot reorder of the configured quantity.
	entry, level, err = ledger.ApplyDelta(entry.SKU, entry.Category, ledger.Policy().ReplenishQuantity)
	if err != nil {
		t.Fatalf("Replenishment ApplyDelta failed: %v", err)
	}
	if entry.Quantity != 13 {
		t.Errorf("Expected quantity 13 after reorder, got %d", entry.Quantity)
	}
	if level != AlertNone {
		t.Errorf("Expected no further alert at 13, got %v", level)
	}
}

func TestLedgerHighStockScenario(t *testing.T) {
	ledger := NewLedger(DefaultPolicy(), nil)

	entry, level, err := ledger.ApplyDelta("B2", "Widgets", 25)
	if err != nil {
		t.Fatalf("ApplyDelta failed: %v", err)
	}
	if level != AlertHigh {
		t.Errorf("Expected AlertHigh at quantity 25, got %v", level)
	}
	if entry.Quantity != 25 {
		t.Errorf("Expected quantity to stay 25, got %d", entry.Quantity)
	}

	stored, ok := ledger.Get("B2")
	if !ok || stored.Quantity != 25 {
		t.Errorf("Expected stored quantity 25 with no auto-correction, got %+v", stored)
	}
}

func TestAlertLevelString(t *testing.T) {
	if AlertLow.String() != "LOW_STOCK" || AlertHigh.String() != "HIGH_STOCK" || AlertNone.String() != "OK" {
		t.Errorf("Unexpected alert level names: %s, %s, %s", AlertLow, AlertHigh, AlertNone)
	}
}

func TestLedgerGetReturnsCopy(t *testing.T) {
	ledger := NewLedger(DefaultPolicy(), nil)
	if _, _, err := ledger.ApplyDelta("A1", "Widgets", 10); err != nil {
		t.Fatalf("ApplyDelta failed: %v", err)
	}

	entry, _ := ledger.Get("A1")
	entry.Quantity = 999

	stored, _ := ledger.Get("A1")
	if stored.Quantity != 10 {
		t.Errorf("Mutating a returned entry leaked into the ledger: %d", stored.Quantity)
	}
}

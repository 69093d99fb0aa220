// Package sqlite reads the external reporting database. The inventory and
// suppliers tables are maintained outside this process; every query here is
// a plain read with no write-back and no transactions.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/rsarkis/stockroom/internal/domain/models"
)

// Repository wraps the reporting database connection.
type Repository struct {
	db     *sql.DB
	logger *zap.Logger
}

// New opens the reporting database at path and verifies the connection.
func New(path string, logger *zap.Logger) (*Repository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=10000")
	if err != nil {
		return nil, fmt.Errorf("open reporting database: %w", err)
	}

	// SQLite serves one connection well; the report screens are sequential
	// anyway, and a single connection keeps :memory: databases stable.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping reporting database: %w", err)
	}

	return &Repository{db: db, logger: logger}, nil
}

// InventoryReport returns every row of the inventory table, ordered by SKU
// for deterministic output.
func (r *Repository) InventoryReport(ctx context.Context) ([]models.StockEntry, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT sku, category, quantity FROM inventory ORDER BY sku")
	if err != nil {
		return nil, fmt.Errorf("query inventory report: %w", err)
	}
	defer rows.Close()

	var entries []models.StockEntry
	for rows.Next() {
		var entry models.StockEntry
		if err := rows.Scan(&entry.SKU, &entry.Category, &entry.Quantity); err != nil {
			return nil, fmt.Errorf("scan inventory row: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read inventory rows: %w", err)
	}

	r.logger.Debug("inventory report loaded", zap.Int("rows", len(entries)))
	return entries, nil
}

// SupplierReport returns every row of the suppliers table, ordered by name.
func (r *Repository) SupplierReport(ctx context.Context) ([]models.SupplierRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name, address, phone_number, email FROM suppliers ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("query supplier report: %w", err)
	}
	defer rows.Close()

	var records []models.SupplierRecord
	for rows.Next() {
		var rec models.SupplierRecord
		if err := rows.Scan(&rec.Name, &rec.Address, &rec.PhoneNumber, &rec.Email); err != nil {
			return nil, fmt.Errorf("scan supplier row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read supplier rows: %w", err)
	}

	r.logger.Debug("supplier report loaded", zap.Int("rows", len(records)))
	return records, nil
}

// Close releases the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

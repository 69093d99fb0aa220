package models

// StockEntry is one tracked product: a unique SKU, its category label and
// the current on-hand quantity. Quantity is a running total of every delta
// applied since the entry was created.
type StockEntry struct {
	SKU      string
	Category string
	Quantity int
}

// SupplierRecord holds contact details for a supplier, keyed by name.
type SupplierRecord struct {
	Name        string
	Address     string
	PhoneNumber string
	Email       string
}

// Memo is a free-text note on the shared board, keyed by title.
type Memo struct {
	Title   string
	Content string
}

// Credential pairs an operator username with its password.
type Credential struct {
	Username string
	Password string
}

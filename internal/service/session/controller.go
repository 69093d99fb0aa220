// Package session implements the operator console: a pre-auth menu for
// account creation and login, then an operate menu dispatching to the
// in-memory stores and the optional reporting screens.
package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rsarkis/stockroom/internal/domain/models"
	"github.com/rsarkis/stockroom/internal/store"
)

// Reporter is the read-only reporting surface behind the report screens.
type Reporter interface {
	InventoryReport(ctx context.Context) ([]models.StockEntry, error)
	SupplierReport(ctx context.Context) ([]models.SupplierRecord, error)
}

// Options bundles the collaborators a Controller dispatches to. Reports may
// be nil, which hides the report menu entries.
type Options struct {
	Accounts  *store.AccountDirectory
	Suppliers *store.SupplierDirectory
	Memos     *store.MemoBoard
	Ledger    *store.Ledger
	Reports   Reporter
	Events    *zap.Logger
	Logger    *zap.Logger
}

// Controller owns the two-phase operator loop. All I/O is sequential and
// blocking over the supplied reader and writer.
type Controller struct {
	in  *bufio.Scanner
	out io.Writer

	accounts  *store.AccountDirectory
	suppliers *store.SupplierDirectory
	memos     *store.MemoBoard
	ledger    *store.Ledger
	reports   Reporter

	events *zap.Logger
	logger *zap.Logger

	newSessionID func() string
}

// NewController builds a console controller reading operator choices from in
// and writing menus and results to out.
func NewController(in io.Reader, out io.Writer, opts Options) *Controller {
	events := opts.Events
	if events == nil {
		events = zap.NewNop()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Controller{
		in:           bufio.NewScanner(in),
		out:          out,
		accounts:     opts.Accounts,
		suppliers:    opts.Suppliers,
		memos:        opts.Memos,
		ledger:       opts.Ledger,
		reports:      opts.Reports,
		events:       events,
		logger:       logger,
		newSessionID: uuid.NewString,
	}
}

// Run drives the console until the operator chooses exit or the input
// stream ends. A closed input stream surfaces as io.EOF.
func (c *Controller) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(c.out, "\n1. Create User Account\n2. Login\n3. Exit")
		choice, err := c.promptInt("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			if err := c.createAccount(); err != nil {
				return err
			}
		case 2:
			ok, err := c.login()
			if err != nil {
				return err
			}
			if ok {
				if err := c.operate(ctx); err != nil {
					return err
				}
			}
		case 3:
			fmt.Fprintln(c.out, "Exiting the system. Goodbye!")
			c.events.Info("system exited by operator")
			return nil
		default:
			c.invalidChoice(choice)
		}
	}
}

// operate runs the post-auth menu until logout. Reaching here means a login
// just succeeded, so a fresh session identifier is minted for the event log.
func (c *Controller) operate(ctx context.Context) error {
	session := c.events.With(zap.String("session", c.newSessionID()))
	session.Info("session started")

	for {
		c.printOperateMenu()
		choice, err := c.promptInt("Enter your choice: ")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			c.viewInventory(session)
		case 2:
			err = c.addInventory()
		case 3:
			err = c.deleteInventory()
		case 4:
			c.viewSuppliers(session)
		case 5:
			err = c.addSupplier()
		case 6:
			err = c.updateSupplier()
		case 7:
			err = c.deleteSupplier()
		case 8:
			err = c.postMemo()
		case 9:
			c.viewMemos(session)
		case 10:
			fmt.Fprintln(c.out, "Logging out...")
			session.Info("session ended")
			return nil
		case 11:
			if c.reports == nil {
				c.invalidChoice(choice)
				break
			}
			c.inventoryReport(ctx, session)
		case 12:
			if c.reports == nil {
				c.invalidChoice(choice)
				break
			}
			c.supplierReport(ctx, session)
		default:
			c.invalidChoice(choice)
		}
		if err != nil {
			return err
		}
	}
}

func (c *Controller) printOperateMenu() {
	fmt.Fprintln(c.out, "\n1. View Inventory\n2. Add Inventory\n3. Delete Inventory\n4. View Suppliers\n5. Add Supplier\n6. Update Supplier\n7. Delete Supplier\n8. Post Memo\n9. View Memos\n10. Logout")
	if c.reports != nil {
		fmt.Fprintln(c.out, "11. Inventory Report (database)\n12. Supplier Report (database)")
	}
}

func (c *Controller) createAccount() error {
	username, err := c.promptLine("Enter Username: ")
	if err != nil {
		return err
	}
	password, err := c.promptLine("Enter Password: ")
	if err != nil {
		return err
	}

	if err := c.accounts.Register(username, password); err != nil {
		fmt.Fprintln(c.out, "Username already exists.")
		return nil
	}
	fmt.Fprintln(c.out, "User account created.")
	return nil
}

func (c *Controller) login() (bool, error) {
	username, err := c.promptLine("Enter Username: ")
	if err != nil {
		return false, err
	}
	password, err := c.promptLine("Enter Password: ")
	if err != nil {
		return false, err
	}

	if !c.accounts.Authenticate(username, password) {
		fmt.Fprintln(c.out, "Invalid username or password.")
		return false, nil
	}
	fmt.Fprintln(c.out, "Login successful.")
	return true, nil
}

func (c *Controller) viewInventory(session *zap.Logger) {
	fmt.Fprintln(c.out, "\nInventory:")
	empty := true
	for entry := range c.ledger.All() {
		empty = false
		fmt.Fprintf(c.out, "SKU: %s, Category: %s, Quantity: %d\n", entry.SKU, entry.Category, entry.Quantity)
	}
	if empty {
		fmt.Fprintln(c.out, "No inventory recorded.")
	}
	session.Info("viewed inventory", zap.Int("items", c.ledger.Len()))
}

func (c *Controller) addInventory() error {
	sku, err := c.promptLine("Enter Product SKU: ")
	if err != nil {
		return err
	}
	category, err := c.promptLine("Enter Product Category: ")
	if err != nil {
		return err
	}
	quantity, err := c.promptInt("Enter Quantity: ")
	if err != nil {
		return err
	}

	entry, level, applyErr := c.ledger.ApplyDelta(sku, category, quantity)
	if applyErr != nil {
		fmt.Fprintf(c.out, "Quantity change rejected: %v.\n", applyErr)
		return nil
	}
	fmt.Fprintf(c.out, "Product %s now at quantity %d.\n", entry.SKU, entry.Quantity)

	return c.handleAlert(entry, level)
}

// handleAlert turns a low classification into an interactive reorder offer.
// The loop re-offers while the quantity stays below the low threshold; a
// reorder that overshoots the high threshold gets a high-stock notice
// instead.
func (c *Controller) handleAlert(entry models.StockEntry, level store.AlertLevel) error {
	policy := c.ledger.Policy()

	for level == store.AlertLow {
		fmt.Fprintf(c.out, "LOW_STOCK: %s has %d units (below %d).\n", entry.SKU, entry.Quantity, policy.LowThreshold)
		c.events.Warn("LOW_STOCK",
			zap.String("sku", entry.SKU),
			zap.Int("quantity", entry.Quantity),
			zap.Int("threshold", policy.LowThreshold))

		answer, err := c.promptLine(fmt.Sprintf("Reorder +%d units of %s? (y/n): ", policy.ReplenishQuantity, entry.SKU))
		if err != nil {
			return err
		}
		if !isYes(answer) {
			return nil
		}

		entry, level, err = c.ledger.ApplyDelta(entry.SKU, entry.Category, policy.ReplenishQuantity)
		if err != nil {
			fmt.Fprintf(c.out, "Reorder rejected: %v.\n", err)
			return nil
		}
		fmt.Fprintf(c.out, "Reordered: %s now at %d units.\n", entry.SKU, entry.Quantity)
		c.events.Info("replenishment applied",
			zap.String("sku", entry.SKU),
			zap.Int("quantity", entry.Quantity))
	}

	if level == store.AlertHigh {
		fmt.Fprintf(c.out, "HIGH_STOCK: %s has %d units (above %d).\n", entry.SKU, entry.Quantity, policy.HighThreshold)
		c.events.Warn("HIGH_STOCK",
			zap.String("sku", entry.SKU),
			zap.Int("quantity", entry.Quantity),
			zap.Int("threshold", policy.HighThreshold))
	}
	return nil
}

func (c *Controller) deleteInventory() error {
	sku, err := c.promptLine("Enter Product SKU: ")
	if err != nil {
		return err
	}

	if err := c.ledger.Remove(sku); err != nil {
		fmt.Fprintln(c.out, "Product SKU not found.")
		return nil
	}
	fmt.Fprintf(c.out, "Product %s removed from inventory.\n", sku)
	return nil
}

func (c *Controller) viewSuppliers(session *zap.Logger) {
	fmt.Fprintln(c.out, "\nSuppliers:")
	empty := true
	for rec := range c.suppliers.All() {
		empty = false
		fmt.Fprintf(c.out, "Name: %s, Address: %s, Phone: %s, Email: %s\n", rec.Name, rec.Address, rec.PhoneNumber, rec.Email)
	}
	if empty {
		fmt.Fprintln(c.out, "No suppliers recorded.")
	}
	session.Info("viewed suppliers", zap.Int("suppliers", c.suppliers.Len()))
}

func (c *Controller) addSupplier() error {
	rec, err := c.promptSupplierFields(true)
	if err != nil {
		return err
	}

	if err := c.suppliers.Add(rec); err != nil {
		fmt.Fprintln(c.out, "Supplier already exists. Consider updating their information.")
		return nil
	}
	fmt.Fprintf(c.out, "Supplier %s added.\n", rec.Name)
	return nil
}

func (c *Controller) updateSupplier() error {
	rec, err := c.promptSupplierFields(false)
	if err != nil {
		return err
	}

	if err := c.suppliers.Update(rec.Name, rec.Address, rec.PhoneNumber, rec.Email); err != nil {
		fmt.Fprintln(c.out, "Supplier not found.")
		return nil
	}
	fmt.Fprintf(c.out, "Supplier %s updated.\n", rec.Name)
	return nil
}

func (c *Controller) deleteSupplier() error {
	name, err := c.promptLine("Enter Supplier Name: ")
	if err != nil {
		return err
	}

	if err := c.suppliers.Delete(name); err != nil {
		fmt.Fprintln(c.out, "Supplier not found.")
		return nil
	}
	fmt.Fprintf(c.out, "Supplier %s deleted.\n", name)
	return nil
}

func (c *Controller) promptSupplierFields(adding bool) (models.SupplierRecord, error) {
	labels := [4]string{"Enter Supplier Name: ", "Enter New Address: ", "Enter New Phone Number: ", "Enter New Email: "}
	if adding {
		labels = [4]string{"Enter Supplier Name: ", "Enter Supplier Address: ", "Enter Supplier Phone Number: ", "Enter Supplier Email: "}
	}

	var rec models.SupplierRecord
	fields := []*string{&rec.Name, &rec.Address, &rec.PhoneNumber, &rec.Email}
	for i, label := range labels {
		value, err := c.promptLine(label)
		if err != nil {
			return models.SupplierRecord{}, err
		}
		*fields[i] = value
	}
	return rec, nil
}

func (c *Controller) postMemo() error {
	title, err := c.promptLine("Enter Memo Title: ")
	if err != nil {
		return err
	}
	content, err := c.promptLine("Enter Memo Content: ")
	if err != nil {
		return err
	}

	c.memos.Post(title, content)
	fmt.Fprintf(c.out, "Memo titled '%s' posted.\n", title)
	return nil
}

func (c *Controller) viewMemos(session *zap.Logger) {
	fmt.Fprintln(c.out, "\nMemos:")
	empty := true
	for memo := range c.memos.All() {
		empty = false
		fmt.Fprintf(c.out, "Title: %s\nContent: %s\n\n", memo.Title, memo.Content)
	}
	if empty {
		fmt.Fprintln(c.out, "No memos posted.")
	}
	session.Info("viewed memos", zap.Int("memos", c.memos.Len()))
}

func (c *Controller) inventoryReport(ctx context.Context, session *zap.Logger) {
	entries, err := c.reports.InventoryReport(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error fetching inventory report: %v\n", err)
		c.logger.Error("inventory report failed", zap.Error(err))
		return
	}

	fmt.Fprintln(c.out, "Inventory Report:")
	fmt.Fprintln(c.out, "------------------------------------------------")
	for _, entry := range entries {
		fmt.Fprintf(c.out, "SKU: %s, Category: %s, Quantity: %d\n", entry.SKU, entry.Category, entry.Quantity)
	}
	session.Info("viewed inventory report", zap.Int("rows", len(entries)))
}

func (c *Controller) supplierReport(ctx context.Context, session *zap.Logger) {
	records, err := c.reports.SupplierReport(ctx)
	if err != nil {
		fmt.Fprintf(c.out, "Error fetching supplier report: %v\n", err)
		c.logger.Error("supplier report failed", zap.Error(err))
		return
	}

	fmt.Fprintln(c.out, "Supplier Report:")
	fmt.Fprintln(c.out, "------------------------------------------------")
	for _, rec := range records {
		fmt.Fprintf(c.out, "Name: %s, Address: %s, Phone: %s, Email: %s\n", rec.Name, rec.Address, rec.PhoneNumber, rec.Email)
	}
	session.Info("viewed supplier report", zap.Int("rows", len(records)))
}

func (c *Controller) invalidChoice(choice int) {
	fmt.Fprintln(c.out, "Invalid choice. Please try again.")
	c.events.Warn("invalid menu choice", zap.Int("choice", choice))
}

// promptLine prints the label and returns the next input line, trimmed of
// surrounding whitespace. An exhausted input stream yields io.EOF.
func (c *Controller) promptLine(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// promptInt keeps prompting until the operator supplies a parseable
// integer. Malformed input is reported and the prompt re-issued, never
// fatal.
func (c *Controller) promptInt(label string) (int, error) {
	for {
		text, err := c.promptLine(label)
		if err != nil {
			return 0, err
		}

		value, err := strconv.Atoi(text)
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input: please enter a number.")
			c.events.Warn("malformed numeric input", zap.String("input", text))
			continue
		}
		return value, nil
	}
}

func isYes(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	}
	return false
}

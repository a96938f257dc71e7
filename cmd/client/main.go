package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"dimec-inventory/internal/client/api"
	"dimec-inventory/internal/client/authz"
	"dimec-inventory/internal/client/controllers"
	"dimec-inventory/internal/client/session"
	"dimec-inventory/internal/config"
	"dimec-inventory/internal/core/domain"
	"dimec-inventory/internal/obs"
)

// console is the terminal-backed Notifier and Confirmer used by every
// controller.
type console struct {
	in *bufio.Scanner
}

func (c *console) Success(msg string) { fmt.Println("OK:", msg) }
func (c *console) Error(msg string)   { fmt.Println("ERROR:", msg) }

func (c *console) Confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	if !c.in.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(c.in.Text()))
	return answer == "y" || answer == "yes"
}

func (c *console) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !c.in.Scan() {
		return ""
	}
	return strings.TrimSpace(c.in.Text())
}

func (c *console) promptInt(label string) int {
	n, _ := strconv.Atoi(c.prompt(label))
	return n
}

func (c *console) promptInt64(label string) int64 {
	n, _ := strconv.ParseInt(c.prompt(label), 10, 64)
	return n
}

// app wires the session store, API client, and controllers together.
type app struct {
	cfg      *config.Config
	store    *session.Store
	api      *api.Client
	ui       *console
	products *controllers.ProductsController
	catalog  *controllers.CategoriesController
	vendors  *controllers.SuppliersController
	issuance *controllers.IssuanceController
	reports  *controllers.ReportsController
	board    *controllers.DashboardController
}

func main() {
	obs.InitTextLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ui := &console{in: bufio.NewScanner(os.Stdin)}
	store := session.NewStore(cfg.Client.SessionFile, obs.Logger)
	store.Restore()

	client := api.New(cfg.Client.APIBaseURL, store, store, func() {
		fmt.Println("Your session has expired. Please log in again.")
	}, obs.Logger)

	a := &app{
		cfg:      cfg,
		store:    store,
		api:      client,
		ui:       ui,
		products: controllers.NewProductsController(client, ui, ui),
		catalog:  controllers.NewCategoriesController(client, ui, ui),
		vendors:  controllers.NewSuppliersController(client, ui, ui),
		issuance: controllers.NewIssuanceController(client, ui, ui),
		reports:  controllers.NewReportsController(client, ui),
		board:    controllers.NewDashboardController(client, ui),
	}

	fmt.Println("DIMEC Inventory - type 'help' for commands")
	if s := store.Current(); s != nil {
		fmt.Printf("Resumed session for %s (%s)\n", s.Name, s.Role)
	}
	a.loop()
}

func (a *app) loop() {
	ctx := context.Background()
	for {
		fmt.Print("> ")
		if !a.ui.in.Scan() {
			return
		}
		line := strings.TrimSpace(a.ui.in.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "quit", "exit":
			return
		case "help", "menu":
			a.showMenu()
		case "login":
			a.login(ctx)
		case "logout":
			a.store.Logout()
			fmt.Println("Logged out")
		case "register":
			a.register(ctx)
		case "whoami":
			a.whoami()
		case "dashboard":
			a.gated(ctx, "dashboard", a.showDashboard)
		case "products":
			query := strings.Join(args, " ")
			a.gated(ctx, "products", func(ctx context.Context) { a.showProducts(ctx, query) })
		case "product-add":
			a.gated(ctx, "products", a.addProduct)
		case "product-del":
			a.gated(ctx, "products", func(ctx context.Context) { a.deleteProduct(ctx, args) })
		case "categories":
			a.gated(ctx, "categories", a.showCategories)
		case "category-add":
			a.gated(ctx, "categories", a.addCategory)
		case "category-del":
			a.gated(ctx, "categories", func(ctx context.Context) { a.deleteCategory(ctx, args) })
		case "suppliers":
			a.gated(ctx, "suppliers", a.showSuppliers)
		case "supplier-add":
			a.gated(ctx, "suppliers", a.addSupplier)
		case "supplier-del":
			a.gated(ctx, "suppliers", func(ctx context.Context) { a.deleteSupplier(ctx, args) })
		case "issue":
			a.gated(ctx, "issuance", a.issueStock)
		case "issuances":
			a.gated(ctx, "issuance", a.showIssuances)
		case "issuance-del":
			a.gated(ctx, "issuance", func(ctx context.Context) { a.deleteIssuance(ctx, args) })
		case "report":
			a.gated(ctx, "reports", func(ctx context.Context) { a.runReport(ctx, args) })
		case "export-issuances":
			a.gated(ctx, "reports", func(ctx context.Context) { a.export(args, a.reports.ExportIssuancesCSV) })
		case "export-inventory":
			a.gated(ctx, "reports", func(ctx context.Context) { a.export(args, a.reports.ExportInventoryCSV) })
		case "export-lowstock":
			a.gated(ctx, "reports", func(ctx context.Context) { a.export(args, a.reports.ExportLowStockCSV) })
		default:
			fmt.Println("Unknown command; type 'help'")
		}
	}
}

// gated runs fn only if the current session may open the named screen.
func (a *app) gated(ctx context.Context, key string, fn func(context.Context)) {
	var required []domain.Role
	for _, e := range authz.Menu() {
		if e.Key == key {
			required = e.Roles
			break
		}
	}

	if d := authz.Authorize(required, a.store.Current()); !d.Allow {
		fmt.Println("Please log in with an account that has access to this screen")
		return
	}
	fn(ctx)
}

func (a *app) showMenu() {
	s := a.store.Current()
	if s == nil {
		fmt.Println("Commands: login, register, help, quit")
		return
	}
	fmt.Println("Screens available to", s.Role, "-")
	for _, e := range authz.VisibleMenu(s) {
		fmt.Printf("  %-12s %s\n", e.Key, e.Label)
	}
	fmt.Println("Also: whoami, logout, quit")
}

func (a *app) login(ctx context.Context) {
	creds := domain.Credentials{
		Email:    a.ui.prompt("Email"),
		Password: a.ui.prompt("Password"),
	}
	result, err := a.api.Login(ctx, creds)
	if err != nil {
		a.ui.Error(domain.FailureMessage(err))
		return
	}
	s := a.store.Login(result)
	fmt.Printf("Welcome %s (%s)\n", s.Name, s.Role)
	if !s.Role.Known() {
		fmt.Println("Warning: unrecognized role; no screens will be available")
	}
}

func (a *app) register(ctx context.Context) {
	input := domain.RegisterInput{
		Name:     a.ui.prompt("Name"),
		Email:    a.ui.prompt("Email"),
		Password: a.ui.prompt("Password"),
		Role:     a.ui.prompt("Role (ADMIN/INVENTORY_CLERK/VIEWER, empty for VIEWER)"),
	}
	if err := a.api.Register(ctx, input); err != nil {
		a.ui.Error(domain.FailureMessage(err))
		return
	}
	a.ui.Success("Account created; log in to continue")
}

func (a *app) whoami() {
	s := a.store.Current()
	if s == nil {
		fmt.Println("Not logged in")
		return
	}
	fmt.Printf("%s <%s> role=%s\n", s.Name, s.Email, s.Role)
}

func (a *app) showDashboard(ctx context.Context) {
	a.board.Load(ctx)
	if state, _ := a.board.State(); state != controllers.Loaded {
		return
	}
	stats := a.board.Stats()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Products\t%d\n", stats.TotalProducts)
	fmt.Fprintf(w, "Categories\t%d\n", stats.TotalCategories)
	fmt.Fprintf(w, "Suppliers\t%d\n", stats.TotalSuppliers)
	fmt.Fprintf(w, "Low stock\t%d\n", stats.LowStockProducts)
	fmt.Fprintf(w, "Issuances\t%d\n", stats.TotalIssuances)
	fmt.Fprintf(w, "Inventory value\t%s\n", stats.TotalInventoryValue.StringFixed(2))
	w.Flush()
}

func (a *app) showProducts(ctx context.Context, query string) {
	a.products.Load(ctx)
	if state, _ := a.products.State(); state != controllers.Loaded {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tSUPPLIER\tQTY\tPRICE\tLOW")
	for _, p := range a.products.Filter(query) {
		low := ""
		if p.LowStock {
			low = "LOW"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			p.ProductID, p.Name, p.CategoryName, p.SupplierName,
			p.Quantity, p.UnitPrice.StringFixed(2), low)
	}
	w.Flush()
}

func (a *app) addProduct(ctx context.Context) {
	price, err := decimal.NewFromString(a.ui.prompt("Unit price"))
	if err != nil {
		a.ui.Error("Unit price must be a number")
		return
	}
	input := domain.ProductInput{
		Name:         a.ui.prompt("Name"),
		CategoryID:   a.ui.promptInt64("Category id"),
		SupplierID:   a.ui.promptInt64("Supplier id"),
		Quantity:     a.ui.promptInt("Quantity"),
		UnitPrice:    price,
		ReorderLevel: a.ui.promptInt("Reorder level"),
		Description:  a.ui.prompt("Description"),
	}
	a.products.Create(ctx, input)
}

func (a *app) deleteProduct(ctx context.Context, args []string) {
	id, err := argID(args)
	if err != nil {
		fmt.Println("Usage: product-del <id>")
		return
	}
	name := strconv.FormatInt(id, 10)
	if p, ok := findProduct(a.products.Products(), id); ok {
		name = p.Name
	}
	a.products.Delete(ctx, id, name)
}

func (a *app) showCategories(ctx context.Context) {
	a.catalog.Load(ctx)
	if state, _ := a.catalog.State(); state != controllers.Loaded {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tDESCRIPTION")
	for _, c := range a.catalog.Categories() {
		fmt.Fprintf(w, "%d\t%s\t%s\n", c.CategoryID, c.Name, c.Description)
	}
	w.Flush()
}

func (a *app) addCategory(ctx context.Context) {
	a.catalog.Create(ctx, domain.CategoryInput{
		Name:        a.ui.prompt("Name"),
		Description: a.ui.prompt("Description"),
	})
}

func (a *app) deleteCategory(ctx context.Context, args []string) {
	id, err := argID(args)
	if err != nil {
		fmt.Println("Usage: category-del <id>")
		return
	}
	a.catalog.Delete(ctx, id, strconv.FormatInt(id, 10))
}

func (a *app) showSuppliers(ctx context.Context) {
	a.vendors.Load(ctx)
	if state, _ := a.vendors.State(); state != controllers.Loaded {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCONTACT\tEMAIL\tADDRESS")
	for _, s := range a.vendors.Suppliers() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", s.SupplierID, s.Name, s.Contact, s.Email, s.Address)
	}
	w.Flush()
}

func (a *app) addSupplier(ctx context.Context) {
	a.vendors.Create(ctx, domain.SupplierInput{
		Name:    a.ui.prompt("Name"),
		Contact: a.ui.prompt("Contact person"),
		Email:   a.ui.prompt("Email"),
		Address: a.ui.prompt("Address"),
	})
}

func (a *app) deleteSupplier(ctx context.Context, args []string) {
	id, err := argID(args)
	if err != nil {
		fmt.Println("Usage: supplier-del <id>")
		return
	}
	a.vendors.Delete(ctx, id, strconv.FormatInt(id, 10))
}

func (a *app) issueStock(ctx context.Context) {
	a.issuance.Load(ctx)
	if state, _ := a.issuance.State(); state != controllers.Loaded {
		return
	}
	input := domain.IssuanceInput{
		ProductID:      a.ui.promptInt64("Product id"),
		QuantityIssued: a.ui.promptInt("Quantity"),
		IssuedTo:       a.ui.prompt("Issued to"),
		Purpose:        a.ui.prompt("Purpose (optional)"),
	}
	if product, ok := a.issuance.FindProduct(input.ProductID); ok {
		fmt.Printf("%s has %d in stock\n", product.Name, product.Quantity)
	}
	a.issuance.Submit(ctx, input)
}

func (a *app) showIssuances(ctx context.Context) {
	a.issuance.Load(ctx)
	if state, _ := a.issuance.State(); state != controllers.Loaded {
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tPRODUCT\tQTY\tISSUED TO\tBY")
	for _, r := range a.issuance.Records() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\t%s\n",
			r.IssuanceID, r.IssueDate, r.ProductName, r.QuantityIssued, r.IssuedTo, r.UserName)
	}
	w.Flush()
}

func (a *app) deleteIssuance(ctx context.Context, args []string) {
	id, err := argID(args)
	if err != nil {
		fmt.Println("Usage: issuance-del <id>")
		return
	}
	a.issuance.Delete(ctx, id)
}

func (a *app) runReport(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: report <start YYYY-MM-DD> <end YYYY-MM-DD>")
		return
	}
	a.reports.LoadRange(ctx, args[0], args[1])
	if state, _ := a.reports.State(); state != controllers.Loaded {
		return
	}
	fmt.Printf("Issuances: %d records; products: %d (%d low stock); inventory value: %s\n",
		len(a.reports.Issuances()), len(a.reports.Products()), len(a.reports.LowStock()),
		a.reports.Stats().TotalInventoryValue.StringFixed(2))
	fmt.Println("Use export-issuances, export-inventory, or export-lowstock <file> to save CSV")
}

func (a *app) export(args []string, write func(w io.Writer) error) {
	if len(args) != 1 {
		fmt.Println("Usage: export-... <file>")
		return
	}
	// Render first; an empty collection must not leave a file behind.
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		a.ui.Error(err.Error())
		return
	}
	if err := os.WriteFile(args[0], buf.Bytes(), 0o644); err != nil {
		a.ui.Error("Cannot write file: " + err.Error())
		return
	}
	a.ui.Success("Exported to " + args[0])
}

func argID(args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("missing id")
	}
	return strconv.ParseInt(args[0], 10, 64)
}

func findProduct(products []domain.Product, id int64) (domain.Product, bool) {
	for _, p := range products {
		if p.ProductID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

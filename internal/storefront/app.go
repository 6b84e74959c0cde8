package storefront

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"musicmerchant/internal/cart"
	"musicmerchant/internal/domain"
)

// Catalog is the read side of the catalog API.
type Catalog interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
}

// ErrUsage reports a malformed command line.
var ErrUsage = errors.New("usage")

const usage = `commands:
  products [--category C] [--search Q]   list the catalog
  product <id>                           show one product
  cart                                   show the cart
  add <id>                               add one unit of a product
  remove <id>                            remove a product from the cart
  qty <id> <n>                           set a quantity (n <= 0 removes)
  clear                                  empty the cart
`

// App runs storefront commands against a catalog and a cart.
type App struct {
	catalog Catalog
	cart    *cart.Store
	out     io.Writer
	logger  *zap.Logger
	printer *message.Printer
}

func New(catalog Catalog, store *cart.Store, out io.Writer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		catalog: catalog,
		cart:    store,
		out:     out,
		logger:  logger.Named("storefront"),
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// Usage writes the command summary.
func (a *App) Usage() {
	fmt.Fprint(a.out, usage)
}

// Run executes one command. args[0] is the command name.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", ErrUsage)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "products":
		return a.products(ctx, rest)
	case "product":
		if len(rest) != 1 {
			return fmt.Errorf("%w: product <id>", ErrUsage)
		}
		return a.product(ctx, rest[0])
	case "cart":
		a.printCart()
		return nil
	case "add":
		if len(rest) != 1 {
			return fmt.Errorf("%w: add <id>", ErrUsage)
		}
		return a.add(ctx, rest[0])
	case "remove":
		if len(rest) != 1 {
			return fmt.Errorf("%w: remove <id>", ErrUsage)
		}
		if err := a.cart.Remove(ctx, rest[0]); err != nil {
			return err
		}
		a.printCart()
		return nil
	case "qty":
		if len(rest) != 2 {
			return fmt.Errorf("%w: qty <id> <n>", ErrUsage)
		}
		n, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("%w: quantity %q is not a number", ErrUsage, rest[1])
		}
		if err := a.cart.UpdateQuantity(ctx, rest[0], n); err != nil {
			return err
		}
		a.printCart()
		return nil
	case "clear":
		if err := a.cart.Clear(ctx); err != nil {
			return err
		}
		fmt.Fprintln(a.out, "cart cleared")
		return nil
	}
	return fmt.Errorf("%w: unknown command %q", ErrUsage, cmd)
}

func (a *App) products(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("products", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	category := fs.String("category", "", "sheet-music, instruments or accessories")
	search := fs.String("search", "", "match name, composer or brand")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	cat := domain.Category(*category)
	if cat != "" && !cat.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrUsage, *category)
	}

	all, err := a.catalog.List(ctx)
	if err != nil {
		a.logger.Warn("fetch products", zap.Error(err))
		return fmt.Errorf("fetch products: %w", err)
	}
	products := domain.FilterProducts(all, *search, cat)
	if len(products) == 0 {
		fmt.Fprintln(a.out, "no products found")
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tDETAILS\tPRICE")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Category, details(p), a.price(p.Price))
	}
	return tw.Flush()
}

func (a *App) product(ctx context.Context, id string) error {
	p, err := a.catalog.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("fetch product: %w", err)
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(tw, "%s:\t%s\n", k, v)
		}
	}
	row("Name", p.Name)
	row("Category", string(p.Category))
	row("Type", p.Type)
	row("Composer", p.Composer)
	row("Difficulty", string(p.Difficulty))
	row("Genre", p.Genre)
	row("Brand", p.Brand)
	row("Model", p.Model)
	row("Price", a.price(p.Price))
	row("Description", p.Description)
	row("Image", p.Image)
	return tw.Flush()
}

// add snapshots the product as the catalog serves it right now. A failed
// fetch leaves the cart untouched.
func (a *App) add(ctx context.Context, id string) error {
	p, err := a.catalog.Get(ctx, id)
	if err != nil {
		a.logger.Warn("fetch product for cart", zap.String("id", id), zap.Error(err))
		return fmt.Errorf("fetch product: %w", err)
	}
	if err := a.cart.Add(ctx, *p); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "added %s\n", p.Name)
	a.printCart()
	return nil
}

func (a *App) printCart() {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(a.out, "your cart is empty")
		return
	}
	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tQTY\tPRICE\tSUBTOTAL")
	for _, l := range lines {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n", l.ID, l.Name, l.Quantity, a.price(l.Price), a.price(l.Subtotal()))
	}
	_ = tw.Flush()
	fmt.Fprintf(a.out, "items: %d  total: %s\n", a.cart.ItemCount(), a.price(a.cart.Total()))
}

func (a *App) price(d decimal.Decimal) string {
	return a.printer.Sprintf("$%.2f", d.InexactFloat64())
}

func details(p domain.Product) string {
	var parts []string
	for _, v := range []string{p.Type, p.Composer, string(p.Difficulty), p.Brand, p.Model} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, ", ")
}

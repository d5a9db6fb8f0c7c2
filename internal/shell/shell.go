// Package shell implements the interactive numbered menu over an Inventory.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dusk-indust/stockroom/internal/inventory"
	"github.com/dusk-indust/stockroom/internal/record"
)

// errInputClosed signals that the input reached EOF.
var errInputClosed = errors.New("shell: input closed")

const menu = `
1. Create product
2. Read product
3. Update product
4. Delete product
5. Create user
6. List products
7. List users
8. Create category
9. List categories
0. Exit
`

// Shell reads one line per prompt from in and writes prompts and results to
// out. It is not safe for concurrent use.
type Shell struct {
	inv *inventory.Inventory
	in  *bufio.Scanner
	out io.Writer
}

// New returns a Shell driving inv.
func New(inv *inventory.Inventory, in io.Reader, out io.Writer) *Shell {
	return &Shell{inv: inv, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the user picks 0 or the input ends. Invalid input
// and storage failures are reported and the loop continues. Run returns an
// error only when ctx is done or reading input fails.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(s.out, menu)
		choice, err := s.prompt("Choose an option: ")
		if err != nil {
			return closed(err)
		}

		switch choice {
		case "0":
			fmt.Fprintln(s.out, "Bye.")
			return nil
		case "1":
			err = s.createProduct(ctx)
		case "2":
			err = s.readProduct()
		case "3":
			err = s.updateProduct(ctx)
		case "4":
			err = s.deleteProduct(ctx)
		case "5":
			err = s.createUser(ctx)
		case "6":
			s.listProducts()
		case "7":
			s.listUsers()
		case "8":
			err = s.createCategory()
		case "9":
			s.listCategories()
		default:
			fmt.Fprintf(s.out, "Unknown option %q.\n", choice)
		}
		if err != nil {
			if errors.Is(err, errInputClosed) {
				return nil
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			fmt.Fprintf(s.out, "Error: %v\n", err)
		}
	}
}

// closed maps end of input to a clean exit.
func closed(err error) error {
	if errors.Is(err, errInputClosed) {
		return nil
	}
	return err
}

// prompt writes label and returns the next input line with surrounding
// whitespace removed.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errInputClosed
	}
	return strings.TrimSpace(s.in.Text()), nil
}

// invalidInput is reported to the user; the operation is abandoned.
type invalidInput struct{ msg string }

func (e *invalidInput) Error() string { return e.msg }

func (s *Shell) promptID(label string) (int, error) {
	raw, err := s.prompt(label)
	if err != nil {
		return 0, err
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, &invalidInput{fmt.Sprintf("invalid id %q: must be a positive integer", raw)}
	}
	return id, nil
}

func (s *Shell) promptName(label string) (string, error) {
	name, err := s.prompt(label)
	if err != nil {
		return "", err
	}
	if name == "" {
		return "", &invalidInput{"name must not be empty"}
	}
	return name, nil
}

func (s *Shell) promptProduct() (record.Product, error) {
	name, err := s.promptName("Product name: ")
	if err != nil {
		return record.Product{}, err
	}
	raw, err := s.prompt("Expiry date (yyyy-MM-dd): ")
	if err != nil {
		return record.Product{}, err
	}
	expiry, err := record.ParseDate(raw)
	if err != nil {
		return record.Product{}, &invalidInput{fmt.Sprintf("invalid date %q: use yyyy-MM-dd", raw)}
	}
	return record.Product{Name: name, Expiry: expiry}, nil
}

// report prints user-facing validation failures and passes everything else
// back to Run.
func (s *Shell) report(err error) error {
	var bad *invalidInput
	if errors.As(err, &bad) {
		fmt.Fprintf(s.out, "Invalid input: %s.\n", bad.msg)
		return nil
	}
	return err
}

func (s *Shell) createProduct(ctx context.Context) error {
	candidate, err := s.promptProduct()
	if err != nil {
		return s.report(err)
	}
	p, err := s.inv.Products.Create(ctx, candidate)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Created product %s.\n", formatProduct(p))
	return nil
}

func (s *Shell) readProduct() error {
	id, err := s.promptID("Product id: ")
	if err != nil {
		return s.report(err)
	}
	p, err := s.inv.Products.Get(id)
	if errors.Is(err, inventory.ErrNotFound) {
		fmt.Fprintf(s.out, "Product %d not found.\n", id)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Product %s.\n", formatProduct(p))
	return nil
}

func (s *Shell) updateProduct(ctx context.Context) error {
	id, err := s.promptID("Product id: ")
	if err != nil {
		return s.report(err)
	}
	if _, err := s.inv.Products.Get(id); errors.Is(err, inventory.ErrNotFound) {
		fmt.Fprintf(s.out, "Product %d not found.\n", id)
		return nil
	}
	candidate, err := s.promptProduct()
	if err != nil {
		return s.report(err)
	}
	candidate.ID = id

	p, err := s.inv.Products.Update(ctx, candidate)
	if errors.Is(err, inventory.ErrNotFound) {
		fmt.Fprintf(s.out, "Product %d not found.\n", id)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Updated product %s.\n", formatProduct(p))
	return nil
}

func (s *Shell) deleteProduct(ctx context.Context) error {
	id, err := s.promptID("Product id: ")
	if err != nil {
		return s.report(err)
	}
	n, err := s.inv.Products.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		fmt.Fprintf(s.out, "Product %d not found.\n", id)
		return nil
	}
	fmt.Fprintf(s.out, "Deleted product %d.\n", id)
	return nil
}

func (s *Shell) createUser(ctx context.Context) error {
	name, err := s.promptName("User name: ")
	if err != nil {
		return s.report(err)
	}
	u, err := s.inv.Users.Create(ctx, record.User{Name: name})
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Created user %d: %s.\n", u.ID, u.Name)
	return nil
}

func (s *Shell) createCategory() error {
	name, err := s.promptName("Category name: ")
	if err != nil {
		return s.report(err)
	}
	c := s.inv.Categories.Create(record.Category{Name: name})
	fmt.Fprintf(s.out, "Created category %d: %s.\n", c.ID, c.Name)
	return nil
}

func (s *Shell) listProducts() {
	products := s.inv.Products.List()
	if len(products) == 0 {
		fmt.Fprintln(s.out, "No products.")
		return
	}
	for _, p := range products {
		fmt.Fprintf(s.out, "  %s\n", formatProduct(p))
	}
}

func (s *Shell) listUsers() {
	users := s.inv.Users.List()
	if len(users) == 0 {
		fmt.Fprintln(s.out, "No users.")
		return
	}
	for _, u := range users {
		fmt.Fprintf(s.out, "  %d: %s\n", u.ID, u.Name)
	}
}

func (s *Shell) listCategories() {
	categories := s.inv.Categories.List()
	if len(categories) == 0 {
		fmt.Fprintln(s.out, "No categories.")
		return
	}
	for _, c := range categories {
		fmt.Fprintf(s.out, "  %d: %s\n", c.ID, c.Name)
	}
}

func formatProduct(p record.Product) string {
	return fmt.Sprintf("%d: %s (expires %s)", p.ID, p.Name, p.Expiry.Format(record.DateLayout))
}

package handler

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"retailpos/internal/apperr"
	"retailpos/internal/usecase"

	"github.com/urfave/cli/v2"
)

const shellHelp = `commands:
  add ARTICLE QTY          put units in the cart
  set ARTICLE QTY          change a line, 0 removes it
  remove ARTICLE           drop a line
  clear                    empty the cart
  cart                     show the cart
  find TEXT                search the catalog
  commit NAME ID [PHONE]   sell the cart, quote names with spaces
  help                     this text
  quit                     leave, the cart is discarded
`

// ShellHandler runs an interactive session around one cart.
type ShellHandler struct {
	uc *Usecases
}

func NewShellHandler(uc *Usecases) *ShellHandler {
	return &ShellHandler{uc: uc}
}

func (h *ShellHandler) Command() *cli.Command {
	return &cli.Command{
		Name:   "shell",
		Usage:  "interactive sale session",
		Action: h.run,
	}
}

func (h *ShellHandler) run(c *cli.Context) error {
	in := c.App.Reader
	out := c.App.Writer
	cart := h.uc.Checkout.NewCart()

	fmt.Fprint(out, "type help for commands\n> ")
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		args, err := splitArgs(sc.Text())
		if err != nil {
			fmt.Fprintln(out, describeError(err))
			fmt.Fprint(out, "> ")
			continue
		}
		if len(args) > 0 {
			if args[0] == "quit" || args[0] == "exit" {
				return nil
			}
			if err := h.exec(c, cart, args, out); err != nil {
				fmt.Fprintln(out, describeError(err))
			}
		}
		fmt.Fprint(out, "> ")
	}
	fmt.Fprintln(out)
	return sc.Err()
}

func (h *ShellHandler) exec(c *cli.Context, cart *usecase.Cart, args []string, out io.Writer) error {
	cmd, rest := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "help":
		fmt.Fprint(out, shellHelp)
		return nil

	case "add", "set":
		if len(rest) != 2 {
			return apperr.Validation("usage: " + cmd + " ARTICLE QTY")
		}
		qty, err := parseQuantity(rest[1])
		if err != nil {
			return err
		}
		if cmd == "add" {
			_, err = cart.Add(rest[0], qty)
		} else {
			err = cart.SetQuantity(rest[0], qty)
		}
		if err != nil {
			return err
		}
		return printCart(out, cart.Lines(), cart.Total())

	case "remove":
		if len(rest) != 1 {
			return apperr.Validation("usage: remove ARTICLE")
		}
		cart.Remove(rest[0])
		return printCart(out, cart.Lines(), cart.Total())

	case "clear":
		cart.Clear()
		return printCart(out, cart.Lines(), cart.Total())

	case "cart":
		return printCart(out, cart.Lines(), cart.Total())

	case "find":
		return printProducts(out, h.uc.Products.Search(strings.Join(rest, " ")))

	case "commit":
		if len(rest) < 2 || len(rest) > 3 {
			return apperr.Validation("usage: commit NAME ID [PHONE]")
		}
		in := usecase.CustomerInput{Name: rest[0], IDNumber: rest[1]}
		if len(rest) == 3 {
			in.Phone = rest[2]
		}
		sale, err := h.uc.Checkout.Commit(c.Context, cart, in)
		if err != nil && !apperr.Is(err, apperr.KindPersistence) {
			return err
		}
		if perr := printSale(out, sale, h.uc.location()); perr != nil {
			return perr
		}
		return err

	default:
		return apperr.Validation(fmt.Sprintf("unknown command %q, type help", cmd))
	}
}

// splitArgs splits a line on blanks, keeping double quoted text together.
func splitArgs(line string) ([]string, error) {
	var (
		args    []string
		cur     strings.Builder
		inQuote bool
		started bool
	)
	for _, r := range line {
		switch {
		case r == '"':
			inQuote = !inQuote
			started = true
		case !inQuote && (r == ' ' || r == '\t'):
			if started {
				args = append(args, cur.String())
				cur.Reset()
				started = false
			}
		default:
			cur.WriteRune(r)
			started = true
		}
	}
	if inQuote {
		return nil, apperr.Validation("unterminated quote")
	}
	if started {
		args = append(args, cur.String())
	}
	return args, nil
}

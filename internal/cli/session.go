package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/riteshp/warehouse/internal/engine"
	"github.com/riteshp/warehouse/internal/model"
	"github.com/riteshp/warehouse/internal/store"
)

// menuOptions are the top-level actions, in display order. The last entry
// must stay the quit action.
var menuOptions = []string{
	"1. List items by warehouse",
	"2. Search an item and place an order",
	"3. Browse by category",
	"4. Quit",
}

// Session drives one interactive console session over the injected reader
// and writer. It owns every prompt and retry loop; the store and engine only
// ever see clean values. Now is the clock for days-in-stock math, replaced
// in tests.
type Session struct {
	store  *store.Store
	engine *engine.Engine
	in     *bufio.Scanner
	out    io.Writer
	now    func() time.Time

	userName string
}

// NewSession builds a session reading from in and writing to out.
func NewSession(s *store.Store, in io.Reader, out io.Writer) *Session {
	return &Session{
		store:  s,
		engine: engine.New(s),
		in:     bufio.NewScanner(in),
		out:    out,
		now:    time.Now,
	}
}

// Run executes the session until the user quits or input ends. It never
// terminates the process; the caller decides what an ended session means.
func (s *Session) Run() {
	if !s.welcome() {
		return
	}

	for {
		choice, ok := s.menuChoice()
		if !ok {
			return
		}

		switch choice {
		case 1:
			s.listItemsByWarehouse()
		case 2:
			s.searchAndOrder()
		case 3:
			s.browseByCategory()
		case len(menuOptions):
			s.goodbye()
			return
		}

		more, ok := s.confirm("Do you want to perform another action?")
		if !ok || !more {
			s.goodbye()
			return
		}
	}
}

// readLine returns the next input line, trimmed. ok is false once input is
// exhausted.
func (s *Session) readLine() (line string, ok bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// welcome asks for the user's name and greets them.
func (s *Session) welcome() bool {
	fmt.Fprint(s.out, "What's your name? ")
	name, ok := s.readLine()
	if !ok {
		return false
	}
	s.userName = name
	fmt.Fprintf(s.out, "\nHello, %s!\n", s.userName)
	return true
}

func (s *Session) goodbye() {
	fmt.Fprintf(s.out, "\nThank you for your visit, %s!\n", s.userName)
}

// menuChoice lists the options and keeps asking until a valid number comes
// back.
func (s *Session) menuChoice() (int, bool) {
	fmt.Fprintln(s.out, "What would you like to do?")
	for _, option := range menuOptions {
		fmt.Fprintln(s.out, option)
	}
	fmt.Fprint(s.out, "Type the number of the operation: ")

	for {
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		choice, err := strconv.Atoi(line)
		if err == nil && choice >= 1 && choice <= len(menuOptions) {
			return choice, true
		}
		fmt.Fprintf(s.out, "Sorry! Enter an integer between 1 and %d. ", len(menuOptions))
	}
}

// confirm asks a yes/no question and keeps asking until it gets one.
func (s *Session) confirm(message string) (answer, ok bool) {
	fmt.Fprintf(s.out, "%s (y/n)\n", message)
	for {
		line, lineOK := s.readLine()
		if !lineOK {
			return false, false
		}
		if strings.EqualFold(line, "y") {
			return true, true
		}
		if strings.EqualFold(line, "n") {
			return false, true
		}
	}
}

func (s *Session) listItemsByWarehouse() {
	warehouses := s.store.Warehouses()
	for _, w := range warehouses {
		fmt.Fprintf(s.out, "Items in warehouse %d:\n", w)
		s.listItems(s.store.ItemsByWarehouse(w))
	}

	fmt.Fprintln(s.out)
	for _, w := range warehouses {
		fmt.Fprintf(s.out, "Total items in warehouse %d: %d\n", w, len(s.store.ItemsByWarehouse(w)))
	}
}

func (s *Session) listItems(items []model.Item) {
	for _, item := range items {
		fmt.Fprintf(s.out, "- %s\n", item.DisplayName())
	}
}

func (s *Session) browseByCategory() {
	categories := s.store.Categories()
	if len(categories) == 0 {
		fmt.Fprintln(s.out, "No categories available.")
		return
	}

	for i, category := range categories {
		fmt.Fprintf(s.out, "%d. %s (%d)\n", i+1, category, len(s.store.ItemsByCategory(category)))
	}

	var category string
	for {
		fmt.Fprintln(s.out, "Type the number of the category to browse:")
		line, ok := s.readLine()
		if !ok {
			return
		}
		index, err := strconv.Atoi(line)
		if err != nil || index < 1 || index > len(categories) {
			fmt.Fprintf(s.out, "Enter an integer between 1 and %d\n", len(categories))
			continue
		}
		category = categories[index-1]
		break
	}

	fmt.Fprintf(s.out, "List of %ss available:\n", strings.ToLower(category))
	for _, item := range s.store.ItemsByCategory(category) {
		fmt.Fprintf(s.out, "%s, Warehouse %d\n", item.DisplayName(), item.Warehouse)
	}
}

func (s *Session) searchAndOrder() {
	fmt.Fprint(s.out, "What is the name of the item? ")
	name, ok := s.readLine()
	if !ok {
		return
	}

	matches := s.engine.Find(name)
	avail := s.engine.Availability(matches, s.now())

	fmt.Fprintf(s.out, "Amount available: %d\n", len(matches))
	if !avail.InStock() {
		fmt.Fprintln(s.out, "Location: Not in stock")
		return
	}

	fmt.Fprintln(s.out, "Location:")
	for _, stocked := range avail.Stock {
		fmt.Fprintf(s.out, "- Warehouse %d (in stock for %d days)\n", stocked.Item.Warehouse, stocked.DaysInStock)
	}
	fmt.Fprintf(s.out, "Maximum availability: %d in warehouse %d\n", avail.MaxCount, avail.MaxWarehouse)

	s.askAmountAndConfirmOrder(len(matches), name)
}

// askAmountAndConfirmOrder walks the order-amount state machine: re-prompt
// on invalid input, one maximum-availability confirmation on excess, and a
// final amount of zero places no order.
func (s *Session) askAmountAndConfirmOrder(available int, name string) {
	toOrder, ok := s.confirm("Would you like to order this item?")
	if !ok || !toOrder {
		return
	}

	fmt.Fprintln(s.out, "How many would you like?")
	var amount int
	for {
		line, lineOK := s.readLine()
		if !lineOK {
			return
		}

		res := engine.ValidateOrderAmount(line, available)
		if res.Status == engine.AmountNeedsConfirmation {
			fmt.Fprintln(s.out, "**************************************************")
			fmt.Fprintf(s.out, "There are not this many available. The maximum amount that can be ordered is %d\n", available)
			fmt.Fprintln(s.out, "**************************************************")

			orderAll, confirmOK := s.confirm("Would you like to order the maximum available?")
			if !confirmOK {
				return
			}
			res = engine.ResolveMaxConfirmation(orderAll, available)
		}

		if res.Status == engine.AmountAccepted {
			amount = res.Amount
			break
		}
		fmt.Fprintln(s.out, "Please enter a value more than or equal to 0.")
	}

	if amount > 0 {
		order := engine.NewOrder(name, amount, s.now())
		verb := "have"
		if order.Amount == 1 {
			verb = "has"
		}
		fmt.Fprintf(s.out, "%d %s %s been ordered (order ref %s)\n", order.Amount, order.Name, verb, order.Ref)
	}
}

// Package catalog builds the process-wide trade-goods table: the
// ~36-entry static catalog keyed by two-digit base-6 index that the goods
// generator and pricing engine both read from. It is built once at process
// start and is immutable thereafter (§4.A, §9 "global mutable state").
package catalog

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/everforgeworks/traveller-tradehub/internal/world"
)

// BuildError is returned when the embedded data fails validation. Per §7
// this is the one error kind that is fatal: the caller is expected to
// abort process startup rather than recover.
type BuildError struct {
	Line int
	Msg  string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("catalog: line %d: %s", e.Line, e.Msg)
}

// Quantity is the dice expression that drives how much of a good shows up
// when it is rolled ("nDxM": roll n d6, multiply by M).
type Quantity struct {
	Dice       int
	Multiplier int
}

// Entry is one row of the trade catalog.
type Entry struct {
	Index        int // two-digit base-6, e.g. 11, 66
	Name         string
	All          bool // true when availability is "All" rather than a class list
	Availability world.ClassSet
	Quantity     Quantity
	BaseCost     int64
	PurchaseDM   map[world.TradeClass]int16
	SaleDM       map[world.TradeClass]int16
}

// Illegal reports whether this good is contraband (indices 61-66).
func (e Entry) Illegal() bool { return e.Index >= 61 }

// Catalog is the built, queryable table.
type Catalog struct {
	entries map[int]Entry
}

// Get looks up an entry by its two-digit index.
func (c *Catalog) Get(index int) (Entry, bool) {
	e, ok := c.entries[index]
	return e, ok
}

// All returns every entry, in arbitrary order.
func (c *Catalog) All() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	return out
}

// Len reports how many entries the catalog holds.
func (c *Catalog) Len() int { return len(c.entries) }

var (
	once      sync.Once
	singleton *Catalog
	buildErr  error
)

// Standard returns the process-wide catalog built from the embedded
// standard trade goods table, constructing it exactly once regardless of
// how many goroutines call Standard concurrently. A non-nil error here is
// fatal per §7 and the caller should abort startup.
func Standard() (*Catalog, error) {
	once.Do(func() {
		singleton, buildErr = Build(standardTradeGoods)
	})
	return singleton, buildErr
}

var quantityPattern = regexp.MustCompile(`^(\d+)D[xX](-?\d+)$`)

// row is the raw [index, name, availability, quantity, base_cost,
// purchase_dm, sale_dm] shape the embedded table is stored in.
type row [7]string

// Build validates and parses a set of raw rows into a Catalog. It is
// exported so tests (and an optional operator-supplied seed file per
// SPEC_FULL.md §2.2) can build supplementary catalogs the same way.
func Build(rows []row) (*Catalog, error) {
	entries := make(map[int]Entry, len(rows))
	for i, r := range rows {
		line := i + 1
		e, err := parseRow(r, line)
		if err != nil {
			return nil, err
		}
		entries[e.Index] = e
	}
	return &Catalog{entries: entries}, nil
}

func parseRow(r row, line int) (Entry, error) {
	indexStr, name, availStr, qtyStr, costStr, purchaseStr, saleStr := r[0], r[1], r[2], r[3], r[4], r[5], r[6]

	index, err := parseIndex(indexStr, line)
	if err != nil {
		return Entry{}, err
	}

	all, classes, err := parseAvailability(availStr, line, index)
	if err != nil {
		return Entry{}, err
	}

	qty, err := parseQuantity(qtyStr, line, index)
	if err != nil {
		return Entry{}, err
	}

	cost, err := strconv.ParseInt(costStr, 10, 64)
	if err != nil {
		return Entry{}, &BuildError{Line: line, Msg: fmt.Sprintf("index %d: invalid base cost %q", index, costStr)}
	}

	purchase, err := parseDMs(purchaseStr, line, index)
	if err != nil {
		return Entry{}, err
	}
	sale, err := parseDMs(saleStr, line, index)
	if err != nil {
		return Entry{}, err
	}

	return Entry{
		Index:        index,
		Name:         name,
		All:          all,
		Availability: classes,
		Quantity:     qty,
		BaseCost:     cost,
		PurchaseDM:   purchase,
		SaleDM:       sale,
	}, nil
}

func parseIndex(s string, line int) (int, error) {
	if len(s) != 2 {
		return 0, &BuildError{Line: line, Msg: fmt.Sprintf("index must be 2 digits, got %q", s)}
	}
	d1 := int(s[0] - '0')
	d2 := int(s[1] - '0')
	if s[0] < '1' || s[0] > '6' || s[1] < '1' || s[1] > '6' {
		return 0, &BuildError{Line: line, Msg: fmt.Sprintf("index digits must be 1-6, got %q", s)}
	}
	return d1*10 + d2, nil
}

func parseAvailability(s string, line, index int) (bool, world.ClassSet, error) {
	if s == "All" {
		return true, nil, nil
	}
	classes := make(world.ClassSet)
	if strings.TrimSpace(s) == "" {
		return false, classes, nil
	}
	for _, code := range strings.Fields(s) {
		tc, ok := world.ParseTradeClass(code)
		if !ok {
			return false, nil, &BuildError{Line: line, Msg: fmt.Sprintf("index %d: invalid trade class code %q", index, code)}
		}
		classes[tc] = struct{}{}
	}
	return false, classes, nil
}

func parseQuantity(s string, line, index int) (Quantity, error) {
	m := quantityPattern.FindStringSubmatch(s)
	if m == nil {
		return Quantity{}, &BuildError{Line: line, Msg: fmt.Sprintf("index %d: quantity must be nDxM, got %q", index, s)}
	}
	dice, err := strconv.Atoi(m[1])
	if err != nil {
		return Quantity{}, &BuildError{Line: line, Msg: fmt.Sprintf("index %d: invalid dice count %q", index, m[1])}
	}
	mult, err := strconv.Atoi(m[2])
	if err != nil {
		return Quantity{}, &BuildError{Line: line, Msg: fmt.Sprintf("index %d: invalid multiplier %q", index, m[2])}
	}
	return Quantity{Dice: dice, Multiplier: mult}, nil
}

func parseDMs(s string, line, index int) (map[world.TradeClass]int16, error) {
	out := make(map[world.TradeClass]int16)
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, tok := range strings.Fields(s) {
		signPos := strings.IndexAny(tok, "+-")
		if signPos < 0 {
			return nil, &BuildError{Line: line, Msg: fmt.Sprintf("index %d: no +/- in DM token %q", index, tok)}
		}
		code := tok[:signPos]
		tc, ok := world.ParseTradeClass(code)
		if !ok {
			return nil, &BuildError{Line: line, Msg: fmt.Sprintf("index %d: invalid trade class code %q", index, code)}
		}
		dm, err := strconv.Atoi(tok[signPos:])
		if err != nil {
			return nil, &BuildError{Line: line, Msg: fmt.Sprintf("index %d: invalid DM value %q", index, tok[signPos:])}
		}
		out[tc] = int16(dm)
	}
	return out, nil
}

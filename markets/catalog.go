package markets

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"sync"
)

// Catalog is an in-memory Source.
type Catalog struct {
	mu      sync.RWMutex
	markets map[string]Market
}

func NewCatalog() *Catalog {
	return &Catalog{markets: map[string]Market{}}
}

func (c *Catalog) Put(m Market) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.markets[m.Symbol] = m
}

func (c *Catalog) Market(symbol string) (*Market, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, found := c.markets[symbol]
	if !found {
		return nil, fmt.Errorf("%w %s", ErrUnknownMarket, symbol)
	}

	return &m, nil
}

func (c *Catalog) Symbols() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	symbols := make([]string, 0, len(c.markets))
	for s := range c.markets {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	return symbols
}

// Load reads a JSON array of raw markets. Nothing is added if any entry
// fails to decode.
func (c *Catalog) Load(r io.Reader, mode Mode) error {
	var raw []map[string]interface{}

	decoder := json.NewDecoder(r)
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return fmt.Errorf("decode markets: %w", err)
	}

	decoded := make([]Market, 0, len(raw))
	for i, entry := range raw {
		m, err := Decode(entry, mode)
		if err != nil {
			return fmt.Errorf("market #%d: %w", i, err)
		}
		decoded = append(decoded, *m)
	}

	for _, m := range decoded {
		c.Put(m)
	}

	return nil
}

// Package markets normalises exchange market metadata into canonical
// precision ticks.
package markets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/shopspring/decimal"

	"github.com/sberserker/tickfmt/precision"
)

var ErrUnknownMarket = errors.New("unknown market")

// Mode is how an exchange reports precision.
type Mode int

const (
	// DecimalPlaces means the exchange sends digit counts, e.g. 8.
	DecimalPlaces Mode = iota
	// TickSize means the exchange sends increments, e.g. 0.00000001.
	TickSize
)

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "decimals", "decimal_places":
		return DecimalPlaces, nil
	case "ticks", "tick_size":
		return TickSize, nil
	default:
		return 0, fmt.Errorf("unsupported precision mode %s", s)
	}
}

//go:generate mockgen -destination=../mocks/mock_source.go -package=mocks github.com/sberserker/tickfmt/markets Source

// Source looks up a market by exchange symbol.
type Source interface {
	Market(symbol string) (*Market, error)
}

type Precision struct {
	Digits int
	Tick   string
}

func (p Precision) String() string {
	return p.Tick
}

func PrecisionFromDigits(digits string) (Precision, error) {
	n, err := precision.ParseDigits(digits)
	if err != nil {
		return Precision{}, err
	}

	return Precision{Digits: n, Tick: precision.Digits(n)}, nil
}

// PrecisionFromTick keeps ticks that are not a power of ten, such as 0.05,
// as the exchange sent them.
func PrecisionFromTick(tick string) (Precision, error) {
	n, err := precision.FromString(tick)
	if err != nil {
		return Precision{}, err
	}

	canonical := precision.Digits(n)
	if !precision.TickSize(n).Equal(decimal.RequireFromString(tick)) {
		canonical = tick
	}

	return Precision{Digits: n, Tick: canonical}, nil
}

type Market struct {
	Symbol string
	Base   string
	Quote  string
	Price  Precision
	Amount Precision
}

type rawMarket struct {
	Symbol          string `mapstructure:"symbol"`
	Base            string `mapstructure:"base"`
	Quote           string `mapstructure:"quote"`
	PricePrecision  string `mapstructure:"price_precision"`
	AmountPrecision string `mapstructure:"amount_precision"`
}

// Decode reads a loosely typed market payload. Precision fields may be
// numbers or strings.
func Decode(raw map[string]interface{}, mode Mode) (*Market, error) {
	var r rawMarket

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &r,
	})
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}

	if r.Symbol == "" {
		return nil, errors.New("market symbol is required")
	}

	if r.PricePrecision == "" || r.AmountPrecision == "" {
		return nil, fmt.Errorf("market %s is missing price or amount precision", r.Symbol)
	}

	parse := PrecisionFromDigits
	if mode == TickSize {
		parse = PrecisionFromTick
	}

	price, err := parse(r.PricePrecision)
	if err != nil {
		return nil, fmt.Errorf("market %s price: %w", r.Symbol, err)
	}

	amount, err := parse(r.AmountPrecision)
	if err != nil {
		return nil, fmt.Errorf("market %s amount: %w", r.Symbol, err)
	}

	return &Market{
		Symbol: r.Symbol,
		Base:   r.Base,
		Quote:  r.Quote,
		Price:  price,
		Amount: amount,
	}, nil
}

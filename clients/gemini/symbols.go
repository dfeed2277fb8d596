package gemini

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sberserker/tickfmt/logger"
	"github.com/sberserker/tickfmt/markets"
)

type Symbol struct {
	Symbol         string          `json:"symbol"`
	BaseCurrency   string          `json:"base_currency"`
	QuoteCurrency  string          `json:"quote_currency"`
	TickSize       decimal.Decimal `json:"tick_size"`
	QuoteIncrement decimal.Decimal `json:"quote_increment"`
	MinOrderSize   decimal.Decimal `json:"min_order_size"`
	Status         string          `json:"status"`
}

func (api *Api) Symbols() ([]string, error) {
	var symbols []string

	if err := api.get(symbols_URI, nil, &symbols); err != nil {
		return nil, err
	}

	return symbols, nil
}

func (api *Api) SymbolDetails(symbol string) (Symbol, error) {
	var s Symbol

	err := api.get(symbol_details_URI, map[string]string{"symbol": strings.ToLower(symbol)}, &s)
	return s, err
}

// Market implements markets.Source. Gemini reports increments, so both
// precisions go through the tick path.
func (api *Api) Market(symbol string) (*markets.Market, error) {
	s, err := api.SymbolDetails(symbol)
	if err != nil {
		return nil, err
	}

	price, err := markets.PrecisionFromTick(s.QuoteIncrement.String())
	if err != nil {
		return nil, fmt.Errorf("%s quote_increment: %w", symbol, err)
	}

	amount, err := markets.PrecisionFromTick(s.TickSize.String())
	if err != nil {
		return nil, fmt.Errorf("%s tick_size: %w", symbol, err)
	}

	logger.Debug("func Market",
		fmt.Sprintf("symbol:%s", s.Symbol),
		fmt.Sprintf("price:%s", price),
		fmt.Sprintf("amount:%s", amount),
	)

	return &markets.Market{
		Symbol: s.Symbol,
		Base:   s.BaseCurrency,
		Quote:  s.QuoteCurrency,
		Price:  price,
		Amount: amount,
	}, nil
}

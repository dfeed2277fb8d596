package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/sberserker/tickfmt/clients/gemini"
	"github.com/sberserker/tickfmt/markets"
	"github.com/sberserker/tickfmt/precision"
)

func runParse(out io.Writer, digits string) error {
	tick, err := precision.ParsePrecision(digits)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, tick)
	return err
}

func runDigits(out io.Writer, tick string) error {
	digits, err := precision.FromString(tick)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, digits)
	return err
}

// initSource prefers a local catalog file over the Gemini API.
func initSource(file string, mode string, url string, live bool) (markets.Source, error) {
	if file == "" {
		return gemini.New(live, url), nil
	}

	m, err := markets.ParseMode(mode)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	catalog := markets.NewCatalog()
	if err := catalog.Load(f, m); err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}

	return catalog, nil
}

type marketPrinter struct {
	logger *zap.SugaredLogger
	source markets.Source
}

func newMarketPrinter(source markets.Source, l *zap.SugaredLogger) *marketPrinter {
	return &marketPrinter{
		logger: l,
		source: source,
	}
}

// Print writes one line per symbol and stops at the first lookup failure.
func (p *marketPrinter) Print(out io.Writer, symbols []string) error {
	for _, symbol := range symbols {
		m, err := p.source.Market(symbol)
		if err != nil {
			return err
		}

		p.logger.Infow(
			"Market precision",
			"symbol", m.Symbol,
			"priceDigits", m.Price.Digits,
			"amountDigits", m.Amount.Digits,
		)

		if _, err := fmt.Fprintf(out, "%s price=%s amount=%s\n", m.Symbol, m.Price, m.Amount); err != nil {
			return err
		}
	}

	return nil
}

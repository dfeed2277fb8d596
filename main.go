package main

import (
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/alecthomas/kingpin.v2"

	clientlog "github.com/sberserker/tickfmt/logger"
)

var (
	traceLevel = kingpin.Flag(
		"trace",
		"HTTP client trace level: warning, info, debug, trace. Default: warning",
	).Envar("TICKFMT_TRACE").Default("warning").String()

	parseCmd = kingpin.Command(
		"parse",
		"Print the smallest unit for a precision digit count, e.g. 8 or -2.",
	)

	parseDigits = parseCmd.Arg(
		"precision",
		"Signed number of decimal digits.",
	).Required().String()

	digitsCmd = kingpin.Command(
		"digits",
		"Print the precision digit count of a tick size, e.g. 0.001 or 1e-8.",
	)

	digitsTick = digitsCmd.Arg(
		"tick",
		"Tick size.",
	).Required().String()

	marketCmd = kingpin.Command(
		"market",
		"Print price and amount ticks for exchange symbols.",
	)

	marketSymbols = marketCmd.Arg(
		"symbol",
		"Exchange symbols, e.g. btcusd.",
	).Required().Strings()

	marketsFile = marketCmd.Flag(
		"file",
		"JSON file with market metadata. If unspecified, Gemini is queried.",
	).Envar("TICKFMT_MARKETS_FILE").String()

	marketsMode = marketCmd.Flag(
		"mode",
		"How the file reports precision: decimals, ticks. Default: decimals",
	).Default("decimals").Enum("decimals", "ticks")

	geminiURL = marketCmd.Flag(
		"gemini-url",
		"Gemini API base url.",
	).Envar("TICKFMT_GEMINI_URL").String()

	sandbox = marketCmd.Flag(
		"sandbox",
		"Use the Gemini sandbox.",
	).Bool()
)

func main() {
	kingpin.Version("0.1.0")
	command := kingpin.Parse()

	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	l, _ := config.Build()
	logger := l.Sugar().With("run", uuid.NewString())
	defer logger.Sync()

	if err := clientlog.Configure(os.Stderr, *traceLevel); err != nil {
		logger.Error(err)
		os.Exit(1)
	}

	var err error

	switch command {
	case parseCmd.FullCommand():
		err = runParse(os.Stdout, *parseDigits)
	case digitsCmd.FullCommand():
		err = runDigits(os.Stdout, *digitsTick)
	case marketCmd.FullCommand():
		err = runMarket(os.Stdout, logger)
	}

	if err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func runMarket(out io.Writer, logger *zap.SugaredLogger) error {
	source, err := initSource(*marketsFile, *marketsMode, *geminiURL, !*sandbox)
	if err != nil {
		return err
	}

	return newMarketPrinter(source, logger).Print(out, *marketSymbols)
}

package gemini

import (
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sberserker/tickfmt/markets"
)

func jsonResponder(status int, body string) httpmock.Responder {
	return func(req *http.Request) (*http.Response, error) {
		resp := httpmock.NewStringResponse(status, body)
		resp.Header.Set("Content-Type", "application/json")
		return resp, nil
	}
}

func mockedApi(t *testing.T) *Api {
	api := New(true, "")
	httpmock.ActivateNonDefault(api.HTTPClient().GetClient())
	t.Cleanup(httpmock.DeactivateAndReset)
	return api
}

func TestMarket(t *testing.T) {
	api := mockedApi(t)

	httpmock.RegisterResponder("GET", "https://api.gemini.com/v1/symbols/details/btcusd",
		jsonResponder(200, `{"symbol":"BTCUSD","base_currency":"BTC","quote_currency":"USD","tick_size":1E-8,"quote_increment":0.01,"min_order_size":"0.00001","status":"open"}`))

	var source markets.Source = api

	m, err := source.Market("BTCUSD")
	require.NoError(t, err)

	assert.Equal(t, "BTCUSD", m.Symbol)
	assert.Equal(t, "BTC", m.Base)
	assert.Equal(t, "USD", m.Quote)
	assert.Equal(t, markets.Precision{Digits: 2, Tick: "0.01"}, m.Price)
	assert.Equal(t, markets.Precision{Digits: 8, Tick: "0.00000001"}, m.Amount)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestMarketNonDecimalIncrement(t *testing.T) {
	api := mockedApi(t)

	httpmock.RegisterResponder("GET", "https://api.gemini.com/v1/symbols/details/ethusd",
		jsonResponder(200, `{"symbol":"ETHUSD","base_currency":"ETH","quote_currency":"USD","tick_size":1E-6,"quote_increment":0.05,"min_order_size":"0.001","status":"open"}`))

	m, err := api.Market("ethusd")
	require.NoError(t, err)

	assert.Equal(t, markets.Precision{Digits: 2, Tick: "0.05"}, m.Price)
	assert.Equal(t, "0.000001", m.Amount.Tick)
}

func TestMarketMissingIncrement(t *testing.T) {
	api := mockedApi(t)

	httpmock.RegisterResponder("GET", "https://api.gemini.com/v1/symbols/details/btcusd",
		jsonResponder(200, `{"symbol":"BTCUSD","tick_size":1E-8}`))

	_, err := api.Market("btcusd")

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "quote_increment")
}

func TestMarketNotFound(t *testing.T) {
	api := mockedApi(t)

	httpmock.RegisterResponder("GET", "https://api.gemini.com/v1/symbols/details/nope",
		jsonResponder(404, `{"result":"error","reason":"InvalidSymbol","message":"Supplied value 'nope' is not a valid symbol."}`))

	_, err := api.Market("nope")

	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "InvalidSymbol")
}

func TestSymbols(t *testing.T) {
	api := mockedApi(t)

	httpmock.RegisterResponder("GET", "https://api.gemini.com/v1/symbols",
		jsonResponder(200, `["btcusd","ethbtc"]`))

	symbols, err := api.Symbols()

	assert.Nil(t, err)
	assert.Equal(t, []string{"btcusd", "ethbtc"}, symbols)
}

func TestNewSelectsEnvironment(t *testing.T) {
	assert.Equal(t, "https://api.gemini.com", New(true, "").url)
	assert.Equal(t, "https://api.sandbox.gemini.com", New(false, "").url)
	assert.Equal(t, "http://localhost:8080", New(true, "http://localhost:8080").url)
}

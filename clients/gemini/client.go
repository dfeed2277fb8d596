package gemini

import (
	"errors"
	"fmt"
	"time"

	"github.com/imroc/req/v3"

	"github.com/sberserker/tickfmt/logger"
)

const (
	base_URL    = "https://api.gemini.com"
	sandbox_URL = "https://api.sandbox.gemini.com"

	symbols_URI        = "/v1/symbols"
	symbol_details_URI = "/v1/symbols/details/{symbol}"
)

var ErrFailedToUnmarshal = errors.New("failed to unmarshal gemini response")

type Api struct {
	client *req.Client
	url    string
}

// New returns a client for the public Gemini API. An empty url selects
// production or sandbox depending on live.
func New(live bool, url string) *Api {
	if url == "" {
		if url = sandbox_URL; live {
			url = base_URL
		}
	}

	client := req.C().
		SetBaseURL(url).
		SetTimeout(5 * time.Second).
		SetUserAgent("tickfmt")

	return &Api{client: client, url: url}
}

// HTTPClient exposes the transport for tests.
func (api *Api) HTTPClient() *req.Client {
	return api.client
}

type apiError struct {
	Result  string `json:"result"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (api *Api) get(uri string, pathParams map[string]string, result interface{}) error {
	logger.Debug("func get",
		fmt.Sprintf("url:%s%s", api.url, uri),
		fmt.Sprintf("params:%v", pathParams),
	)

	var failure apiError

	resp, err := api.client.R().
		SetPathParams(pathParams).
		SetSuccessResult(result).
		SetErrorResult(&failure).
		Get(uri)
	if err != nil {
		return err
	}

	logger.Trace("func get: response",
		fmt.Sprintf("status:%d", resp.GetStatusCode()),
		fmt.Sprintf("body:%s", resp.String()),
	)

	if resp.IsErrorState() {
		return fmt.Errorf("gemini HTTP Status Code: %d %s %s", resp.GetStatusCode(), failure.Reason, failure.Message)
	}

	if !resp.IsSuccessState() {
		return ErrFailedToUnmarshal
	}

	return nil
}

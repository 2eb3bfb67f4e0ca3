package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"project_botAnalis/internal/entities"
	"project_botAnalis/internal/interfaces"
)

const yahooChartURL = "https://query1.finance.yahoo.com/v8/finance/chart"

// YahooFinanceClient fetches daily closing prices from the Yahoo Finance
// chart API over a fixed 6-month window.
type YahooFinanceClient struct {
	BaseURL    string
	httpClient *http.Client
}

var _ interfaces.PriceClient = (*YahooFinanceClient)(nil)

func NewYahooFinanceClient() *YahooFinanceClient {
	return &YahooFinanceClient{
		BaseURL:    yahooChartURL,
		httpClient: http.DefaultClient,
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// History returns the daily closing-price series for symbol. An unknown or
// delisted ticker yields an empty series and no error.
func (y *YahooFinanceClient) History(ctx context.Context, symbol string) ([]entities.PricePoint, error) {
	reqURL := fmt.Sprintf("%s/%s?range=6mo&interval=1d", y.BaseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrPriceProvider, err)
	}
	// Yahoo rejects the default Go user agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (X11; Linux x86_64)")

	resp, err := y.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrPriceProvider, err)
	}
	defer resp.Body.Close()

	// Unknown tickers come back as 404 with an error payload.
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", entities.ErrPriceProvider, resp.StatusCode)
	}

	var parsed chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", entities.ErrPriceProvider, err)
	}
	if parsed.Chart.Error != nil || len(parsed.Chart.Result) == 0 {
		return nil, nil
	}

	result := parsed.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	closes := result.Indicators.Quote[0].Close

	var series []entities.PricePoint
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue // market holidays report null closes
		}
		series = append(series, entities.PricePoint{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *closes[i],
		})
	}
	return series, nil
}

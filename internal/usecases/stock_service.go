package usecases

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/stat"

	"project_botAnalis/internal/entities"
	"project_botAnalis/internal/interfaces"
)

const (
	stockUsage    = "Usage: /stock TCS.NS"
	invalidTicker = "Invalid or unavailable ticker."
)

// StockService handles /stock: it fetches 6 months of daily closes,
// computes day-over-day return statistics and asks the AI for a narrative.
type StockService struct {
	prices    interfaces.PriceClient
	ai        interfaces.AIClient
	messenger interfaces.Messenger
}

func NewStockService(prices interfaces.PriceClient, ai interfaces.AIClient, messenger interfaces.Messenger) *StockService {
	return &StockService{prices: prices, ai: ai, messenger: messenger}
}

func (s *StockService) Handle(ctx context.Context, msg entities.InboundMessage) error {
	if len(msg.Args) == 0 {
		return s.messenger.SendText(msg.ChatID, stockUsage)
	}
	ticker := msg.Args[0]

	series, err := s.prices.History(ctx, ticker)
	if err != nil {
		return err
	}
	if len(series) == 0 {
		return s.messenger.SendText(msg.ChatID, invalidTicker)
	}

	mean, volatility := returnStats(series)

	response, err := s.ai.GenerateResponse(ctx, stockPrompt(ticker, mean, volatility))
	if err != nil {
		return err
	}
	return s.messenger.SendText(msg.ChatID, response)
}

// returnStats computes the mean and sample standard deviation of
// day-over-day percentage changes in the closing price.
func returnStats(series []entities.PricePoint) (mean, volatility float64) {
	var returns []float64
	for i := 1; i < len(series); i++ {
		prev := series[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, (series[i].Close-prev)/prev)
	}
	if len(returns) == 0 {
		return 0, 0
	}
	return stat.Mean(returns, nil), stat.StdDev(returns, nil)
}

func stockPrompt(ticker string, mean, volatility float64) string {
	return fmt.Sprintf(
		"Stock: %s\nAverage Daily Return: %g\nVolatility: %g\n\nProvide interpretation, risk assessment, and outlook.",
		ticker, mean, volatility,
	)
}

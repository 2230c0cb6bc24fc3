package llm

// modelPrice holds USD prices per one million tokens.
type modelPrice struct {
	inputPerM  float64
	outputPerM float64
}

// modelPrices drives cost accounting on AgentRun rows. Prices are
// approximate and only need to be stable enough for budget dashboards.
var modelPrices = map[string]modelPrice{
	"gpt-4o":        {inputPerM: 2.50, outputPerM: 10.00},
	"gpt-4o-mini":   {inputPerM: 0.15, outputPerM: 0.60},
	"gpt-4.1":       {inputPerM: 2.00, outputPerM: 8.00},
	"gpt-4.1-mini":  {inputPerM: 0.40, outputPerM: 1.60},
	"deepseek-chat": {inputPerM: 0.27, outputPerM: 1.10},
}

// Unknown models are billed at a conservative ceiling so cost reports
// overestimate rather than underestimate.
var fallbackPrice = modelPrice{inputPerM: 15.00, outputPerM: 60.00}

// EstimateCostUSD returns the estimated cost of a call in USD.
func EstimateCostUSD(model string, usage Usage) float64 {
	price, ok := modelPrices[model]
	if !ok {
		price = fallbackPrice
	}
	return float64(usage.InputTokens)/1e6*price.inputPerM +
		float64(usage.OutputTokens)/1e6*price.outputPerM
}

package model

import "errors"

// DefaultFeePerTrade is the flat fee charged on every active bar when a
// config does not specify one (0.02%).
const DefaultFeePerTrade = 0.0002

// StrategyConfig bundles the box-breakout parameters for one evaluation.
// All rate fields are fractions (0.01 = 1%), never raw percentages.
type StrategyConfig struct {
	LookbackWindow  int     // bars in the trailing box
	ProfitTargetPct float64 // per-bar upside cap
	StopLossPct     float64 // per-bar downside cap
	FeePerTrade     float64 // flat fee per non-zero bar return
}

// NewStrategyConfig builds and validates a config in one step.
func NewStrategyConfig(window int, stopLoss, takeProfit, fee float64) (StrategyConfig, error) {
	c := StrategyConfig{
		LookbackWindow:  window,
		ProfitTargetPct: takeProfit,
		StopLossPct:     stopLoss,
		FeePerTrade:     fee,
	}
	if err := c.Validate(); err != nil {
		return StrategyConfig{}, err
	}
	return c, nil
}

func (c StrategyConfig) Validate() error {
	if c.LookbackWindow < 1 {
		return errors.New("LookbackWindow must be >= 1")
	}
	if c.ProfitTargetPct <= 0 {
		return errors.New("ProfitTargetPct must be > 0")
	}
	if c.StopLossPct <= 0 {
		return errors.New("StopLossPct must be > 0")
	}
	if c.FeePerTrade < 0 {
		return errors.New("FeePerTrade must be >= 0")
	}
	return nil
}

package main

import "math"

// unitPrice returns the milk cost of one cow at the given global herd size.
//
//	P(c) = base * (1 + (c / pivot)^steepness)
//
// The curve is evaluated in float64 and truncated to base units, matching the
// historical fixed-point behavior observers already index. An empty market
// sells at exactly the base price.
func unitPrice(cfg *SystemConfig, globalUnits uint64) uint64 {
	if globalUnits == 0 {
		return cfg.BasePrice
	}
	ratio := float64(globalUnits) / cfg.PricePivot
	multiplier := 1.0 + math.Pow(ratio, cfg.PriceSteepness)
	return floatToUnits(float64(cfg.BasePrice) * multiplier)
}

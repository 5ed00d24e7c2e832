package main

import "math"

// rateContext carries everything a policy may look at when quoting the
// per-day reward rate. Policies ignore the fields they dont need.
type rateContext struct {
	globalUnits uint64
	poolBalance uint64
	at          int64
}

// rewardPolicy quotes milk emissions per cow per day in base units.
type rewardPolicy interface {
	ratePerDay(ctx rateContext) uint64
}

// policyFor picks the configured policy implementation.
func policyFor(cfg *SystemConfig) rewardPolicy {
	if cfg.Policy == PolicyHalving {
		return halvingPolicy{cfg: cfg}
	}
	return greedDecayPolicy{cfg: cfg}
}

// greedDecayPolicy dilutes the base emission as pool TVL per cow grows and
// boosts it while the herd is still small:
//
//	rate = max(B / (1 + s*(tvl/c)/S), Rmin) * (1 + m * e^(-c/p))
//
// With zero cows the quote collapses to the floor, there is nobody to pay.
type greedDecayPolicy struct {
	cfg *SystemConfig
}

func (p greedDecayPolicy) ratePerDay(ctx rateContext) uint64 {
	cfg := p.cfg
	if ctx.globalUnits == 0 {
		return cfg.MinRewardPerDay
	}
	tvlPerUnit := float64(ctx.poolBalance) / float64(ctx.globalUnits)
	dilution := 1.0 + cfg.RewardSensitivity*(tvlPerUnit/cfg.TVLNormalization)
	base := float64(cfg.RewardBase) / dilution
	floor := float64(cfg.MinRewardPerDay)
	if base < floor {
		base = floor
	}
	boost := 1.0 + cfg.GreedMultiplier*math.Exp(-float64(ctx.globalUnits)/cfg.GreedDecayPivot)
	return floatToUnits(base * boost)
}

// halvingPolicy halves a fixed schedule every interval since contract start.
// The reduction runs as a bounded divide loop instead of a shift so a future
// non-power-of-two divisor stays a one-line change.
type halvingPolicy struct {
	cfg *SystemConfig
}

func (p halvingPolicy) ratePerDay(ctx rateContext) uint64 {
	return p.rateForPeriod(p.periodAt(ctx.at))
}

// periodAt maps an instant to its halving period index, clamped at the cap.
// The boundary instant itself already belongs to the new period.
func (p halvingPolicy) periodAt(at int64) uint64 {
	cfg := p.cfg
	if at <= cfg.StartTime || cfg.HalvingIntervalDays == 0 {
		return 0
	}
	days := uint64(at-cfg.StartTime) / uint64(SecondsPerDay)
	period := days / cfg.HalvingIntervalDays
	if period > cfg.HalvingMaxPeriods {
		period = cfg.HalvingMaxPeriods
	}
	return period
}

// rateForPeriod divides the base rate down `period` times, floored at the
// configured minimum so late farms still earn something.
func (p halvingPolicy) rateForPeriod(period uint64) uint64 {
	rate := p.cfg.HalvingBaseRate
	for i := uint64(0); i < period && rate > 0; i++ {
		rate /= 2
	}
	if rate < p.cfg.MinRewardPerDay {
		rate = p.cfg.MinRewardPerDay
	}
	return rate
}

// refreshRate re-quotes and caches the farm's reward rate from the current
// global count and pool balance. Only operations that change either of those
// call it, idle time keeps accruing at the cached quote.
func refreshRate(cfg *SystemConfig, farm *Farm, now int64) {
	farm.CachedRewardRate = policyFor(cfg).ratePerDay(rateContext{
		globalUnits: cfg.GlobalUnitCount,
		poolBalance: poolBalance(),
		at:          now,
	})
}

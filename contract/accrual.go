package main

// settleFarm folds all rewards earned since the last update into the farm and
// advances LastUpdateTime to `now`. Calling it twice at the same instant is a
// no-op, so every operation can settle up-front without double counting.
//
// The greed-decay policy accrues at the farm's cached quote:
//
//	earned = units * (cachedRate / SecondsPerDay) * elapsedSeconds
//
// The per-second rate is derived with integer division first, keeping the
// truncation observers rely on when replaying balances from events.
func settleFarm(cfg *SystemConfig, farm *Farm, now int64) {
	if now <= farm.LastUpdateTime {
		return
	}
	if farm.Units > 0 {
		var earned uint64
		if cfg.Policy == PolicyHalving {
			earned = halvingAccrual(cfg, farm, now)
		} else {
			perSecond := farm.CachedRewardRate / uint64(SecondsPerDay)
			elapsed := uint64(now - farm.LastUpdateTime)
			earned = checkedMul(checkedMul(farm.Units, perSecond), elapsed)
		}
		farm.AccumulatedRewards = checkedAdd(farm.AccumulatedRewards, earned)
	}
	farm.LastUpdateTime = now
}

// halvingAccrual integrates [lastUpdate, now) piecewise: each halving period
// contributes at its own rate, so a settlement spanning a boundary pays the
// pre-halving seconds at the old quote and the rest at the new one. Once the
// period cap is reached the rate is flat and the remainder is one segment.
func halvingAccrual(cfg *SystemConfig, farm *Farm, now int64) uint64 {
	policy := halvingPolicy{cfg: cfg}
	intervalSec := int64(cfg.HalvingIntervalDays) * SecondsPerDay

	cursor := farm.LastUpdateTime
	if cursor < cfg.StartTime {
		cursor = cfg.StartTime
	}
	var earned uint64
	for cursor < now {
		period := policy.periodAt(cursor)
		segEnd := now
		if period < cfg.HalvingMaxPeriods && intervalSec > 0 {
			boundary := cfg.StartTime + int64(period+1)*intervalSec
			if boundary < segEnd {
				segEnd = boundary
			}
		}
		perSecond := policy.rateForPeriod(period) / uint64(SecondsPerDay)
		seg := checkedMul(checkedMul(farm.Units, perSecond), uint64(segEnd-cursor))
		earned = checkedAdd(earned, seg)
		cursor = segEnd
	}
	return earned
}

// pendingRewards projects what a settlement at `now` would credit, without
// mutating the stored farm. Used by the read-only farm view.
func pendingRewards(cfg *SystemConfig, farm *Farm, now int64) uint64 {
	scratch := *farm
	settleFarm(cfg, &scratch, now)
	return scratch.AccumulatedRewards
}

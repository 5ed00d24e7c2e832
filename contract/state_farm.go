package main

import "milkerfun/sdk"

// -----------------------------------------------------------------------------
// Farm State
// -----------------------------------------------------------------------------

// loadFarm fetches a farm from the per-tx cache or storage, nil if it never existed.
func loadFarm(owner sdk.Address) *Farm {
	currentEnv()
	key := farmKey(owner)
	if f, ok := cachedFarms[key]; ok {
		return f
	}
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return nil
	}
	f, err := DecodeFarm([]byte(*ptr))
	if err != nil {
		sdk.Abort("corrupt farm record: " + err.Error())
	}
	cachedFarms[key] = f
	return f
}

// loadOrCreateFarm returns the stored farm or a zeroed one anchored at `now`.
// New farms start settling from their creation instant, not the contract start.
func loadOrCreateFarm(owner sdk.Address, now int64) *Farm {
	if f := loadFarm(owner); f != nil {
		return f
	}
	f := &Farm{
		Owner:          owner,
		LastUpdateTime: now,
	}
	cachedFarms[farmKey(owner)] = f
	return f
}

// saveFarm persists the farm and keeps the tx cache in sync.
func saveFarm(f *Farm) {
	currentEnv()
	key := farmKey(f.Owner)
	sdk.StateSetObject(key, string(EncodeFarm(f)))
	cachedFarms[key] = f
}

package main

import (
	"strconv"
	"strings"

	"milkerfun/sdk"
)

// InitArgs is the decoded init_config payload.
type InitArgs struct {
	Policy               PolicyKind
	ImportInflatesSupply bool
	Overrides            map[string]string
}

// decodeInitArgs unpacks `policy|bridge_mode[|key=value;key=value]`.
func decodeInitArgs(payload *string) *InitArgs {
	raw := unwrapPayload(payload, "init payload missing")
	parts := strings.Split(raw, "|")
	get := func(i int) string {
		if i < len(parts) {
			return strings.TrimSpace(parts[i])
		}
		return ""
	}

	args := &InitArgs{
		Policy:               parsePolicyField(get(0)),
		ImportInflatesSupply: parseBridgeModeField(get(1)),
		Overrides:            parseOverridesField(get(2)),
	}
	return args
}

// decodeUnitCount reads the single cow count every purchase-shaped op expects.
// Zero and the per-tx purchase cap are enforced here so buy and compound
// share the same rule.
func decodeUnitCount(payload *string) uint64 {
	n := decodeBridgeUnitCount(payload)
	if n > MaxUnitsPerPurchase {
		sdk.Revert("cow count exceeds per-tx cap", errInvalidAmount)
	}
	return n
}

// decodeBridgeUnitCount is the uncapped variant for export/import: moving an
// already-owned herd across the bridge has no reason to be throttled.
func decodeBridgeUnitCount(payload *string) uint64 {
	raw := unwrapPayload(payload, "cow count missing")
	n, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		sdk.Revert("invalid cow count", errInvalidPayload)
	}
	if n == 0 {
		sdk.Revert("cow count must be > 0", errInvalidAmount)
	}
	return n
}

// decodeAddressField reads an optional address payload, falling back to the sender.
func decodeAddressField(payload *string) sdk.Address {
	if payload == nil || strings.TrimSpace(*payload) == "" {
		return getSenderAddress()
	}
	raw := unwrapPayload(payload, "address missing")
	addr := sdk.Address(strings.TrimSpace(raw))
	if !addr.IsValid() {
		sdk.Revert("invalid address", errInvalidPayload)
	}
	return addr
}

// unwrapPayload trims quotes and whitespace, reverting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Revert(errMsg, errInvalidPayload)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Revert(errMsg, errInvalidPayload)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Revert(errMsg, errInvalidPayload)
			}
		}
	}
	return raw
}

// parsePolicyField accepts friendly strings or digits, defaulting to greed-decay.
func parsePolicyField(val string) PolicyKind {
	switch strings.ToLower(val) {
	case "", "0", "greed", "greed-decay":
		return PolicyGreedDecay
	case "1", "halving":
		return PolicyHalving
	default:
		sdk.Revert("unknown reward policy", errInvalidPayload)
	}
	return PolicyGreedDecay
}

// parseBridgeModeField toggles whether Import grows the global herd without
// Export ever shrinking it (the historical books) or the round trip is neutral.
func parseBridgeModeField(val string) bool {
	switch strings.ToLower(val) {
	case "", "inflate":
		return true
	case "conserve":
		return false
	default:
		sdk.Revert("unknown bridge mode", errInvalidPayload)
	}
	return true
}

// parseOverridesField lets payload authors include semi-colon separated key=value pairs.
func parseOverridesField(val string) map[string]string {
	if val == "" {
		return nil
	}
	overrides := map[string]string{}
	pairs := strings.Split(val, ";")
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		split := strings.SplitN(pair, "=", 2)
		if len(split) != 2 {
			sdk.Revert("invalid override entry (use key=value)", errInvalidPayload)
		}
		overrides[strings.TrimSpace(split[0])] = strings.TrimSpace(split[1])
	}
	return overrides
}

// overrideUint/overrideFloat apply a single override when present, reverting on junk.
func overrideUint(overrides map[string]string, key string, dst *uint64) {
	val, ok := overrides[key]
	if !ok {
		return
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Revert("invalid override: "+key, errInvalidPayload)
	}
	*dst = n
}

func overrideFloat(overrides map[string]string, key string, dst *float64) {
	val, ok := overrides[key]
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f <= 0 {
		sdk.Revert("invalid override: "+key, errInvalidPayload)
	}
	*dst = f
}

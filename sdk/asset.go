package sdk

type Asset string

const (
	// AssetMilk is the reward/payment token with 6 decimal places.
	AssetMilk Asset = "milk"
	// AssetCow is the tradeable whole-unit cow token (no decimals).
	AssetCow Asset = "cow"
)

// String returns the raw ticker string for logging or host calls.
// Example payload: sdk.AssetMilk.String()
func (a Asset) String() string {
	return string(a)
}

package main

import (
	"math"

	"milkerfun/sdk"
)

// Checked uint64 arithmetic. Any overflow means the economic state can no
// longer be represented, so the whole transition reverts.

// checkedAdd reverts with math_overflow instead of wrapping around.
func checkedAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		sdk.Revert("addition overflow", errMathOverflow)
	}
	return a + b
}

// checkedSub reverts when the subtraction would go below zero.
func checkedSub(a, b uint64) uint64 {
	if b > a {
		sdk.Revert("subtraction underflow", errMathOverflow)
	}
	return a - b
}

// checkedMul reverts with math_overflow instead of wrapping around.
func checkedMul(a, b uint64) uint64 {
	if a != 0 && b > math.MaxUint64/a {
		sdk.Revert("multiplication overflow", errMathOverflow)
	}
	return a * b
}

// floatToUnits truncates a non-negative float into uint64 base units.
// NaN or values past the uint64 range revert, curve outputs must stay bounded.
func floatToUnits(v float64) uint64 {
	if math.IsNaN(v) || v < 0 || v >= float64(math.MaxUint64) {
		sdk.Revert("value out of range", errMathOverflow)
	}
	return uint64(v)
}

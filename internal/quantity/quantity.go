// Package quantity holds the fixed-precision arithmetic used by every stock
// mutation: kilograms live on a 3-decimal grid, pieces are whole numbers.
// All kg values stored in the snapshot have passed through these helpers, so
// invariant checks compare exact grid values with no epsilon tolerance.
package quantity

import "github.com/shopspring/decimal"

const kgPlaces = 3

// Kg rounds x to the 3-decimal kilogram grid.
func Kg(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(kgPlaces).Float64()
	return f
}

// AddKg returns a+b on the kilogram grid.
func AddKg(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Add(decimal.NewFromFloat(b)).Round(kgPlaces).Float64()
	return f
}

// SubKg returns a-b on the kilogram grid.
func SubKg(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Round(kgPlaces).Float64()
	return f
}

// MulKg returns a*b on the kilogram grid.
func MulKg(a, b float64) float64 {
	f, _ := decimal.NewFromFloat(a).Mul(decimal.NewFromFloat(b)).Round(kgPlaces).Float64()
	return f
}

// Pieces floors a continuous input to whole pieces.
func Pieces(x float64) int {
	return int(decimal.NewFromFloat(x).Floor().IntPart())
}

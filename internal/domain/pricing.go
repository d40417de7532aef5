package domain

import "math/bits"

// ScaleFactor converts between price units and the native transfer unit:
// 1 price unit = 10^12 native units. Fixed for the lifetime of the system.
const ScaleFactor uint64 = 1_000_000_000_000

// LinePrice computes unit price times quantity with overflow checking.
func LinePrice(line OrderLine) (uint64, error) {
	hi, lo := bits.Mul64(line.Item.UnitPrice(), uint64(line.Quantity))
	if hi != 0 {
		return 0, ErrPriceOverflow
	}
	return lo, nil
}

// OrderTotal sums the line prices left to right. Any overflow, in a line or
// in the running sum, fails the whole computation.
func OrderTotal(lines []OrderLine) (uint64, error) {
	var total uint64
	for _, line := range lines {
		price, err := LinePrice(line)
		if err != nil {
			return 0, err
		}
		sum, carry := bits.Add64(total, price, 0)
		if carry != 0 {
			return 0, ErrPriceOverflow
		}
		total = sum
	}
	return total, nil
}

// NativeValue converts a price-unit amount into native transfer units.
func NativeValue(price uint64) (uint64, error) {
	hi, lo := bits.Mul64(price, ScaleFactor)
	if hi != 0 {
		return 0, ErrPriceOverflow
	}
	return lo, nil
}

package money

// ToCents converts an amount in whole currency units to integer cents by
// multiplying by 100 and truncating toward zero. Truncation is intentional:
// 4.999 units convert to 499 cents, not 500. The conversion goes through
// float64 multiplication, so values whose product lands just under a whole
// cent (19.99 * 100 = 1998.999...) lose that cent; existing fixtures depend
// on this behavior.
func ToCents(units float64) int64 {
	return int64(units * 100)
}

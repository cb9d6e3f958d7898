package valueobjects

// Discount is a duration-based percentage taken off the subscription price.
type Discount int64

const (
	DiscountNone       Discount = 0
	DiscountOneMonth   Discount = 5
	DiscountTwoMonth   Discount = 10
	DiscountThreeMonth Discount = 20
	DiscountLongTerm   Discount = 30
)

const daysPerMonth = 30

// DiscountFor maps a duration to its discount by whole 30-day months.
func DiscountFor(days int64) Discount {
	switch days / daysPerMonth {
	case 0:
		return DiscountNone
	case 1:
		return DiscountOneMonth
	case 2:
		return DiscountTwoMonth
	case 3:
		return DiscountThreeMonth
	default:
		return DiscountLongTerm
	}
}

// Percent returns the discount as a whole percentage.
func (d Discount) Percent() int64 {
	return int64(d)
}

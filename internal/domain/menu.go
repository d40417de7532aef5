package domain

// MenuItem is one of the closed set of purchasable item kinds.
type MenuItem string

const (
	CheeseBurger  MenuItem = "cheese_burger"
	ChickenBurger MenuItem = "chicken_burger"
	VegiBurger    MenuItem = "vegi_burger"
)

// UnitPrice returns the fixed price of a single unit of the item, in the
// smallest currency unit. Prices never change at runtime.
func (m MenuItem) UnitPrice() uint64 {
	switch m {
	case CheeseBurger:
		return 12
	case ChickenBurger:
		return 15
	case VegiBurger:
		return 10
	}
	return 0
}

// Valid reports whether m names one of the known item kinds.
func (m MenuItem) Valid() bool {
	switch m {
	case CheeseBurger, ChickenBurger, VegiBurger:
		return true
	}
	return false
}

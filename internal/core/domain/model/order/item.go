package order

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created through
// the NewItem factory function.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is an immutable value object for one line of an order: a product, how
// many units of it, and the unit price at ordering time. Equality is by value.
//
// Invariants:
//   - id, productID, and name are non-empty
//   - quantity is greater than 0
//   - price is not negative
type Item struct {
	id        string
	productID string
	name      string
	quantity  int
	price     float64

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line.
//
// Example:
//
//	item, err := order.NewItem("i1", "p1", "Beef Noodles", 2, 50)
//	if err != nil {
//	    // one or more fields failed validation
//	}
func NewItem(id, productID, name string, quantity int, price float64) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setPrice(price),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// IsEqual compares two items field by field.
func (i Item) IsEqual(other Item) bool {
	return i.id == other.id &&
		i.productID == other.productID &&
		i.name == other.name &&
		i.quantity == other.quantity &&
		i.price == other.price
}

// ID returns the line identifier.
func (i Item) ID() string {
	return i.id
}

// ProductID returns the identifier of the ordered product.
func (i Item) ProductID() string {
	return i.productID
}

// Name returns the product name captured at ordering time.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the number of units ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Price returns the unit price captured at ordering time.
func (i Item) Price() float64 {
	return i.price
}

// TotalPrice returns quantity times unit price.
func (i Item) TotalPrice() float64 {
	return float64(i.quantity) * i.price
}

// WithQuantity returns a copy of the item with a different quantity,
// revalidated. The receiver is unchanged.
func (i Item) WithQuantity(quantity int) (Item, error) {
	return NewItem(i.id, i.productID, i.name, quantity, i.price)
}

func (i *Item) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("item id")
	}
	i.id = id
	return nil
}

func (i *Item) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("item productId")
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("item price",
			fmt.Errorf("%v is negative", price))
	}
	i.price = price
	return nil
}

package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

const (
	// MaxTextLength bounds titles, product names and suppliers, in characters.
	MaxTextLength = 255

	// MaxQuantity is the largest quantity an integer column holds.
	MaxQuantity = math.MaxInt32
)

// LineItem is one requested product: a value object without identity of its own.
type LineItem struct {
	productName string
	supplier    string
	quantity    int
	unitPrice   kernel.Money
	guard       guard.ConstructorGuard
}

// NewLineItem validates and builds a line item.
//
// Rules:
//   - productName must not be blank (surrounding spaces are trimmed)
//   - supplier is optional
//   - productName and supplier are at most MaxTextLength characters
//   - quantity must be between 1 and MaxQuantity
//   - unitPrice must lie in [0, kernel.MaxPrice] with at most kernel.PricePlaces decimals
//
// All violations are reported together.
func NewLineItem(productName, supplier string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	item := LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductName(productName),
		item.setSupplier(supplier),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i LineItem) ProductName() string {
	return i.productName
}

func (i LineItem) Supplier() string {
	return i.supplier
}

func (i LineItem) Quantity() int {
	return i.quantity
}

func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// LineTotal is quantity * unit price at full precision.
func (i LineItem) LineTotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}

func (i *LineItem) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product_name")
	}
	if err := validateTextLength("product_name", name); err != nil {
		return err
	}
	i.productName = name
	return nil
}

func (i *LineItem) setSupplier(supplier string) error {
	supplier = strings.TrimSpace(supplier)
	if err := validateTextLength("supplier", supplier); err != nil {
		return err
	}
	i.supplier = supplier
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d exceeds %d", quantity, MaxQuantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice decimal.Decimal) error {
	price, err := kernel.NewPrice(unitPrice)
	if err != nil {
		return err
	}
	i.unitPrice = price
	return nil
}

// TotalOf sums the line totals and rounds the result to currency precision.
func TotalOf(items []LineItem) kernel.Money {
	total := kernel.ZeroMoney()
	for _, item := range items {
		total = total.Add(item.LineTotal())
	}
	return total.Round()
}

func validateTextLength(paramName, value string) error {
	if n := utf8.RuneCountInString(value); n > MaxTextLength {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%d characters exceed the limit of %d", n, MaxTextLength),
		)
	}
	return nil
}

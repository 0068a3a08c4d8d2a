package commands

import (
	"errors"
	"fmt"
	"strings"

	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItemInput is a requested line before validation.
type LineItemInput struct {
	ProductName string
	Supplier    string
	Quantity    int
	UnitPrice   decimal.Decimal
}

// newLineItems converts inputs and reports every invalid line with its index.
func newLineItems(inputs []LineItemInput) ([]order.LineItem, error) {
	items := make([]order.LineItem, 0, len(inputs))
	var itemErrs []error
	for i, input := range inputs {
		item, err := order.NewLineItem(input.ProductName, input.Supplier, input.Quantity, input.UnitPrice)
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, item)
	}

	if len(itemErrs) > 0 {
		return nil, errors.Join(itemErrs...)
	}
	return items, nil
}

// orderContent holds the validated fields shared by create and edit.
type orderContent struct {
	title         string
	justification string
	items         []order.LineItem
}

func newOrderContent(title, justification string, inputs []LineItemInput) (orderContent, error) {
	items, err := newLineItems(inputs)
	if err != nil {
		if strings.TrimSpace(justification) == "" {
			return orderContent{}, errors.Join(errs.NewValueIsRequiredError("justification"), err)
		}
		return orderContent{}, err
	}
	if err := order.ValidateSubmission(justification, items); err != nil {
		return orderContent{}, err
	}

	return orderContent{
		title:         title,
		justification: justification,
		items:         items,
	}, nil
}

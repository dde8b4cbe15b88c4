package application

import (
	"errors"
	"fmt"

	"github.com/dmartlabs/shopping-api/internal/domains/checkout/domain"
)

var (
	// ErrInvalidInput signals the request violated a domain invariant.
	ErrInvalidInput = errors.New("invalid checkout input")
	// ErrProductsNotFound signals one or more cart references did not resolve.
	ErrProductsNotFound = errors.New("one or more products not found")
)

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrEmptyCart) ||
		errors.Is(err, domain.ErrInvalidQuantity) ||
		errors.Is(err, domain.ErrMissingProductID) ||
		errors.Is(err, domain.ErrBlankCustomer) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return err
}

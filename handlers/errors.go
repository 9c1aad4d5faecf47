package handlers

import (
	"errors"
	"fmt"
)

var errPriceRangeInverted = errors.New("min_price must not exceed max_price")

func errInvalidPrice(param, value string) error {
	return fmt.Errorf("invalid %s value %q", param, value)
}

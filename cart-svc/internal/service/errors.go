package service

import (
	"errors"
	"fmt"
	"net/http"

	"restoran/apiclient"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUnavailable  = errors.New("not available for ordering")
	ErrEmptyCart    = errors.New("cart is empty")
	ErrUpstream     = errors.New("catalog request failed")
)

// upstream classifies an error from the catalog API.
func upstream(what string, err error) error {
	if apiclient.StatusOf(err) == http.StatusNotFound {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("%w: %s: %v", ErrUpstream, what, err)
}

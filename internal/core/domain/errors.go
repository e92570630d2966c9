package domain

import "errors"

var (
	ErrInvalidProduct    = errors.New("invalid product")
	ErrProductNotFound   = errors.New("product not found")
	ErrOutOfStock        = errors.New("product is out of stock")
	ErrInsufficientStock = errors.New("not enough stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrSessionNotFound   = errors.New("session not found")
	ErrInvalidSettings   = errors.New("invalid settings")
	ErrInvalidSnapshot   = errors.New("invalid snapshot")
)

package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")
	ErrTourNotFound       = errors.New("tour not found")
	ErrAlreadySaved       = errors.New("tour already saved")
	ErrCartEmpty          = errors.New("cart is empty")
	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrInvalidImage       = errors.New("invalid image payload")
)

package api

import (
	"math"
	"regexp"
	"unicode/utf8"

	"github.com/zanvidmar/stockpile/internal/model"
)

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRe    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	letterRe   = regexp.MustCompile(`[A-Za-z]`)
	digitRe    = regexp.MustCompile(`[0-9]`)
)

// validateRegistration collects every violated rule instead of stopping at
// the first, so the caller sees the full list.
func validateRegistration(req registerRequest) []string {
	var errs []string

	if n := utf8.RuneCountInString(req.Username); n < 3 || n > 30 {
		errs = append(errs, "Username must be a string between 3 and 30 characters.")
	} else if !usernameRe.MatchString(req.Username) {
		errs = append(errs, "Username can only contain letters, numbers, and underscores.")
	}

	if !emailRe.MatchString(req.Email) {
		errs = append(errs, "Invalid email format.")
	}

	if utf8.RuneCountInString(req.Password) < 8 {
		errs = append(errs, "Password must be at least 8 characters long.")
	} else if !letterRe.MatchString(req.Password) || !digitRe.MatchString(req.Password) {
		errs = append(errs, "Password must contain at least one letter and one number.")
	}

	return errs
}

// validateCreateItem checks all fields of a create request. Description is
// the only optional field.
func validateCreateItem(req itemRequest) []string {
	var errs []string

	if req.ItemName == nil || !itemNameValid(*req.ItemName) {
		errs = append(errs, "Item name must be a string between 3 and 100 characters.")
	}
	if req.Description != nil && utf8.RuneCountInString(*req.Description) > model.DescriptionMaxLen {
		errs = append(errs, "Description must be a string up to 500 characters.")
	}
	if req.Quantity == nil || !quantityValid(*req.Quantity) {
		errs = append(errs, "Quantity must be a non-negative integer.")
	}
	if req.Price == nil || *req.Price < 0 {
		errs = append(errs, "Price must be a non-negative number.")
	}

	return errs
}

// validateUpdateItem checks only the fields present in a partial update.
func validateUpdateItem(req itemRequest) []string {
	var errs []string

	if req.ItemName != nil && !itemNameValid(*req.ItemName) {
		errs = append(errs, "Item name must be a string between 3 and 100 characters.")
	}
	if req.Description != nil && utf8.RuneCountInString(*req.Description) > model.DescriptionMaxLen {
		errs = append(errs, "Description must be a string up to 500 characters.")
	}
	if req.Quantity != nil && !quantityValid(*req.Quantity) {
		errs = append(errs, "Quantity must be a non-negative integer.")
	}
	if req.Price != nil && *req.Price < 0 {
		errs = append(errs, "Price must be a non-negative number.")
	}

	return errs
}

// Length limits count characters, not bytes.
func itemNameValid(name string) bool {
	n := utf8.RuneCountInString(name)
	return n >= model.ItemNameMinLen && n <= model.ItemNameMaxLen
}

// quantityValid accepts non-negative whole numbers. Quantity arrives as a
// float64 so that 5.5 is reported as a validation error rather than a
// malformed body. The upper bound keeps the int64 conversion from
// overflowing.
func quantityValid(q float64) bool {
	return q >= 0 && q == math.Trunc(q) && q < math.MaxInt64
}

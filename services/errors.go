package services

import "errors"

// ErrFoodNotFound marks a dangling food reference inside a request body
// (meal item or household measure pointing at a food that does not exist).
var ErrFoodNotFound = errors.New("referenced food does not exist")

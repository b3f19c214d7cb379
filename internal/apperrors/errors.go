package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientBalance indicates that a balance is too small to cover the requested
// operation. Callers wrap it with the currency code.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrAmountMismatch indicates that the submitted total does not equal rate*quantity
// rounded to two decimal places.
var ErrAmountMismatch = errors.New("total does not match rate multiplied by quantity")

// ErrInvalidOperationType indicates an operation type other than Purchase or Sale.
var ErrInvalidOperationType = errors.New("invalid operation type")

// ErrInvalidDateRange indicates a missing or unparsable from/to bound.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrForbidden indicates the caller is not allowed to perform the operation.
var ErrForbidden = errors.New("operation not allowed")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInsufficientFunds indicates a withdrawal larger than the account balance.
// It is reported to the caller, never treated as fatal.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInactive indicates an operation attempted against a deactivated
// operator account.
var ErrInactive = errors.New("account is inactive")

package service

import "errors"

var (
	ErrReferenceRequired = errors.New("reference is required")
	ErrResultNotFound    = errors.New("payment result not found")
)

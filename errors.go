package ternset

import "errors"

var (
	ErrNilArgument = errors.New("ternset: nil argument")
	ErrRange       = errors.New("ternset: range out of bounds")
	ErrDistance    = errors.New("ternset: negative distance")
	ErrRank        = errors.New("ternset: rank out of bounds")
	ErrCapacity    = errors.New("ternset: node capacity exhausted")
)

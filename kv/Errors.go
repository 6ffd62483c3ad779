package kv

import "errors"

var ErrDuplicateKey = errors.New("key already exists in tree")
var ErrUnknownOrder = errors.New("unknown traversal order")
var ErrInvalidKey = errors.New("key is not a valid integer")

package services

import "errors"

var (
	ErrCatNotFound   = errors.New("cat not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrDuplicateName = errors.New("a cat with this name already exists")
)

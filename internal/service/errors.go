// Package service implements the business operations over the store
// capability interfaces. Services never depend on a concrete storage type,
// so any implementation of the capability set can back them.
package service

import "errors"

// ErrInvalidCredentials is returned when a login attempt fails because the
// login ID is unknown or the password does not match. The two cases are
// deliberately indistinguishable to callers so login IDs cannot be
// enumerated.
var ErrInvalidCredentials = errors.New("invalid credentials")

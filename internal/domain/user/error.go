package user

import "errors"

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidAuth  = errors.New("invalid credentials")
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidRole  = errors.New("unknown role")
	ErrEmailTaken   = errors.New("email already registered")

	// ErrForbidden: the acting user lacks the role required for the
	// operation.
	ErrForbidden = errors.New("forbidden")

	// ErrSelfDemotion: an admin may not lower their own role, even when
	// other admins exist.
	ErrSelfDemotion = errors.New("admins cannot change their own role")

	// ErrLastAdmin: the target is the only remaining admin; demoting them
	// would leave the system without one.
	ErrLastAdmin = errors.New("cannot demote the last admin")
)

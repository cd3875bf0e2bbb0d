// Package repository implements data access for users and appointments on
// top of database/sql. Sentinel errors let handlers translate storage
// failures into the right HTTP responses without inspecting driver errors.
package repository

import "errors"

// ErrEmailExists is returned when a user insert violates the unique email
// constraint. Handlers translate this into HTTP 409.
var ErrEmailExists = errors.New("email already exists")

// ErrNotFound is returned when a lookup by id matches no row. Handlers
// translate this into HTTP 404.
var ErrNotFound = errors.New("not found")

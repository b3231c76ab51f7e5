package domain

import (
	"context"
	"mime/multipart"

	"visorhr.com/internal/model"
)

// AccountService defines credential-store operations.
type AccountService interface {
	// Register creates an account. The first account ever created is
	// elevated to staff + superuser.
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	// Authenticate verifies a username/password pair.
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	// UserExists reports whether a username is already taken.
	UserExists(ctx context.Context, username string) (bool, error)
	// IsAdmin reports whether the user holds the admin role.
	IsAdmin(user *model.User) bool
}

// EmployeeInput is the raw save payload before normalization. Fields holds
// the decoded body (JSON object or form values) keyed by column name.
type EmployeeInput struct {
	Fields    map[string]any
	Photo     *multipart.FileHeader
	Signature *multipart.FileHeader
	UserID    uint64
}

// EmployeeService defines the employee-record operations.
type EmployeeService interface {
	// Save normalizes the payload and inserts a new record. Every call
	// inserts; there is no update-in-place path.
	Save(ctx context.Context, in *EmployeeInput) (*model.EmpPersonal, error)
}

package validate

// This package adds struct and field validation as a thin wrapper around the go-playground/validator package.
//
// e.g. internal/config/config.go
//   type Data struct {
// 		 ...
//       DefaultSeconds	int	`yaml:"default_seconds,omitempty" validate:"omitempty,gt=0"`
//       InstallUUID	string	`yaml:"install_uuid,omitempty" validate:"omitempty,uuid_rfc4122"`
//   }
//
// This allows for consistent validation of the gt and uuid_rfc4122 tags.

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

// validatorInst is a shared validator for the application, guarded by
// validatorOnce so it is initialized once and reused to avoid repeated
// allocations.
//
//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// get returns a process-wide singleton of the validator.
func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
		// Built-in tags include: gt, numeric, uuid_rfc4122, etc.
		// We can register custom tags here in the future if needed.
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}

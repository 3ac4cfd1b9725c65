// Package validator provides the shared payload validator. Item payloads are
// checked locally before being sent so a scenario failing on a 400 is known
// to be probing the service's validation, not tripping over a broken fixture.
package validator

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// GetValidator returns the singleton validator instance.
func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})

	return validate
}

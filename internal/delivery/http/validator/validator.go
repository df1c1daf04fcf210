// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "homestay/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for Echo.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the Echo request validator.
func New() *echoValidator {
	return &echoValidator{validate: playground.New()}
}

// Validate checks the bound request struct against its validate tags.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}

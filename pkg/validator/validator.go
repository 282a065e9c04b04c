// Package validator wraps go-playground/validator with the custom rules the
// request payloads rely on.
package validator

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse describes one failed field validation.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       string
}

var validate = validator.New()

func init() {
	// uuid_required rejects the zero UUID, which a plain "required" tag
	// would let through since uuid.Nil is a non-empty array value.
	validate.RegisterValidation("uuid_required", func(fl validator.FieldLevel) bool {
		id, ok := fl.Field().Interface().(uuid.UUID)
		return ok && id != uuid.Nil
	})
}

// ValidateStruct runs the struct's validate tags and returns one entry per
// failed field, in declaration order. An empty result means the payload is
// valid.
func ValidateStruct(data interface{}) []*ErrorResponse {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var failures []*ErrorResponse
	for _, fieldErr := range err.(validator.ValidationErrors) {
		failures = append(failures, &ErrorResponse{
			FailedField: fieldErr.StructNamespace(),
			Tag:         fieldErr.Tag(),
			Value:       fieldErr.Param(),
		})
	}
	return failures
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/MKhiriev/go-marketplace/models"
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements [Validator] for the API request models
// (RegisterRequest, LoginRequest, ProductInput, ProductUpdate).
//
// Field names in reported errors are the JSON names of the fields, so they
// match what the client sent.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a ready-to-use RequestValidator.
// The underlying validator caches struct metadata and is safe for
// concurrent use.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation(tagPasswordBytes, passwordFitsBcrypt)
	v.RegisterStructValidation(productUpdateFields, models.ProductUpdate{})

	return &RequestValidator{validate: v}
}

// Validate checks value against its `validate` tags. When fields are given,
// only those struct fields (Go names, e.g. "Email") are checked.
//
// Returns nil, a *ValidationError listing every invalid field, or an error
// wrapping [ErrUnsupportedType] when value is not a struct.
func (v *RequestValidator) Validate(ctx context.Context, value any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, value, fields...)
	} else {
		err = v.validate.StructCtx(ctx, value)
	}
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("unexpected validation failure: %w", err)
	}

	validationErr := &ValidationError{Fields: make([]models.FieldError, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		validationErr.Fields = append(validationErr.Fields, models.FieldError{
			Field:   fe.Field(),
			Message: messageFor(fe),
		})
	}

	return validationErr
}

func jsonFieldName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

// passwordFitsBcrypt reports whether the password is short enough for
// bcrypt, which works on bytes rather than characters.
func passwordFitsBcrypt(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= models.MaxPasswordBytes
}

// productUpdateFields validates the present fields of a partial update with
// the same rules as ProductInput. Absent fields are skipped, and an explicit
// null is rejected for every field except image.
func productUpdateFields(sl validator.StructLevel) {
	update, ok := sl.Current().Interface().(models.ProductUpdate)
	if !ok {
		return
	}

	checkOptional(sl, update.Title, "title", "Title", "min=2,max=200", false)
	checkOptional(sl, update.Description, "description", "Description", "min=10,max=2000", false)
	checkOptional(sl, update.Price, "price", "Price", "gt=0", false)
	checkOptional(sl, update.Image, "image", "Image", "http_url", true)
	checkOptional(sl, update.Category, "category", "Category", "max=50", false)
}

func checkOptional[T any](sl validator.StructLevel, o models.Optional[T], field, structField, rules string, nullable bool) {
	switch {
	case o.Null:
		if !nullable {
			sl.ReportError(o.Value, field, structField, tagNotNull, "")
		}
	case o.Present():
		err := sl.Validator().Var(o.Value, rules)
		if err == nil {
			return
		}
		tag := rules
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			tag = fieldErrs[0].Tag()
		}
		sl.ReportError(o.Value, field, structField, tag, "")
	}
}

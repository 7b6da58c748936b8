package validators

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// tagNotNull is reported by struct-level rules when a partial update sends
// an explicit null for a field that cannot be cleared.
const tagNotNull = "notnull"

// tagPasswordBytes limits a password to what bcrypt can hash.
const tagPasswordBytes = "passwordbytes"

// fieldMessages maps a struct namespace (Type.Field) to the message shown to
// API clients. One message covers every rule declared on the field.
var fieldMessages = map[string]string{
	"RegisterRequest.Username": "Username must be 3-30 characters",
	"RegisterRequest.Email":    "Valid email is required",
	"RegisterRequest.Password": "Password must be at least 6 characters and at most 72 bytes",

	"LoginRequest.Email":    "Valid email is required",
	"LoginRequest.Password": "Password is required",

	"ProductInput.Title":       "Title must be 2-200 characters",
	"ProductInput.Description": "Description must be 10-2000 characters",
	"ProductInput.Price":       "Price must be greater than 0",
	"ProductInput.Image":       "Image must be a valid URL",
	"ProductInput.Category":    "Category must be at most 50 characters",

	"ProductUpdate.Title":       "Title must be 2-200 characters",
	"ProductUpdate.Description": "Description must be 10-2000 characters",
	"ProductUpdate.Price":       "Price must be greater than 0",
	"ProductUpdate.Image":       "Image must be a valid URL",
	"ProductUpdate.Category":    "Category must be at most 50 characters",
}

func messageFor(fe validator.FieldError) string {
	if fe.Tag() == tagNotNull {
		return fmt.Sprintf("%s cannot be null", fe.StructField())
	}

	if msg, ok := fieldMessages[fe.StructNamespace()]; ok {
		return msg
	}

	return fmt.Sprintf("%s is invalid", fe.Field())
}

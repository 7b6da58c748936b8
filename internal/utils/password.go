// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by CheckPassword when the password does not
// match the stored hash.
var ErrPasswordMismatch = errors.New("password does not match hash")

const maxBcryptPasswordBytes = 72

// HashPassword returns the bcrypt hash of password using the given cost.
// The salt is generated by bcrypt and embedded in the returned hash.
//
// Example usage:
//
//	hash, err := utils.HashPassword("password123", 12)
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPassword compares password against a bcrypt hash.
//
// Returns nil on match, [ErrPasswordMismatch] when the password is wrong,
// or a wrapped bcrypt error when hash is malformed.
func CheckPassword(hash, password string) error {
	// longer passwords could never have been hashed
	if len(password) > maxBcryptPasswordBytes {
		return ErrPasswordMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}

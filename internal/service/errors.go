package service

import (
	"errors"

	"github.com/MKhiriev/go-marketplace/internal/app"
)

var (
	ErrUserAlreadyExists  = errors.New(app.MsgUserAlreadyExists)
	ErrInvalidCredentials = errors.New(app.MsgInvalidCredentials)

	ErrTokenIsExpired          = errors.New(app.MsgTokenIsExpired)
	ErrTokenIsExpiredOrInvalid = errors.New(app.MsgTokenIsExpiredOrInvalid)
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrProductNotFound           = errors.New(app.MsgProductNotFound)
	ErrNotAllowedToUpdateProduct = errors.New(app.MsgNotAllowedToUpdateProduct)
	ErrNotAllowedToDeleteProduct = errors.New(app.MsgNotAllowedToDeleteProduct)

	ErrFavoriteAlreadyExists = errors.New(app.MsgFavoriteAlreadyExists)
	ErrFavoriteNotFound      = errors.New(app.MsgFavoriteNotFound)

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrStorageUnavailable    = errors.New("storage is unavailable")
)

// Client-side errors.
var (
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrNotAuthenticated     = errors.New(app.MsgNoToken)
	ErrInvalidRequest       = errors.New("invalid request")
	ErrTooManyRequests      = errors.New("too many requests")
	ErrServerUnavailable    = errors.New("server unavailable")
	ErrUnexpectedServerFail = errors.New(app.MsgInternalServerError)
)

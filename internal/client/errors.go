package client

import "errors"

var (
	errNoServices       = errors.New("client services are not provided")
	errNoCommand        = errors.New("no command given")
	errUnknownCommand   = errors.New("unknown command")
	errInvalidProductID = errors.New("product id must be a positive integer")
	errNothingToUpdate  = errors.New("at least one field must be provided")
	errLoginRequired    = errors.New("you are not logged in, run `login` first")
)

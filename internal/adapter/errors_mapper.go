package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-marketplace/internal/validators"
	"github.com/MKhiriev/go-marketplace/models"
)

// errorBody covers both error shapes the API responds with.
type errorBody struct {
	Error  string              `json:"error"`
	Errors []models.FieldError `json:"errors"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var body errorBody
	raw := strings.TrimSpace(string(resp.Body()))
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		body.Error = raw
	}

	if resp.StatusCode() == http.StatusBadRequest && len(body.Errors) > 0 {
		return fmt.Errorf("%w: %w", ErrBadRequest, &validators.ValidationError{Fields: body.Errors})
	}

	msg := body.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, msg)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, msg)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, msg)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrTooManyRequests, msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, msg)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, msg)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
	}
}

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-marketplace/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func requireValidationError(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	return ve
}

func messagesByField(ve *ValidationError) map[string]string {
	out := make(map[string]string, len(ve.Fields))
	for _, f := range ve.Fields {
		out[f.Field] = f.Message
	}
	return out
}

// ── RegisterRequest ───────────────────────────────────────────────────────────

func TestValidate_RegisterRequest(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr map[string]string
	}{
		{
			name: "valid",
			req:  models.RegisterRequest{Username: "john_doe", Email: "john@example.com", Password: "password123"},
		},
		{
			name:    "username too short",
			req:     models.RegisterRequest{Username: "jo", Email: "john@example.com", Password: "password123"},
			wantErr: map[string]string{"username": "Username must be 3-30 characters"},
		},
		{
			name:    "username too long",
			req:     models.RegisterRequest{Username: strings.Repeat("a", 31), Email: "john@example.com", Password: "password123"},
			wantErr: map[string]string{"username": "Username must be 3-30 characters"},
		},
		{
			name:    "bad email",
			req:     models.RegisterRequest{Username: "john", Email: "not-an-email", Password: "password123"},
			wantErr: map[string]string{"email": "Valid email is required"},
		},
		{
			name:    "short password",
			req:     models.RegisterRequest{Username: "john", Email: "john@example.com", Password: "12345"},
			wantErr: map[string]string{"password": "Password must be at least 6 characters and at most 72 bytes"},
		},
		{
			name: "72-byte password",
			req:  models.RegisterRequest{Username: "john", Email: "john@example.com", Password: strings.Repeat("a", 72)},
		},
		{
			name:    "password longer than bcrypt accepts",
			req:     models.RegisterRequest{Username: "john", Email: "john@example.com", Password: strings.Repeat("a", 80)},
			wantErr: map[string]string{"password": "Password must be at least 6 characters and at most 72 bytes"},
		},
		{
			name:    "multibyte password counted in bytes",
			req:     models.RegisterRequest{Username: "john", Email: "john@example.com", Password: strings.Repeat("é", 40)},
			wantErr: map[string]string{"password": "Password must be at least 6 characters and at most 72 bytes"},
		},
		{
			name: "everything wrong",
			req:  models.RegisterRequest{},
			wantErr: map[string]string{
				"username": "Username must be 3-30 characters",
				"email":    "Valid email is required",
				"password": "Password must be at least 6 characters and at most 72 bytes",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			ve := requireValidationError(t, err)
			assert.Equal(t, tt.wantErr, messagesByField(ve))
		})
	}
}

// ── LoginRequest ──────────────────────────────────────────────────────────────

func TestValidate_LoginRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@b.io", Password: "x"}))

	ve := requireValidationError(t, v.Validate(context.Background(), models.LoginRequest{Email: "a@b.io"}))
	assert.Equal(t, map[string]string{"password": "Password is required"}, messagesByField(ve))
}

// ── ProductInput ──────────────────────────────────────────────────────────────

func TestValidate_ProductInput(t *testing.T) {
	v := NewRequestValidator()
	valid := func() models.ProductInput {
		return models.ProductInput{
			Title:       "Headphones",
			Description: "Great sound quality headphones",
			Price:       99.99,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*models.ProductInput)
		wantErr map[string]string
	}{
		{name: "valid without image", mutate: func(*models.ProductInput) {}},
		{name: "valid with image", mutate: func(p *models.ProductInput) { p.Image = "https://images.example.com/a.png" }},
		{name: "title too short", mutate: func(p *models.ProductInput) { p.Title = "H" }, wantErr: map[string]string{"title": "Title must be 2-200 characters"}},
		{name: "description too short", mutate: func(p *models.ProductInput) { p.Description = "short" }, wantErr: map[string]string{"description": "Description must be 10-2000 characters"}},
		{name: "zero price", mutate: func(p *models.ProductInput) { p.Price = 0 }, wantErr: map[string]string{"price": "Price must be greater than 0"}},
		{name: "negative price", mutate: func(p *models.ProductInput) { p.Price = -1 }, wantErr: map[string]string{"price": "Price must be greater than 0"}},
		{name: "bad image", mutate: func(p *models.ProductInput) { p.Image = "not a url" }, wantErr: map[string]string{"image": "Image must be a valid URL"}},
		{name: "non-http image", mutate: func(p *models.ProductInput) { p.Image = "mailto:someone@example.com" }, wantErr: map[string]string{"image": "Image must be a valid URL"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid()
			tt.mutate(&in)
			err := v.Validate(context.Background(), in)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, messagesByField(requireValidationError(t, err)))
		})
	}
}

// ── ProductUpdate ─────────────────────────────────────────────────────────────

func TestValidate_ProductUpdate(t *testing.T) {
	v := NewRequestValidator()

	tests := []struct {
		name    string
		update  models.ProductUpdate
		wantErr map[string]string
	}{
		{name: "empty update", update: models.ProductUpdate{}},
		{name: "valid partial", update: models.ProductUpdate{Price: models.Some(10.0)}},
		{name: "image cleared with null", update: models.ProductUpdate{Image: models.Null[string]()}},
		{
			name:    "invalid present value",
			update:  models.ProductUpdate{Title: models.Some("x")},
			wantErr: map[string]string{"title": "Title must be 2-200 characters"},
		},
		{
			name:    "invalid price",
			update:  models.ProductUpdate{Price: models.Some(0.0)},
			wantErr: map[string]string{"price": "Price must be greater than 0"},
		},
		{
			name:   "present empty title and description",
			update: models.ProductUpdate{Title: models.Some(""), Description: models.Some("")},
			wantErr: map[string]string{
				"title":       "Title must be 2-200 characters",
				"description": "Description must be 10-2000 characters",
			},
		},
		{
			name:    "negative price",
			update:  models.ProductUpdate{Price: models.Some(-3.5)},
			wantErr: map[string]string{"price": "Price must be greater than 0"},
		},
		{
			name:    "present empty image",
			update:  models.ProductUpdate{Image: models.Some("")},
			wantErr: map[string]string{"image": "Image must be a valid URL"},
		},
		{
			name:    "long category",
			update:  models.ProductUpdate{Category: models.Some(strings.Repeat("c", 51))},
			wantErr: map[string]string{"category": "Category must be at most 50 characters"},
		},
		{name: "empty category falls back to default later", update: models.ProductUpdate{Category: models.Some("")}},
		{
			name:    "null title rejected",
			update:  models.ProductUpdate{Title: models.Null[string]()},
			wantErr: map[string]string{"title": "Title cannot be null"},
		},
		{
			name:   "null price and category rejected",
			update: models.ProductUpdate{Price: models.Null[float64](), Category: models.Null[string]()},
			wantErr: map[string]string{
				"price":    "Price cannot be null",
				"category": "Category cannot be null",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.update)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantErr, messagesByField(requireValidationError(t, err)))
		})
	}
}

// ── Normalize then Validate ───────────────────────────────────────────────────

func TestValidate_AfterNormalize(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	t.Run("padded username counts trimmed length", func(t *testing.T) {
		req := models.RegisterRequest{Username: "  ab  ", Email: "ab@example.com", Password: "password123"}
		req.Normalize()

		ve := requireValidationError(t, v.Validate(ctx, req))
		assert.Equal(t, map[string]string{"username": "Username must be 3-30 characters"}, messagesByField(ve))
	})

	t.Run("blank title and padded short description", func(t *testing.T) {
		in := models.ProductInput{Title: "  ", Description: "          x", Price: 1}
		in.Normalize()

		ve := requireValidationError(t, v.Validate(ctx, in))
		assert.Equal(t, map[string]string{
			"title":       "Title must be 2-200 characters",
			"description": "Description must be 10-2000 characters",
		}, messagesByField(ve))
	})

	t.Run("whitespace-only update title", func(t *testing.T) {
		update := models.ProductUpdate{Title: models.Some("   ")}
		update.Normalize()

		ve := requireValidationError(t, v.Validate(ctx, update))
		assert.Equal(t, map[string]string{"title": "Title must be 2-200 characters"}, messagesByField(ve))
	})

	t.Run("padded valid values pass trimmed", func(t *testing.T) {
		in := models.ProductInput{Title: "  Lamp ", Description: "  A very bright lamp ", Price: 5, Category: " home "}
		in.Normalize()

		require.NoError(t, v.Validate(ctx, in))
		assert.Equal(t, "Lamp", in.Title)
		assert.Equal(t, "A very bright lamp", in.Description)
		assert.Equal(t, "home", in.Category)
	})
}

// ── field scoping and unsupported types ──────────────────────────────────────

func TestValidate_PartialFields(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), models.RegisterRequest{Email: "bad"}, "Email")
	ve := requireValidationError(t, err)
	assert.Equal(t, map[string]string{"email": "Valid email is required"}, messagesByField(ve))
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()

	err := v.Validate(context.Background(), "string")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.False(t, errors.Is(err, ErrValidation))
}

func TestValidationError_Error(t *testing.T) {
	err := NewValidationError("price", "Price must be greater than 0")
	assert.Equal(t, "validation failed: Price must be greater than 0", err.Error())
	assert.ErrorIs(t, err, ErrValidation)
}

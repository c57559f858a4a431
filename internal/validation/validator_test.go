package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/readerly/readerly-server/internal/errors"
	"github.com/readerly/readerly-server/internal/validation"
)

type addRequest struct {
	BookID  string `json:"book_id" validate:"required"`
	Title   string `json:"title" validate:"required,max=512"`
	Status  string `json:"status" validate:"required,shelfstatus"`
	Content string `json:"content" validate:"omitempty,min=1"`
}

func TestValidate_Valid(t *testing.T) {
	v := validation.New()

	err := v.Validate(addRequest{
		BookID: "b1",
		Title:  "Dune",
		Status: "reading",
	})
	assert.NoError(t, err)
}

func TestValidate_MissingFields(t *testing.T) {
	v := validation.New()

	err := v.Validate(addRequest{})
	require.Error(t, err)
	assert.True(t, domainerrors.Is(err, domainerrors.ErrValidation))

	var domainErr *domainerrors.Error
	require.True(t, domainerrors.As(err, &domainErr))

	// Field names come from JSON tags.
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "book_id")
	assert.Contains(t, details, "title")
	assert.Equal(t, "is required", details["book_id"])
}

func TestValidate_BadShelfStatus(t *testing.T) {
	v := validation.New()

	err := v.Validate(addRequest{BookID: "b1", Title: "Dune", Status: "archived"})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.True(t, domainerrors.As(err, &domainErr))
	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details["status"], "valid shelf status")
}

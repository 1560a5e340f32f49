package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("handler: %w", New(Forbidden, "Unauthorized to view this order"))

	assert.Equal(t, Forbidden, KindOf(err))
	assert.True(t, Is(err, Forbidden))
	assert.False(t, Is(err, NotFound))
	assert.Equal(t, Internal, KindOf(errors.New("boom")))
}

func TestPublicMessage_HidesInternalCauses(t *testing.T) {
	internal := Wrap(Internal, "failed to save order", errors.New("connection refused"))
	assert.Equal(t, "Failed to create order", PublicMessage(internal, "Failed to create order"))
	assert.Equal(t, "Failed to create order", PublicMessage(errors.New("raw"), "Failed to create order"))

	classified := Wrap(NotFound, "Order not found", errors.New("record not found"))
	assert.Equal(t, "Order not found", PublicMessage(classified, "x"))
	assert.Contains(t, classified.Error(), "record not found")
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		Validation:         http.StatusBadRequest,
		DuplicateEmail:     http.StatusBadRequest,
		InvalidCredentials: http.StatusUnauthorized,
		TokenExpired:       http.StatusUnauthorized,
		NotFound:           http.StatusNotFound,
		BuyerNotFound:      http.StatusNotFound,
		Forbidden:          http.StatusForbidden,
		ReasonRequired:     http.StatusBadRequest,
		ProfileIncomplete:  http.StatusBadRequest,
		Internal:           http.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), kind.String())
	}
}

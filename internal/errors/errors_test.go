package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/will/chargify/internal/types"
)

func TestUnexpectedResponseError_Message(t *testing.T) {
	err := NewUnexpectedResponse("get customer", http.StatusOK, stderrors.New("invalid character '<'"), []byte("<html>oops</html>"))

	assert.Contains(t, err.Error(), "invalid character '<'")
	assert.Contains(t, err.Error(), "<html>oops</html>")
	assert.Contains(t, err.Error(), "get customer")
	assert.True(t, IsUnexpectedResponse(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsUnexpectedResponse(stderrors.New("other")))
}

func TestMissingEntity(t *testing.T) {
	err := MissingEntity("get product", http.StatusOK, types.Envelope{})
	assert.ErrorIs(t, err, types.ErrNotFound)

	err = MissingEntity("get product", http.StatusNotFound, types.Envelope{})
	assert.ErrorIs(t, err, types.ErrNotFound)
	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	env := types.Envelope{"errors": []byte(`["Access denied"]`)}
	err = MissingEntity("get product", http.StatusForbidden, env)
	assert.NotErrorIs(t, err, types.ErrNotFound)
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{"Access denied"}, apiErr.Messages)
	assert.Equal(t, "get product: HTTP 403: Access denied", err.Error())
}

func TestNewNetworkError_Unwraps(t *testing.T) {
	cause := stderrors.New("dial tcp: connection refused")
	err := NewNetworkError("list products", cause)
	assert.ErrorIs(t, err, cause)
}

func TestIsSuccess(t *testing.T) {
	assert.True(t, IsSuccess(200))
	assert.True(t, IsSuccess(201))
	assert.False(t, IsSuccess(302))
	assert.False(t, IsSuccess(422))
}

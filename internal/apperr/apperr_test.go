package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf_Direct(t *testing.T) {
	err := InvalidInput("URL is required")
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.Equal(t, "URL is required", err.Error())
}

func TestKindOf_WrappedChain(t *testing.T) {
	base := errors.New("connection refused")
	err := FetchFailed(base, "fetcher: get")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.Equal(t, KindFetchFailed, KindOf(wrapped))
	assert.True(t, Is(wrapped, KindFetchFailed))
	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "connection refused")
}

func TestKindOf_Unclassified(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
	assert.False(t, Is(nil, KindParseFailed))
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(KindParseFailed, nil, "ignored"))
	assert.NoError(t, ExternalAPIFailed(nil, "ignored"))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindInvalidInput))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindFetchFailed))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(KindParseFailed))
	assert.Equal(t, http.StatusOK, HTTPStatus(KindExternalAPIFailed))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(KindUnknown))
}

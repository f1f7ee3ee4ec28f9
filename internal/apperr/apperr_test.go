package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMapping(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, Status(NotFound("user not found")))
	assert.Equal(t, http.StatusBadRequest, Status(BadRequest("no matching books found")))
	assert.Equal(t, http.StatusConflict, Status(Conflict("book with id %d is not available", 7)))
	assert.Equal(t, http.StatusInternalServerError, Status(errors.New("boom")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("create loan: %w", NotFound("loan with id %d not found", 3))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, Status(err))
}

func TestReasonIsMessage(t *testing.T) {
	err := Conflict("book with id %d is not available", 12)
	assert.EqualError(t, err, "book with id 12 is not available")
}

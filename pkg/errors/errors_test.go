package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("不带底层错误", func(t *testing.T) {
		err := NotFound("Book with ID 3 not found")
		assert.Equal(t, "[404] Book with ID 3 not found", err.Error())
	})

	t.Run("带底层错误", func(t *testing.T) {
		err := Wrap(errors.New("disk I/O error"), "Failed to fetch books")
		assert.Equal(t, "[500] Failed to fetch books: disk I/O error", err.Error())
		assert.Equal(t, http.StatusInternalServerError, err.Status())
	})
}

func TestInternal(t *testing.T) {
	t.Run("nil保持nil", func(t *testing.T) {
		assert.NoError(t, Internal(nil, "Failed to add book"))
	})

	t.Run("业务错误原样返回", func(t *testing.T) {
		notFound := NotFound("There were no books")
		got := Internal(fmt.Errorf("wrapped: %w", notFound), "Failed to fetch top books")
		assert.True(t, IsNotFound(got))
	})

	t.Run("普通错误包装为500", func(t *testing.T) {
		cause := errors.New("connection refused")
		got := Internal(cause, "Failed to add review")

		appErr := GetAppError(got)
		require.NotNil(t, appErr)
		assert.Equal(t, ErrCodeInternal, appErr.Code)
		assert.Equal(t, "Failed to add review", appErr.Message)
		assert.ErrorIs(t, got, cause)
	})
}

func TestGetAppError(t *testing.T) {
	appErr := GetAppError(errors.New("boom"))
	assert.Equal(t, ErrCodeInternal, appErr.Code)
	assert.Equal(t, "Internal server error", appErr.Message)

	bad := BadRequest("Author name not provided")
	assert.Same(t, bad, GetAppError(bad))
	assert.Equal(t, http.StatusBadRequest, bad.Status())
}

func TestStatus_UnknownCode(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, New(40402, "legacy").Status())
}

package pagescan_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/pagescan"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("nil error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", pagescan.ErrorCode(nil))
	})

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := pagescan.Errorf(pagescan.ENOTFOUND, "scan not found")
		assert.Equal(t, pagescan.ENOTFOUND, pagescan.ErrorCode(err))
	})

	t.Run("wrapped application error", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", pagescan.Errorf(pagescan.EINVALID, "bad input"))
		assert.Equal(t, pagescan.EINVALID, pagescan.ErrorCode(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, pagescan.EINTERNAL, pagescan.ErrorCode(errors.New("boom")))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("application error", func(t *testing.T) {
		t.Parallel()
		err := pagescan.Errorf(pagescan.EINVALID, "scan source URL required")
		assert.Equal(t, "scan source URL required", pagescan.ErrorMessage(err))
	})

	t.Run("non-application error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", pagescan.ErrorMessage(errors.New("boom")))
	})
}

package pagemeta_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/pagemeta"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagemeta.Errorf(pagemeta.EINVALID, "input is not valid %s", "UTF-8")

	assert.Equal(t, pagemeta.EINVALID, pagemeta.ErrorCode(err))
	assert.Equal(t, "input is not valid UTF-8", pagemeta.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagemeta.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pagemeta.EINTERNAL, pagemeta.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagemeta.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", pagemeta.ErrorMessage(errors.New("boom")))
}

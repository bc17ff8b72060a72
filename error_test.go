package wikidoc_test

import (
	"errors"
	"testing"

	"github.com/ompkit/wikidoc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wikidoc.Errorf(wikidoc.ENOTFOUND, "session %q not found", "test")

	assert.Equal(t, wikidoc.ENOTFOUND, wikidoc.ErrorCode(err))
	assert.Equal(t, "session \"test\" not found", wikidoc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wikidoc.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wikidoc.EINTERNAL, wikidoc.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wikidoc.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", wikidoc.ErrorMessage(errors.New("boom")))
}

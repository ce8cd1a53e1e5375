package errext_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grafana/textview/internal/errext"
	"github.com/grafana/textview/internal/errext/exitcodes"
)

func assertHasHint(t *testing.T, err error, hint string) {
	t.Helper()
	var typederr errext.HasHint
	require.ErrorAs(t, err, &typederr)
	assert.Equal(t, hint, typederr.Hint())
	assert.Contains(t, err.Error(), typederr.Error())
}

func assertHasExitCode(t *testing.T, err error, code exitcodes.ExitCode) {
	t.Helper()
	var typederr errext.HasExitCode
	require.ErrorAs(t, err, &typederr)
	assert.Equal(t, code, typederr.ExitCode())
	assert.Contains(t, err.Error(), typederr.Error())
}

func TestErrextHelpers(t *testing.T) {
	t.Parallel()

	const testExitCode exitcodes.ExitCode = 13
	assert.Nil(t, errext.WithHint(nil, "test hint"))
	assert.Nil(t, errext.WithExitCodeIfNone(nil, testExitCode))

	errBase := errors.New("base error")
	errBaseWithHint := errext.WithHint(errBase, "test hint")
	assertHasHint(t, errBaseWithHint, "test hint")

	errBaseWithTwoHints := errext.WithHint(errBaseWithHint, "better hint")
	assertHasHint(t, errBaseWithTwoHints, "better hint (test hint)")

	errWrapperWithHints := fmt.Errorf("wrapper error: %w", errBaseWithTwoHints)
	assertHasHint(t, errWrapperWithHints, "better hint (test hint)")

	errWithExitCode := errext.WithExitCodeIfNone(errWrapperWithHints, testExitCode)
	assertHasHint(t, errWithExitCode, "better hint (test hint)")
	assertHasExitCode(t, errWithExitCode, testExitCode)

	// A second WithExitCodeIfNone call is a no-op: the first code sticks.
	errWithExitCodeAgain := errext.WithExitCodeIfNone(errWithExitCode, exitcodes.ExitCode(27))
	assertHasExitCode(t, errWithExitCodeAgain, testExitCode)

	finalErr := fmt.Errorf("woot: %w", errWithExitCodeAgain)
	assert.Equal(t, "woot: wrapper error: base error", finalErr.Error())
	assertHasHint(t, finalErr, "better hint (test hint)")
	assertHasExitCode(t, finalErr, testExitCode)
}

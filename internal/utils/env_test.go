package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindProjectRoot(t *testing.T) {
	root, err := FindProjectRoot()
	require.NoError(t, err, "tests run inside the module, go.mod must be findable")
	assert.NotEmpty(t, root)
}

func TestEnv(t *testing.T) {
	t.Setenv("MODELHUB_TEST_ENV_KEY", "set")
	assert.Equal(t, "set", Env("MODELHUB_TEST_ENV_KEY", "fallback"))
	assert.Equal(t, "fallback", Env("MODELHUB_TEST_ENV_KEY_MISSING", "fallback"))
}

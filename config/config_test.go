package config_test

import (
	"testing"
	"theatre_manager/config"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")
	assert.Equal(t, "value", config.Config("SOME_TEST_KEY"))
	assert.Equal(t, "", config.Config("SOME_UNSET_TEST_KEY"))
}

func TestConfigOr(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")
	assert.Equal(t, "value", config.ConfigOr("SOME_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", config.ConfigOr("SOME_UNSET_TEST_KEY", "fallback"))
}

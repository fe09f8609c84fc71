package utils_test

import (
	"testing"
	"theatre_manager/utils"

	"github.com/stretchr/testify/assert"
)

func TestStringPtr(t *testing.T) {
	assert.Nil(t, utils.StringPtr(""))

	p := utils.StringPtr("ref-123")
	if assert.NotNil(t, p) {
		assert.Equal(t, "ref-123", *p)
	}
}

func TestPtr(t *testing.T) {
	u := utils.Ptr(uint(42))
	if assert.NotNil(t, u) {
		assert.Equal(t, uint(42), *u)
	}
}

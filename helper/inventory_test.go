package helper_test

import (
	"testing"
	"theatre_manager/helper"

	"github.com/stretchr/testify/assert"
)

func TestInsufficientSeatsError(t *testing.T) {
	err := &helper.InsufficientSeatsError{Remaining: 3}
	assert.EqualError(t, err, "only 3 seats available")

	err = &helper.InsufficientSeatsError{Remaining: 0}
	assert.EqualError(t, err, "only 0 seats available")
}

package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, isDuplicateKeyError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, isDuplicateKeyError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_showtime_slot" (SQLSTATE 23505)`)))
	assert.False(t, isDuplicateKeyError(errors.New("connection refused")))
}

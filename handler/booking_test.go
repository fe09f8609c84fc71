package handler_test

import (
	"testing"
	"theatre_manager/handler"
	"theatre_manager/model"
	"theatre_manager/utils"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeBookings(t *testing.T) {
	adminId := utils.Ptr(uint(7))
	bookings := []model.Booking{
		{BookedByAdmin: true, AdminBookedBy: adminId},
		{BookedByAdmin: false, AdminBookedBy: adminId},
		{BookedByAdmin: false, AdminBookedBy: nil},
	}

	sanitized := handler.SanitizeBookings(bookings)

	assert.Equal(t, adminId, sanitized[0].AdminBookedBy)
	assert.Nil(t, sanitized[1].AdminBookedBy)
	assert.Nil(t, sanitized[2].AdminBookedBy)
}

func TestSanitizeBookings_Empty(t *testing.T) {
	assert.Empty(t, handler.SanitizeBookings(nil))
	assert.Empty(t, handler.SanitizeBookings([]model.Booking{}))
}

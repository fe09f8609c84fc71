package helper_test

import (
	"testing"
	"theatre_manager/constants"
	"theatre_manager/helper"
	"theatre_manager/model"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotal(t *testing.T) {
	tests := []struct {
		name         string
		adult        int
		student      int
		adultPrice   float64
		studentPrice float64
		want         float64
	}{
		{"adults and students", 2, 3, 150000, 100000, 600000},
		{"adults only", 4, 0, 120000, 80000, 480000},
		{"students only", 0, 2, 120000, 80000, 160000},
		{"free event", 3, 1, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := helper.ComputeTotal(tt.adult, tt.student, tt.adultPrice, tt.studentPrice)
			assert.Equal(t, tt.want, got)
		})
	}
}

func validOnlineInput() model.CreateBookingInput {
	return model.CreateBookingInput{
		Tickets:          model.TicketCounts{Adult: 2, Student: 1},
		PaymentMethod:    constants.PAYMENT_METHOD_ONLINE,
		PaymentStatus:    constants.PAYMENT_STATUS_COMPLETED,
		PaymentPlatform:  "midtrans",
		PaymentReference: "pay-123",
	}
}

func TestCheckBookingPolicy_User(t *testing.T) {
	input := validOnlineInput()
	assert.NoError(t, helper.CheckBookingPolicy(&input, false))
}

func TestCheckBookingPolicy_UserMustPayOnline(t *testing.T) {
	input := validOnlineInput()
	input.PaymentMethod = constants.PAYMENT_METHOD_CASH

	err := helper.CheckBookingPolicy(&input, false)
	assert.EqualError(t, err, constants.ONLINE_PAYMENT_ONLY)
}

func TestCheckBookingPolicy_OnlineRequiresPaymentDetails(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CreateBookingInput)
	}{
		{"missing reference", func(i *model.CreateBookingInput) { i.PaymentReference = "" }},
		{"pending status", func(i *model.CreateBookingInput) { i.PaymentStatus = constants.PAYMENT_STATUS_PENDING }},
		{"missing platform", func(i *model.CreateBookingInput) { i.PaymentPlatform = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validOnlineInput()
			tt.mutate(&input)

			err := helper.CheckBookingPolicy(&input, false)
			assert.EqualError(t, err, constants.MISSING_PAYMENT_DETAILS)
		})
	}
}

func TestCheckBookingPolicy_AdminNeedsCustomerInfo(t *testing.T) {
	input := model.CreateBookingInput{
		Tickets:       model.TicketCounts{Adult: 1},
		PaymentMethod: constants.PAYMENT_METHOD_CASH,
		PaymentStatus: constants.PAYMENT_STATUS_CASH,
	}

	err := helper.CheckBookingPolicy(&input, true)
	assert.EqualError(t, err, constants.MISSING_CUSTOMER_INFO)

	input.CustomerName = "Walk-in Customer"
	err = helper.CheckBookingPolicy(&input, true)
	assert.EqualError(t, err, constants.MISSING_CUSTOMER_INFO)

	input.CustomerPhone = "081234567890"
	assert.NoError(t, helper.CheckBookingPolicy(&input, true))
}

func TestCheckBookingPolicy_AdminCanBookAnyMethod(t *testing.T) {
	for _, method := range []string{constants.PAYMENT_METHOD_CASH, constants.PAYMENT_METHOD_QR} {
		input := model.CreateBookingInput{
			Tickets:       model.TicketCounts{Adult: 1, Student: 1},
			PaymentMethod: method,
			PaymentStatus: constants.PAYMENT_STATUS_CASH,
			CustomerName:  "Walk-in Customer",
			CustomerPhone: "081234567890",
		}
		assert.NoError(t, helper.CheckBookingPolicy(&input, true))
	}
}

func TestCheckBookingPolicy_AdminOnlineStillNeedsDetails(t *testing.T) {
	input := validOnlineInput()
	input.CustomerName = "Walk-in Customer"
	input.CustomerPhone = "081234567890"
	input.PaymentReference = ""

	err := helper.CheckBookingPolicy(&input, true)
	assert.EqualError(t, err, constants.MISSING_PAYMENT_DETAILS)
}

func TestCheckBookingPolicy_OnlineNeverEntersPending(t *testing.T) {
	// An online booking is only accepted with a completed payment, so no
	// accepted booking can ever sit in pending status.
	for _, status := range []string{constants.PAYMENT_STATUS_PENDING, "", constants.PAYMENT_STATUS_FAILED} {
		input := validOnlineInput()
		input.PaymentStatus = status
		assert.EqualError(t, helper.CheckBookingPolicy(&input, false), constants.MISSING_PAYMENT_DETAILS, "user, status %q", status)

		input = validOnlineInput()
		input.PaymentStatus = status
		input.CustomerName = "Walk-in Customer"
		input.CustomerPhone = "081234567890"
		assert.EqualError(t, helper.CheckBookingPolicy(&input, true), constants.MISSING_PAYMENT_DETAILS, "admin, status %q", status)
	}
}

func TestCheckBookingPolicy_TicketCounts(t *testing.T) {
	input := validOnlineInput()
	input.Tickets = model.TicketCounts{Adult: 0, Student: 0}
	err := helper.CheckBookingPolicy(&input, false)
	assert.EqualError(t, err, constants.MISSING_BOOKING_FIELDS)

	input.Tickets = model.TicketCounts{Adult: -1, Student: 2}
	err = helper.CheckBookingPolicy(&input, false)
	assert.EqualError(t, err, constants.ERROR_INPUT)
}

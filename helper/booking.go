package helper

import (
	"errors"
	"theatre_manager/constants"
	"theatre_manager/model"
)

// ComputeTotal prices a booking server-side; client-sent totals are ignored.
func ComputeTotal(adultCount, studentCount int, adultPrice, studentPrice float64) float64 {
	return float64(adultCount)*adultPrice + float64(studentCount)*studentPrice
}

// CheckBookingPolicy enforces the role-dependent payment rules before any
// inventory is touched. A nil return means the request may reserve seats.
func CheckBookingPolicy(input *model.CreateBookingInput, isAdmin bool) error {
	if input.Tickets.Adult < 0 || input.Tickets.Student < 0 {
		return errors.New(constants.ERROR_INPUT)
	}
	if input.Tickets.Adult+input.Tickets.Student <= 0 {
		return errors.New(constants.MISSING_BOOKING_FIELDS)
	}

	if isAdmin {
		// No authenticated purchaser behind the booking, so contact details
		// must come with the request.
		if input.CustomerName == "" || input.CustomerPhone == "" {
			return errors.New(constants.MISSING_CUSTOMER_INFO)
		}
	} else if input.PaymentMethod != constants.PAYMENT_METHOD_ONLINE {
		return errors.New(constants.ONLINE_PAYMENT_ONLY)
	}

	if input.PaymentMethod == constants.PAYMENT_METHOD_ONLINE {
		if input.PaymentReference == "" ||
			input.PaymentStatus != constants.PAYMENT_STATUS_COMPLETED ||
			input.PaymentPlatform == "" {
			return errors.New(constants.MISSING_PAYMENT_DETAILS)
		}
	}

	return nil
}

package helper_test

import (
	"strings"
	"testing"
	"theatre_manager/constants"
	"theatre_manager/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSignTicket_RoundTrip(t *testing.T) {
	t.Setenv("QR_SECRET_KEY", "test-secret")

	ticketId := uuid.New().String()
	token := helper.SignTicket(ticketId)

	assert.Len(t, token, 64)
	assert.True(t, helper.VerifyTicketToken(ticketId, token))
}

func TestVerifyTicketToken_Tampered(t *testing.T) {
	t.Setenv("QR_SECRET_KEY", "test-secret")

	ticketId := uuid.New().String()
	token := helper.SignTicket(ticketId)

	tampered := token[:len(token)-1] + "0"
	if tampered == token {
		tampered = token[:len(token)-1] + "1"
	}

	assert.False(t, helper.VerifyTicketToken(ticketId, tampered))
	assert.False(t, helper.VerifyTicketToken(ticketId, ""))
	assert.False(t, helper.VerifyTicketToken(uuid.New().String(), token))
}

func TestSignTicket_SecretDependent(t *testing.T) {
	ticketId := uuid.New().String()

	t.Setenv("QR_SECRET_KEY", "secret-one")
	first := helper.SignTicket(ticketId)

	t.Setenv("QR_SECRET_KEY", "secret-two")
	second := helper.SignTicket(ticketId)

	assert.NotEqual(t, first, second)
	assert.False(t, helper.VerifyTicketToken(ticketId, first))
}

func TestTicketVerifyURL(t *testing.T) {
	t.Setenv("QR_SECRET_KEY", "test-secret")
	t.Setenv("PUBLIC_BASE_URL", "https://tickets.example.com")

	ticketId := uuid.New().String()
	url := helper.TicketVerifyURL(ticketId)

	assert.Equal(t, "https://tickets.example.com/tickets/verify/"+ticketId+"?token="+helper.SignTicket(ticketId), url)
}

func TestIssueTicket(t *testing.T) {
	t.Setenv("QR_SECRET_KEY", "test-secret")

	ticket, err := helper.IssueTicket(constants.FARE_CLASS_STUDENT)

	assert.NoError(t, err)
	assert.Equal(t, constants.FARE_CLASS_STUDENT, ticket.FareClass)
	assert.False(t, ticket.Attendance)

	_, err = uuid.Parse(ticket.TicketId)
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(ticket.QRCode, "data:image/png;base64,"))
}

func TestIssueTicket_UniqueIds(t *testing.T) {
	t.Setenv("QR_SECRET_KEY", "test-secret")

	first, err := helper.IssueTicket(constants.FARE_CLASS_ADULT)
	assert.NoError(t, err)
	second, err := helper.IssueTicket(constants.FARE_CLASS_ADULT)
	assert.NoError(t, err)

	assert.NotEqual(t, first.TicketId, second.TicketId)
}

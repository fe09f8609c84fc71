package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeEventStats(t *testing.T) {
	bookings := []bookingAgg{
		{EventId: 1, Title: "Hamlet", Bookings: 3},
		{EventId: 2, Title: "Macbeth", Bookings: 2},
	}
	// Two bookings of event 1 share the same amount; the grouped sum must
	// still count both.
	revenue := []revenueAgg{
		{EventId: 1, Revenue: 600000},
	}
	tickets := []ticketAgg{
		{EventId: 1, Issued: 6, Scanned: 4},
		{EventId: 2, Issued: 3, Scanned: 0},
	}

	rows := mergeEventStats(bookings, revenue, tickets)

	assert.Len(t, rows, 2)
	assert.Equal(t, eventStatsRow{EventId: 1, Title: "Hamlet", Bookings: 3, TicketsIssued: 6, TicketsScanned: 4, Revenue: 600000}, rows[0])
	assert.Equal(t, eventStatsRow{EventId: 2, Title: "Macbeth", Bookings: 2, TicketsIssued: 3, TicketsScanned: 0, Revenue: 0}, rows[1])
}

func TestMergeEventStats_IgnoresUnknownEvents(t *testing.T) {
	bookings := []bookingAgg{{EventId: 1, Title: "Hamlet", Bookings: 1}}
	revenue := []revenueAgg{{EventId: 9, Revenue: 100000}}
	tickets := []ticketAgg{{EventId: 9, Issued: 2, Scanned: 1}}

	rows := mergeEventStats(bookings, revenue, tickets)

	assert.Len(t, rows, 1)
	assert.Equal(t, eventStatsRow{EventId: 1, Title: "Hamlet", Bookings: 1}, rows[0])
}

func TestMergeEventStats_Empty(t *testing.T) {
	assert.Empty(t, mergeEventStats(nil, nil, nil))
}

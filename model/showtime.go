package model

import "time"

type Showtime struct {
	DTO
	EventId      uint      `gorm:"index:idx_showtime_slot,unique" json:"eventId"`
	Date         time.Time `gorm:"index:idx_showtime_slot,unique" json:"date"`
	Time         string    `gorm:"size:10;not null;index:idx_showtime_slot,unique" json:"time"`
	SeatCapacity int       `gorm:"not null" json:"seatCapacity"`
	// Decrementing counter, only ever touched through conditional updates.
	SeatAvailable int `gorm:"not null" json:"seatAvailable"`
}

type CreateShowtimeInput struct {
	EventId      uint      `json:"event" validate:"required,gt=0"`
	Date         time.Time `json:"date" validate:"required"`
	Time         string    `json:"time" validate:"required"`
	SeatCapacity int       `json:"seatCapacity" validate:"required,min=1"`
}

type UpdateShowtimeInput struct {
	Date         *time.Time `json:"date"`
	Time         *string    `json:"time"`
	SeatCapacity *int       `json:"seatCapacity" validate:"omitempty,min=1"`
}

type FilterShowtimeInput struct {
	Pagination
	EventId   uint   `query:"event" validate:"omitempty,gt=0"`
	StartDate string `query:"startDate"`
	EndDate   string `query:"endDate"`
}

package model

import "time"

type Event struct {
	DTO
	Type               string       `gorm:"size:30;not null" json:"type"`
	Title              string       `gorm:"not null" json:"title"`
	Slug               string       `gorm:"size:120;uniqueIndex" json:"slug"`
	Description        string       `json:"description"`
	Director           string       `gorm:"not null" json:"director"`
	Venue              string       `gorm:"not null" json:"venue"`
	StartDate          time.Time    `gorm:"not null" json:"startDate"`
	EndDate            time.Time    `gorm:"not null" json:"endDate"`
	AdultTicketPrice   float64      `gorm:"not null" json:"adultTicketPrice"`
	StudentTicketPrice float64      `gorm:"not null" json:"studentTicketPrice"`
	Status             string       `gorm:"size:10;not null;default:'UPCOMING'" json:"status"`
	Cast               []CastMember `gorm:"foreignKey:EventId" json:"cast,omitempty"`
	Photos             []EventPhoto `gorm:"foreignKey:EventId" json:"photos,omitempty"`

	// Omitted from booking list payloads: only preloaded on event detail.
	Showtimes []Showtime `gorm:"foreignKey:EventId" json:"showtimes,omitempty"`
}

type CastMember struct {
	DTO
	EventId uint   `gorm:"index" json:"-"`
	Name    string `gorm:"not null" json:"name"`
	Role    string `json:"role"`
}

type EventPhoto struct {
	DTO
	EventId  uint   `gorm:"index" json:"-"`
	Url      string `gorm:"not null" json:"url"`
	PublicId string `json:"publicId"`
}

type CastMemberInput struct {
	Name string `json:"name" validate:"required"`
	Role string `json:"role"`
}

type CreateEventInput struct {
	Type               string            `json:"type" validate:"required"`
	Title              string            `json:"title" validate:"required"`
	Description        string            `json:"description"`
	Director           string            `json:"director" validate:"required"`
	Venue              string            `json:"venue" validate:"required"`
	StartDate          time.Time         `json:"startDate" validate:"required"`
	EndDate            time.Time         `json:"endDate" validate:"required,gtefield=StartDate"`
	AdultTicketPrice   float64           `json:"adultTicketPrice" validate:"required,gt=0"`
	StudentTicketPrice float64           `json:"studentTicketPrice" validate:"required,gt=0"`
	Cast               []CastMemberInput `json:"cast" validate:"omitempty,dive"`
}

type UpdateEventInput struct {
	Type               *string           `json:"type"`
	Title              *string           `json:"title"`
	Description        *string           `json:"description"`
	Director           *string           `json:"director"`
	Venue              *string           `json:"venue"`
	StartDate          *time.Time        `json:"startDate"`
	EndDate            *time.Time        `json:"endDate"`
	AdultTicketPrice   *float64          `json:"adultTicketPrice" validate:"omitempty,gt=0"`
	StudentTicketPrice *float64          `json:"studentTicketPrice" validate:"omitempty,gt=0"`
	Cast               []CastMemberInput `json:"cast" validate:"omitempty,dive"`
}

type FilterEventInput struct {
	Pagination
	Type   string `query:"type"`
	Status string `query:"status" validate:"omitempty,oneof=UPCOMING ONGOING ENDED"`
}

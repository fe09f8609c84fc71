package model

import "time"

type Booking struct {
	DTO
	PublicCode    string    `gorm:"size:20;uniqueIndex" json:"publicCode"`
	EventId       uint      `gorm:"index;not null" json:"eventId"`
	ShowtimeId    uint      `gorm:"index;not null" json:"showtimeId"`
	Date          time.Time `gorm:"not null" json:"date"`
	UserId        *uint     `json:"userId,omitempty"`
	BookedByAdmin bool      `gorm:"not null;default:false" json:"bookedByAdmin"`
	AdminBookedBy *uint     `json:"adminBookedBy,omitempty"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`

	AdultTickets   int     `gorm:"not null" json:"adultTickets"`
	StudentTickets int     `gorm:"not null" json:"studentTickets"`
	TotalAmount    float64 `gorm:"not null" json:"totalAmount"`

	PaymentStatus   string  `gorm:"size:10;not null;default:'pending'" json:"paymentStatus"`
	PaymentMethod   string  `gorm:"size:10;not null" json:"paymentMethod"`
	PaymentPlatform string  `gorm:"size:30" json:"paymentPlatform"`
	// Sparse unique: NULLs never collide, a reused reference always does.
	PaymentReference *string `gorm:"uniqueIndex" json:"paymentReference,omitempty"`

	Event    Event          `gorm:"foreignKey:EventId" json:"event,omitempty"`
	Showtime Showtime       `gorm:"foreignKey:ShowtimeId" json:"showtime,omitempty"`
	User     *User          `gorm:"foreignKey:UserId" json:"user,omitempty"`
	Tickets  []IssuedTicket `gorm:"foreignKey:BookingId" json:"issuedTickets"`
}

type IssuedTicket struct {
	DTO
	BookingId  uint       `gorm:"index" json:"-"`
	TicketId   string     `gorm:"size:40;uniqueIndex" json:"ticketId"`
	FareClass  string     `gorm:"size:10;not null" json:"fareClass"`
	QRCode     string     `gorm:"type:text" json:"qrCode"`
	Attendance bool       `gorm:"not null;default:false" json:"attendance"`
	ScannedAt  *time.Time `json:"scannedAt,omitempty"`
}

type TicketCounts struct {
	Adult   int `json:"adult" validate:"min=0"`
	Student int `json:"student" validate:"min=0"`
}

type CreateBookingInput struct {
	Event            uint         `json:"event" validate:"required,gt=0"`
	Showtime         uint         `json:"showtime" validate:"required,gt=0"`
	Date             time.Time    `json:"date" validate:"required"`
	Tickets          TicketCounts `json:"tickets" validate:"required"`
	PaymentStatus    string       `json:"paymentStatus" validate:"omitempty,oneof=pending completed failed cash"`
	PaymentMethod    string       `json:"paymentMethod" validate:"required,oneof=online cash qr"`
	PaymentPlatform  string       `json:"paymentPlatform"`
	PaymentReference string       `json:"paymentReference"`
	CustomerName     string       `json:"customerName"`
	CustomerPhone    string       `json:"customerPhone"`
}

type FilterBookingInput struct {
	Pagination
	UserId     uint `query:"user" validate:"omitempty,gt=0"`
	EventId    uint `query:"event" validate:"omitempty,gt=0"`
	ShowtimeId uint `query:"showtime" validate:"omitempty,gt=0"`
}

type VerifyTicketInput struct {
	TicketId string `json:"ticketId" validate:"required"`
	Hash     string `json:"hash" validate:"required"`
}

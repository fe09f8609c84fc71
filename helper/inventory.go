package helper

import (
	"errors"
	"fmt"
	"theatre_manager/model"

	"gorm.io/gorm"
)

var ErrShowtimeNotFound = errors.New("showtime not found")

// InsufficientSeatsError carries the actual remaining count so the client can
// retry with a smaller request.
type InsufficientSeatsError struct {
	Remaining int
}

func (e *InsufficientSeatsError) Error() string {
	return fmt.Sprintf("only %d seats available", e.Remaining)
}

// ReserveSeats takes count seats off a showtime in one conditional UPDATE.
// The guard in the WHERE clause is what keeps two concurrent bookings from
// double-selling the last seats; there is no read-then-write window.
func ReserveSeats(db *gorm.DB, showtimeID uint, count int) (*model.Showtime, error) {
	if count <= 0 {
		return nil, errors.New("seat count must be positive")
	}

	result := db.Model(&model.Showtime{}).
		Where("id = ? AND seat_available >= ?", showtimeID, count).
		UpdateColumn("seat_available", gorm.Expr("seat_available - ?", count))
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		var showtime model.Showtime
		if err := db.First(&showtime, showtimeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrShowtimeNotFound
			}
			return nil, err
		}
		return nil, &InsufficientSeatsError{Remaining: showtime.SeatAvailable}
	}

	var showtime model.Showtime
	if err := db.First(&showtime, showtimeID).Error; err != nil {
		return nil, err
	}
	return &showtime, nil
}

// ReleaseSeats gives reserved seats back, compensating a booking that failed
// after its reservation went through (or was cancelled by the sweeper).
func ReleaseSeats(db *gorm.DB, showtimeID uint, count int) error {
	if count <= 0 {
		return nil
	}
	return db.Model(&model.Showtime{}).
		Where("id = ?", showtimeID).
		UpdateColumn("seat_available", gorm.Expr("seat_available + ?", count)).Error
}

func GetAvailability(db *gorm.DB, showtimeID uint) (int, error) {
	var showtime model.Showtime
	if err := db.First(&showtime, showtimeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrShowtimeNotFound
		}
		return 0, err
	}
	return showtime.SeatAvailable, nil
}

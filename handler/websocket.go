package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"theatre_manager/database"
	"theatre_manager/helper"

	"github.com/gofiber/contrib/websocket"
)

type availabilityUpdate struct {
	ShowtimeId    uint `json:"showtimeId"`
	SeatAvailable int  `json:"seatAvailable"`
}

// PublishAvailability pushes a seat-count change to every scanner/seat-map
// client watching this showtime.
func PublishAvailability(showtimeID uint, seatAvailable int) {
	if database.Redis == nil {
		return
	}
	payload, err := json.Marshal(availabilityUpdate{ShowtimeId: showtimeID, SeatAvailable: seatAvailable})
	if err != nil {
		return
	}
	channel := fmt.Sprintf("showtime:%d", showtimeID)
	if err := database.Redis.Publish(context.Background(), channel, payload).Err(); err != nil {
		log.Printf("failed to publish availability for showtime %d: %v", showtimeID, err)
	}
}

// ShowtimeLive streams availability updates for one showtime over a websocket.
func ShowtimeLive(c *websocket.Conn) {
	defer c.Close()

	id64, err := strconv.ParseUint(c.Params("showtimeId"), 10, 64)
	if err != nil {
		return
	}
	showtimeId := uint(id64)

	// First frame is the current count so the client doesn't have to wait
	// for the next booking.
	if available, err := helper.GetAvailability(database.DB, showtimeId); err == nil {
		c.WriteJSON(availabilityUpdate{ShowtimeId: showtimeId, SeatAvailable: available})
	}

	if database.Redis == nil {
		return
	}

	pubsub := database.Redis.Subscribe(
		context.Background(),
		fmt.Sprintf("showtime:%d", showtimeId),
	)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
			return
		}
	}
}

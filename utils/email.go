package utils

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"strconv"
	"theatre_manager/config"

	"gopkg.in/gomail.v2"
)

type BookingConfirmationData struct {
	BookingCode   string
	EventTitle    string
	Showtime      string
	Tickets       string
	TotalAmount   float64
	PaymentMethod string
}

type TicketAttachment struct {
	TicketId string
	QRBytes  []byte
}

// SendBookingConfirmationEmail sends the confirmation with one QR PNG per
// issued ticket. Runs async so the booking response is not delayed.
func SendBookingConfirmationEmail(to string, data BookingConfirmationData, attachments []TicketAttachment) {
	go func() {
		host := config.Config("SMTP_HOST")
		if host == "" {
			return
		}
		port, _ := strconv.Atoi(config.ConfigOr("SMTP_PORT", "587"))

		body := fmt.Sprintf(
			"Your booking %s is confirmed.\n\nEvent: %s\nShowtime: %s\nTickets: %s\nTotal: %.2f\nPayment: %s\n\nEach attached QR code admits one person at the gate.",
			data.BookingCode, data.EventTitle, data.Showtime, data.Tickets, data.TotalAmount, data.PaymentMethod,
		)

		m := gomail.NewMessage()
		m.SetHeader("From", config.Config("SMTP_FROM"))
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Booking confirmation #"+data.BookingCode)
		m.SetBody("text/plain", body)

		for _, att := range attachments {
			qr := att.QRBytes
			filename := fmt.Sprintf("ticket_%s.png", att.TicketId)
			m.Attach(filename, gomail.Rename(filename), gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := io.Copy(w, bytes.NewReader(qr))
				return err
			}))
		}

		d := gomail.NewDialer(host, port, config.Config("SMTP_USERNAME"), config.Config("SMTP_PASSWORD"))
		if err := d.DialAndSend(m); err != nil {
			log.Printf("failed to send confirmation email to %s: %v", to, err)
		}
	}()
}

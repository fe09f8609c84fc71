package helper

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"theatre_manager/config"
	"theatre_manager/model"
	"theatre_manager/utils"

	"github.com/google/uuid"
)

func qrSecret() []byte {
	return []byte(config.Config("QR_SECRET_KEY"))
}

// SignTicket binds a ticket id to the process-wide signing secret. Rotating
// QR_SECRET_KEY invalidates every unscanned ticket already in the wild.
func SignTicket(ticketId string) string {
	mac := hmac.New(sha256.New, qrSecret())
	mac.Write([]byte(ticketId))
	return hex.EncodeToString(mac.Sum(nil))
}

func VerifyTicketToken(ticketId, token string) bool {
	expected := SignTicket(ticketId)
	return hmac.Equal([]byte(expected), []byte(token))
}

func TicketVerifyURL(ticketId string) string {
	base := config.ConfigOr("PUBLIC_BASE_URL", "http://localhost:8000")
	return fmt.Sprintf("%s/tickets/verify/%s?token=%s", base, ticketId, SignTicket(ticketId))
}

// IssueTicket allocates a fresh ticket id and renders its signed verification
// URL into a scannable code. Validity is provable from the signature alone;
// the database row only tracks attendance state.
func IssueTicket(fareClass string) (model.IssuedTicket, error) {
	ticketId := uuid.New().String()

	qr, err := utils.GenerateQRCodeDataURI(TicketVerifyURL(ticketId), 256)
	if err != nil {
		return model.IssuedTicket{}, err
	}

	return model.IssuedTicket{
		TicketId:  ticketId,
		FareClass: fareClass,
		QRCode:    qr,
	}, nil
}

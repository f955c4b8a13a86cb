package checkout

import (
	"encoding/json"
	"fmt"

	"enjoypark/models"
	"enjoypark/utils"

	qrcode "github.com/skip2/go-qrcode"
)

// QRSize is the pixel edge of the rendered pass code.
const QRSize = 256

// Pass is one attendee's park entry ticket. Its JSON form is exactly the
// payload encoded in the scannable code.
type Pass struct {
	TicketID string `json:"ticketId"`
	Type     string `json:"type"` // "adult" or "child"
	Name     string `json:"name"`
	Date     string `json:"date"`
}

// IssuePasses creates one pass per holder. Ticket ids carry a uuid so no
// two passes of an order (or of any order) encode the same payload.
func IssuePasses(holders []models.TicketHolder, visitDate string) []Pass {
	passes := make([]Pass, 0, len(holders))
	for _, h := range holders {
		passes = append(passes, Pass{
			TicketID: "EP-" + utils.GetUUID(),
			Type:     h.TicketType,
			Name:     fmt.Sprintf("%s %s", h.FirstName, h.LastName),
			Date:     visitDate,
		})
	}
	return passes
}

// QRPayload is the JSON object embedded in the code.
func (p Pass) QRPayload() ([]byte, error) {
	return json.Marshal(p)
}

// QRPNG renders the pass as a PNG of the given pixel size.
func (p Pass) QRPNG(size int) ([]byte, error) {
	payload, err := p.QRPayload()
	if err != nil {
		return nil, err
	}
	return qrcode.Encode(string(payload), qrcode.Medium, size)
}

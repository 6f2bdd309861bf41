package view

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"golang.org/x/net/html"

	"hospital-portal/internal/models"
)

// EncodeDoctor packs the card's doctor into a URL-safe token so the booking
// request needs no second lookup.
func EncodeDoctor(d models.Doctor) string {
	b, _ := json.Marshal(d)
	return base64.RawURLEncoding.EncodeToString(b)
}

func DecodeDoctor(s string) (models.Doctor, error) {
	var d models.Doctor
	b, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return d, fmt.Errorf("decode doctor: %w", err)
	}
	if err := json.Unmarshal(b, &d); err != nil {
		return d, fmt.Errorf("decode doctor: %w", err)
	}
	return d, nil
}

// BookingOverlay renders the appointment booking UI for a doctor and the
// logged-in patient.
type BookingOverlay interface {
	Render(d models.Doctor, p models.Patient) *html.Node
}

type DefaultBookingOverlay struct{}

var CloseBookingOverlay = Script("document.getElementById('" + BookingOverlayID + "').replaceChildren()")

func (DefaultBookingOverlay) Render(d models.Doctor, p models.Patient) *html.Node {
	signals, _ := json.Marshal(map[string]any{
		"bookDoctorId":  d.ID,
		"bookPatientId": p.ID,
		"bookDate":      "",
		"bookTime":      "",
	})

	slots := El("select", Attrs("id", "book-time", "data-bind", "bookTime", "class", "input-field"),
		El("option", Attrs("value", ""), Text("Select time")),
	)
	for _, t := range d.AvailableTimes {
		slots.AppendChild(El("option", Attrs("value", t), Text(t)))
	}

	confirm := Post("/appointments")
	confirm.Signals = "^book"

	return El("div", Attrs("id", BookingOverlayID),
		El("div", Attrs("class", "modalApp active", "data-signals", string(signals)),
			El("h2", nil, Text("Book Appointment")),
			El("input", Attrs("type", "text", "class", "input-field", "value", p.Name, "disabled", "")),
			El("input", Attrs("type", "text", "class", "input-field", "value", "Dr. "+d.Name, "disabled", "")),
			El("input", Attrs("type", "text", "class", "input-field", "value", d.Specialization, "disabled", "")),
			El("input", Attrs("type", "email", "class", "input-field", "value", d.Email, "disabled", "")),
			El("input", Attrs("type", "date", "id", "book-date", "data-bind", "bookDate", "class", "input-field")),
			slots,
			Button("Confirm Booking", confirm, "type", "button", "class", "confirm-booking"),
			Button("Cancel", CloseBookingOverlay, "type", "button", "class", "close"),
		),
	)
}

// EmptyBookingOverlay is the placeholder patched by the booking flow.
func EmptyBookingOverlay() *html.Node {
	return El("div", Attrs("id", BookingOverlayID))
}

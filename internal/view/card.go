package view

import (
	"fmt"

	"golang.org/x/net/html"

	"hospital-portal/internal/models"
	"hospital-portal/internal/session"
)

// cardCapability is what a viewer may do from a doctor card.
type cardCapability int

const (
	capNone cardCapability = iota
	capDelete
	capLoginToBook
	capBook
)

func cardCapabilityFor(s session.Session) cardCapability {
	switch {
	case s.Role == session.Admin:
		return capDelete
	case !s.HasToken():
		return capLoginToBook
	case s.Role == session.Patient || s.Role == session.LoggedPatient:
		return capBook
	}
	return capNone
}

var cardActions = map[cardCapability]func(models.Doctor) *html.Node{
	capDelete:      deleteDoctorButton,
	capLoginToBook: loginToBookButton,
	capBook:        bookButton,
}

func CardID(id int64) string {
	return fmt.Sprintf("doctor-%d", id)
}

// DoctorCard renders one doctor. The action region depends on who is looking.
func DoctorCard(d models.Doctor, s session.Session) *html.Node {
	times := El("ul", Attrs("class", "appointment-times"))
	for _, slot := range d.AvailableTimes {
		times.AppendChild(El("li", nil, Text(slot)))
	}

	info := El("div", Attrs("class", "doctor-info"),
		El("h3", nil, Text("Dr. "+d.Name)),
		El("p", Attrs("class", "specialization"), Text(d.Specialization)),
		El("p", Attrs("class", "email"), Text(d.Email)),
		times,
	)

	actions := El("div", Attrs("class", "card-actions"))
	if build, ok := cardActions[cardCapabilityFor(s)]; ok {
		actions.AppendChild(build(d))
	}

	return El("div", Attrs("class", "doctor-card", "id", CardID(d.ID)), info, actions)
}

func deleteDoctorButton(d models.Doctor) *html.Node {
	a := Delete(fmt.Sprintf("/doctors/%d", d.ID))
	a.Confirm = fmt.Sprintf("Are you sure you want to delete Dr. %s?", d.Name)
	return Button("Delete Doctor", a, "type", "button", "class", "btn-delete")
}

func loginToBookButton(models.Doctor) *html.Node {
	a := Script("alert(" + jsString("Please log in to book an appointment.") + "); window.location.href = " + jsString(LoginPath))
	return Button("Book Now", a, "type", "button", "class", "btn-book")
}

func bookButton(d models.Doctor) *html.Node {
	return Button("Book Now", Get("/doctors/book?doctor="+EncodeDoctor(d)), "type", "button", "class", "btn-book")
}

// DoctorList renders the container the dashboard patches on every filter.
func DoctorList(doctors []models.Doctor, s session.Session) *html.Node {
	list := El("div", Attrs("id", DoctorContainerID, "class", "doctor-container"))
	for _, d := range doctors {
		list.AppendChild(DoctorCard(d, s))
	}
	return list
}

// NoDoctors is shown instead of an empty list after a filter.
func NoDoctors() *html.Node {
	return El("div", Attrs("id", DoctorContainerID, "class", "doctor-container"),
		El("p", Attrs("class", "no-results"), Text("No doctors found with the given filters.")),
	)
}

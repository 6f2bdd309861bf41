package view

import (
	"golang.org/x/net/html"

	"hospital-portal/internal/session"
)

const (
	RootPath             = "/"
	LoginPath            = RootPath
	AdminDashboardPath   = "/admin"
	DoctorDashboardPath  = "/doctor"
	PatientDashboardPath = "/patient"
	PatientHomePath      = "/patient/home"
	AppointmentsPath     = "/patient/appointments"
	LogoutPath           = "/logout"
	PatientLogoutPath    = "/logout/patient"
)

const sessionExpiredMessage = "Session expired or invalid login. Please log in again."

// HeaderResult tells the page handler what to render and which session side
// effects to apply. When Redirect is set, Node is nil and rendering stops.
type HeaderResult struct {
	Node       *html.Node
	ClearRole  bool
	ClearToken bool
	Alert      string
	Redirect   string
}

var headerNav = map[session.Role]func() []*html.Node{
	session.Admin: func() []*html.Node {
		return []*html.Node{
			Button("Add Doctor", Get(ModalURL(ModalAddDoctor)), "id", "addDocBtn", "class", "adminBtn"),
			logoutLink(LogoutPath),
		}
	},
	session.Doctor: func() []*html.Node {
		return []*html.Node{
			Button("Home", Navigate(DoctorDashboardPath), "class", "adminBtn"),
			logoutLink(LogoutPath),
		}
	},
	session.Patient: func() []*html.Node {
		return []*html.Node{
			Button("Login", Get(ModalURL(ModalPatientLogin)), "id", "patientLogin", "class", "adminBtn"),
			Button("Sign Up", Get(ModalURL(ModalPatientSignup)), "id", "patientSignup", "class", "adminBtn"),
		}
	},
	session.LoggedPatient: func() []*html.Node {
		return []*html.Node{
			Button("Home", Navigate(PatientHomePath), "id", "home", "class", "adminBtn"),
			Button("Appointments", Navigate(AppointmentsPath), "id", "patientAppointments", "class", "adminBtn"),
			logoutLink(PatientLogoutPath),
		}
	},
}

func logoutLink(href string) *html.Node {
	return El("a", Attrs("href", href, "class", "logout"), Text("Logout"))
}

func logo() *html.Node {
	return El("div", Attrs("class", "logo-section"),
		El("img", Attrs("src", "/static/images/logo.png", "alt", "Hospital CMS Logo", "class", "logo-img")),
		El("span", Attrs("class", "logo-title"), Text("Hospital CMS")),
	)
}

// Header builds the navigation bar for path. The root page always lands
// logged out; every other page requires a consistent session.
func Header(path string, s session.Session) HeaderResult {
	if path == RootPath || path == "" {
		return HeaderResult{
			Node:      El("header", Attrs("class", "header"), logo()),
			ClearRole: true,
		}
	}

	if !s.Valid() {
		// an expired token is dropped too, otherwise the next page would
		// bounce the viewer straight back here
		return HeaderResult{
			ClearRole:  true,
			ClearToken: s.HasToken(),
			Alert:      sessionExpiredMessage,
			Redirect:   RootPath,
		}
	}

	nav := El("nav", nil)
	if build, ok := headerNav[s.Role]; ok {
		for _, n := range build() {
			nav.AppendChild(n)
		}
	}
	return HeaderResult{Node: El("header", Attrs("class", "header"), logo(), nav)}
}

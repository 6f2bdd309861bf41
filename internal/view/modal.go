package view

import (
	"golang.org/x/net/html"
)

type ModalKind string

const (
	ModalAddDoctor     ModalKind = "addDoctor"
	ModalPatientLogin  ModalKind = "patientLogin"
	ModalPatientSignup ModalKind = "patientSignup"
	ModalAdminLogin    ModalKind = "adminLogin"
	ModalDoctorLogin   ModalKind = "doctorLogin"
)

const (
	ModalID           = "modal"
	DoctorContainerID = "doctor-container"
	BookingOverlayID  = "booking-overlay"
)

func ModalURL(kind ModalKind) string {
	return "/modals/" + string(kind)
}

// Specialties offered by the add-doctor form and the dashboard filter.
var Specialties = []struct{ Value, Label string }{
	{"cardiologist", "Cardiologist"},
	{"dermatologist", "Dermatologist"},
	{"neurologist", "Neurologist"},
	{"pediatrician", "Pediatrician"},
	{"orthopedic", "Orthopedic"},
	{"gynecologist", "Gynecologist"},
	{"psychiatrist", "Psychiatrist"},
	{"dentist", "Dentist"},
	{"ophthalmologist", "Ophthalmologist"},
	{"ent", "ENT Specialist"},
	{"urologist", "Urologist"},
	{"oncologist", "Oncologist"},
	{"gastroenterologist", "Gastroenterologist"},
	{"general", "General Physician"},
}

// Built-in submit handlers. addDoctor has none: its save handler is supplied
// by the page that opens the modal.
var modalSubmit = map[ModalKind]Action{
	ModalPatientSignup: Post("/auth/patient/signup"),
	ModalPatientLogin:  Post("/auth/patient/login"),
	ModalAdminLogin:    Post("/auth/admin/login"),
	ModalDoctorLogin:   Post("/auth/doctor/login"),
}

func input(typ, id, signal, placeholder string) *html.Node {
	return El("input", Attrs("type", typ, "id", id, "data-bind", signal, "placeholder", placeholder, "class", "input-field"))
}

func specialtySelect(id, signal, placeholder string) *html.Node {
	sel := El("select", Attrs("id", id, "data-bind", signal, "class", "input-field select-dropdown"),
		El("option", Attrs("value", ""), Text(placeholder)),
	)
	for _, s := range Specialties {
		sel.AppendChild(El("option", Attrs("value", s.Value), Text(s.Label)))
	}
	return sel
}

type modalForm struct {
	title    string
	fields   func() []*html.Node
	buttonID string
	label    string
}

var modalForms = map[ModalKind]modalForm{
	ModalAddDoctor: {
		title: "Add Doctor",
		fields: func() []*html.Node {
			return []*html.Node{
				input("text", "new-doc-name", "docName", "Doctor Name"),
				specialtySelect("new-doc-specialty", "docSpecialty", "Specialization"),
				input("email", "new-doc-email", "docEmail", "Email"),
				input("password", "new-doc-pass", "docPassword", "Password"),
				input("text", "new-doc-phone", "docPhone", "Mobile No."),
				El("label", Attrs("class", "availabilityLabel"), Text("Available Times (comma separated):")),
				input("text", "new-doc-times", "docTimes", "09:00-10:00,10:00-11:00"),
			}
		},
		buttonID: "saveDoctorBtn",
		label:    "Save",
	},
	ModalPatientLogin: {
		title: "Patient Login",
		fields: func() []*html.Node {
			return []*html.Node{
				input("text", "email", "email", "Email"),
				input("password", "password", "password", "Password"),
			}
		},
		buttonID: "patientLoginBtn",
		label:    "Login",
	},
	ModalPatientSignup: {
		title: "Patient Signup",
		fields: func() []*html.Node {
			return []*html.Node{
				input("text", "name", "name", "Name"),
				input("email", "email", "email", "Email"),
				input("password", "password", "password", "Password"),
				input("text", "phone", "phone", "Phone"),
				input("text", "address", "address", "Address"),
			}
		},
		buttonID: "signupBtn",
		label:    "Signup",
	},
	ModalAdminLogin: {
		title: "Admin Login",
		fields: func() []*html.Node {
			return []*html.Node{
				input("text", "username", "username", "Username"),
				input("password", "password", "password", "Password"),
			}
		},
		buttonID: "adminLoginBtn",
		label:    "Login",
	},
	ModalDoctorLogin: {
		title: "Doctor Login",
		fields: func() []*html.Node {
			return []*html.Node{
				input("text", "doctorEmail", "doctorEmail", "Email"),
				input("password", "doctorPassword", "doctorPassword", "Password"),
			}
		},
		buttonID: "doctorLoginBtn",
		label:    "Login",
	},
}

func ParseModalKind(s string) (ModalKind, bool) {
	k := ModalKind(s)
	_, ok := modalForms[k]
	return k, ok
}

// CloseModal hides the modal client-side without submitting anything.
var CloseModal = Script("document.getElementById('" + ModalID + "').style.display = 'none'")

// Modal renders the visible modal for kind. save is the add-doctor submit
// handler injected by the hosting page; the other kinds use their own.
// An unknown kind renders only the close control.
func Modal(kind ModalKind, save Action) *html.Node {
	body := El("div", Attrs("id", "modal-body", "class", "modal-content"))

	if form, ok := modalForms[kind]; ok {
		body.AppendChild(El("h2", nil, Text(form.title)))
		for _, f := range form.fields() {
			body.AppendChild(f)
		}

		submit := modalSubmit[kind]
		if kind == ModalAddDoctor {
			submit = save
		}
		body.AppendChild(Button(form.label, submit, "type", "button", "id", form.buttonID, "class", "dashboard-btn"))
	}

	body.AppendChild(Button("×", CloseModal, "type", "button", "id", "closeModal", "class", "close"))

	return El("div", Attrs("id", ModalID, "class", "modal", "style", "display: block"), body)
}

// HiddenModal is the placeholder every page starts with.
func HiddenModal() *html.Node {
	return El("div", Attrs("id", ModalID, "class", "modal", "style", "display: none"))
}

package models

import "strings"

type Doctor struct {
	ID             int64    `json:"id"`
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone,omitempty"`
	AvailableTimes []string `json:"availableTimes"`
}

// DoctorPayload is the body sent to the backend when an admin adds a doctor.
type DoctorPayload struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Password       string   `json:"password"`
	Specialty      string   `json:"specialty"`
	AvailableTimes []string `json:"availableTimes"`
}

// ParseTimes splits the comma separated slot list typed into the add-doctor
// form, e.g. "09:00-10:00, 10:00-11:00".
func ParseTimes(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package models

type Appointment struct {
	DoctorID        int64  `json:"doctorId"`
	PatientID       int64  `json:"patientId"`
	AppointmentTime string `json:"appointmentTime"` // "2006-01-02T15:04:05"
	Status          int    `json:"status"`
}

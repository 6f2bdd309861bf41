package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"hospital-portal/internal/backend"
	"hospital-portal/internal/middleware"
	"hospital-portal/internal/models"
	"hospital-portal/internal/session"
	"hospital-portal/internal/view"
)

const sessionExpired = "Session expired. Please log in again."

type FilterSignals struct {
	Search    string `json:"search"`
	Time      string `json:"time"`
	Specialty string `json:"specialty"`
}

type DoctorSignals struct {
	Name      string `json:"docName"`
	Specialty string `json:"docSpecialty"`
	Email     string `json:"docEmail"`
	Password  string `json:"docPassword"`
	Phone     string `json:"docPhone"`
	Times     string `json:"docTimes"`
}

func (d DoctorSignals) Payload() models.DoctorPayload {
	return models.DoctorPayload{
		Name:           d.Name,
		Email:          d.Email,
		Phone:          d.Phone,
		Password:       d.Password,
		Specialty:      d.Specialty,
		AvailableTimes: models.ParseTimes(d.Times),
	}
}

type BookingSignals struct {
	DoctorID  int64  `json:"bookDoctorId"`
	PatientID int64  `json:"bookPatientId"`
	Date      string `json:"bookDate"`
	Time      string `json:"bookTime"`
}

// orNil turns an empty filter field into "no constraint".
func orNil(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func alert(msg string) string {
	b, _ := json.Marshal(msg)
	return "alert(" + string(b) + ")"
}

// expireSession handles a 401/403 from the backend: the stored token is
// dropped before the stream starts, then the viewer is sent home.
func (s *Server) expireSession(w http.ResponseWriter, r *http.Request, sess session.Session) {
	var err error
	if sess.Role == session.Patient || sess.Role == session.LoggedPatient {
		err = s.sessions.LogoutPatient(w, r)
	} else {
		err = s.sessions.Logout(w, r)
	}
	if err != nil {
		s.logger.Error("web.session.save_failed", "error", err.Error())
	}
	s.logger.Info("web.session.expired", "role", sess.Role.String(), "requestId", middleware.RequestID(r.Context()))

	sse := datastar.NewSSE(w, r)
	sse.ExecuteScript(alert(sessionExpired))
	sse.Redirect(view.RootPath)
}

func (s *Server) handleFilterDoctors(w http.ResponseWriter, r *http.Request) {
	signals := &FilterSignals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	doctors, err := s.backend.FilterDoctors(r.Context(), orNil(signals.Search), orNil(signals.Time), orNil(signals.Specialty))

	sse := datastar.NewSSE(w, r)
	if err != nil {
		s.logger.Warn("web.doctors.filter_failed", "error", err.Error(), "requestId", middleware.RequestID(r.Context()))
		sse.ExecuteScript(alert("Error filtering doctors: " + err.Error()))
		return
	}
	if len(doctors) == 0 {
		sse.PatchElements(view.Render(view.NoDoctors()))
		return
	}
	sse.PatchElements(view.Render(view.DoctorList(doctors, s.sessions.Load(r))))
}

func (s *Server) handleSaveDoctor(w http.ResponseWriter, r *http.Request) {
	signals := &DoctorSignals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := s.sessions.Load(r)
	if !sess.HasToken() {
		datastar.NewSSE(w, r).ExecuteScript(alert(sessionExpired))
		return
	}

	ok, err := s.backend.SaveDoctor(r.Context(), signals.Payload(), sess.Token)
	if backend.IsUnauthorized(err) {
		s.expireSession(w, r, sess)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err == nil && !ok {
		err = errors.New("doctor was not saved")
	}
	if err != nil {
		sse.ExecuteScript(alert("Failed to add doctor: " + err.Error()))
		return
	}

	s.logger.Info("web.doctor.saved", "email", signals.Email, "requestId", middleware.RequestID(r.Context()))
	sse.ExecuteScript(alert("Doctor added successfully!"))
	sse.PatchElements(view.Render(view.HiddenModal()))
	sse.ExecuteScript("window.location.reload()")
}

func (s *Server) handleDeleteDoctor(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid ID", http.StatusBadRequest)
		return
	}

	sess := s.sessions.Load(r)
	res, err := s.backend.DeleteDoctor(r.Context(), id, sess.Token)
	if backend.IsUnauthorized(err) {
		s.expireSession(w, r, sess)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err == nil && !res.Success {
		err = fmt.Errorf("delete rejected: %s", res.Message)
	}
	if err != nil {
		// the card stays; the failure only goes to the logs
		s.logger.Warn("web.doctor.delete_failed", "doctorId", id, "error", err.Error(), "requestId", middleware.RequestID(r.Context()))
		sse.ConsoleError(fmt.Errorf("delete failed: %w", err))
		return
	}

	sse.ExecuteScript(alert("Doctor removed successfully"))
	sse.RemoveElement("#" + view.CardID(id))
}

// handleBookDoctor opens the booking overlay for the doctor carried in the
// request.
func (s *Server) handleBookDoctor(w http.ResponseWriter, r *http.Request) {
	doctor, err := view.DecodeDoctor(r.URL.Query().Get("doctor"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	sess := s.sessions.Load(r)
	patient, err := s.backend.FetchPatientDetails(r.Context(), sess.Token)
	if err != nil {
		s.logger.Warn("web.booking.patient_failed", "doctorId", doctor.ID, "error", err.Error(), "requestId", middleware.RequestID(r.Context()))
	}
	if backend.IsUnauthorized(err) {
		s.expireSession(w, r, sess)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err != nil {
		sse.ConsoleError(fmt.Errorf("failed to initiate booking: %w", err))
		sse.ExecuteScript(alert(sessionExpired))
		return
	}

	sse.PatchElements(view.Render(s.overlay.Render(doctor, patient)))
}

// appointmentTime joins the picked date with the start of the picked slot,
// "2024-05-01" + "09:00-10:00" -> "2024-05-01T09:00:00".
func appointmentTime(date, slot string) (string, bool) {
	start, _, _ := strings.Cut(slot, "-")
	start = strings.TrimSpace(start)
	if date == "" || start == "" {
		return "", false
	}
	return date + "T" + start + ":00", true
}

func (s *Server) handleBookAppointment(w http.ResponseWriter, r *http.Request) {
	signals := &BookingSignals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sess := s.sessions.Load(r)
	if !sess.HasToken() {
		datastar.NewSSE(w, r).ExecuteScript(alert(sessionExpired))
		return
	}
	at, ok := appointmentTime(signals.Date, signals.Time)
	if !ok {
		datastar.NewSSE(w, r).ExecuteScript(alert("Please select a date and time."))
		return
	}

	appt := models.Appointment{
		DoctorID:        signals.DoctorID,
		PatientID:       signals.PatientID,
		AppointmentTime: at,
	}
	err := s.backend.BookAppointment(r.Context(), appt, sess.Token)
	if backend.IsUnauthorized(err) {
		s.expireSession(w, r, sess)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err != nil {
		sse.ExecuteScript(alert("Failed to book appointment: " + err.Error()))
		return
	}

	sse.ExecuteScript(alert("Appointment booked successfully!"))
	sse.PatchElements(view.Render(view.EmptyBookingOverlay()))
}

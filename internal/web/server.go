package web

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/net/html"

	"hospital-portal/internal/backend"
	"hospital-portal/internal/middleware"
	"hospital-portal/internal/models"
	"hospital-portal/internal/session"
	"hospital-portal/internal/view"
)

// Backend is the subset of the hospital API the frontend talks to.
type Backend interface {
	GetDoctors(ctx context.Context) ([]models.Doctor, error)
	FilterDoctors(ctx context.Context, name, slot, specialty *string) ([]models.Doctor, error)
	SaveDoctor(ctx context.Context, doctor models.DoctorPayload, token string) (bool, error)
	DeleteDoctor(ctx context.Context, id int64, token string) (backend.DeleteResult, error)
	FetchPatientDetails(ctx context.Context, token string) (models.Patient, error)
	AdminLogin(ctx context.Context, creds models.Login) (string, error)
	DoctorLogin(ctx context.Context, creds models.Login) (string, error)
	PatientLogin(ctx context.Context, creds models.Login) (string, error)
	PatientSignup(ctx context.Context, p models.PatientSignup) error
	BookAppointment(ctx context.Context, a models.Appointment, token string) error
}

type Server struct {
	backend  Backend
	sessions *session.Store
	overlay  view.BookingOverlay
	logger   *slog.Logger
}

func NewServer(b Backend, sessions *session.Store, overlay view.BookingOverlay, logger *slog.Logger) *Server {
	if overlay == nil {
		overlay = view.DefaultBookingOverlay{}
	}
	return &Server{
		backend:  b,
		sessions: sessions,
		overlay:  overlay,
		logger:   logger,
	}
}

// Routes registers every page and action endpoint on r.
func (s *Server) Routes(r chi.Router) {
	r.Get(view.RootPath, s.handleRoot)
	r.Get("/role/patient", s.handleSelectPatient)
	r.Get(view.AdminDashboardPath, s.dashboard("Admin Dashboard", view.AdminDashboardPath))
	r.Get(view.DoctorDashboardPath, s.dashboard("Doctor Dashboard", view.DoctorDashboardPath))
	r.Get(view.PatientDashboardPath, s.dashboard("Patient Dashboard", view.PatientDashboardPath))
	r.Get(view.PatientHomePath, s.dashboard("Patient Home", view.PatientHomePath))
	r.Get(view.LogoutPath, s.handleLogout)
	r.Get(view.PatientLogoutPath, s.handlePatientLogout)
	r.Get("/healthz", handleHealth)

	r.Get("/modals/{kind}", s.handleModal)

	r.Route("/doctors", func(r chi.Router) {
		r.Get("/filter", s.handleFilterDoctors)
		r.Get("/book", s.handleBookDoctor)
		r.Post("/", s.handleSaveDoctor)
		r.Delete("/{id}", s.handleDeleteDoctor)
	})
	r.Post("/appointments", s.handleBookAppointment)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/admin/login", s.handleAdminLogin)
		r.Post("/doctor/login", s.handleDoctorLogin)
		r.Post("/patient/login", s.handlePatientLogin)
		r.Post("/patient/signup", s.handlePatientSignup)
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// render writes a full document. Failures past the first byte can only be
// logged.
func (s *Server) render(w http.ResponseWriter, r *http.Request, doc *html.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := view.WriteDocument(w, doc); err != nil {
		s.logger.Error("web.render.failed", "path", r.URL.Path, "error", err.Error(), "requestId", middleware.RequestID(r.Context()))
	}
}

package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"hospital-portal/internal/middleware"
	"hospital-portal/internal/models"
	"hospital-portal/internal/session"
	"hospital-portal/internal/view"
)

// LoginSignals holds every field the three login modals can bind.
type LoginSignals struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	DoctorEmail    string `json:"doctorEmail"`
	DoctorPassword string `json:"doctorPassword"`
}

type SignupSignals struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// saveDoctorAction is the submit handler the dashboard injects into the
// add-doctor modal.
var saveDoctorAction = view.Post("/doctors")

func (s *Server) handleModal(w http.ResponseWriter, r *http.Request) {
	kind, ok := view.ParseModalKind(chi.URLParam(r, "kind"))
	if !ok {
		s.logger.Debug("web.modal.unknown", "kind", chi.URLParam(r, "kind"))
	}
	sse := datastar.NewSSE(w, r)
	sse.PatchElements(view.Render(view.Modal(kind, saveDoctorAction)))
}

// login runs one login flow: call the backend, persist role and token, then
// send the browser to the role's landing page.
func (s *Server) login(w http.ResponseWriter, r *http.Request, role session.Role, landing string, call func(context.Context, LoginSignals) (string, error)) {
	signals := &LoginSignals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := call(r.Context(), *signals)
	if err != nil {
		s.logger.Warn("web.login.failed", "role", role.String(), "error", err.Error(), "requestId", middleware.RequestID(r.Context()))
		sse := datastar.NewSSE(w, r)
		sse.ExecuteScript(alert("Invalid credentials!"))
		return
	}

	// the cookie must be set before the event stream starts
	if err := s.sessions.Login(w, r, role, token); err != nil {
		s.logger.Error("web.session.save_failed", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	s.logger.Info("web.login.succeeded", "role", role.String(), "requestId", middleware.RequestID(r.Context()))

	sse := datastar.NewSSE(w, r)
	sse.Redirect(landing)
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	s.login(w, r, session.Admin, view.AdminDashboardPath, func(ctx context.Context, sig LoginSignals) (string, error) {
		return s.backend.AdminLogin(ctx, models.Login{Email: sig.Username, Password: sig.Password})
	})
}

func (s *Server) handleDoctorLogin(w http.ResponseWriter, r *http.Request) {
	s.login(w, r, session.Doctor, view.DoctorDashboardPath, func(ctx context.Context, sig LoginSignals) (string, error) {
		return s.backend.DoctorLogin(ctx, models.Login{Email: sig.DoctorEmail, Password: sig.DoctorPassword})
	})
}

func (s *Server) handlePatientLogin(w http.ResponseWriter, r *http.Request) {
	s.login(w, r, session.LoggedPatient, view.PatientHomePath, func(ctx context.Context, sig LoginSignals) (string, error) {
		return s.backend.PatientLogin(ctx, models.Login{Email: sig.Email, Password: sig.Password})
	})
}

func (s *Server) handlePatientSignup(w http.ResponseWriter, r *http.Request) {
	signals := &SignupSignals{}
	if err := datastar.ReadSignals(r, signals); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sse := datastar.NewSSE(w, r)
	err := s.backend.PatientSignup(r.Context(), models.PatientSignup{
		Name:     signals.Name,
		Email:    signals.Email,
		Password: signals.Password,
		Phone:    signals.Phone,
		Address:  signals.Address,
	})
	if err != nil {
		sse.ExecuteScript(alert("Signup failed: " + err.Error()))
		return
	}

	sse.ExecuteScript(alert("Signup successful! Please log in."))
	sse.PatchElements(view.Render(view.HiddenModal()))
}

package web

import (
	"net/http"

	"golang.org/x/net/html"

	"hospital-portal/internal/middleware"
	"hospital-portal/internal/session"
	"hospital-portal/internal/view"
)

// page renders path with the role-aware header. The header decides whether
// the session is usable; its side effects are applied before anything is
// written.
func (s *Server) page(w http.ResponseWriter, r *http.Request, path, title string, content func(session.Session) []*html.Node) {
	sess := s.sessions.Load(r)
	hdr := view.Header(path, sess)

	if hdr.ClearRole || hdr.ClearToken {
		if hdr.ClearRole {
			sess.Role = session.Anonymous
		}
		if hdr.ClearToken {
			sess.Token = ""
		}
		if err := s.sessions.Save(w, r, sess); err != nil {
			s.logger.Error("web.session.save_failed", "path", path, "error", err.Error())
		}
	}

	if hdr.Redirect != "" {
		s.logger.Info("web.session.invalid", "path", path, "requestId", middleware.RequestID(r.Context()))
		s.render(w, r, view.AlertRedirect(hdr.Alert, hdr.Redirect))
		return
	}

	s.render(w, r, view.Layout(view.Page{
		Title:   title,
		Header:  hdr.Node,
		Content: content(sess),
		CSRF:    middleware.CSRFToken(r),
	}))
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	s.page(w, r, view.RootPath, "Hospital CMS", func(session.Session) []*html.Node {
		return view.RoleSelection()
	})
}

// handleSelectPatient is the Patient choice on the landing page.
func (s *Server) handleSelectPatient(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.SetRole(w, r, session.Patient); err != nil {
		s.logger.Error("web.session.save_failed", "error", err.Error())
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, view.PatientDashboardPath, http.StatusSeeOther)
}

// dashboard serves a doctor listing page. A backend failure leaves the list
// empty; the page still renders.
func (s *Server) dashboard(title, path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.page(w, r, path, title, func(sess session.Session) []*html.Node {
			doctors, err := s.backend.GetDoctors(r.Context())
			if err != nil {
				s.logger.Error("web.doctors.load_failed", "path", path, "error", err.Error(), "requestId", middleware.RequestID(r.Context()))
			}
			return view.Dashboard(view.DoctorList(doctors, sess))
		})
	}
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Logout(w, r); err != nil {
		s.logger.Error("web.session.save_failed", "error", err.Error())
	}
	http.Redirect(w, r, view.RootPath, http.StatusSeeOther)
}

func (s *Server) handlePatientLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.LogoutPatient(w, r); err != nil {
		s.logger.Error("web.session.save_failed", "error", err.Error())
	}
	http.Redirect(w, r, view.PatientDashboardPath, http.StatusSeeOther)
}

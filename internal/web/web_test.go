package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"hospital-portal/internal/backend"
	"hospital-portal/internal/logger"
	"hospital-portal/internal/models"
	"hospital-portal/internal/session"
	"hospital-portal/internal/view"
)

var ann = models.Doctor{ID: 1, Name: "Ann", Specialization: "cardiologist", Email: "a@x.com", AvailableTimes: []string{"09:00-10:00"}}

type filterCall struct {
	name, slot, specialty *string
}

type fakeBackend struct {
	doctors    []models.Doctor
	doctorsErr error

	filtered    []models.Doctor
	filterErr   error
	filterCalls []filterCall

	saveOK    bool
	saveErr   error
	saved     []models.DoctorPayload
	saveToken string

	deleteRes   backend.DeleteResult
	deleteErr   error
	deletedID   int64
	deleteToken string

	patient    models.Patient
	patientErr error

	token    string
	loginErr error
	logins   []string

	signupErr error
	signups   []models.PatientSignup

	bookErr error
	booked  []models.Appointment
}

func (f *fakeBackend) GetDoctors(ctx context.Context) ([]models.Doctor, error) {
	return f.doctors, f.doctorsErr
}

func (f *fakeBackend) FilterDoctors(ctx context.Context, name, slot, specialty *string) ([]models.Doctor, error) {
	f.filterCalls = append(f.filterCalls, filterCall{name, slot, specialty})
	return f.filtered, f.filterErr
}

func (f *fakeBackend) SaveDoctor(ctx context.Context, d models.DoctorPayload, token string) (bool, error) {
	f.saved = append(f.saved, d)
	f.saveToken = token
	return f.saveOK, f.saveErr
}

func (f *fakeBackend) DeleteDoctor(ctx context.Context, id int64, token string) (backend.DeleteResult, error) {
	f.deletedID = id
	f.deleteToken = token
	return f.deleteRes, f.deleteErr
}

func (f *fakeBackend) FetchPatientDetails(ctx context.Context, token string) (models.Patient, error) {
	return f.patient, f.patientErr
}

func (f *fakeBackend) AdminLogin(ctx context.Context, c models.Login) (string, error) {
	f.logins = append(f.logins, "admin:"+c.Email)
	return f.token, f.loginErr
}

func (f *fakeBackend) DoctorLogin(ctx context.Context, c models.Login) (string, error) {
	f.logins = append(f.logins, "doctor:"+c.Email)
	return f.token, f.loginErr
}

func (f *fakeBackend) PatientLogin(ctx context.Context, c models.Login) (string, error) {
	f.logins = append(f.logins, "patient:"+c.Email)
	return f.token, f.loginErr
}

func (f *fakeBackend) PatientSignup(ctx context.Context, p models.PatientSignup) error {
	f.signups = append(f.signups, p)
	return f.signupErr
}

func (f *fakeBackend) BookAppointment(ctx context.Context, a models.Appointment, token string) error {
	f.booked = append(f.booked, a)
	return f.bookErr
}

func newTestStore() *session.Store {
	return session.NewStore(session.Options{
		CookieName: "hospital-session",
		Secret:     "test-session-secret-0123456789ab",
		MaxAge:     3600,
	})
}

func newTestRouter(f *fakeBackend, store *session.Store) http.Handler {
	r := chi.NewRouter()
	NewServer(f, store, nil, logger.Discard()).Routes(r)
	return r
}

// cookiesFor returns the cookies a browser would hold for sess.
func cookiesFor(t *testing.T, store *session.Store, sess session.Session) []*http.Cookie {
	t.Helper()
	rr := httptest.NewRecorder()
	if err := store.Save(rr, httptest.NewRequest(http.MethodGet, "/", nil), sess); err != nil {
		t.Fatal(err)
	}
	return rr.Result().Cookies()
}

// sessionAfter reads back the session a response left behind.
func sessionAfter(store *session.Store, rr *httptest.ResponseRecorder) session.Session {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return store.Load(req)
}

func do(t *testing.T, h http.Handler, store *session.Store, sess *session.Session, method, target string, signals any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if signals == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		b, err := json.Marshal(signals)
		if err != nil {
			t.Fatal(err)
		}
		if method == http.MethodGet {
			sep := "?"
			if strings.Contains(target, "?") {
				sep = "&"
			}
			req = httptest.NewRequest(method, target+sep+url.Values{"datastar": {string(b)}}.Encode(), nil)
		} else {
			req = httptest.NewRequest(method, target, strings.NewReader(string(b)))
			req.Header.Set("Content-Type", "application/json")
		}
	}
	if sess != nil {
		for _, c := range cookiesFor(t, store, *sess) {
			req.AddCookie(c)
		}
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func deref(p *string) string {
	if p == nil {
		return "<nil>"
	}
	return *p
}

func TestFilterDoctors_EmptyFieldsBecomeNil(t *testing.T) {
	f := &fakeBackend{filtered: []models.Doctor{ann}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, nil, http.MethodGet, "/doctors/filter", map[string]string{"search": "", "time": "10:00", "specialty": ""})

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	if len(f.filterCalls) != 1 {
		t.Fatalf("expected one filter call, got %d", len(f.filterCalls))
	}
	c := f.filterCalls[0]
	if c.name != nil || c.specialty != nil || deref(c.slot) != "10:00" {
		t.Errorf("filter called with (%s, %s, %s)", deref(c.name), deref(c.slot), deref(c.specialty))
	}
	if !strings.Contains(rr.Body.String(), `id="doctor-1"`) {
		t.Errorf("expected the matching card, got %s", rr.Body.String())
	}
}

func TestFilterDoctors_BlankFieldsReturnFullList(t *testing.T) {
	f := &fakeBackend{filtered: []models.Doctor{ann, {ID: 2, Name: "Bob"}}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, nil, http.MethodGet, "/doctors/filter", map[string]string{"search": "  ", "time": "", "specialty": ""})

	if len(f.filterCalls) != 1 {
		t.Fatalf("expected one filter call, got %d", len(f.filterCalls))
	}
	c := f.filterCalls[0]
	if c.name != nil || c.slot != nil || c.specialty != nil {
		t.Errorf("filter called with (%s, %s, %s), want no constraints", deref(c.name), deref(c.slot), deref(c.specialty))
	}
	body := rr.Body.String()
	for _, want := range []string{`id="doctor-1"`, `id="doctor-2"`} {
		if !strings.Contains(body, want) {
			t.Errorf("response missing %s: %s", want, body)
		}
	}
}

func TestFilterDoctors_NoResults(t *testing.T) {
	f := &fakeBackend{}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, nil, http.MethodGet, "/doctors/filter", map[string]string{"search": "zed"})

	if !strings.Contains(rr.Body.String(), "No doctors found with the given filters.") {
		t.Errorf("expected empty state, got %s", rr.Body.String())
	}
	if deref(f.filterCalls[0].name) != "zed" || f.filterCalls[0].slot != nil {
		t.Errorf("unexpected filter arguments")
	}
}

func TestFilterDoctors_Error(t *testing.T) {
	f := &fakeBackend{filterErr: errors.New("boom")}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, nil, http.MethodGet, "/doctors/filter", map[string]string{})

	if !strings.Contains(rr.Body.String(), "Error filtering doctors: boom") {
		t.Errorf("expected error alert, got %s", rr.Body.String())
	}
}

func TestSaveDoctor_NoTokenSkipsBackend(t *testing.T) {
	f := &fakeBackend{saveOK: true}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.Admin}, http.MethodPost, "/doctors", map[string]string{"docName": "Bob"})

	if len(f.saved) != 0 {
		t.Errorf("backend must not be called without a token")
	}
	if !strings.Contains(rr.Body.String(), "Session expired. Please log in again.") {
		t.Errorf("expected session alert, got %s", rr.Body.String())
	}
}

func TestSaveDoctor_Success(t *testing.T) {
	f := &fakeBackend{saveOK: true}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.Admin, Token: "t1"}, http.MethodPost, "/doctors", map[string]string{
		"docName":      "Bob",
		"docSpecialty": "dentist",
		"docEmail":     "b@x.com",
		"docPassword":  "secret",
		"docPhone":     "5550100",
		"docTimes":     "09:00-10:00, 10:00-11:00",
	})

	if len(f.saved) != 1 || f.saveToken != "t1" {
		t.Fatalf("expected one save with the session token, got %d (%q)", len(f.saved), f.saveToken)
	}
	p := f.saved[0]
	if p.Name != "Bob" || p.Specialty != "dentist" || len(p.AvailableTimes) != 2 || p.AvailableTimes[1] != "10:00-11:00" {
		t.Errorf("unexpected payload %+v", p)
	}

	body := rr.Body.String()
	for _, want := range []string{"Doctor added successfully!", "window.location.reload()", `style="display: none"`} {
		if !strings.Contains(body, want) {
			t.Errorf("response missing %q: %s", want, body)
		}
	}
}

func TestSaveDoctor_Failure(t *testing.T) {
	f := &fakeBackend{saveErr: &backend.APIError{Status: 409, Message: "email taken"}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.Admin, Token: "t1"}, http.MethodPost, "/doctors", map[string]string{"docName": "Bob"})

	if !strings.Contains(rr.Body.String(), "Failed to add doctor: email taken") {
		t.Errorf("expected failure alert, got %s", rr.Body.String())
	}
	if strings.Contains(rr.Body.String(), "reload") {
		t.Error("page must not reload after a failed save")
	}
}

func TestDeleteDoctor_Success(t *testing.T) {
	f := &fakeBackend{deleteRes: backend.DeleteResult{Success: true}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.Admin, Token: "t1"}, http.MethodDelete, "/doctors/1", nil)

	if f.deletedID != 1 || f.deleteToken != "t1" {
		t.Errorf("backend called with id=%d token=%q", f.deletedID, f.deleteToken)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Doctor removed successfully") || !strings.Contains(body, "#doctor-1") {
		t.Errorf("expected alert and removal of #doctor-1, got %s", body)
	}
	if strings.Contains(body, "#doctor-2") {
		t.Error("only the deleted card may be removed")
	}
}

func TestDeleteDoctor_FailureKeepsCard(t *testing.T) {
	f := &fakeBackend{deleteErr: errors.New("forbidden")}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.Admin, Token: "t1"}, http.MethodDelete, "/doctors/1", nil)

	body := rr.Body.String()
	if strings.Contains(body, "Doctor removed successfully") || strings.Contains(body, "#doctor-1") {
		t.Errorf("card must stay on failure: %s", body)
	}
	if !strings.Contains(body, "forbidden") {
		t.Errorf("expected the failure on the console, got %s", body)
	}
}

func TestDeleteDoctor_BadID(t *testing.T) {
	f := &fakeBackend{}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, nil, http.MethodDelete, "/doctors/abc", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusBadRequest)
	}
}

func TestDeleteDoctor_UnauthorizedLogsOut(t *testing.T) {
	f := &fakeBackend{deleteErr: &backend.APIError{Status: http.StatusUnauthorized, Message: "Invalid token"}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.Admin, Token: "t1"}, http.MethodDelete, "/doctors/1", nil)

	if len(rr.Result().Cookies()) == 0 {
		t.Fatal("expected the session cookie to be rewritten")
	}
	if got := sessionAfter(store, rr); got != (session.Session{}) {
		t.Errorf("session should be cleared, got %+v", got)
	}
	body := rr.Body.String()
	for _, want := range []string{"Session expired. Please log in again.", `window.location.href = "/"`} {
		if !strings.Contains(body, want) {
			t.Errorf("response missing %q: %s", want, body)
		}
	}
	if strings.Contains(body, "#doctor-1") {
		t.Error("card must stay when the delete is rejected")
	}
}

func TestSaveDoctor_ForbiddenLogsOut(t *testing.T) {
	f := &fakeBackend{saveErr: &backend.APIError{Status: http.StatusForbidden}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.Doctor, Token: "t1"}, http.MethodPost, "/doctors", map[string]string{"docName": "Bob"})

	if got := sessionAfter(store, rr); got.HasToken() || got.Role != session.Anonymous {
		t.Errorf("session should be cleared, got %+v", got)
	}
	if !strings.Contains(rr.Body.String(), `window.location.href = "/"`) {
		t.Errorf("expected redirect home, got %s", rr.Body.String())
	}
}

func TestDashboard_InvalidSessionRedirects(t *testing.T) {
	f := &fakeBackend{doctors: []models.Doctor{ann}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.Admin}, http.MethodGet, view.AdminDashboardPath, nil)

	body := rr.Body.String()
	if !strings.Contains(body, "Session expired or invalid login. Please log in again.") {
		t.Errorf("expected expiry alert, got %s", body)
	}
	if strings.Contains(body, "doctor-card") {
		t.Error("page content must not render for an invalid session")
	}
	if got := sessionAfter(store, rr); got.Role != session.Anonymous {
		t.Errorf("role should be cleared, got %v", got.Role)
	}
}

func TestDashboard_AdminSeesDeleteButtons(t *testing.T) {
	f := &fakeBackend{doctors: []models.Doctor{ann, {ID: 2, Name: "Bob"}}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.Admin, Token: "t1"}, http.MethodGet, view.AdminDashboardPath, nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if strings.Count(body, "btn-delete") != 2 {
		t.Errorf("expected two delete buttons, got %d", strings.Count(body, "btn-delete"))
	}
	if !strings.Contains(body, "addDocBtn") {
		t.Error("admin header missing")
	}
}

func TestDashboard_LoadFailureRendersEmptyList(t *testing.T) {
	f := &fakeBackend{doctorsErr: errors.New("down")}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.Patient}, http.MethodGet, view.PatientDashboardPath, nil)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="doctor-container"`) || strings.Contains(body, "doctor-card") {
		t.Errorf("expected an empty list, got %s", body)
	}
}

func TestRoot_ClearsRole(t *testing.T) {
	f := &fakeBackend{}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.Admin, Token: "t1"}, http.MethodGet, view.RootPath, nil)

	if !strings.Contains(rr.Body.String(), "adminBtn") {
		t.Error("expected the role selection page")
	}
	got := sessionAfter(store, rr)
	if got.Role != session.Anonymous || got.Token != "t1" {
		t.Errorf("root should clear only the role, got %+v", got)
	}
}

func TestSelectPatient(t *testing.T) {
	store := newTestStore()
	h := newTestRouter(&fakeBackend{}, store)

	rr := do(t, h, store, nil, http.MethodGet, "/role/patient", nil)

	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != view.PatientDashboardPath {
		t.Errorf("expected redirect to %s, got %d %q", view.PatientDashboardPath, rr.Code, rr.Header().Get("Location"))
	}
	if got := sessionAfter(store, rr); got.Role != session.Patient {
		t.Errorf("role = %v", got.Role)
	}
}

func TestLogins(t *testing.T) {
	cases := []struct {
		path    string
		signals map[string]string
		role    session.Role
		landing string
		login   string
	}{
		{"/auth/admin/login", map[string]string{"username": "root", "password": "pw"}, session.Admin, view.AdminDashboardPath, "admin:root"},
		{"/auth/doctor/login", map[string]string{"doctorEmail": "d@x.com", "doctorPassword": "pw"}, session.Doctor, view.DoctorDashboardPath, "doctor:d@x.com"},
		{"/auth/patient/login", map[string]string{"email": "p@x.com", "password": "pw"}, session.LoggedPatient, view.PatientHomePath, "patient:p@x.com"},
	}

	for _, c := range cases {
		f := &fakeBackend{token: "tok"}
		store := newTestStore()
		h := newTestRouter(f, store)

		rr := do(t, h, store, nil, http.MethodPost, c.path, c.signals)

		if len(f.logins) != 1 || f.logins[0] != c.login {
			t.Errorf("%s: backend logins = %v", c.path, f.logins)
		}
		got := sessionAfter(store, rr)
		if got.Role != c.role || got.Token != "tok" {
			t.Errorf("%s: session = %+v", c.path, got)
		}
		if !strings.Contains(rr.Body.String(), c.landing) {
			t.Errorf("%s: expected redirect to %s, got %s", c.path, c.landing, rr.Body.String())
		}
	}
}

func TestLogin_Failure(t *testing.T) {
	f := &fakeBackend{loginErr: &backend.APIError{Status: http.StatusUnauthorized}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, nil, http.MethodPost, "/auth/admin/login", map[string]string{"username": "root", "password": "bad"})

	if !strings.Contains(rr.Body.String(), "Invalid credentials!") {
		t.Errorf("expected failure alert, got %s", rr.Body.String())
	}
	if got := sessionAfter(store, rr); got.HasToken() {
		t.Error("failed login must not store a token")
	}
}

func TestSignup(t *testing.T) {
	f := &fakeBackend{}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, nil, http.MethodPost, "/auth/patient/signup", map[string]string{
		"name": "Pat", "email": "p@x.com", "password": "pw", "phone": "1", "address": "Main St",
	})

	if len(f.signups) != 1 || f.signups[0].Address != "Main St" {
		t.Fatalf("unexpected signups %+v", f.signups)
	}
	if !strings.Contains(rr.Body.String(), "Signup successful! Please log in.") {
		t.Errorf("expected success alert, got %s", rr.Body.String())
	}
}

func TestModalEndpoint(t *testing.T) {
	store := newTestStore()
	h := newTestRouter(&fakeBackend{}, store)

	rr := do(t, h, store, nil, http.MethodGet, "/modals/addDoctor", nil)
	body := rr.Body.String()
	if !strings.Contains(body, "saveDoctorBtn") || !strings.Contains(body, "/doctors") {
		t.Errorf("expected the add doctor form wired to /doctors, got %s", body)
	}

	rr = do(t, h, store, nil, http.MethodGet, "/modals/bogus", nil)
	body = rr.Body.String()
	if !strings.Contains(body, "closeModal") || strings.Contains(body, "<input") {
		t.Errorf("unknown modal should only offer close, got %s", body)
	}
}

func TestBookDoctor(t *testing.T) {
	f := &fakeBackend{patient: models.Patient{ID: 7, Name: "Pat"}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.LoggedPatient, Token: "p"}, http.MethodGet, "/doctors/book?doctor="+view.EncodeDoctor(ann), nil)

	body := rr.Body.String()
	if !strings.Contains(body, view.BookingOverlayID) || !strings.Contains(body, `value="Pat"`) {
		t.Errorf("expected the booking overlay, got %s", body)
	}
}

func TestBookDoctor_PatientLookupFails(t *testing.T) {
	f := &fakeBackend{patientErr: &backend.APIError{Status: http.StatusUnauthorized}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.LoggedPatient, Token: "p"}, http.MethodGet, "/doctors/book?doctor="+view.EncodeDoctor(ann), nil)

	if !strings.Contains(rr.Body.String(), "Session expired. Please log in again.") {
		t.Errorf("expected session alert, got %s", rr.Body.String())
	}
	got := sessionAfter(store, rr)
	if got.HasToken() || got.Role != session.Patient {
		t.Errorf("expected an unauthenticated patient, got %+v", got)
	}
	if !strings.Contains(rr.Body.String(), `window.location.href = "/"`) {
		t.Errorf("expected redirect home, got %s", rr.Body.String())
	}
}

func TestBookDoctor_LookupErrorKeepsSession(t *testing.T) {
	f := &fakeBackend{patientErr: errors.New("connection refused")}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.LoggedPatient, Token: "p"}, http.MethodGet, "/doctors/book?doctor="+view.EncodeDoctor(ann), nil)

	if len(rr.Result().Cookies()) != 0 {
		t.Error("a transport failure must not touch the session")
	}
	if !strings.Contains(rr.Body.String(), "connection refused") {
		t.Errorf("expected the failure on the console, got %s", rr.Body.String())
	}
}

func TestBookAppointment(t *testing.T) {
	f := &fakeBackend{}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.LoggedPatient, Token: "p"}, http.MethodPost, "/appointments", map[string]any{
		"bookDoctorId": 1, "bookPatientId": 7, "bookDate": "2025-01-02", "bookTime": "09:00-10:00",
	})

	if len(f.booked) != 1 {
		t.Fatalf("expected one booking, got %d", len(f.booked))
	}
	a := f.booked[0]
	if a.DoctorID != 1 || a.PatientID != 7 || a.AppointmentTime != "2025-01-02T09:00:00" {
		t.Errorf("unexpected appointment %+v", a)
	}
	if !strings.Contains(rr.Body.String(), "Appointment booked successfully!") {
		t.Errorf("expected success alert, got %s", rr.Body.String())
	}
}

func TestBookAppointment_MissingSlot(t *testing.T) {
	f := &fakeBackend{}
	store := newTestStore()
	h := newTestRouter(f, store)

	do(t, h, store, &session.Session{Role: session.LoggedPatient, Token: "p"}, http.MethodPost, "/appointments", map[string]any{"bookDoctorId": 1})

	if len(f.booked) != 0 {
		t.Error("incomplete booking must not reach the backend")
	}
}

func TestBookAppointment_UnauthorizedLogsOut(t *testing.T) {
	f := &fakeBackend{bookErr: &backend.APIError{Status: http.StatusUnauthorized}}
	store := newTestStore()
	h := newTestRouter(f, store)

	rr := do(t, h, store, &session.Session{Role: session.LoggedPatient, Token: "p"}, http.MethodPost, "/appointments", map[string]any{
		"bookDoctorId": 1, "bookPatientId": 7, "bookDate": "2025-01-02", "bookTime": "09:00-10:00",
	})

	got := sessionAfter(store, rr)
	if got.HasToken() || got.Role != session.Patient {
		t.Errorf("expected an unauthenticated patient, got %+v", got)
	}
	body := rr.Body.String()
	if strings.Contains(body, "Appointment booked successfully!") || !strings.Contains(body, `window.location.href = "/"`) {
		t.Errorf("expected redirect home without success, got %s", body)
	}
}

func TestPatientLogout(t *testing.T) {
	store := newTestStore()
	h := newTestRouter(&fakeBackend{}, store)

	rr := do(t, h, store, &session.Session{Role: session.LoggedPatient, Token: "p"}, http.MethodGet, view.PatientLogoutPath, nil)

	got := sessionAfter(store, rr)
	if got.Role != session.Patient || got.HasToken() {
		t.Errorf("expected an anonymous patient, got %+v", got)
	}
}

func TestLogout(t *testing.T) {
	store := newTestStore()
	h := newTestRouter(&fakeBackend{}, store)

	rr := do(t, h, store, &session.Session{Role: session.Admin, Token: "t"}, http.MethodGet, view.LogoutPath, nil)

	if got := sessionAfter(store, rr); got.Role != session.Anonymous || got.HasToken() {
		t.Errorf("expected an empty session, got %+v", got)
	}
}

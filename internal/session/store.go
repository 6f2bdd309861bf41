package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	keyRole  = "role"
	keyToken = "token"
)

// Store is the only reader and writer of the persisted session values.
type Store struct {
	backend sessions.Store
	name    string
}

// Options configures the session cookie.
type Options struct {
	CookieName string
	Secret     string
	MaxAge     int
	Secure     bool
}

// NewStore returns a Store backed by a signed gorilla cookie store.
func NewStore(opts Options) *Store {
	cs := sessions.NewCookieStore([]byte(opts.Secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{backend: cs, name: opts.CookieName}
}

// Load reads role and token. A missing or undecodable cookie yields the zero
// Session, which is an anonymous viewer.
func (s *Store) Load(r *http.Request) Session {
	sess, err := s.backend.Get(r, s.name)
	if err != nil || sess == nil {
		return Session{}
	}
	role, _ := sess.Values[keyRole].(string)
	token, _ := sess.Values[keyToken].(string)
	return Session{Role: ParseRole(role), Token: token}
}

// Save persists both values. Empty values are removed rather than stored.
func (s *Store) Save(w http.ResponseWriter, r *http.Request, v Session) error {
	sess, _ := s.backend.Get(r, s.name)
	if v.Role == Anonymous {
		delete(sess.Values, keyRole)
	} else {
		sess.Values[keyRole] = v.Role.String()
	}
	if v.Token == "" {
		delete(sess.Values, keyToken)
	} else {
		sess.Values[keyToken] = v.Token
	}
	return sess.Save(r, w)
}

// SetRole changes the role and keeps any stored token.
func (s *Store) SetRole(w http.ResponseWriter, r *http.Request, role Role) error {
	cur := s.Load(r)
	cur.Role = role
	return s.Save(w, r, cur)
}

// ClearRole resets the viewer to anonymous without touching the token.
func (s *Store) ClearRole(w http.ResponseWriter, r *http.Request) error {
	return s.SetRole(w, r, Anonymous)
}

// Login stores the role and backend token after a successful login.
func (s *Store) Login(w http.ResponseWriter, r *http.Request, role Role, token string) error {
	return s.Save(w, r, Session{Role: role, Token: token})
}

// Logout clears role and token (admin and doctor logout).
func (s *Store) Logout(w http.ResponseWriter, r *http.Request) error {
	return s.Save(w, r, Session{})
}

// LogoutPatient drops the token and leaves the viewer on the patient side of
// the site as an unauthenticated patient.
func (s *Store) LogoutPatient(w http.ResponseWriter, r *http.Request) error {
	return s.Save(w, r, Session{Role: Patient})
}

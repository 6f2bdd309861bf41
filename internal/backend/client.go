package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"hospital-portal/internal/models"
)

// APIError is returned for any non-2xx answer from the hospital backend.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned status %d", e.Status)
	}
	return e.Message
}

// IsUnauthorized reports whether err is a backend rejection of the token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden)
}

type DeleteResult struct {
	Success bool
	Message string
}

type Client struct {
	client  *http.Client
	baseURL string
	logger  *slog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
		logger:  logger,
	}
}

// statusEnvelope is the shape most backend endpoints answer with.
type statusEnvelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Token   string          `json:"token"`
	Doctors []models.Doctor `json:"doctors"`
	Patient *models.Patient `json:"patient"`
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode}
		var env statusEnvelope
		if json.Unmarshal(raw, &env) == nil {
			apiErr.Message = env.Message
			if apiErr.Message == "" {
				apiErr.Message = env.Error
			}
		}
		return raw, apiErr
	}
	return raw, nil
}

func (c *Client) GetDoctors(ctx context.Context) ([]models.Doctor, error) {
	c.logger.Debug("backend.doctors.fetch")

	raw, err := c.do(ctx, http.MethodGet, "/doctor", nil)
	if err != nil {
		c.logger.Error("backend.doctors.fetch_failed", "error", err.Error())
		return nil, err
	}

	var env statusEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Error("backend.doctors.decode_failed", "error", err.Error())
		return nil, fmt.Errorf("decode doctors: %w", err)
	}
	return env.Doctors, nil
}

// pathOrNull encodes an optional filter criterion as a path segment. The
// backend reads the literal "null" as "no constraint".
func pathOrNull(v *string) string {
	if v == nil {
		return "null"
	}
	return url.PathEscape(*v)
}

func (c *Client) FilterDoctors(ctx context.Context, name, slot, specialty *string) ([]models.Doctor, error) {
	path := fmt.Sprintf("/doctor/filter/%s/%s/%s", pathOrNull(name), pathOrNull(slot), pathOrNull(specialty))
	c.logger.Debug("backend.doctors.filter", "path", path)

	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		c.logger.Error("backend.doctors.filter_failed", "error", err.Error())
		return nil, err
	}

	// Older backends answer with a bare list, newer ones wrap it.
	var list []models.Doctor
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var env statusEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.logger.Error("backend.doctors.filter_decode_failed", "error", err.Error())
		return nil, fmt.Errorf("decode filtered doctors: %w", err)
	}
	return env.Doctors, nil
}

func (c *Client) SaveDoctor(ctx context.Context, doctor models.DoctorPayload, token string) (bool, error) {
	c.logger.Info("backend.doctor.save", "email", doctor.Email)

	if _, err := c.do(ctx, http.MethodPost, "/doctor/"+url.PathEscape(token), doctor); err != nil {
		c.logger.Error("backend.doctor.save_failed", "error", err.Error())
		return false, err
	}
	return true, nil
}

func (c *Client) DeleteDoctor(ctx context.Context, id int64, token string) (DeleteResult, error) {
	c.logger.Info("backend.doctor.delete", "doctorId", id)

	path := "/doctor/" + strconv.FormatInt(id, 10) + "/" + url.PathEscape(token)
	raw, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		c.logger.Error("backend.doctor.delete_failed", "doctorId", id, "error", err.Error())
		return DeleteResult{Message: err.Error()}, err
	}

	var env statusEnvelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return DeleteResult{}, fmt.Errorf("decode delete response: %w", err)
		}
	}
	return DeleteResult{Success: env.Status == "success", Message: env.Message}, nil
}

func (c *Client) FetchPatientDetails(ctx context.Context, token string) (models.Patient, error) {
	c.logger.Debug("backend.patient.fetch")

	raw, err := c.do(ctx, http.MethodGet, "/patient/"+url.PathEscape(token), nil)
	if err != nil {
		c.logger.Error("backend.patient.fetch_failed", "error", err.Error())
		return models.Patient{}, err
	}

	var env statusEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return models.Patient{}, fmt.Errorf("decode patient: %w", err)
	}
	if env.Patient == nil {
		return models.Patient{}, errors.New("patient details missing from response")
	}
	return *env.Patient, nil
}

func (c *Client) login(ctx context.Context, event, path string, body any) (string, error) {
	c.logger.Info(event)

	raw, err := c.do(ctx, http.MethodPost, path, body)
	if err != nil {
		c.logger.Warn(event+"_failed", "error", err.Error())
		return "", err
	}

	var env statusEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", fmt.Errorf("decode login response: %w", err)
	}
	if env.Token == "" {
		return "", errors.New("login response carried no token")
	}
	return env.Token, nil
}

func (c *Client) AdminLogin(ctx context.Context, creds models.Login) (string, error) {
	return c.login(ctx, "backend.admin.login", "/admin", creds)
}

func (c *Client) DoctorLogin(ctx context.Context, creds models.Login) (string, error) {
	return c.login(ctx, "backend.doctor.login", "/doctor/doctorLogin", creds)
}

func (c *Client) PatientLogin(ctx context.Context, creds models.Login) (string, error) {
	return c.login(ctx, "backend.patient.login", "/patient/login", creds)
}

func (c *Client) PatientSignup(ctx context.Context, p models.PatientSignup) error {
	c.logger.Info("backend.patient.signup", "email", p.Email)

	if _, err := c.do(ctx, http.MethodPost, "/patient", p); err != nil {
		c.logger.Warn("backend.patient.signup_failed", "error", err.Error())
		return err
	}
	return nil
}

func (c *Client) BookAppointment(ctx context.Context, a models.Appointment, token string) error {
	c.logger.Info("backend.appointment.book", "doctorId", a.DoctorID, "patientId", a.PatientID)

	if _, err := c.do(ctx, http.MethodPost, "/appointments/"+url.PathEscape(token), a); err != nil {
		c.logger.Error("backend.appointment.book_failed", "error", err.Error())
		return err
	}
	return nil
}

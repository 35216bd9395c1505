package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/dto"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeAppointmentUsecase struct {
	book   func(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	list   func(ctx context.Context) (*dto.AppointmentListResponse, error)
	cancel func(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
}

func (f *fakeAppointmentUsecase) BookAppointment(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	return f.book(ctx, req)
}

func (f *fakeAppointmentUsecase) GetMyAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return f.list(ctx)
}

func (f *fakeAppointmentUsecase) CancelAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	return f.cancel(ctx, id)
}

type fakeProfileUsecase struct {
	profile   *dto.ProfileResponse
	err       error
	updateReq *dto.UpdateProfileRequest
}

func (f *fakeProfileUsecase) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	return f.profile, f.err
}

func (f *fakeProfileUsecase) UpdateProfile(ctx context.Context, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	f.updateReq = req
	if f.err != nil {
		return nil, f.err
	}
	updated := *f.profile
	updated.FirstName = req.FirstName
	updated.LastName = req.LastName
	return &updated, nil
}

func (f *fakeProfileUsecase) DeleteAccount(ctx context.Context) error {
	return f.err
}

type fakeDoctorUsecase struct {
	directory *dto.DoctorDirectoryResponse
	detail    *dto.DoctorDetailResponse
	err       error
	filter    entity.DoctorFilter
}

func (f *fakeDoctorUsecase) GetDirectory(ctx context.Context, filter entity.DoctorFilter) (*dto.DoctorDirectoryResponse, error) {
	f.filter = filter
	return f.directory, f.err
}

func (f *fakeDoctorUsecase) GetDoctor(ctx context.Context, id uuid.UUID) (*dto.DoctorDetailResponse, error) {
	return f.detail, f.err
}

func (f *fakeDoctorUsecase) GetFeaturedDoctors(ctx context.Context, limit int) ([]dto.DoctorResponse, error) {
	return nil, f.err
}

type fakeHomeUsecase struct{}

func (fakeHomeUsecase) GetHome(ctx context.Context) *dto.HomeView {
	return &dto.HomeView{Hero: dto.Hero{Title: "Your Health,"}}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// envelope decodes a response body, keeping data raw for a second decode.
type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Error   map[string]string `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withSession(req *http.Request) *http.Request {
	ctx := middleware.ContextWithIdentity(req.Context(), uuid.New(), "jane@example.com", entity.RoleIDPatient, "token")
	return req.WithContext(ctx)
}

func withVars(req *http.Request, vars map[string]string) *http.Request {
	return mux.SetURLVars(req, vars)
}


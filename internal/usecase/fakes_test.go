package usecase

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errStoreDown = errors.New("connection refused")

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newMockDB returns a gorm handle over sqlmock. Usecase tests only set
// expectations for transaction boundaries since repositories are faked.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func sessionContext(userID uuid.UUID) context.Context {
	return middleware.ContextWithIdentity(context.Background(), userID, "jane@example.com", entity.RoleIDPatient, "access-id")
}

// --- doctors ---

type fakeDoctorRepo struct {
	doctors []entity.Doctor
	err     error
	calls   int
}

func (r *fakeDoctorRepo) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return append([]entity.Doctor(nil), r.doctors...), nil
}

func (r *fakeDoctorRepo) FindTopRated(db *gorm.DB, limit int) ([]entity.Doctor, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	if limit > len(r.doctors) {
		limit = len(r.doctors)
	}
	return append([]entity.Doctor(nil), r.doctors[:limit]...), nil
}

func (r *fakeDoctorRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			d := r.doctors[i]
			return &d, nil
		}
	}
	return nil, nil
}

// --- appointments ---

type fakeAppointmentRepo struct {
	mu        sync.Mutex
	rows      map[uuid.UUID]entity.Appointment
	createErr error
	calls     int
}

func newFakeAppointmentRepo(rows ...entity.Appointment) *fakeAppointmentRepo {
	r := &fakeAppointmentRepo{rows: make(map[uuid.UUID]entity.Appointment)}
	for _, a := range rows {
		r.rows[a.ID] = a
	}
	return r
}

func (r *fakeAppointmentRepo) Create(db *gorm.DB, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.createErr != nil {
		return r.createErr
	}
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	r.rows[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	a, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *fakeAppointmentRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	var out []entity.Appointment
	for _, a := range r.rows {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) Cancel(db *gorm.DB, id uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	a, ok := r.rows[id]
	if !ok || !a.Status.IsCancellable() {
		return 0, nil
	}
	a.Status = entity.AppointmentStatusCancelled
	r.rows[id] = a
	return 1, nil
}

func (r *fakeAppointmentRepo) Update(db *gorm.DB, appointment *entity.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.rows[appointment.ID] = *appointment
	return nil
}

func (r *fakeAppointmentRepo) status(id uuid.UUID) entity.AppointmentStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rows[id].Status
}

// --- profiles ---

type fakeProfileRepo struct {
	profiles map[uuid.UUID]entity.Profile
	updates  []entity.ProfileNames
}

func newFakeProfileRepo(profiles ...entity.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: make(map[uuid.UUID]entity.Profile)}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) Create(db *gorm.DB, profile *entity.Profile) error {
	r.profiles[profile.ID] = *profile
	return nil
}

func (r *fakeProfileRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProfileRepo) UpdateNames(db *gorm.DB, id uuid.UUID, names entity.ProfileNames) (int64, error) {
	r.updates = append(r.updates, names)
	p, ok := r.profiles[id]
	if !ok {
		return 0, nil
	}
	p.FirstName = &names.FirstName
	p.LastName = &names.LastName
	r.profiles[id] = p
	return 1, nil
}

// --- users ---

type fakeUserRepo struct {
	users map[uuid.UUID]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]entity.User)}
}

func (r *fakeUserRepo) Create(db *gorm.DB, user *entity.User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}
		}
	}
	user.ID = uuid.New()
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// --- audit ---

type fakeAuditService struct {
	mu      sync.Mutex
	actions []string
}

func (s *fakeAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, action)
	return nil
}

func (s *fakeAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.actions = append(s.actions, action)
	return nil
}

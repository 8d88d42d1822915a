package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dayflow-dev/dayflow/internal/auth"
	"github.com/dayflow-dev/dayflow/internal/handlers"
	"github.com/dayflow-dev/dayflow/internal/mocks"
	"github.com/dayflow-dev/dayflow/internal/router"
	"github.com/dayflow-dev/dayflow/internal/services"
	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type testServer struct {
	t          *testing.T
	engine     *gin.Engine
	issuer     *auth.JWTIssuer
	now        time.Time
	users      *mocks.UserStore
	employees  *mocks.EmployeeStore
	attendance *mocks.AttendanceStore
	leaves     *mocks.LeaveStore
	payrolls   *mocks.PayrollStore
}

func newTestServer(t *testing.T, pinger handlers.Pinger) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	issuer, err := auth.NewJWTIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	s := &testServer{
		t:          t,
		issuer:     issuer,
		now:        time.Date(2024, time.May, 6, 9, 0, 0, 0, time.UTC),
		users:      new(mocks.UserStore),
		employees:  new(mocks.EmployeeStore),
		attendance: new(mocks.AttendanceStore),
		leaves:     new(mocks.LeaveStore),
		payrolls:   new(mocks.PayrollStore),
	}
	clock := func() time.Time { return s.now }

	authService := services.NewAuthService(s.users, auth.BcryptHasher{}, issuer)

	h := handlers.New(
		authService,
		services.NewEmployeeService(s.employees, s.users),
		services.NewAttendanceService(s.attendance, time.UTC).WithClock(clock),
		services.NewLeaveService(s.leaves, time.UTC).WithClock(clock),
		services.NewPayrollService(s.payrolls, s.attendance, s.employees),
		pinger,
	)
	s.engine = router.NewRouter(h, authService)

	t.Cleanup(func() {
		s.users.AssertExpectations(t)
		s.employees.AssertExpectations(t)
		s.attendance.AssertExpectations(t)
		s.leaves.AssertExpectations(t)
		s.payrolls.AssertExpectations(t)
	})

	return s
}

func (s *testServer) token(userID uint, role types.Role) string {
	s.t.Helper()

	token, err := s.issuer.GenerateJWT(userID, role)
	require.NoError(s.t, err)
	return token
}

// do sends body as JSON when it is not nil.
func (s *testServer) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	s.t.Helper()

	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}

func errorOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	decode(t, w, &body)
	return body.Error
}

package web

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"

	"github.com/bigredeye/students/internal/config"
	"github.com/bigredeye/students/internal/database"
	"github.com/bigredeye/students/internal/models"
)

type testServer struct {
	db     *database.DataBase
	engine *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := database.OpenDataBase(zap.NewNop(), sqlite.Open(":memory:"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})

	conf := &config.Config{}
	conf.Limits.Name = 10
	conf.Limits.Department = 20

	engine, err := newServer(conf, zap.NewNop(), db).engine()
	require.NoError(t, err)

	return &testServer{db: db, engine: engine}
}

func (s *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (s *testServer) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return s.do(req)
}

func (s *testServer) doJSON(method, path string, body interface{}, result interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := s.do(req)
	if result != nil {
		if err := json.Unmarshal(rec.Body.Bytes(), result); err != nil {
			panic(err)
		}
	}
	return rec
}

func (s *testServer) mustAdd(t *testing.T, name, department string, rollno int) *models.Student {
	t.Helper()
	student, err := s.db.AddStudent(models.StudentFields{Name: name, Department: department, RollNo: rollno})
	require.NoError(t, err)
	return student
}

func (s *testServer) mustList(t *testing.T) []models.Student {
	t.Helper()
	students, err := s.db.ListStudents()
	require.NoError(t, err)
	return students
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/ping")
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.HasPrefix(rec.Body.String(), "pong "))
}

func TestRequestID(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/ping")
	require.NotEmpty(t, rec.Header().Get(requestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rec = s.do(req)
	require.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestStaticContent(t *testing.T) {
	s := newTestServer(t)

	rec := s.get("/static/style.css")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "font-family")
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

package students_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"

	"github.com/bigredeye/students/api"
	"github.com/bigredeye/students/internal/config"
	"github.com/bigredeye/students/internal/database"
	"github.com/bigredeye/students/internal/models"
	"github.com/bigredeye/students/internal/web"
	"github.com/bigredeye/students/pkg/client/students"
)

func newTestClient(t *testing.T) *students.Client {
	t.Helper()

	db, err := database.OpenDataBase(zap.NewNop(), sqlite.Open(":memory:"))
	if err != nil {
		t.Fatal("Failed to open database:", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	conf := &config.Config{}
	conf.Limits.Name = 10
	conf.Limits.Department = 20

	handler, err := web.NewHandler(conf, zap.NewNop(), db)
	if err != nil {
		t.Fatal("Failed to build handler:", err)
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := students.NewClient(server.URL)
	if err != nil {
		t.Fatal("Failed to create client:", err)
	}
	return client
}

func TestClientLifecycle(t *testing.T) {
	client := newTestClient(t)

	list, err := client.ListStudents()
	if err != nil {
		t.Fatal("Failed to list students:", err)
	}
	if len(list) != 0 {
		t.Fatalf("Expected no students, got %+v", list)
	}

	alice, err := client.AddStudent(api.StudentRequest{Name: "Alice", Department: "CS", RollNo: 5})
	if err != nil {
		t.Fatal("Failed to add student:", err)
	}

	found, err := client.GetStudent(alice.ID)
	if err != nil {
		t.Fatal("Failed to get student:", err)
	}
	if diff := cmp.Diff(alice, found); diff != "" {
		t.Fatalf("GetStudent() mismatch (-want +got):\n%s", diff)
	}

	bob, err := client.UpdateStudent(alice.ID, api.StudentRequest{Name: "Bob", Department: "EE", RollNo: 9})
	if err != nil {
		t.Fatal("Failed to update student:", err)
	}
	expected := &models.Student{ID: alice.ID, StudentFields: models.StudentFields{Name: "Bob", Department: "EE", RollNo: 9}}
	if diff := cmp.Diff(expected, bob); diff != "" {
		t.Fatalf("UpdateStudent() mismatch (-want +got):\n%s", diff)
	}

	list, err = client.ListStudents()
	if err != nil {
		t.Fatal("Failed to list students:", err)
	}
	if diff := cmp.Diff([]models.Student{*expected}, list); diff != "" {
		t.Fatalf("ListStudents() mismatch (-want +got):\n%s", diff)
	}

	if err := client.RemoveStudent(alice.ID); err != nil {
		t.Fatal("Failed to remove student:", err)
	}
	if _, err := client.GetStudent(alice.ID); !errors.Is(err, students.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestClientNotFound(t *testing.T) {
	client := newTestClient(t)

	if _, err := client.UpdateStudent(42, api.StudentRequest{Name: "Bob", Department: "EE"}); !errors.Is(err, students.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
	if err := client.RemoveStudent(42); !errors.Is(err, students.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestClientBadRequest(t *testing.T) {
	client := newTestClient(t)

	_, err := client.AddStudent(api.StudentRequest{Name: "Alice"})
	if err == nil {
		t.Fatal("Expected error for missing department")
	}
	if errors.Is(err, students.ErrNotFound) {
		t.Fatalf("Unexpected ErrNotFound: %v", err)
	}
}

func TestNewClientEmptyEndpoint(t *testing.T) {
	if _, err := students.NewClient(""); err == nil {
		t.Fatal("Expected error for empty endpoint")
	}
}

package api

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bigredeye/students/internal/models"
)

func TestStudentRequestFields(t *testing.T) {
	limits := models.Limits{Name: 10, Department: 20}

	req := StudentRequest{Name: "  Alice  ", Department: "Computer Science and Engineering", RollNo: 5}
	fields, err := req.Fields(limits)
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}

	expected := models.StudentFields{Name: "Alice", Department: "Computer Science and", RollNo: 5}
	if diff := cmp.Diff(expected, fields); diff != "" {
		t.Fatalf("Fields() mismatch (-want +got):\n%s", diff)
	}
}

func TestStudentRequestMissingFields(t *testing.T) {
	limits := models.Limits{Name: 10, Department: 20}

	for _, req := range []StudentRequest{
		{Name: "", Department: "CS"},
		{Name: "   ", Department: "CS"},
		{Name: "Alice", Department: ""},
		{Name: "Alice", Department: "\t"},
		{Name: "ab\xffcdefghijklm", Department: "CS"},
		{Name: "Alice", Department: "C\xc3"},
	} {
		if _, err := req.Fields(limits); err == nil {
			t.Errorf("Expected error for %+v", req)
		}
	}
}

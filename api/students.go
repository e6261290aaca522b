package api

import (
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/bigredeye/students/internal/models"
)

// StudentRequest is bound from both html forms and json bodies.
type StudentRequest struct {
	Name       string `json:"name" form:"name" binding:"required"`
	Department string `json:"department" form:"department" binding:"required"`
	RollNo     int    `json:"rollno" form:"rollno"`
}

// Fields trims and truncates the request into storable fields.
func (r *StudentRequest) Fields(limits models.Limits) (models.StudentFields, error) {
	fields := models.StudentFields{
		Name:       strings.TrimSpace(r.Name),
		Department: strings.TrimSpace(r.Department),
		RollNo:     r.RollNo,
	}
	if !utf8.ValidString(fields.Name) || !utf8.ValidString(fields.Department) {
		return fields, errors.New("name and department must be valid UTF-8")
	}
	if fields.Name == "" {
		return fields, errors.New("name is required")
	}
	if fields.Department == "" {
		return fields, errors.New("department is required")
	}
	return fields.Truncate(limits), nil
}

type StudentResponse struct {
	Status

	Student *models.Student `json:"student,omitempty"`
}

type StudentsResponse struct {
	Status

	Students []models.Student `json:"students"`
}

package web

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"

	"github.com/bigredeye/students/api"
	"github.com/bigredeye/students/internal/database"
	lf "github.com/bigredeye/students/internal/logfield"
	"github.com/bigredeye/students/internal/models"
)

type studentService struct {
	webService
}

func setupStudentService(server *server, r *gin.Engine) {
	s := studentService{newWebService(server, "students")}

	r.GET(homePath, s.overview)
	r.GET(addPath, s.addStudent)
	r.POST(addPath, s.addStudentForm)
	r.GET(updateTmpl, s.update)
	r.POST(modifyTmpl, s.modify)
	r.GET(listPath, s.listStudents)
	r.GET(deleteTmpl, s.removeStudent)
	r.POST(deleteTmpl, s.removeStudent)
}

// parseID mirrors an integer route pattern: anything else does not match.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func (s studentService) overview(c *gin.Context) {
	students, err := s.server.db.ListStudents()
	if err != nil {
		s.requestLog(c).Error("Failed to list students", zap.Error(err))
		s.renderError(c, http.StatusInternalServerError, "Failed to list students")
		return
	}
	s.renderStudents(c, "/overview.tmpl", appTitle, students, s.popFlashes(c))
}

func (s studentService) listStudents(c *gin.Context) {
	students, err := s.server.db.ListStudents()
	if err != nil {
		s.requestLog(c).Error("Failed to list students", zap.Error(err))
		s.renderError(c, http.StatusInternalServerError, "Failed to list students")
		return
	}
	s.renderStudents(c, "/list.tmpl", "Students", students, nil)
}

func (s studentService) addStudent(c *gin.Context) {
	s.renderForm(c, http.StatusOK, studentForm{
		Title:  "Add student",
		Action: addPath,
		Submit: "Add",
	})
}

// bindForm reports whether the form was valid. On failure the form is
// rendered again with the submitted values.
func (s studentService) bindForm(c *gin.Context, form studentForm) (models.StudentFields, bool) {
	req := api.StudentRequest{}
	err := c.ShouldBindWith(&req, binding.Form)
	if err == nil {
		var fields models.StudentFields
		fields, err = req.Fields(s.server.limits())
		if err == nil {
			return fields, true
		}
	}

	s.requestLog(c).Info("Invalid student form", zap.Error(err))
	form.Student = models.StudentFields{
		Name:       c.PostForm("name"),
		Department: c.PostForm("department"),
	}
	form.Student.RollNo, _ = strconv.Atoi(c.PostForm("rollno"))
	form.ErrorMessage = fmt.Sprintf("Invalid form: %s", err)
	s.renderForm(c, http.StatusBadRequest, form)
	return models.StudentFields{}, false
}

func (s studentService) addStudentForm(c *gin.Context) {
	fields, ok := s.bindForm(c, studentForm{
		Title:  "Add student",
		Action: addPath,
		Submit: "Add",
	})
	if !ok {
		return
	}

	student, err := s.server.db.AddStudent(fields)
	if err != nil {
		s.handleStoreError(c, "Failed to add student", err)
		return
	}

	s.requestLog(c).Info("Added student",
		lf.StudentID(student.ID),
		lf.Name(student.Name),
		lf.Department(student.Department),
		lf.RollNo(student.RollNo),
	)
	s.addFlash(c, fmt.Sprintf("Added %s", student.Name))
	c.Redirect(http.StatusFound, homePath)
}

func (s studentService) update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.renderError(c, http.StatusNotFound, "Page not found")
		return
	}

	student, err := s.server.db.FindStudentByID(id)
	if err != nil {
		s.handleStoreError(c, "Failed to find student", err)
		return
	}

	s.renderForm(c, http.StatusOK, studentForm{
		Title:   fmt.Sprintf("Edit student %d", student.ID),
		Action:  modifyPath(student.ID),
		Submit:  "Save",
		Student: student.StudentFields,
	})
}

func (s studentService) modify(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.renderError(c, http.StatusNotFound, "Page not found")
		return
	}

	fields, ok := s.bindForm(c, studentForm{
		Title:  fmt.Sprintf("Edit student %d", id),
		Action: modifyPath(id),
		Submit: "Save",
	})
	if !ok {
		return
	}

	student, err := s.server.db.UpdateStudent(id, fields)
	if err != nil {
		s.handleStoreError(c, "Failed to update student", err)
		return
	}

	s.requestLog(c).Info("Updated student",
		lf.StudentID(student.ID),
		lf.Name(student.Name),
		lf.Department(student.Department),
		lf.RollNo(student.RollNo),
	)
	s.addFlash(c, fmt.Sprintf("Updated %s", student.Name))
	c.Redirect(http.StatusFound, homePath)
}

func (s studentService) removeStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		s.renderError(c, http.StatusNotFound, "Page not found")
		return
	}

	if err := s.server.db.RemoveStudent(id); err != nil {
		s.handleStoreError(c, "Failed to remove student", err)
		return
	}

	s.requestLog(c).Info("Removed student", lf.StudentID(id))
	s.addFlash(c, fmt.Sprintf("Deleted student %d", id))
	c.Redirect(http.StatusFound, homePath)
}

func (s studentService) handleStoreError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		s.requestLog(c).Info(message, zap.Error(err))
		s.renderError(c, http.StatusNotFound, "Student not found")
	case database.IsFieldTooLong(err):
		s.requestLog(c).Info(message, zap.Error(err))
		s.renderError(c, http.StatusBadRequest, err.Error())
	default:
		s.requestLog(c).Error(message, zap.Error(err))
		s.renderError(c, http.StatusInternalServerError, message)
	}
}

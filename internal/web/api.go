package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bigredeye/students/api"
	"github.com/bigredeye/students/internal/database"
	lf "github.com/bigredeye/students/internal/logfield"
)

type apiService struct {
	webService
}

func setupApiService(server *server, r *gin.Engine) {
	s := apiService{newWebService(server, "api")}

	r.GET(apiStudentsPath, s.list)
	r.POST(apiStudentsPath, s.create)
	r.GET(apiStudentPath, s.get)
	r.PUT(apiStudentPath, s.update)
	r.DELETE(apiStudentPath, s.remove)
}

func (s apiService) onError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, database.ErrNotFound):
		code = http.StatusNotFound
	case database.IsFieldTooLong(err):
		code = http.StatusBadRequest
	}

	if code == http.StatusInternalServerError {
		s.requestLog(c).Error("Failed to process api request", zap.Error(err))
	} else {
		s.requestLog(c).Warn("Failed to process api request", zap.Error(err))
	}
	s.abort(c, code, err)
}

func (s apiService) abort(c *gin.Context, code int, err error) {
	c.AbortWithStatusJSON(code, &api.StatusResponse{
		Status: api.Status{
			Ok:    false,
			Error: err.Error(),
		},
	})
}

func (s apiService) bindID(c *gin.Context) (uint, bool) {
	id, ok := parseID(c)
	if !ok {
		s.abort(c, http.StatusBadRequest, errors.New("invalid student id"))
	}
	return id, ok
}

func (s apiService) list(c *gin.Context) {
	students, err := s.server.db.ListStudents()
	if err != nil {
		s.onError(c, err)
		return
	}

	c.JSON(http.StatusOK, &api.StudentsResponse{
		Status:   api.Status{Ok: true},
		Students: students,
	})
}

func (s apiService) get(c *gin.Context) {
	id, ok := s.bindID(c)
	if !ok {
		return
	}

	student, err := s.server.db.FindStudentByID(id)
	if err != nil {
		s.onError(c, err)
		return
	}

	c.JSON(http.StatusOK, &api.StudentResponse{
		Status:  api.Status{Ok: true},
		Student: student,
	})
}

func (s apiService) create(c *gin.Context) {
	req := api.StudentRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abort(c, http.StatusBadRequest, err)
		return
	}
	fields, err := req.Fields(s.server.limits())
	if err != nil {
		s.abort(c, http.StatusBadRequest, err)
		return
	}

	student, err := s.server.db.AddStudent(fields)
	if err != nil {
		s.onError(c, err)
		return
	}

	s.requestLog(c).Info("Added student", lf.StudentID(student.ID), lf.Name(student.Name))
	c.JSON(http.StatusCreated, &api.StudentResponse{
		Status:  api.Status{Ok: true},
		Student: student,
	})
}

func (s apiService) update(c *gin.Context) {
	id, ok := s.bindID(c)
	if !ok {
		return
	}

	req := api.StudentRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.abort(c, http.StatusBadRequest, err)
		return
	}
	fields, err := req.Fields(s.server.limits())
	if err != nil {
		s.abort(c, http.StatusBadRequest, err)
		return
	}

	student, err := s.server.db.UpdateStudent(id, fields)
	if err != nil {
		s.onError(c, err)
		return
	}

	s.requestLog(c).Info("Updated student", lf.StudentID(student.ID), lf.Name(student.Name))
	c.JSON(http.StatusOK, &api.StudentResponse{
		Status:  api.Status{Ok: true},
		Student: student,
	})
}

func (s apiService) remove(c *gin.Context) {
	id, ok := s.bindID(c)
	if !ok {
		return
	}

	if err := s.server.db.RemoveStudent(id); err != nil {
		s.onError(c, err)
		return
	}

	s.requestLog(c).Info("Removed student", lf.StudentID(id))
	c.JSON(http.StatusOK, &api.StatusResponse{
		Status: api.Status{Ok: true},
	})
}

package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bigredeye/students/internal/models"
)

const appTitle = "Student records"

func (s webService) renderStudents(c *gin.Context, tmpl, title string, students []models.Student, flashes []string) {
	c.HTML(http.StatusOK, tmpl, gin.H{
		"Title":    title,
		"Students": students,
		"Flashes":  flashes,
	})
}

type studentForm struct {
	Title        string
	Action       string
	Submit       string
	Student      models.StudentFields
	Limits       models.Limits
	ErrorMessage string
}

func (s webService) renderForm(c *gin.Context, code int, form studentForm) {
	form.Limits = s.server.limits()
	c.HTML(code, "/form.tmpl", form)
}

func (s webService) renderError(c *gin.Context, code int, message string) {
	c.HTML(code, "/error.tmpl", gin.H{
		"Title":        http.StatusText(code),
		"ErrorMessage": message,
	})
	c.Abort()
}

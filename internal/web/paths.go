package web

import "fmt"

const (
	homePath   = "/"
	addPath    = "/add/"
	updateTmpl = "/update/:id"
	modifyTmpl = "/modify/:id"
	listPath   = "/list/"
	deleteTmpl = "/delete/:id"

	apiStudentsPath = "/api/students"
	apiStudentPath  = "/api/students/:id"
)

func updatePath(id uint) string {
	return fmt.Sprintf("/update/%d", id)
}

func modifyPath(id uint) string {
	return fmt.Sprintf("/modify/%d", id)
}

func deletePath(id uint) string {
	return fmt.Sprintf("/delete/%d", id)
}

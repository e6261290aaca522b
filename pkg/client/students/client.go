package students

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/bigredeye/students/api"
	"github.com/bigredeye/students/internal/models"
)

var ErrNotFound = errors.New("student not found")

type Client struct {
	client *resty.Client
}

// NewClient does not retry: creating a student is not idempotent.
func NewClient(endpoint string) (*Client, error) {
	if endpoint == "" {
		return nil, errors.New("empty endpoint")
	}

	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(time.Second*10).
		SetHeader("Accept", "application/json")

	return &Client{client}, nil
}

func checkStatus(res *resty.Response, status *api.Status, action string) error {
	if res.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("failed to %s: %w", action, ErrNotFound)
	}
	if !status.Ok {
		if status.Error == "" {
			return fmt.Errorf("failed to %s: %s", action, res.Status())
		}
		return fmt.Errorf("failed to %s: %s", action, status.Error)
	}
	return nil
}

func (c *Client) ListStudents() ([]models.Student, error) {
	res := &api.StudentsResponse{}
	rsp, err := c.client.R().
		SetResult(res).
		SetError(res).
		Get("/api/students")
	if err != nil {
		return nil, err
	}

	if err := checkStatus(rsp, &res.Status, "list students"); err != nil {
		return nil, err
	}
	return res.Students, nil
}

func (c *Client) GetStudent(id uint) (*models.Student, error) {
	res := &api.StudentResponse{}
	rsp, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetPathParam("id", strconv.FormatUint(uint64(id), 10)).
		Get("/api/students/{id}")
	if err != nil {
		return nil, err
	}

	if err := checkStatus(rsp, &res.Status, "get student"); err != nil {
		return nil, err
	}
	return res.Student, nil
}

func (c *Client) AddStudent(req api.StudentRequest) (*models.Student, error) {
	res := &api.StudentResponse{}
	rsp, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetBody(req).
		Post("/api/students")
	if err != nil {
		return nil, err
	}

	if err := checkStatus(rsp, &res.Status, "add student"); err != nil {
		return nil, err
	}
	return res.Student, nil
}

func (c *Client) UpdateStudent(id uint, req api.StudentRequest) (*models.Student, error) {
	res := &api.StudentResponse{}
	rsp, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetPathParam("id", strconv.FormatUint(uint64(id), 10)).
		SetBody(req).
		Put("/api/students/{id}")
	if err != nil {
		return nil, err
	}

	if err := checkStatus(rsp, &res.Status, "update student"); err != nil {
		return nil, err
	}
	return res.Student, nil
}

func (c *Client) RemoveStudent(id uint) error {
	res := &api.StatusResponse{}
	rsp, err := c.client.R().
		SetResult(res).
		SetError(res).
		SetPathParam("id", strconv.FormatUint(uint64(id), 10)).
		Delete("/api/students/{id}")
	if err != nil {
		return err
	}

	return checkStatus(rsp, &res.Status, "remove student")
}

package api

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"
	"visorhr.com/internal/api/middleware"
	"visorhr.com/internal/domain"
)

// EmployeeHandler serves the /employee endpoints.
type EmployeeHandler struct {
	employees domain.EmployeeService
}

func NewEmployeeHandler(employees domain.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employees: employees}
}

// Save accepts an employee record as JSON or as a multipart form with
// optional emp_photo / emp_signature uploads, and always inserts a new row.
// POST /employee/save
func (h *EmployeeHandler) Save(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return respondError(c, fiber.StatusUnauthorized, "Authentication required.")
	}

	in := &domain.EmployeeInput{
		Fields: make(map[string]any),
		UserID: user.ID,
	}

	contentType := c.Get(fiber.HeaderContentType)
	switch {
	case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
		if err := json.Unmarshal(c.Body(), &in.Fields); err != nil || in.Fields == nil {
			return respondError(c, fiber.StatusBadRequest, "Invalid JSON body.")
		}
	default:
		if form, err := c.MultipartForm(); err == nil {
			for name, values := range form.Value {
				if len(values) > 0 {
					in.Fields[name] = values[len(values)-1]
				}
			}
			if files := form.File["emp_photo"]; len(files) > 0 {
				in.Photo = files[0]
			}
			if files := form.File["emp_signature"]; len(files) > 0 {
				in.Signature = files[0]
			}
		} else {
			c.Request().PostArgs().VisitAll(func(key, value []byte) {
				in.Fields[string(key)] = string(value)
			})
		}
	}

	emp, err := h.employees.Save(context.Background(), in)
	if err != nil {
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Employee saved.",
		"emp_id":  emp.EmpID,
	})
}

package api_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"visorhr.com/internal/model"
)

func (e *testEnv) staffToken(t *testing.T) string {
	t.Helper()
	e.register(t, "hr-clerk", "secret123")
	return e.login(t, "hr-clerk", "secret123")
}

func TestSaveEmployeeRequiresSession(t *testing.T) {
	env := newTestEnv(t)

	resp := env.postJSON(t, "/employee/save", `{"emp_code":"E001"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])

	var count int64
	require.NoError(t, env.db.Model(&model.EmpPersonal{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	resp = env.postJSON(t, "/employee/save", `{"emp_code":"E001"}`, "bogus-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSaveEmployeeJSON(t *testing.T) {
	env := newTestEnv(t)
	token := env.staffToken(t)

	payload := `{
		"emp_code": "  E001  ",
		"emp_name": "Jamal Uddin",
		"bang_emp_name": "জামাল উদ্দিন",
		"father_name": "   ",
		"date_of_birth": "05-Jan-1990",
		"child_male": "abc",
		"child_female": 2,
		"contractual": "y"
	}`

	resp := env.postJSON(t, "/employee/save", payload, token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Employee saved.", body["message"])
	empID, ok := body["emp_id"].(float64)
	require.True(t, ok)

	var got model.EmpPersonal
	require.NoError(t, env.db.First(&got, uint64(empID)).Error)

	require.NotNil(t, got.EmpCode)
	assert.Equal(t, "E001", *got.EmpCode)
	require.NotNil(t, got.BangEmpName)
	assert.Equal(t, "জামাল উদ্দিন", *got.BangEmpName)
	assert.Nil(t, got.FatherName)
	require.NotNil(t, got.DateOfBirth)
	assert.Equal(t, "1990-01-05", got.DateOfBirth.Format("2006-01-02"))
	assert.Nil(t, got.ChildMale)
	require.NotNil(t, got.ChildFemale)
	assert.Equal(t, 2, *got.ChildFemale)
	assert.Equal(t, "Y", got.Contractual)
	require.NotNil(t, got.UpdatedBy)
}

func TestSaveEmployeeTrailingSlash(t *testing.T) {
	env := newTestEnv(t)
	token := env.staffToken(t)

	resp := env.postJSON(t, "/employee/save/", `{"emp_code":"E004"}`, token)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestSaveEmployeeInvalidJSON(t *testing.T) {
	env := newTestEnv(t)
	token := env.staffToken(t)

	resp := env.postJSON(t, "/employee/save", `{"emp_code":`, token)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Invalid JSON body.", body["message"])
}

func TestSaveEmployeeDuplicateSubmissions(t *testing.T) {
	env := newTestEnv(t)
	token := env.staffToken(t)

	payload := `{"emp_code":"E001","emp_name":"Jamal Uddin"}`

	first := decodeBody(t, env.postJSON(t, "/employee/save", payload, token))
	second := decodeBody(t, env.postJSON(t, "/employee/save", payload, token))

	assert.NotEqual(t, first["emp_id"], second["emp_id"])

	var count int64
	require.NoError(t, env.db.Model(&model.EmpPersonal{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSaveEmployeeMultipartWithUploads(t *testing.T) {
	env := newTestEnv(t)
	token := env.staffToken(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("emp_code", "E002"))
	require.NoError(t, writer.WriteField("emp_name", "  Rahima Khatun  "))
	require.NoError(t, writer.WriteField("remarks", "   "))

	photo, err := writer.CreateFormFile("emp_photo", "photo.jpg")
	require.NoError(t, err)
	_, err = photo.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)

	signature, err := writer.CreateFormFile("emp_signature", "signature.png")
	require.NoError(t, err)
	_, err = signature.Write([]byte("png-bytes"))
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/employee/save", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	empID, ok := body["emp_id"].(float64)
	require.True(t, ok)

	var got model.EmpPersonal
	require.NoError(t, env.db.First(&got, uint64(empID)).Error)

	require.NotNil(t, got.EmpName)
	assert.Equal(t, "Rahima Khatun", *got.EmpName)
	assert.Nil(t, got.Remarks)

	require.NotNil(t, got.EmpPhoto)
	assert.True(t, strings.HasPrefix(*got.EmpPhoto, "employees/"))
	stored, err := os.ReadFile(filepath.Join(env.mediaRoot, filepath.FromSlash(*got.EmpPhoto)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(stored))

	require.NotNil(t, got.EmpSignature)
	assert.True(t, strings.HasPrefix(*got.EmpSignature, "employees/signatures/"))
}

func TestSaveEmployeeMultipartWithoutFiles(t *testing.T) {
	env := newTestEnv(t)
	token := env.staffToken(t)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(t, writer.WriteField("emp_code", "E003"))
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(fiber.MethodPost, "/employee/save", &buf)
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: token})

	resp, err := env.app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	empID, ok := body["emp_id"].(float64)
	require.True(t, ok)

	var got model.EmpPersonal
	require.NoError(t, env.db.First(&got, uint64(empID)).Error)
	assert.Nil(t, got.EmpPhoto)
	assert.Nil(t, got.EmpSignature)
}

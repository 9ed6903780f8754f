//go:build unit
// +build unit

package rest

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/employees"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEmployeeTestRouter() (*gin.Engine, *MockEmployeeService, *MockAttendanceService) {
	employeeService := new(MockEmployeeService)
	attendanceService := new(MockAttendanceService)
	handler := NewEmployeeHandler(employeeService, attendanceService)

	r := gin.New()
	r.POST("/employees", handler.Create)
	r.GET("/employees", handler.List)
	r.GET("/employees/:id", handler.GetByID)
	r.DELETE("/employees/:id", handler.DeleteByID)
	r.GET("/employees/:id/attendance-summary", handler.AttendanceSummary)
	return r, employeeService, attendanceService
}

func decodeDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Detail
}

func TestEmployeeHandler_Create_Success(t *testing.T) {
	r, employeeService, _ := newEmployeeTestRouter()

	created := &employees.Employee{
		ID:         1,
		EmployeeID: "EMP-001",
		FullName:   "Ada Lovelace",
		Email:      "ada@example.com",
		Department: "Engineering",
		CreatedAt:  time.Now(),
	}
	employeeService.
		On("Create", mock.Anything, mock.MatchedBy(func(e *employees.Employee) bool {
			return e.EmployeeID == "EMP-001" && e.Email == "ada@example.com"
		})).
		Return(created, nil)

	body := `{"employee_id":"EMP-001","full_name":"Ada Lovelace","email":"ada@example.com","department":"Engineering"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response EmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, uint(1), response.ID)
	assert.Equal(t, "EMP-001", response.EmployeeID)
	employeeService.AssertExpectations(t)
}

func TestEmployeeHandler_Create_PaddedFields(t *testing.T) {
	r, employeeService, _ := newEmployeeTestRouter()

	created := &employees.Employee{
		ID:         2,
		EmployeeID: "EMP-002",
		FullName:   "Asha Rao",
		Email:      "asha@example.com",
		Department: "Finance",
		CreatedAt:  time.Now(),
	}
	employeeService.
		On("Create", mock.Anything, mock.MatchedBy(func(e *employees.Employee) bool {
			return e.EmployeeID == "EMP-002" && e.FullName == "Asha Rao" &&
				e.Email == "asha@example.com" && e.Department == "Finance"
		})).
		Return(created, nil)

	body := `{"employee_id":" EMP-002 ","full_name":"  Asha Rao","email":" Asha@Example.com ","department":"Finance "}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response EmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "asha@example.com", response.Email)
	employeeService.AssertExpectations(t)
}

func TestEmployeeHandler_Create_InvalidJSON(t *testing.T) {
	r, employeeService, _ := newEmployeeTestRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(`{"employee_id":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, decodeDetail(t, w), "invalid employee data")
	employeeService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeHandler_Create_ValidationFailure(t *testing.T) {
	r, employeeService, _ := newEmployeeTestRouter()

	body := `{"employee_id":"EMP-001","full_name":"   ","email":"not-an-email","department":"Engineering"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	detail := decodeDetail(t, w)
	assert.Contains(t, detail, "FullName")
	assert.Contains(t, detail, "Email")
	employeeService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEmployeeHandler_Create_Conflicts(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		detail string
	}{
		{"duplicate employee id", employees.ErrDuplicateEmployeeID, detailDuplicateID},
		{"duplicate email", employees.ErrDuplicateEmail, detailDuplicateEmail},
		{"unique index race", employees.ErrDuplicateEmployee, detailDuplicateEmployee},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, employeeService, _ := newEmployeeTestRouter()
			employeeService.On("Create", mock.Anything, mock.Anything).Return(nil, tt.err)

			body := `{"employee_id":"EMP-001","full_name":"Ada","email":"ada@example.com","department":"Engineering"}`
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodPost, "/employees", bytes.NewBufferString(body))
			req.Header.Set("Content-Type", "application/json")
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusConflict, w.Code)
			assert.Equal(t, tt.detail, decodeDetail(t, w))
		})
	}
}

func TestEmployeeHandler_List_Success(t *testing.T) {
	r, employeeService, _ := newEmployeeTestRouter()

	employeeService.
		On("List", mock.Anything, &employees.EmployeeQuery{Department: "Sales"}).
		Return([]*employees.Employee{{ID: 2, EmployeeID: "EMP-002", Department: "Sales"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/employees?department=Sales", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EMP-002")
	employeeService.AssertExpectations(t)
}

func TestEmployeeHandler_List_EmptyIsArray(t *testing.T) {
	r, employeeService, _ := newEmployeeTestRouter()

	employeeService.On("List", mock.Anything, mock.Anything).Return([]*employees.Employee{}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/employees", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestEmployeeHandler_List_InternalError(t *testing.T) {
	r, employeeService, _ := newEmployeeTestRouter()

	employeeService.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/employees", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, detailInternal, decodeDetail(t, w))
}

func TestEmployeeHandler_GetByID(t *testing.T) {
	r, employeeService, _ := newEmployeeTestRouter()

	employeeService.On("GetByID", mock.Anything, uint(1)).Return(&employees.Employee{ID: 1, EmployeeID: "EMP-001"}, nil)
	employeeService.On("GetByID", mock.Anything, uint(2)).Return(nil, employees.ErrEmployeeNotFound)

	tests := []struct {
		url    string
		status int
	}{
		{"/employees/1", http.StatusOK},
		{"/employees/2", http.StatusNotFound},
		{"/employees/abc", http.StatusBadRequest},
		{"/employees/0", http.StatusBadRequest},
		{"/employees/-4", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest(http.MethodGet, tt.url, nil)
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestEmployeeHandler_DeleteByID(t *testing.T) {
	r, employeeService, _ := newEmployeeTestRouter()

	employeeService.On("DeleteByID", mock.Anything, uint(1)).Return(nil)
	employeeService.On("DeleteByID", mock.Anything, uint(2)).Return(employees.ErrEmployeeNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodDelete, "/employees/1", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodDelete, "/employees/2", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, detailEmployeeNotFound, decodeDetail(t, w))
}

func TestEmployeeHandler_AttendanceSummary(t *testing.T) {
	r, _, attendanceService := newEmployeeTestRouter()

	attendanceService.On("Summary", mock.Anything, uint(1)).Return(&attendance.AttendanceSummary{
		EmployeeID:  1,
		PresentDays: 4,
		AbsentDays:  1,
		TotalDays:   5,
	}, nil)
	attendanceService.On("Summary", mock.Anything, uint(2)).Return(nil, employees.ErrEmployeeNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/employees/1/attendance-summary", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"employee_id":1,"present_days":4,"absent_days":1,"total_days":5}`, w.Body.String())

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/employees/2/attendance-summary", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

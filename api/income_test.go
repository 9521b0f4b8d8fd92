package api

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incomeRouter() *gin.Engine {
	h := NewIncomeHandler()
	router := gin.New()
	router.GET("/projects/:projectId/income", h.List)
	router.POST("/projects/:projectId/income", h.Create)
	router.PUT("/projects/:projectId/income/:incomeId", h.Update)
	router.DELETE("/projects/:projectId/income/:incomeId", h.Delete)
	return router
}

func TestIncomeHandler_Create(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `income`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	body := `{"name":"Asha Rao","phone_number":"","amount":5000,"description":"Gift","date":"2026-03-01"}`
	w := doJSON(incomeRouter(), "POST", "/projects/p-1/income", body)

	assert.Equal(t, http.StatusCreated, w.Code)
	in := decode(t, w)["income"].(map[string]interface{})
	assert.Equal(t, "p-1", in["project_id"])
	assert.Equal(t, "Asha Rao", in["name"])
	assert.Equal(t, 5000.0, in["amount"])
	assert.Equal(t, false, in["called_status"])
	assert.NotEmpty(t, in["id"])
	_, hasPhone := in["phone_number"]
	assert.False(t, hasPhone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Create_Invalid(t *testing.T) {
	router := incomeRouter()

	cases := []struct {
		body string
		want string
	}{
		{`{"amount":10,"date":"2026-03-01"}`, "name is required"},
		{`{"name":"A","amount":-5,"date":"2026-03-01"}`, "amount must be greater than 0"},
		{`{"name":"A","amount":10,"date":"03/01/2026"}`, "date must be a date in YYYY-MM-DD format"},
		{`{"name":"A","amount":"ten","date":"2026-03-01"}`, "Invalid request body"},
		{`{"name":"A","amount":0.001,"date":"2026-03-01"}`, "amount must have at most 2 decimal places"},
	}
	for _, tc := range cases {
		w := doJSON(router, "POST", "/projects/p-1/income", tc.body)
		assert.Equal(t, http.StatusBadRequest, w.Code, tc.body)
		assert.Equal(t, tc.want, decode(t, w)["error"], tc.body)
	}
}

func TestIncomeHandler_List_Pagination(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `income`").
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))
	mock.ExpectQuery("SELECT \\* FROM `income` WHERE project_id = \\? ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow("i-21", "p-1", "A", nil, 100.0, nil, "2026-03-01", false, now, now).
			AddRow("i-22", "p-1", "B", "555-0100", 250.5, "Gift", "2026-03-02", true, now, now))

	w := doJSON(incomeRouter(), "GET", "/projects/p-1/income?page=3&limit=10", "")

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Len(t, resp["income"], 2)
	pagination := resp["pagination"].(map[string]interface{})
	assert.Equal(t, 3.0, pagination["page"])
	assert.Equal(t, 10.0, pagination["limit"])
	assert.Equal(t, 25.0, pagination["total"])
	assert.Equal(t, 3.0, pagination["totalPages"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_List_Empty(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `income`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT \\* FROM `income`").
		WillReturnRows(sqlmock.NewRows(incomeColumns))

	w := doJSON(incomeRouter(), "GET", "/projects/p-1/income", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"income":[],"pagination":{"page":1,"limit":10,"total":0,"totalPages":0}}`, w.Body.String())
}

func TestIncomeHandler_List_DatabaseError(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `income`").
		WillReturnError(errors.New("relation \"income\" does not exist"))

	w := doJSON(incomeRouter(), "GET", "/projects/p-1/income", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, decode(t, w)["error"], "does not exist")
}

func TestIncomeHandler_Update(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT \\* FROM `income` WHERE id = \\? AND project_id = \\?").
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow("i-1", "p-1", "A", nil, 100.0, nil, "2026-03-01", false, now, now))
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `income` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT \\* FROM `income` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows(incomeColumns).
			AddRow("i-1", "p-1", "A", nil, 100.0, nil, "2026-03-01", true, now, now))

	w := doJSON(incomeRouter(), "PUT", "/projects/p-1/income/i-1", `{"called_status":true}`)

	assert.Equal(t, http.StatusOK, w.Code)
	in := decode(t, w)["income"].(map[string]interface{})
	assert.Equal(t, true, in["called_status"])
	assert.Equal(t, "A", in["name"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Update_NotFound(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT \\* FROM `income`").
		WillReturnRows(sqlmock.NewRows(incomeColumns))

	w := doJSON(incomeRouter(), "PUT", "/projects/p-1/income/i-404", `{"name":"B"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Income not found", decode(t, w)["error"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Update_InvalidAmount(t *testing.T) {
	w := doJSON(incomeRouter(), "PUT", "/projects/p-1/income/i-1", `{"amount":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(incomeRouter(), "PUT", "/projects/p-1/income/i-1", `{"amount":10.555}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "amount must have at most 2 decimal places", decode(t, w)["error"])
}

func TestIncomeHandler_Delete(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `income` WHERE id = \\? AND project_id = \\?").
		WithArgs("i-1", "p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	w := doJSON(incomeRouter(), "DELETE", "/projects/p-1/income/i-1", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestIncomeHandler_Delete_OtherProject(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `income`").
		WithArgs("i-1", "p-2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	w := doJSON(incomeRouter(), "DELETE", "/projects/p-2/income/i-1", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEmptyToNil(t *testing.T) {
	empty, value := "", "x"
	assert.Nil(t, emptyToNil(nil))
	assert.Nil(t, emptyToNil(&empty))
	assert.Equal(t, &value, emptyToNil(&value))
}

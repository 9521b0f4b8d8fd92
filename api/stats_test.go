package api

import (
	"net/http"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statsRouter() *gin.Engine {
	router := gin.New()
	router.GET("/projects/:projectId/stats", NewStatsHandler().Get)
	return router
}

func TestStatsHandler_Get(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT `amount` FROM `income` WHERE project_id = \\?").
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"amount"}).AddRow(0.1).AddRow(0.2).AddRow(100))
	mock.ExpectQuery("SELECT `amount` FROM `expenses` WHERE project_id = \\?").
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"amount"}).AddRow(40.3))

	w := doJSON(statsRouter(), "GET", "/projects/p-1/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"stats":{"totalIncome":100.3,"totalExpenses":40.3,"netBalance":60,"incomeCount":3,"expenseCount":1}}`, w.Body.String())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsHandler_Get_Empty(t *testing.T) {
	mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT `amount` FROM `income`").
		WillReturnRows(sqlmock.NewRows([]string{"amount"}))
	mock.ExpectQuery("SELECT `amount` FROM `expenses`").
		WillReturnRows(sqlmock.NewRows([]string{"amount"}))

	w := doJSON(statsRouter(), "GET", "/projects/p-1/stats", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"stats":{"totalIncome":0,"totalExpenses":0,"netBalance":0,"incomeCount":0,"expenseCount":0}}`, w.Body.String())
}

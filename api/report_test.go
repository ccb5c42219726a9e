package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/gutsafe/gutsafe-api/report"
	"github.com/gutsafe/gutsafe-api/store/mocks"
)

func TestGetReportUnknownPeriod(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockGutSafeStore(ctl)
	s := Server{
		mongoStore:      m,
		reportGenerator: report.NewGenerator(m, nil, nil),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(s.recognizeAccountMiddleware())
	router.GET("/reports/:period", s.getReport)

	req := httptest.NewRequest("GET", "/reports/fortnight", nil)
	req.Header.Set("X-GutSafe-Account", "user-1")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

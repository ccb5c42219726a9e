package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gutsafe/gutsafe-api/report"
	"github.com/gutsafe/gutsafe-api/schema"
	"github.com/gutsafe/gutsafe-api/utils"
)

// getReport serves the analytics report for a period token. Responses come
// straight from the generator's cache when fresh; an account with no logs
// still gets a complete, empty report.
func (s *Server) getReport(c *gin.Context) {
	accountNumber := c.GetString("account")

	var loc *time.Location
	if tz := c.Query("tz"); tz != "" {
		loc = utils.GetLocation(tz)
	}

	encoded, err := s.reportGenerator.Generate(
		c.Request.Context(),
		accountNumber,
		schema.ReportPeriod(c.Param("period")),
		loc)
	if err == report.ErrUnknownPeriod {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownPeriod)
		return
	}
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", encoded)
}

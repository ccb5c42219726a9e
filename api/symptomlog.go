package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gutsafe/gutsafe-api/schema"
)

const defaultHistoryLimit = int64(100)

// appendSymptomLog ingests a new log entry. Severities are clamped to the
// valid range here, at the boundary; stored values are taken as-is by the
// analytics code.
func (s *Server) appendSymptomLog(c *gin.Context) {
	accountNumber := c.GetString("account")

	var params schema.SymptomLogEntry
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if len(params.Symptoms) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters,
			fmt.Errorf("at least one symptom observation is required"))
		return
	}

	for i := range params.Symptoms {
		if params.Symptoms[i].Severity < schema.MinSeverity {
			params.Symptoms[i].Severity = schema.MinSeverity
		}
		if params.Symptoms[i].Severity > schema.MaxSeverity {
			params.Symptoms[i].Severity = schema.MaxSeverity
		}
	}

	params.ID = ""
	params.AccountNumber = accountNumber

	id, err := s.mongoStore.AppendSymptomLog(&params)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id": id,
	})
}

type symptomLogQueryParams struct {
	Before int64  `form:"before"`
	Limit  int64  `form:"limit"`
	Food   string `form:"food"`
	Type   string `form:"type"`
	Start  int64  `form:"start"`
	End    int64  `form:"end"`
}

func (s *Server) getSymptomLogs(c *gin.Context) {
	accountNumber := c.GetString("account")

	var params symptomLogQueryParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	var entries []schema.SymptomLogEntry
	var err error

	switch {
	case params.Food != "":
		entries, err = s.mongoStore.SearchSymptomLogsByFood(accountNumber, params.Food)
	case params.Type != "":
		entries, err = s.mongoStore.GetSymptomLogsByType(accountNumber, schema.SymptomType(params.Type))
	case params.Start > 0 || params.End > 0:
		end := time.Now().UTC()
		if params.End > 0 {
			end = time.Unix(params.End, 0).UTC()
		}
		entries, err = s.mongoStore.GetSymptomLogsByDateRange(accountNumber, time.Unix(params.Start, 0).UTC(), end)
	default:
		before := time.Now().UTC()
		if params.Before > 0 {
			before = time.Unix(params.Before, 0).UTC()
		} else if params.Before < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("negative before"))
			return
		}

		limit := defaultHistoryLimit
		if params.Limit > 0 {
			limit = params.Limit
		} else if params.Limit < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("negative limit"))
			return
		}

		entries, err = s.mongoStore.GetSymptomLogs(accountNumber, before, limit)
	}

	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"symptom_logs": entries})
}

func (s *Server) updateSymptomLog(c *gin.Context) {
	accountNumber := c.GetString("account")

	var params schema.SymptomLogUpdate
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Symptoms != nil {
		for i := range params.Symptoms {
			if params.Symptoms[i].Severity < schema.MinSeverity {
				params.Symptoms[i].Severity = schema.MinSeverity
			}
			if params.Symptoms[i].Severity > schema.MaxSeverity {
				params.Symptoms[i].Severity = schema.MaxSeverity
			}
		}
	}

	updated, err := s.mongoStore.UpdateSymptomLog(accountNumber, c.Param("logID"), params)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if !updated {
		abortWithEncoding(c, http.StatusNotFound, errorSymptomLogNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

func (s *Server) removeSymptomLog(c *gin.Context) {
	accountNumber := c.GetString("account")

	removed, err := s.mongoStore.RemoveSymptomLog(accountNumber, c.Param("logID"))
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if !removed {
		abortWithEncoding(c, http.StatusNotFound, errorSymptomLogNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

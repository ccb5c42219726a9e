package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gutsafe/gutsafe-api/schema"
	"github.com/gutsafe/gutsafe-api/store"
)

// getSymptoms lists the loggable symptom types: the official catalog,
// localized with the Accept-Language header, plus user-defined ones.
func (s *Server) getSymptoms(c *gin.Context) {
	lang := c.GetHeader("Accept-Language")
	if lang == "" {
		lang = "en"
	}

	official, err := s.mongoStore.ListOfficialSymptoms(lang)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	customized, err := s.mongoStore.ListCustomizedSymptoms()
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"symptoms": append(official, customized...)})
}

func (s *Server) createSymptom(c *gin.Context) {
	var params schema.Symptom

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	id, err := s.mongoStore.CreateSymptom(params)
	if err != nil {
		if err == store.ErrEmptySymptom {
			abortWithEncoding(c, http.StatusBadRequest, errorEmptySymptom)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id": id,
	})
}

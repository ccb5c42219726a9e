package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gutsafe/gutsafe-api/schema"
	"github.com/gutsafe/gutsafe-api/store"
)

func (s *Server) exportSymptomLogs(c *gin.Context) {
	accountNumber := c.GetString("account")

	doc, err := s.mongoStore.ExportSymptomLogs(accountNumber)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, doc)
}

// importSymptomLogs restores a previously exported log list. A payload that
// does not have the expected shape is rejected as a whole; the store is not
// touched.
func (s *Server) importSymptomLogs(c *gin.Context) {
	accountNumber := c.GetString("account")

	var doc schema.ExportDocument
	if err := c.BindJSON(&doc); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	imported, err := s.mongoStore.ImportSymptomLogs(accountNumber, &doc)
	if err != nil {
		if errors.Is(err, store.ErrInvalidDataFormat) {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidDataFormat, err)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"imported": imported})
}

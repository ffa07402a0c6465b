package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// SendExport writes a generated export file as an attachment.
func SendExport(c *gin.Context, name, format string, data []byte) {
	contentType := "text/csv"
	if format == "xlsx" {
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	}
	c.Header("Content-Disposition", "attachment; filename="+name+"."+format)
	c.Data(http.StatusOK, contentType, data)
}

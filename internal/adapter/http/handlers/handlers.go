package handlers

import (
	"net/http"
	"strconv"

	"primefinish/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRecordPayload = pkg.NewDomainErrorSimple("INVALID_RECORD_INPUT", "Invalid record payload", http.StatusBadRequest)
	errInvalidIndex         = pkg.NewDomainErrorSimple("INVALID_INDEX", "Index must be a non-negative integer", http.StatusBadRequest)
)

// indexParam parses the :index path segment. Writes the error response and
// returns false when the segment is not a usable list index.
func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(errInvalidIndex.HTTPStatus, errInvalidIndex.ToHTTPError())
		return 0, false
	}
	return index, true
}

// servePDF writes a rendered document as a download.
func servePDF(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

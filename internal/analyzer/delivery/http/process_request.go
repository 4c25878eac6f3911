package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMalformedBody = errors.New("request body must be a JSON object with a string 'task' field")

// processAnalyzeReq binds the analyze request body. Any malformed body
// (broken JSON, wrong type for task, missing object) is reported as the
// same 400-class error rather than a panic.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzeReq, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errMalformedBody
	}
	return req, nil
}

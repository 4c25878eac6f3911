package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-analyzer/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a task description
// @Description Categorizes a free-text task into category, priority, reasoning, and an optional due date.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Task description"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Invalid input"
// @Failure     500 {object} response.Resp "Configuration or analysis failure"
// @Failure     503 {object} response.Resp "AI service unavailable"
// @Router      /api/v1/tasks/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Describe godoc
// @Summary     Describe the analyze endpoint
// @Description Returns the endpoint contract with an example request/response pair. Documentation probe, no analysis is performed.
// @Tags        Tasks
// @Produce     json
// @Success     200 {object} describeResp
// @Router      /api/v1/tasks/analyze [GET]
func (h *handler) Describe(c *gin.Context) {
	response.OK(c, newDescribeResp())
}

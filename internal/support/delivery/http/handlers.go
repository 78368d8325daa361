package http

import (
	"github.com/gin-gonic/gin"

	"support-agent-orchestrator/internal/support"
	"support-agent-orchestrator/pkg/response"
)

// Process godoc
// @Summary     Process a customer query
// @Description Classifies the query and routes it to the right support specialist. Pass conversation_id to continue a conversation; omit it to start a new one.
// @Tags        Support
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Customer query"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/support/query [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		if err == support.ErrEmptyQuery {
			response.Error(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newProcessResp(output))
}

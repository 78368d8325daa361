package backendmock

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the mock backend surface on the given group,
// typically /api of the main server or a standalone engine.
func (s *Server) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/orders/:id", s.getOrder)
	rg.GET("/accounts/:id", s.getAccount)
	rg.POST("/diagnose", s.diagnose)
}

func (s *Server) getOrder(c *gin.Context) {
	order, ok := orders[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (s *Server) getAccount(c *gin.Context) {
	account, ok := accounts[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Account not found"})
		return
	}
	c.JSON(http.StatusOK, account)
}

type diagnoseReq struct {
	Description string `json:"description"`
}

func (s *Server) diagnose(c *gin.Context) {
	var req diagnoseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	s.l.Infof(c.Request.Context(), "backendmock: diagnose %q", req.Description)

	description := strings.ToLower(req.Description)
	for keyword, diagnosis := range diagnoses {
		if strings.Contains(description, keyword) {
			c.JSON(http.StatusOK, diagnosis)
			return
		}
	}
	c.JSON(http.StatusOK, diagnosisUnknown)
}

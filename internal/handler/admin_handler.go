package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ShowRecoveryPage renders the operator page for re-running manufacturing
// emails on lost orders.
func ShowRecoveryPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_recover.html", nil)
}

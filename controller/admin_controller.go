// api/controller/admin_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/casa/api/audit"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/service"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

type auditLogQuery struct {
	From       time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
	UserID     int64     `form:"userId" binding:"omitempty,min=1"`
	ResourceID int64     `form:"resourceId" binding:"omitempty,min=1"`
	Action     string    `form:"action"`
	Size       int       `form:"size" binding:"omitempty,min=1,max=1000"`
}

type AdminController struct {
	auditService service.IAuditService
}

func NewAdminController(auditService service.IAuditService) *AdminController {
	return &AdminController{
		auditService: auditService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AdminController) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc) {
	admin := r.Group("/admin", auth)
	{
		admin.GET("/audit-logs", ac.QueryAuditLogs)
	}
}

// QueryAuditLogs endpoint
func (ac *AdminController) QueryAuditLogs(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	var params auditLogQuery
	if err := c.ShouldBindQuery(&params); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid audit query", echo_errors.ErrInvalidSearchFilter)
		return
	}
	if params.Size == 0 {
		params.Size = audit.DefaultQuerySize
	}

	logs, err := ac.auditService.QueryLogs(c.Request.Context(), requester, audit.Query{
		From:       params.From,
		To:         params.To,
		UserID:     params.UserID,
		ResourceID: params.ResourceID,
		Action:     params.Action,
		Size:       params.Size,
	})
	if err != nil {
		respondWithServiceError(c, err, "Server error retrieving audit logs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Audit logs retrieved successfully",
		"logs":    logs,
	})
}

package controller_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/casa/api/audit"
	"github.com/dev-mohitbeniwal/casa/api/controller"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
	mock_service "github.com/dev-mohitbeniwal/casa/api/test/service_mock"
)

func TestAdminController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuditService := mock_service.NewMockIAuditService(ctrl)
	adminController := controller.NewAdminController(mockAuditService)
	router := gin.New()
	adminController.RegisterRoutes(router.Group("/api"), authAs(9))

	t.Run("QueryAuditLogs_DefaultsSize", func(t *testing.T) {
		from := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
		mockAuditService.EXPECT().
			QueryLogs(gomock.Any(), int64(9), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, query audit.Query) ([]audit.AuditLog, error) {
				assert.Equal(t, 50, query.Size)
				assert.True(t, from.Equal(query.From))
				assert.Equal(t, int64(4), query.ResourceID)
				assert.Equal(t, "property.update", query.Action)
				return []audit.AuditLog{{Action: "property.update", ResourceID: 4}}, nil
			})

		w := serve(router, http.MethodGet, "/api/admin/audit-logs?from=2024-03-01T00:00:00Z&resourceId=4&action=property.update", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["logs"], 1)
	})

	t.Run("QueryAuditLogs_Failure_BadTime", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/admin/audit-logs?from=yesterday", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("QueryAuditLogs_Failure_NotAdmin", func(t *testing.T) {
		mockAuditService.EXPECT().
			QueryLogs(gomock.Any(), int64(9), gomock.Any()).
			Return(nil, echo_errors.NewForbiddenError("Not authorized to access this resource", pdp_model.Decision{}))

		w := serve(router, http.MethodGet, "/api/admin/audit-logs", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Not authorized to access this resource", messageOf(t, w))
	})
}

package controller_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/casa/api/controller"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
	mock_service "github.com/dev-mohitbeniwal/casa/api/test/service_mock"
)

func TestPropertyController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPropertyService := mock_service.NewMockIPropertyService(ctrl)
	propertyController := controller.NewPropertyController(mockPropertyService)
	router := gin.New()
	propertyController.RegisterRoutes(router.Group("/api"), authAs(1))

	unauthenticated := gin.New()
	propertyController.RegisterRoutes(unauthenticated.Group("/api"), noAuth)

	t.Run("ListProperties_BindsFilter", func(t *testing.T) {
		verified := true
		want := model.PropertyFilter{City: "CDMX", MinPrice: 1000, Bedrooms: 2, Verified: &verified, Page: 2}
		mockPropertyService.EXPECT().
			ListProperties(gomock.Any(), want).
			Return(&model.PropertyPage{
				Properties: []*model.Property{{ID: 1}},
				Pagination: model.Pagination{Total: 11, Page: 2, Limit: 10, Pages: 2},
			}, nil)

		w := serve(unauthenticated, http.MethodGet, "/api/properties?city=CDMX&minPrice=1000&bedrooms=2&verified=true&page=2", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, "Properties retrieved successfully", body["message"])
		assert.Len(t, body["properties"], 1)
		assert.Equal(t, float64(11), body["pagination"].(map[string]any)["total"])
	})

	t.Run("ListProperties_Failure_BadType", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/properties?type=CASTLE", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ListProperties_Failure_PriceRange", func(t *testing.T) {
		mockPropertyService.EXPECT().
			ListProperties(gomock.Any(), gomock.Any()).
			Return(nil, echo_errors.ErrInvalidSearchFilter)

		w := serve(router, http.MethodGet, "/api/properties?minPrice=5000&maxPrice=1000", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetProperty_Failure_NotFound", func(t *testing.T) {
		mockPropertyService.EXPECT().
			GetProperty(gomock.Any(), int64(9)).
			Return(nil, echo_errors.ErrPropertyNotFound)

		w := serve(unauthenticated, http.MethodGet, "/api/properties/9", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Property not found", messageOf(t, w))
	})

	t.Run("CreateProperty_Failure_Unauthenticated", func(t *testing.T) {
		w := serve(unauthenticated, http.MethodPost, "/api/properties", strings.NewReader(`{}`))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("UpdateProperty_Failure_Forbidden", func(t *testing.T) {
		mockPropertyService.EXPECT().
			UpdateProperty(gomock.Any(), int64(1), int64(4), gomock.Any()).
			Return(nil, echo_errors.NewForbiddenError("Not authorized to update verification status", pdp_model.Decision{Field: "verified"}))

		w := serve(router, http.MethodPut, "/api/properties/4", strings.NewReader(`{"verified":true}`))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Not authorized to update verification status", messageOf(t, w))
	})

	t.Run("DeleteProperty_Success", func(t *testing.T) {
		mockPropertyService.EXPECT().
			DeleteProperty(gomock.Any(), int64(1), int64(4)).
			Return(nil)

		w := serve(router, http.MethodDelete, "/api/properties/4", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Property deleted successfully", messageOf(t, w))
	})

	t.Run("AddFavorite_Success", func(t *testing.T) {
		mockPropertyService.EXPECT().
			AddFavorite(gomock.Any(), int64(1), int64(4)).
			Return(&model.Favorite{UserID: 1, PropertyID: 4}, nil)

		w := serve(router, http.MethodPost, "/api/properties/4/favorite", nil)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("AddFavorite_Failure_Conflict", func(t *testing.T) {
		mockPropertyService.EXPECT().
			AddFavorite(gomock.Any(), int64(1), int64(4)).
			Return(nil, echo_errors.ErrFavoriteConflict)

		w := serve(router, http.MethodPost, "/api/properties/4/favorite", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Property already in favorites", messageOf(t, w))
	})

	t.Run("RemoveFavorite_Failure_NotFound", func(t *testing.T) {
		mockPropertyService.EXPECT().
			RemoveFavorite(gomock.Any(), int64(1), int64(4)).
			Return(echo_errors.ErrFavoriteNotFound)

		w := serve(router, http.MethodDelete, "/api/properties/4/favorite", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Property not in favorites", messageOf(t, w))
	})
}

package controller_test

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/casa/api/config"
	"github.com/dev-mohitbeniwal/casa/api/controller"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
	mock_service "github.com/dev-mohitbeniwal/casa/api/test/service_mock"
)

type part struct {
	name    string
	content string
}

func multipartUpload(t *testing.T, fields map[string]string, files ...part) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	for _, f := range files {
		fw, err := writer.CreateFormFile("files", f.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestMediaController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMediaService := mock_service.NewMockIMediaService(ctrl)
	mediaController := controller.NewMediaController(mockMediaService, config.UploadConfiguration{MaxFiles: 2, MaxFileSize: 8})
	router := gin.New()
	mediaController.RegisterRoutes(router.Group("/api"), authAs(1))

	upload := func(body io.Reader, contentType string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/properties/10/media", body)
		req.Header.Set("Content-Type", contentType)
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("UploadMedia_Success", func(t *testing.T) {
		var received []model.UploadedFile
		mockMediaService.EXPECT().
			UploadMedia(gomock.Any(), int64(1), int64(10), gomock.Any()).
			DoAndReturn(func(_ any, _, _ int64, upload model.MediaUpload) ([]*model.Media, error) {
				assert.Equal(t, model.MediaTypeFloorPlan, upload.Type)
				assert.Equal(t, "true", upload.IsMain)
				assert.NoError(t, upload.FormErr)
				received = upload.Files
				return []*model.Media{{ID: 1, PropertyID: 10}}, nil
			})

		body, contentType := multipartUpload(t, map[string]string{"type": "FLOOR_PLAN", "isMain": "true"}, part{"a.png", "abc"})
		w := upload(body, contentType)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "Media uploaded successfully", messageOf(t, w))
		require.Len(t, received, 1)
		assert.Equal(t, "a.png", received[0].Filename)
		assert.Equal(t, []byte("abc"), received[0].Content)
	})

	t.Run("UploadMedia_OversizedPartNotRead", func(t *testing.T) {
		var received []model.UploadedFile
		mockMediaService.EXPECT().
			UploadMedia(gomock.Any(), int64(1), int64(10), gomock.Any()).
			DoAndReturn(func(_ any, _, _ int64, upload model.MediaUpload) ([]*model.Media, error) {
				received = upload.Files
				return nil, echo_errors.ErrFileTooLarge
			})

		body, contentType := multipartUpload(t, nil, part{"big.png", "0123456789"})
		w := upload(body, contentType)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.Len(t, received, 1)
		assert.Equal(t, int64(10), received[0].Size)
		assert.Nil(t, received[0].Content)
	})

	t.Run("UploadMedia_Failure_NoFiles", func(t *testing.T) {
		mockMediaService.EXPECT().
			UploadMedia(gomock.Any(), int64(1), int64(10), model.MediaUpload{}).
			Return(nil, echo_errors.ErrNoFilesUploaded)

		w := serve(router, http.MethodPost, "/api/properties/10/media", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No files uploaded", messageOf(t, w))
	})

	t.Run("UploadMedia_Failure_Forbidden", func(t *testing.T) {
		mockMediaService.EXPECT().
			UploadMedia(gomock.Any(), int64(1), int64(10), gomock.Any()).
			Return(nil, echo_errors.NewForbiddenError("Not authorized to upload media for this property", pdp_model.Decision{}))

		body, contentType := multipartUpload(t, nil, part{"a.png", "abc"})
		w := upload(body, contentType)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Not authorized to upload media for this property", messageOf(t, w))
	})

	t.Run("UploadMedia_Failure_BadIsMain", func(t *testing.T) {
		mockMediaService.EXPECT().
			UploadMedia(gomock.Any(), int64(1), int64(10), gomock.Any()).
			DoAndReturn(func(_ any, _, _ int64, upload model.MediaUpload) ([]*model.Media, error) {
				assert.Equal(t, "maybe", upload.IsMain)
				return nil, fmt.Errorf("%w: invalid isMain value %q", echo_errors.ErrInvalidMediaData, upload.IsMain)
			})

		body, contentType := multipartUpload(t, map[string]string{"isMain": "maybe"}, part{"a.png", "abc"})
		w := upload(body, contentType)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UploadMedia_NotFoundBeforeFormErrors", func(t *testing.T) {
		mockMediaService.EXPECT().
			UploadMedia(gomock.Any(), int64(1), int64(10), gomock.Any()).
			DoAndReturn(func(_ any, _, _ int64, upload model.MediaUpload) ([]*model.Media, error) {
				assert.ErrorIs(t, upload.FormErr, echo_errors.ErrInvalidMediaData)
				return nil, echo_errors.ErrPropertyNotFound
			})

		w := upload(strings.NewReader("--broken\r\nnot a part"), "multipart/form-data; boundary=broken")

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Property not found", messageOf(t, w))
	})

	t.Run("ListMedia_Success", func(t *testing.T) {
		mockMediaService.EXPECT().
			ListMedia(gomock.Any(), int64(10)).
			Return([]*model.Media{{ID: 1}, {ID: 2}}, nil)

		w := serve(router, http.MethodGet, "/api/properties/10/media", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["media"], 2)
	})

	t.Run("UpdateMedia_Success", func(t *testing.T) {
		mockMediaService.EXPECT().
			UpdateMedia(gomock.Any(), int64(1), int64(5), true).
			Return(&model.Media{ID: 5, IsMain: true}, nil)

		w := serve(router, http.MethodPut, "/api/media/5", strings.NewReader(`{"isMain":true}`))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UpdateMedia_Failure_MissingIsMain", func(t *testing.T) {
		w := serve(router, http.MethodPut, "/api/media/5", strings.NewReader(`{}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DeleteMedia_Failure_NotFound", func(t *testing.T) {
		mockMediaService.EXPECT().
			DeleteMedia(gomock.Any(), int64(1), int64(5)).
			Return(echo_errors.ErrMediaNotFound)

		w := serve(router, http.MethodDelete, "/api/media/5", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Media not found", messageOf(t, w))
	})
}

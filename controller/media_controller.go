// api/controller/media_controller.go
package controller

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/casa/api/config"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
	"github.com/dev-mohitbeniwal/casa/api/service"
	"github.com/dev-mohitbeniwal/casa/api/util"
	helper_util "github.com/dev-mohitbeniwal/casa/api/util/helper"
)

type MediaController struct {
	mediaService service.IMediaService
	limits       config.UploadConfiguration
}

func NewMediaController(mediaService service.IMediaService, limits config.UploadConfiguration) *MediaController {
	return &MediaController{
		mediaService: mediaService,
		limits:       limits,
	}
}

// RegisterRoutes registers the API routes
func (mc *MediaController) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc) {
	r.POST("/properties/:id/media", auth, mc.UploadMedia)
	r.GET("/properties/:id/media", mc.ListMedia)

	media := r.Group("/media", auth)
	{
		media.PUT("/:id", mc.UpdateMedia)
		media.DELETE("/:id", mc.DeleteMedia)
	}
}

// UploadMedia endpoint
func (mc *MediaController) UploadMedia(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	propertyID, ok := propertyIDParam(c)
	if !ok {
		return
	}

	files, formErr := mc.readFiles(c)
	upload := model.MediaUpload{
		Type:    model.MediaType(c.PostForm("type")),
		IsMain:  c.PostForm("isMain"),
		Files:   files,
		FormErr: formErr,
	}

	media, err := mc.mediaService.UploadMedia(c.Request.Context(), requester, propertyID, upload)
	if err != nil {
		respondWithServiceError(c, err, "Server error uploading media")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Media uploaded successfully",
		"media":   media,
	})
}

// readFiles loads the multipart "files" parts. Parts beyond the file limit or
// above the size limit keep their declared size but are not read, so the
// service can reject them after its existence and ownership checks.
func (mc *MediaController) readFiles(c *gin.Context) ([]model.UploadedFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", echo_errors.ErrInvalidMediaData, err)
	}

	headers := form.File["files"]
	files := make([]model.UploadedFile, 0, len(headers))
	for i, header := range headers {
		file := model.UploadedFile{Filename: header.Filename, Size: header.Size}
		if i < mc.limits.MaxFiles && header.Size <= mc.limits.MaxFileSize {
			content, err := readPart(header)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", echo_errors.ErrInvalidMediaData, err)
			}
			file.Content = content
		}
		files = append(files, file)
	}
	return files, nil
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// ListMedia endpoint
func (mc *MediaController) ListMedia(c *gin.Context) {
	propertyID, ok := propertyIDParam(c)
	if !ok {
		return
	}

	media, err := mc.mediaService.ListMedia(c.Request.Context(), propertyID)
	if err != nil {
		respondWithServiceError(c, err, "Server error retrieving media")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Property media retrieved successfully",
		"media":   media,
	})
}

// UpdateMedia endpoint
func (mc *MediaController) UpdateMedia(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	mediaID, ok := mediaIDParam(c)
	if !ok {
		return
	}
	var req model.UpdateMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "isMain is required", echo_errors.ErrInvalidMediaData)
		return
	}

	media, err := mc.mediaService.UpdateMedia(c.Request.Context(), requester, mediaID, *req.IsMain)
	if err != nil {
		respondWithServiceError(c, err, "Server error updating media")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Media updated successfully",
		"media":   media,
	})
}

// DeleteMedia endpoint
func (mc *MediaController) DeleteMedia(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	mediaID, ok := mediaIDParam(c)
	if !ok {
		return
	}

	if err := mc.mediaService.DeleteMedia(c.Request.Context(), requester, mediaID); err != nil {
		respondWithServiceError(c, err, "Server error deleting media")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media deleted successfully"})
}

func mediaIDParam(c *gin.Context) (int64, bool) {
	mediaID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid media ID", echo_errors.ErrInvalidMediaData)
		return 0, false
	}
	return mediaID, true
}

package model

import "time"

type MediaType string

const (
	MediaTypeImage     MediaType = "IMAGE"
	MediaTypeFloorPlan MediaType = "FLOOR_PLAN"
	MediaTypeVideo     MediaType = "VIDEO"
)

func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeImage, MediaTypeFloorPlan, MediaTypeVideo:
		return true
	}
	return false
}

type Media struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"propertyId"`
	Type       MediaType `json:"type"`
	URL        string    `json:"url"`
	// Path is relative to the upload root; empty for externally hosted media.
	Path      string    `json:"-"`
	IsMain    bool      `json:"isMain"`
	CreatedAt time.Time `json:"createdAt"`
}

// MediaWithOwner is a media row joined with the owner of its property.
type MediaWithOwner struct {
	Media
	PropertyOwnerID int64
}

type UpdateMediaRequest struct {
	IsMain *bool `json:"isMain" binding:"required"`
}

// MediaUpload is an upload form as received. IsMain stays raw and FormErr
// carries a body that could not be read, so both are reported only after
// the listing is found and the requester may upload to it.
type MediaUpload struct {
	Type    MediaType
	IsMain  string
	Files   []UploadedFile
	FormErr error
}

// UploadedFile is a file received in a multipart upload.
type UploadedFile struct {
	Filename string
	Size     int64
	Content  []byte
}

package model

import "time"

type Favorite struct {
	UserID     int64     `json:"userId"`
	PropertyID int64     `json:"propertyId"`
	CreatedAt  time.Time `json:"createdAt"`
	Property   *Property `json:"property,omitempty"`
}

type SavedSearch struct {
	ID        int64          `json:"id"`
	UserID    int64          `json:"userId"`
	Name      string         `json:"name"`
	Criteria  PropertyFilter `json:"criteria"`
	CreatedAt time.Time      `json:"createdAt"`
}

type CreateSavedSearchRequest struct {
	Name     string         `json:"name" binding:"required"`
	Criteria PropertyFilter `json:"criteria"`
}

package model

import (
	"fmt"
	"time"
)

type PropertyType string

const (
	PropertyTypeHouse      PropertyType = "HOUSE"
	PropertyTypeApartment  PropertyType = "APARTMENT"
	PropertyTypeLand       PropertyType = "LAND"
	PropertyTypeCommercial PropertyType = "COMMERCIAL"
)

type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "ACTIVE"
	PropertyStatusSold     PropertyStatus = "SOLD"
	PropertyStatusRented   PropertyStatus = "RENTED"
	PropertyStatusInactive PropertyStatus = "INACTIVE"
)

type Currency string

const (
	CurrencyMXN Currency = "MXN"
	CurrencyUSD Currency = "USD"
)

type Address struct {
	Street       string   `json:"street,omitempty"`
	StreetNumber string   `json:"streetNumber,omitempty"`
	Neighborhood string   `json:"neighborhood" binding:"required"`
	PostalCode   string   `json:"postalCode,omitempty"`
	City         string   `json:"city" binding:"required"`
	State        string   `json:"state" binding:"required"`
	Latitude     *float64 `json:"latitude,omitempty" binding:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" binding:"omitempty,longitude"`
}

type Feature struct {
	Name   string `json:"name" binding:"required"`
	NameEn string `json:"nameEn,omitempty"`
}

// OwnerSummary is the public contact card of a listing's owner.
type OwnerSummary struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type Property struct {
	ID               int64          `json:"id"`
	Title            string         `json:"title"`
	TitleEn          string         `json:"titleEn,omitempty"`
	Description      string         `json:"description"`
	DescriptionEn    string         `json:"descriptionEn,omitempty"`
	Price            float64        `json:"price"`
	Currency         Currency       `json:"currency"`
	Type             PropertyType   `json:"type"`
	Status           PropertyStatus `json:"status"`
	Bedrooms         *int           `json:"bedrooms,omitempty"`
	Bathrooms        *int           `json:"bathrooms,omitempty"`
	BuildingSize     *float64       `json:"buildingSize,omitempty"`
	LandSize         *float64       `json:"landSize,omitempty"`
	ConstructionYear *int           `json:"constructionYear,omitempty"`
	Verified         bool           `json:"verified"`
	Views            int64          `json:"views"`
	OwnerID          int64          `json:"ownerId"`
	Address          *Address       `json:"address,omitempty"`
	Features         []Feature      `json:"features,omitempty"`
	Media            []*Media       `json:"media,omitempty"`
	Owner            *OwnerSummary  `json:"owner,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

type MediaInput struct {
	Type   MediaType `json:"type" binding:"required,oneof=IMAGE FLOOR_PLAN VIDEO"`
	URL    string    `json:"url" binding:"required,url"`
	IsMain bool      `json:"isMain"`
}

type CreatePropertyRequest struct {
	Title            string         `json:"title" binding:"required"`
	TitleEn          string         `json:"titleEn"`
	Description      string         `json:"description" binding:"required"`
	DescriptionEn    string         `json:"descriptionEn"`
	Price            float64        `json:"price" binding:"required,gt=0"`
	Currency         Currency       `json:"currency" binding:"omitempty,oneof=MXN USD"`
	Type             PropertyType   `json:"type" binding:"required,oneof=HOUSE APARTMENT LAND COMMERCIAL"`
	Status           PropertyStatus `json:"status" binding:"omitempty,oneof=ACTIVE SOLD RENTED INACTIVE"`
	Bedrooms         *int           `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms        *int           `json:"bathrooms" binding:"omitempty,min=0"`
	BuildingSize     *float64       `json:"buildingSize" binding:"omitempty,gt=0"`
	LandSize         *float64       `json:"landSize" binding:"omitempty,gt=0"`
	ConstructionYear *int           `json:"constructionYear" binding:"omitempty,min=1800,notfutureyear"`
	Address          *Address       `json:"address"`
	Features         []Feature      `json:"features" binding:"omitempty,dive"`
	Media            []MediaInput   `json:"media" binding:"omitempty,dive"`
}

// AddressPatch replaces or creates the address; fields are not individually required.
type AddressPatch struct {
	Street       string   `json:"street,omitempty"`
	StreetNumber string   `json:"streetNumber,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	PostalCode   string   `json:"postalCode,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty" binding:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" binding:"omitempty,longitude"`
}

// PropertyPatch is a partial update. Nil fields are left untouched; a
// non-nil Features slice replaces every feature.
type PropertyPatch struct {
	Title            *string         `json:"title" binding:"omitempty,min=1"`
	TitleEn          *string         `json:"titleEn"`
	Description      *string         `json:"description" binding:"omitempty,min=1"`
	DescriptionEn    *string         `json:"descriptionEn"`
	Price            *float64        `json:"price" binding:"omitempty,gt=0"`
	Currency         *Currency       `json:"currency" binding:"omitempty,oneof=MXN USD"`
	Type             *PropertyType   `json:"type" binding:"omitempty,oneof=HOUSE APARTMENT LAND COMMERCIAL"`
	Status           *PropertyStatus `json:"status" binding:"omitempty,oneof=ACTIVE SOLD RENTED INACTIVE"`
	Bedrooms         *int            `json:"bedrooms" binding:"omitempty,min=0"`
	Bathrooms        *int            `json:"bathrooms" binding:"omitempty,min=0"`
	BuildingSize     *float64        `json:"buildingSize" binding:"omitempty,gt=0"`
	LandSize         *float64        `json:"landSize" binding:"omitempty,gt=0"`
	ConstructionYear *int            `json:"constructionYear" binding:"omitempty,min=1800,notfutureyear"`
	Verified         *bool           `json:"verified"`
	Address          *AddressPatch   `json:"address"`
	Features         []Feature       `json:"features" binding:"omitempty,dive"`
}

// ChangedFields lists the request fields that carry a value.
func (p PropertyPatch) ChangedFields() []string {
	var fields []string
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}
	add(p.Title != nil, "title")
	add(p.TitleEn != nil, "titleEn")
	add(p.Description != nil, "description")
	add(p.DescriptionEn != nil, "descriptionEn")
	add(p.Price != nil, "price")
	add(p.Currency != nil, "currency")
	add(p.Type != nil, "type")
	add(p.Status != nil, "status")
	add(p.Bedrooms != nil, "bedrooms")
	add(p.Bathrooms != nil, "bathrooms")
	add(p.BuildingSize != nil, "buildingSize")
	add(p.LandSize != nil, "landSize")
	add(p.ConstructionYear != nil, "constructionYear")
	add(p.Verified != nil, "verified")
	add(p.Address != nil, "address")
	add(p.Features != nil, "features")
	return fields
}

func (p PropertyPatch) IsEmpty() bool {
	return len(p.ChangedFields()) == 0
}

// PropertyFilter holds the listing query parameters.
type PropertyFilter struct {
	Type      PropertyType   `form:"type" json:"type,omitempty" binding:"omitempty,oneof=HOUSE APARTMENT LAND COMMERCIAL"`
	MinPrice  float64        `form:"minPrice" json:"minPrice,omitempty" binding:"omitempty,gt=0"`
	MaxPrice  float64        `form:"maxPrice" json:"maxPrice,omitempty" binding:"omitempty,gt=0"`
	Bedrooms  int            `form:"bedrooms" json:"bedrooms,omitempty" binding:"omitempty,min=0"`
	Bathrooms int            `form:"bathrooms" json:"bathrooms,omitempty" binding:"omitempty,min=0"`
	City      string         `form:"city" json:"city,omitempty"`
	State     string         `form:"state" json:"state,omitempty"`
	Status    PropertyStatus `form:"status" json:"status,omitempty" binding:"omitempty,oneof=ACTIVE SOLD RENTED INACTIVE"`
	Verified  *bool          `form:"verified" json:"verified,omitempty"`
	Limit     int            `form:"limit" json:"-" binding:"omitempty,min=1,max=100"`
	Page      int            `form:"page" json:"-" binding:"omitempty,min=1"`
}

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// Normalize fills the defaults of unset fields.
func (f *PropertyFilter) Normalize() {
	if f.Status == "" {
		f.Status = PropertyStatusActive
	}
	if f.Limit <= 0 {
		f.Limit = DefaultPageLimit
	}
	if f.Limit > MaxPageLimit {
		f.Limit = MaxPageLimit
	}
	if f.Page <= 0 {
		f.Page = 1
	}
}

func (f PropertyFilter) Skip() int {
	return (f.Page - 1) * f.Limit
}

// CacheKey identifies a listing page; it covers every field that changes the result.
func (f PropertyFilter) CacheKey() string {
	verified := "any"
	if f.Verified != nil {
		verified = fmt.Sprintf("%t", *f.Verified)
	}
	return fmt.Sprintf("t=%s|min=%g|max=%g|bd=%d|ba=%d|c=%s|s=%s|st=%s|v=%s|l=%d|p=%d",
		f.Type, f.MinPrice, f.MaxPrice, f.Bedrooms, f.Bathrooms, f.City, f.State, f.Status, verified, f.Limit, f.Page)
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int   `json:"pages"`
}

type PropertyPage struct {
	Properties []*Property `json:"properties"`
	Pagination Pagination  `json:"pagination"`
}

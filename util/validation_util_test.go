package util

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
)

func ptr[T any](v T) *T { return &v }

func validPropertyRequest() model.CreatePropertyRequest {
	return model.CreatePropertyRequest{
		Title:       "Casa Moderna en Condesa",
		Description: "Hermosa casa",
		Price:       5500000,
		Currency:    model.CurrencyMXN,
		Type:        model.PropertyTypeHouse,
		Address: &model.Address{
			Neighborhood: "Condesa",
			City:         "Ciudad de México",
			State:        "CDMX",
		},
	}
}

func TestValidateCreateProperty(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidateCreateProperty(validPropertyRequest()))

	req := validPropertyRequest()
	req.Price = 0
	assert.ErrorIs(t, v.ValidateCreateProperty(req), echo_errors.ErrInvalidPropertyData)

	req = validPropertyRequest()
	req.Type = "CASTLE"
	assert.ErrorIs(t, v.ValidateCreateProperty(req), echo_errors.ErrInvalidPropertyData)

	req = validPropertyRequest()
	req.ConstructionYear = ptr(time.Now().Year() + 1)
	assert.ErrorIs(t, v.ValidateCreateProperty(req), echo_errors.ErrInvalidPropertyData)

	req = validPropertyRequest()
	req.ConstructionYear = ptr(1799)
	assert.ErrorIs(t, v.ValidateCreateProperty(req), echo_errors.ErrInvalidPropertyData)

	req = validPropertyRequest()
	req.ConstructionYear = ptr(time.Now().Year())
	assert.NoError(t, v.ValidateCreateProperty(req))

	req = validPropertyRequest()
	req.Address.Latitude = ptr(91.0)
	assert.ErrorIs(t, v.ValidateCreateProperty(req), echo_errors.ErrInvalidPropertyData)
}

func TestGinBindingKnowsCustomRules(t *testing.T) {
	req := validPropertyRequest()
	req.ConstructionYear = ptr(time.Now().Year() + 5)
	assert.Error(t, binding.Validator.ValidateStruct(req))
}

func TestRegisterRules(t *testing.T) {
	assert.NoError(t, registerRules(validator.New(), customRules))

	err := registerRules(validator.New(), map[string]validator.Func{"": notFutureYear})
	assert.Error(t, err)
	assert.NotPanics(t, func() { mustRegisterRules(validator.New()) })
}

func TestValidatePatches(t *testing.T) {
	v := NewValidationUtil()

	assert.ErrorIs(t, v.ValidatePropertyPatch(model.PropertyPatch{}), echo_errors.ErrInvalidPropertyData)
	assert.NoError(t, v.ValidatePropertyPatch(model.PropertyPatch{Verified: ptr(true)}))
	assert.ErrorIs(t, v.ValidatePropertyPatch(model.PropertyPatch{Price: ptr(-1.0)}), echo_errors.ErrInvalidPropertyData)

	assert.ErrorIs(t, v.ValidateUserPatch(model.UserPatch{}), echo_errors.ErrInvalidUserData)
	assert.NoError(t, v.ValidateUserPatch(model.UserPatch{Role: ptr(model.RoleAgent)}))
	assert.ErrorIs(t, v.ValidateUserPatch(model.UserPatch{Role: ptr(model.Role("ROOT"))}), echo_errors.ErrInvalidUserData)
	assert.ErrorIs(t, v.ValidateUserPatch(model.UserPatch{Password: ptr("123")}), echo_errors.ErrInvalidUserData)
}

func TestValidatePropertyFilter(t *testing.T) {
	v := NewValidationUtil()

	assert.NoError(t, v.ValidatePropertyFilter(model.PropertyFilter{MinPrice: 100, MaxPrice: 200}))
	assert.ErrorIs(t, v.ValidatePropertyFilter(model.PropertyFilter{MinPrice: 200, MaxPrice: 100}), echo_errors.ErrInvalidSearchFilter)
	assert.ErrorIs(t, v.ValidatePropertyFilter(model.PropertyFilter{MinPrice: 200, MaxPrice: 200}), echo_errors.ErrInvalidSearchFilter)
	assert.ErrorIs(t, v.ValidatePropertyFilter(model.PropertyFilter{Limit: 101}), echo_errors.ErrInvalidSearchFilter)
	assert.ErrorIs(t, v.ValidatePropertyFilter(model.PropertyFilter{Status: "DRAFT"}), echo_errors.ErrInvalidSearchFilter)
}

func TestValidateUploadBatch(t *testing.T) {
	v := NewValidationUtil()
	file := model.UploadedFile{Filename: "a.png", Size: 10, Content: make([]byte, 10)}

	assert.ErrorIs(t, v.ValidateUploadBatch(nil, 10, 100), echo_errors.ErrNoFilesUploaded)
	assert.NoError(t, v.ValidateUploadBatch([]model.UploadedFile{file}, 10, 100))
	assert.ErrorIs(t, v.ValidateUploadBatch([]model.UploadedFile{file, file}, 1, 100), echo_errors.ErrTooManyFiles)
	assert.ErrorIs(t, v.ValidateUploadBatch([]model.UploadedFile{file}, 10, 5), echo_errors.ErrFileTooLarge)
}

// api/util/validation_util.go

package util

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
)

func init() {
	// gin validates request bodies with its own engine; it must know the custom rules too.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		mustRegisterRules(v)
	}
}

var customRules = map[string]validator.Func{
	"notfutureyear": notFutureYear,
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register validation %q: %w", tag, err)
		}
	}
	return nil
}

// mustRegisterRules panics: a rule that cannot be registered is a programming error.
func mustRegisterRules(v *validator.Validate) {
	if err := registerRules(v, customRules); err != nil {
		panic(err)
	}
}

// notFutureYear rejects years after the current calendar year.
func notFutureYear(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= int64(time.Now().Year())
}

// ValidationUtil checks request payloads on the service side, so callers
// that bypass HTTP binding (seeding, internal jobs) get the same rules.
type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	mustRegisterRules(v)
	return &ValidationUtil{validate: v}
}

func (v *ValidationUtil) ValidateRegistration(req model.RegisterRequest) error {
	if err := v.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInvalidUserData, err)
	}
	return nil
}

func (v *ValidationUtil) ValidateUserPatch(patch model.UserPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: at least one field must be provided", echo_errors.ErrInvalidUserData)
	}
	if err := v.validate.Struct(patch); err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInvalidUserData, err)
	}
	return nil
}

func (v *ValidationUtil) ValidateCreateProperty(req model.CreatePropertyRequest) error {
	if err := v.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInvalidPropertyData, err)
	}
	return nil
}

func (v *ValidationUtil) ValidatePropertyPatch(patch model.PropertyPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("%w: at least one field must be provided", echo_errors.ErrInvalidPropertyData)
	}
	if err := v.validate.Struct(patch); err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInvalidPropertyData, err)
	}
	return nil
}

func (v *ValidationUtil) ValidatePropertyFilter(filter model.PropertyFilter) error {
	if err := v.validate.Struct(filter); err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInvalidSearchFilter, err)
	}
	if filter.MinPrice > 0 && filter.MaxPrice > 0 && filter.MaxPrice <= filter.MinPrice {
		return fmt.Errorf("%w: maxPrice must be greater than minPrice", echo_errors.ErrInvalidSearchFilter)
	}
	return nil
}

func (v *ValidationUtil) ValidateSavedSearch(req model.CreateSavedSearchRequest) error {
	if err := v.validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInvalidSavedSearchData, err)
	}
	if err := v.ValidatePropertyFilter(req.Criteria); err != nil {
		return fmt.Errorf("%w: %v", echo_errors.ErrInvalidSavedSearchData, err)
	}
	return nil
}

// ValidateUploadForm reports an unreadable form and parses the optional
// isMain field.
func (v *ValidationUtil) ValidateUploadForm(upload model.MediaUpload) (bool, error) {
	if upload.FormErr != nil {
		if errors.Is(upload.FormErr, echo_errors.ErrInvalidMediaData) {
			return false, upload.FormErr
		}
		return false, fmt.Errorf("%w: %v", echo_errors.ErrInvalidMediaData, upload.FormErr)
	}
	if upload.IsMain == "" {
		return false, nil
	}
	isMain, err := strconv.ParseBool(upload.IsMain)
	if err != nil {
		return false, fmt.Errorf("%w: invalid isMain value %q", echo_errors.ErrInvalidMediaData, upload.IsMain)
	}
	return isMain, nil
}

func (v *ValidationUtil) ValidateMediaType(mediaType model.MediaType) error {
	if !mediaType.Valid() {
		return fmt.Errorf("%w: unknown media type %q", echo_errors.ErrInvalidMediaData, mediaType)
	}
	return nil
}

// ValidateUploadBatch checks the number of files and each declared size.
func (v *ValidationUtil) ValidateUploadBatch(files []model.UploadedFile, maxFiles int, maxFileSize int64) error {
	if len(files) == 0 {
		return echo_errors.ErrNoFilesUploaded
	}
	if len(files) > maxFiles {
		return fmt.Errorf("%w: at most %d files per upload", echo_errors.ErrTooManyFiles, maxFiles)
	}
	for _, f := range files {
		if f.Size > maxFileSize || int64(len(f.Content)) > maxFileSize {
			return fmt.Errorf("%w: %s exceeds %d bytes", echo_errors.ErrFileTooLarge, f.Filename, maxFileSize)
		}
	}
	return nil
}

// api/util/media_store.go

package util

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
)

const maxConcurrentWrites = 4

// allowedMediaTypes maps the accepted content types to the stored extension.
var allowedMediaTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/gif":       ".gif",
	"application/pdf": ".pdf",
}

// StoredFile is a file written by the MediaStore. Path is absolute within
// the store and starts with "/".
type StoredFile struct {
	Path     string
	URL      string
	MIMEType string
}

// MediaStore keeps uploaded media on an afero file system rooted at the
// upload directory.
type MediaStore struct {
	fs      afero.Fs
	baseURL string
}

func NewMediaStore(fs afero.Fs, baseURL string) *MediaStore {
	return &MediaStore{fs: fs, baseURL: strings.TrimRight(baseURL, "/")}
}

// NewDiskMediaStore roots the store at dir on the local disk.
func NewDiskMediaStore(dir, baseURL string) (*MediaStore, error) {
	osFs := afero.NewOsFs()
	if err := osFs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return NewMediaStore(afero.NewBasePathFs(osFs, dir), baseURL), nil
}

// DetectType sniffs the content and returns its MIME type when it is one of
// the accepted upload types.
func (s *MediaStore) DetectType(content []byte) (string, error) {
	detected := mimetype.Detect(content)
	for mime := range allowedMediaTypes {
		if detected.Is(mime) {
			return mime, nil
		}
	}
	return "", fmt.Errorf("%w: %s", echo_errors.ErrInvalidFileType, detected.String())
}

// SaveAll writes the files of one listing concurrently. On failure every
// file already written is removed and the first error is returned.
func (s *MediaStore) SaveAll(propertyID int64, files []model.UploadedFile) ([]StoredFile, error) {
	stored := make([]StoredFile, len(files))
	p := pool.New().WithErrors().WithMaxGoroutines(maxConcurrentWrites)
	for i, file := range files {
		p.Go(func() error {
			saved, err := s.save(propertyID, file)
			if err != nil {
				return err
			}
			stored[i] = saved
			return nil
		})
	}

	if err := p.Wait(); err != nil {
		var written []string
		for _, f := range stored {
			if f.Path != "" {
				written = append(written, f.Path)
			}
		}
		if cleanupErr := s.RemoveAll(written); cleanupErr != nil {
			logger.Warn("Failed to remove partially written upload", zap.Error(cleanupErr))
		}
		return nil, err
	}
	return stored, nil
}

func (s *MediaStore) save(propertyID int64, file model.UploadedFile) (StoredFile, error) {
	mime, err := s.DetectType(file.Content)
	if err != nil {
		return StoredFile{}, err
	}

	dir := path.Join("/", "properties", strconv.FormatInt(propertyID, 10))
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return StoredFile{}, fmt.Errorf("failed to create media directory: %w", err)
	}

	filePath := path.Join(dir, uuid.NewString()+allowedMediaTypes[mime])
	if err := afero.WriteFile(s.fs, filePath, file.Content, 0o644); err != nil {
		return StoredFile{}, fmt.Errorf("failed to write media file: %w", err)
	}

	logger.Debug("Media file stored",
		zap.String("path", filePath),
		zap.String("original", file.Filename),
		zap.String("mime", mime))
	return StoredFile{Path: filePath, URL: s.URL(filePath), MIMEType: mime}, nil
}

// Remove deletes one stored file. A file that is already gone is not an error.
func (s *MediaStore) Remove(filePath string) error {
	if err := s.fs.Remove(filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove media file %s: %w", filePath, err)
	}
	return nil
}

func (s *MediaStore) RemoveAll(paths []string) error {
	var errs []error
	for _, p := range paths {
		if err := s.Remove(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *MediaStore) Exists(filePath string) bool {
	ok, err := afero.Exists(s.fs, filePath)
	return err == nil && ok
}

// URL is the public address of a stored file under /uploads.
func (s *MediaStore) URL(filePath string) string {
	return s.baseURL + "/uploads" + filePath
}

// FileSystem exposes the store for static serving.
func (s *MediaStore) FileSystem() http.FileSystem {
	return afero.NewHttpFs(s.fs).Dir("/")
}

// Package upload stores point images on the local filesystem.
//
// Files are written to the configured upload directory under a generated
// name (`<uuid>-<sanitized original name>`) and are later served by the
// router's static handler at /uploads/<name>. The same directory serves the
// item icons bundled with the binary.
//
// The content type is sniffed from the first bytes of the file with
// gabriel-vasile/mimetype; the client supplied Content-Type header is
// never trusted.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/deppfellow/ecoleta/internal/config"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrUnsupportedType matches every *UnsupportedTypeError.
var ErrUnsupportedType = errors.New("unsupported image type")

// UnsupportedTypeError is returned by Save when the sniffed content type is
// not in the allowed list.
type UnsupportedTypeError struct {
	Detected string
	Allowed  []string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedType, e.Detected)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// ErrEmptyFile is returned by Save when the upload has no content.
var ErrEmptyFile = errors.New("empty image")

// sniffLen is how many leading bytes are handed to the detector.
const sniffLen = 3072

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// Storage writes and removes images inside a single directory.
type Storage struct {
	dir     string
	allowed []string
	logger  *zerolog.Logger
}

// NewStorage ensures the upload directory exists, installs the item icons
// it is missing and returns a Storage rooted at it.
func NewStorage(cfg config.UploadConfig, logger *zerolog.Logger) (*Storage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", cfg.Dir, err)
	}

	s := &Storage{
		dir:     cfg.Dir,
		allowed: cfg.AllowedTypes,
		logger:  logger,
	}

	if err := s.installItemIcons(); err != nil {
		return nil, err
	}

	return s, nil
}

// Dir returns the directory images are written to.
func (s *Storage) Dir() string {
	return s.dir
}

// Save sniffs the content of r, rejects anything outside the allowed types
// and writes it under a fresh name. It returns the stored filename.
func (s *Storage) Save(originalName string, r io.Reader) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	head = head[:n]
	if n == 0 {
		return "", ErrEmptyFile
	}

	mtype := mimetype.Detect(head)
	if !s.isAllowed(mtype) {
		return "", &UnsupportedTypeError{Detected: mtype.String(), Allowed: s.allowed}
	}

	name := GenerateName(originalName, mtype.Extension())
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", name, err)
	}

	_, copyErr := io.Copy(f, io.MultiReader(bytes.NewReader(head), r))
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("failed to write %s: %w", name, err)
	}

	s.logger.Debug().
		Str("image", name).
		Str("content_type", mtype.String()).
		Msg("stored image")

	return name, nil
}

// Remove deletes a stored image. Removing a file that does not exist is
// not an error.
func (s *Storage) Remove(name string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove %s: %w", name, err)
	}
	return nil
}

func (s *Storage) isAllowed(mtype *mimetype.MIME) bool {
	for _, allowed := range s.allowed {
		if mtype.Is(allowed) {
			return true
		}
	}
	return false
}

// GenerateName builds `<uuid>-<name>` where name is the base of
// originalName reduced to [a-zA-Z0-9._-]. When nothing usable remains the
// name becomes "image" plus ext.
func GenerateName(originalName, ext string) string {
	base := filepath.Base(strings.ReplaceAll(originalName, `\`, "/"))
	base = strings.Trim(unsafeChars.ReplaceAllString(base, "-"), "-.")
	if base == "" {
		base = "image" + ext
	}
	return uuid.NewString() + "-" + base
}

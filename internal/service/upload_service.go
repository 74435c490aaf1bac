package service

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/mystfest/registration-backend/pkg/storage"
	"github.com/mystfest/registration-backend/pkg/utils"
	"go.uber.org/zap"
)

const maxDocumentSize = 5 << 20 // 5 MB

var (
	ErrDocumentTooLarge    = errors.New("document exceeds the 5MB limit")
	ErrUnsupportedDocument = errors.New("only PDF, JPEG, PNG and WebP documents are accepted")
)

var documentContentTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
}

// UploadService stores identity documents and hands back the public URL the
// profile and participant forms reference.
type UploadService struct {
	storage storage.DocumentStorage
	logger  *zap.Logger
}

func NewUploadService(storage storage.DocumentStorage, logger *zap.Logger) *UploadService {
	return &UploadService{
		storage: storage,
		logger:  logger,
	}
}

func (s *UploadService) UploadDocument(userID, filename, contentType string, src io.Reader, size int64) (string, error) {
	if size > maxDocumentSize {
		return "", ErrDocumentTooLarge
	}
	if !documentContentTypes[strings.ToLower(contentType)] {
		return "", ErrUnsupportedDocument
	}

	key := "documents/" + userID + "/" + utils.GenerateRandomString(16) + filepath.Ext(filename)
	if err := s.storage.Upload(key, src, size, contentType); err != nil {
		return "", err
	}

	s.logger.Info("document uploaded",
		zap.String("user_id", userID),
		zap.String("key", key))

	return s.storage.PublicURL(key), nil
}

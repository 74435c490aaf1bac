package storage

import "io"

type DocumentStorage interface {
	Upload(key string, src io.Reader, size int64, contentType string) error
	Delete(key string) error
	PublicURL(key string) string
}

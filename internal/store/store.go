// Package store persists fetched images, either into a content-addressed
// cache or to an explicit path in a requested format.
package store

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/genricoloni/wallfetch/internal/processor"
	"go.uber.org/zap"
)

// Storage layout:
//
//	cacheDir/
//	  ab/abcdef0123....jpg  (sha256 of the bytes, git-style sharding)
//
// Identical bytes always land on the same path.
type FileStore struct {
	logger    *zap.Logger
	cacheDir  string
	converter *processor.Converter
}

// NewFileStore creates a store rooted at the configured cache directory.
// The directory is created lazily on first write.
func NewFileStore(logger *zap.Logger, cfg domain.Config, converter *processor.Converter) *FileStore {
	return &FileStore{
		logger:    logger,
		cacheDir:  cfg.GetCacheDir(),
		converter: converter,
	}
}

// Cache stores the image under its content hash and returns the path.
func (s *FileStore) Cache(img *domain.Image) (string, error) {
	if img == nil || len(img.Data) == 0 {
		return "", &domain.Error{Kind: domain.KindPersistenceFailed, Subject: s.cacheDir, Message: "refusing to cache an empty image"}
	}

	hash := ContentHash(img.Data)
	path := s.objectPath(hash, img.Extension())

	if _, err := os.Stat(path); err == nil {
		s.logger.Debug("Image already cached", zap.String("path", path))
		return path, nil
	}

	if err := writeAtomic(path, img.Data, 0644); err != nil {
		return "", domain.NewError(domain.KindPersistenceFailed, path, err)
	}

	s.logger.Info("Image cached",
		zap.String("path", path),
		zap.Int("size", len(img.Data)),
		zap.String("format", img.Format))
	return path, nil
}

// SaveToFormat writes the image to path, converting it when the extension
// asks for a different format. Existing files are overwritten.
func (s *FileStore) SaveToFormat(img *domain.Image, path string) (string, error) {
	if img == nil || len(img.Data) == 0 {
		return "", &domain.Error{Kind: domain.KindPersistenceFailed, Subject: path, Message: "refusing to save an empty image"}
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", domain.NewError(domain.KindPersistenceFailed, path, err)
	}

	target, err := processor.FormatFromPath(absPath)
	if err != nil {
		return "", domain.NewError(domain.KindPersistenceFailed, path, err)
	}

	data, err := s.converter.Convert(context.Background(), img.Data, img.Format, target)
	if err != nil {
		return "", domain.NewError(domain.KindPersistenceFailed, path, err)
	}

	if err := writeAtomic(absPath, data, 0644); err != nil {
		return "", domain.NewError(domain.KindPersistenceFailed, path, err)
	}

	// Resolve symlinks in parent directories, the file itself now exists
	if resolved, err := filepath.EvalSymlinks(absPath); err == nil {
		absPath = resolved
	}

	s.logger.Info("Image saved",
		zap.String("path", absPath),
		zap.String("format", processor.FormatName(target)),
		zap.Int("size", len(data)))
	return absPath, nil
}

// Dir returns the cache root
func (s *FileStore) Dir() string {
	return s.cacheDir
}

// ContentHash returns the hex sha256 of data
func ContentHash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// objectPath returns the filesystem path for a content hash.
func (s *FileStore) objectPath(hash, ext string) string {
	name := fmt.Sprintf("%s.%s", hash, ext)
	if len(hash) < 2 {
		return filepath.Join(s.cacheDir, name)
	}
	return filepath.Join(s.cacheDir, hash[:2], name)
}

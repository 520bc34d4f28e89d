package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/ports"

	"go.uber.org/zap"
)

var _ ports.DocumentStorage = (*LocalDocumentStorage)(nil)

var ErrStorageKeyEscapesRoot = errors.New("storage key escapes the storage root")

// LocalDocumentStorage writes documents under a directory served at baseURL.
type LocalDocumentStorage struct {
	root    string
	baseURL string
	logger  *zap.Logger
}

func NewLocalDocumentStorage(root, baseURL string, logger *zap.Logger) (*LocalDocumentStorage, error) {
	if root == "" {
		return nil, errors.New("storage root is required")
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}

	return &LocalDocumentStorage{
		root:    root,
		baseURL: strings.TrimSuffix(baseURL, "/"),
		logger:  logger.Named("storage"),
	}, nil
}

func (s *LocalDocumentStorage) Store(_ context.Context, key, _ string, body io.Reader) (string, error) {
	ref, full, err := s.resolve(key)
	if err != nil {
		return "", err
	}

	if err = os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return "", fmt.Errorf("create folder for %s: %w", ref, err)
	}

	file, err := os.Create(full)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", ref, err)
	}

	if _, err = io.Copy(file, body); err != nil {
		_ = file.Close()
		_ = os.Remove(full)
		return "", fmt.Errorf("write %s: %w", ref, err)
	}
	if err = file.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", ref, err)
	}

	return ref, nil
}

func (s *LocalDocumentStorage) URLFor(_ context.Context, ref string) (string, error) {
	ref, _, err := s.resolve(ref)
	if err != nil {
		return "", err
	}
	return s.baseURL + "/" + (&url.URL{Path: ref}).EscapedPath(), nil
}

func (s *LocalDocumentStorage) Delete(_ context.Context, ref string) error {
	ref, full, err := s.resolve(ref)
	if err != nil {
		return err
	}

	if err = os.Remove(full); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", ref, err)
	}
	s.logger.Debug("document deleted", zap.String("ref", ref))
	return nil
}

// resolve cleans the key into a slash-separated reference and its path on disk.
func (s *LocalDocumentStorage) resolve(key string) (string, string, error) {
	ref := strings.TrimPrefix(path.Clean("/"+key), "/")
	if ref == "" {
		return "", "", ErrStorageKeyIsEmpty
	}
	if strings.HasPrefix(key, "..") || strings.Contains(key, "/../") {
		return "", "", ErrStorageKeyEscapesRoot
	}
	return ref, filepath.Join(s.root, filepath.FromSlash(ref)), nil
}

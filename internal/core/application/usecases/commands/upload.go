package commands

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"

	"github.com/Keloce-2005/Back-office/internal/core/domain/model/kernel"
	"github.com/Keloce-2005/Back-office/internal/core/ports"
	"github.com/Keloce-2005/Back-office/internal/pkg/errs"

	"go.uber.org/zap"
)

const storageCollaborator = "document storage"

var ErrUploadIsEmpty = errs.NewValueIsRequiredError("file")

// Upload is a file received from a client.
type Upload struct {
	FileName    string
	ContentType string
	Body        io.Reader
}

func (u Upload) validate() error {
	if u.Body == nil || strings.TrimSpace(u.FileName) == "" {
		return ErrUploadIsEmpty
	}
	return nil
}

// storageKey builds "<folder>/<owner>/<id><ext>" so two uploads never collide.
func storageKey(folder string, ownerID kernel.UUID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return path.Join(folder, ownerID.String(), kernel.NewUUID().String()+ext)
}

// storeUpload writes the upload and wraps storage failures.
func storeUpload(ctx context.Context, storage ports.DocumentStorage, key string, u Upload) (string, error) {
	ref, err := storage.Store(ctx, key, u.ContentType, u.Body)
	if err != nil {
		return "", errs.NewExternalCollaboratorError(storageCollaborator, err)
	}
	return ref, nil
}

// discardBlobs removes stored files without failing the caller.
func discardBlobs(ctx context.Context, storage ports.DocumentStorage, logger *zap.Logger, refs ...string) {
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if err := storage.Delete(ctx, ref); err != nil {
			logger.Warn("failed to delete stored document", zap.String("ref", ref), zap.Error(err))
		}
	}
}

// isNotFound reports whether err is a missing entity.
func isNotFound(err error) bool {
	return errors.Is(err, errs.ErrObjectNotFound)
}

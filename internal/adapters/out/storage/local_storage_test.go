package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLocalStorage(t *testing.T) (*LocalDocumentStorage, string) {
	t.Helper()
	root := t.TempDir()
	s, err := NewLocalDocumentStorage(root, "http://localhost:8080/media/", zap.NewNop())
	require.NoError(t, err)
	return s, root
}

func TestLocalDocumentStorage_StoreURLDelete(t *testing.T) {
	s, root := newLocalStorage(t)

	ref, err := s.Store(t.Context(), "/documents/42/id card.pdf", "application/pdf", strings.NewReader("%PDF"))
	require.NoError(t, err)
	assert.Equal(t, "documents/42/id card.pdf", ref)

	data, err := os.ReadFile(filepath.Join(root, "documents", "42", "id card.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data))

	url, err := s.URLFor(t.Context(), ref)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/media/documents/42/id%20card.pdf", url)

	require.NoError(t, s.Delete(t.Context(), ref))
	_, err = os.Stat(filepath.Join(root, "documents", "42", "id card.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	assert.NoError(t, s.Delete(t.Context(), ref), "deleting a missing document is not an error")
}

func TestLocalDocumentStorage_RejectsBadKeys(t *testing.T) {
	s, _ := newLocalStorage(t)

	_, err := s.Store(t.Context(), "", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrStorageKeyIsEmpty)

	_, err = s.Store(t.Context(), "../outside.txt", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrStorageKeyEscapesRoot)

	_, err = s.Store(t.Context(), "documents/../../outside.txt", "text/plain", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrStorageKeyEscapesRoot)
}

package archive_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"versync/core/archive"
	"versync/core/storage/mocks"
)

func buildArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to create entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("Failed to write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close archive: %v", err)
	}
	return buf.Bytes()
}

func writeArchiveFile(t *testing.T, entries map[string]string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "widget.war")
	if err := os.WriteFile(path, buildArchive(t, entries), 0o644); err != nil {
		t.Fatalf("Failed to write archive file: %v", err)
	}
	return path
}

func TestExtractEntryExactName(t *testing.T) {
	path := writeArchiveFile(t, map[string]string{
		"META-INF/MANIFEST.MF": "Jenkins-Version: 2.528.3\n",
		"index.html":           "<html></html>",
	})

	data, err := archive.ExtractEntry(path, "META-INF/MANIFEST.MF")
	assert.NoError(t, err)
	assert.Equal(t, "Jenkins-Version: 2.528.3\n", string(data))
}

func TestExtractEntryGlob(t *testing.T) {
	path := writeArchiveFile(t, map[string]string{
		"META-INF/MANIFEST.MF": "Jenkins-Version: 2.528.3\n",
	})

	data, err := archive.ExtractEntry(path, "META-INF/*.MF")
	assert.NoError(t, err)
	assert.Contains(t, string(data), "Jenkins-Version")
}

func TestExtractEntryNotFound(t *testing.T) {
	path := writeArchiveFile(t, map[string]string{
		"index.html": "<html></html>",
	})

	_, err := archive.ExtractEntry(path, "META-INF/MANIFEST.MF")
	assert.ErrorIs(t, err, archive.ErrNotFound)
}

func TestExtractEntryBadArchive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-zip.war")
	err := os.WriteFile(path, []byte("plain text"), 0o644)
	assert.NoError(t, err)

	_, err = archive.ExtractEntry(path, "META-INF/MANIFEST.MF")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, archive.ErrNotFound)
}

func TestExtractEntryMissingFile(t *testing.T) {
	_, err := archive.ExtractEntry(filepath.Join(t.TempDir(), "absent.war"), "*")
	assert.Error(t, err)
}

func TestExtractEntryFromObject(t *testing.T) {
	data := buildArchive(t, map[string]string{
		"META-INF/MANIFEST.MF": "Jenkins-Version: 2.528.3\n",
	})

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "releases", "widget/widget-2.528.3.war", mock.Anything).
		Return(io.NopCloser(bytes.NewReader(data)), nil)

	body, err := archive.ExtractEntryFromObject(context.Background(), client, "releases", "widget/widget-2.528.3.war", "META-INF/MANIFEST.MF")
	assert.NoError(t, err)
	assert.Equal(t, "Jenkins-Version: 2.528.3\n", string(body))
	client.AssertExpectations(t)
}

func TestExtractEntryFromObjectFetchFailure(t *testing.T) {
	boom := errors.New("bucket unreachable")

	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "releases", "widget/widget.war", mock.Anything).
		Return(nil, boom)

	_, err := archive.ExtractEntryFromObject(context.Background(), client, "releases", "widget/widget.war", "META-INF/MANIFEST.MF")
	assert.ErrorIs(t, err, boom)
}

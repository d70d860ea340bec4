package archive

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"

	"versync/core/storage"
)

// ErrNotFound reports that no entry in the archive matched the glob.
var ErrNotFound = errors.New("archive entry not found")

// ExtractEntry returns the bytes of the first entry in the archive at
// archivePath whose name matches glob. The glob is matched against the
// full slash-separated entry name with path.Match, so a literal name like
// "META-INF/MANIFEST.MF" works as an exact lookup.
func ExtractEntry(archivePath, glob string) ([]byte, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", archivePath, err)
	}
	defer zr.Close()

	return extractFirst(&zr.Reader, glob)
}

// ExtractEntryFromObject fetches the archive object from the release
// bucket and extracts the first entry matching glob. The whole archive is
// buffered in memory; product archives are tens of megabytes at most.
func ExtractEntryFromObject(ctx context.Context, client storage.Client, bucket, object, glob string) ([]byte, error) {
	reader, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("get archive %s/%s: %w", bucket, object, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read archive %s/%s: %w", bucket, object, err)
	}

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive %s/%s: %w", bucket, object, err)
	}

	return extractFirst(zr, glob)
}

func extractFirst(zr *zip.Reader, glob string) ([]byte, error) {
	for _, entry := range zr.File {
		matched, err := path.Match(glob, entry.Name)
		if err != nil {
			return nil, fmt.Errorf("bad entry glob %q: %w", glob, err)
		}
		if !matched {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("open entry %s: %w", entry.Name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("read entry %s: %w", entry.Name, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrNotFound, glob)
}

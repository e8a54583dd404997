package output

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
)

// archiveEpoch is stamped on every entry so equal file sets zip to equal bytes
var archiveEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

// WriteArchive streams the files into a zip archive in file order
func WriteArchive(w io.Writer, files []builder.GeneratedFile) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		if _, err := SafeJoin(".", f.Path); err != nil {
			return err
		}
		header := &zip.FileHeader{
			Name:     f.Path,
			Method:   zip.Deflate,
			Modified: archiveEpoch,
		}
		header.SetMode(0o644)

		entry, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("creating archive entry %s: %w", f.Path, err)
		}
		if _, err := entry.Write(f.Content); err != nil {
			return fmt.Errorf("writing archive entry %s: %w", f.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}

// Archive returns the zip archive of files as bytes
func Archive(files []builder.GeneratedFile) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteArchive(&buf, files); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

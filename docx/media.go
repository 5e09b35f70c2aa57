package docx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
)

// ErrClosed is returned when the reader's archive has already been released.
var ErrClosed = errors.New("docx reader is closed")

// MediaEntries returns the archive names of the embedded media, in archive order.
func (r *Reader) MediaEntries() ([]string, error) {
	if r.archive == nil {
		return nil, ErrClosed
	}
	return r.archive.EntriesUnder(MediaDir), nil
}

// ReadMedia returns the bytes of one media entry.
func (r *Reader) ReadMedia(name string) ([]byte, error) {
	if r.archive == nil {
		return nil, ErrClosed
	}
	rc, err := r.archive.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// ExtractMedia writes every media entry into dir, creating it if needed.
// Each file keeps its base name, so entries sharing a base name overwrite
// one another; the last one in archive order wins. The written paths are
// returned in archive order.
func (r *Reader) ExtractMedia(dir string) ([]string, error) {
	entries, err := r.MediaEntries()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating media directory: %w", err)
	}

	saved := make([]string, 0, len(entries))
	for _, name := range entries {
		dest := filepath.Join(dir, path.Base(name))
		if err := r.copyEntry(name, dest); err != nil {
			return saved, err
		}
		r.logger.Debug("extracted media", "entry", name, "path", dest)
		saved = append(saved, dest)
	}

	return saved, nil
}

// copyEntry streams one archive entry to dest.
func (r *Reader) copyEntry(name, dest string) error {
	rc, err := r.archive.Open(name)
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}

	if _, err := io.Copy(f, rc); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", dest, err)
	}
	return f.Close()
}

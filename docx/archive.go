package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// Well-known part names.
const (
	contentTypesPart = "[Content_Types].xml"
	documentPart     = "word/document.xml"
	documentRelsPart = "word/_rels/document.xml.rels"
	packageRelsPart  = "_rels/.rels"
	stylesPart       = "word/styles.xml"
	corePropsPart    = "docProps/core.xml"

	// MediaDir is the archive directory holding embedded media.
	MediaDir = "word/media/"
)

// DefaultMaxPartSize bounds the uncompressed size of any XML part read.
const DefaultMaxPartSize = 50 << 20

// ErrMissingPart is returned when a requested archive entry does not exist.
var ErrMissingPart = errors.New("missing package part")

// Archive gives named access to the entries of a ZIP package.
type Archive struct {
	zr      *zip.ReadCloser
	files   map[string]*zip.File
	maxSize uint64
}

// OpenArchive opens the ZIP file at filename.
func OpenArchive(filename string, maxPartSize int64) (*Archive, error) {
	zr, err := zip.OpenReader(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ZIP archive: %w", err)
	}

	if maxPartSize <= 0 {
		maxPartSize = DefaultMaxPartSize
	}

	a := &Archive{
		zr:      zr,
		files:   make(map[string]*zip.File, len(zr.File)),
		maxSize: uint64(maxPartSize),
	}
	for _, f := range zr.File {
		if _, dup := a.files[f.Name]; !dup {
			a.files[f.Name] = f
		}
	}

	return a, nil
}

// Close releases the underlying file. It is safe to call more than once.
func (a *Archive) Close() error {
	if a.zr != nil {
		err := a.zr.Close()
		a.zr = nil
		return err
	}
	return nil
}

// Has reports whether the archive contains an entry with the given name.
func (a *Archive) Has(name string) bool {
	_, ok := a.files[name]
	return ok
}

// Entries returns all entry names in archive order.
func (a *Archive) Entries() []string {
	if a.zr == nil {
		return nil
	}
	names := make([]string, 0, len(a.zr.File))
	for _, f := range a.zr.File {
		names = append(names, f.Name)
	}
	return names
}

// EntriesUnder returns the names of the file entries below dir, in archive order.
func (a *Archive) EntriesUnder(dir string) []string {
	var names []string
	for _, name := range a.Entries() {
		if strings.HasPrefix(name, dir) && !strings.HasSuffix(name, "/") {
			names = append(names, name)
		}
	}
	return names
}

// Read returns the content of the named entry. Entries larger than the
// configured part size limit are rejected.
func (a *Archive) Read(name string) ([]byte, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}
	if f.UncompressedSize64 > a.maxSize {
		return nil, fmt.Errorf("%s too large: %d bytes (max %d)", name, f.UncompressedSize64, a.maxSize)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, int64(a.maxSize)+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}
	if uint64(len(data)) > a.maxSize {
		return nil, fmt.Errorf("%s too large: more than %d bytes", name, a.maxSize)
	}
	return data, nil
}

// Open returns a reader for the named entry without a size limit. It is
// used for media, which is copied rather than parsed.
func (a *Archive) Open(name string) (io.ReadCloser, error) {
	f, ok := a.files[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
	}
	return f.Open()
}

// resolveTarget resolves a relationship target relative to the directory of
// the part that owns the relationship.
func resolveTarget(sourcePart, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	return path.Clean(path.Join(path.Dir(sourcePart), target))
}

// Package media identifies the images embedded in a document package.
//
// Raster formats are recognized by decoding only the image header, so the
// pixel data of large images is never decompressed. Formats Go cannot decode
// (EMF, WMF, SVG) are reported by extension with no dimensions.
package media

import (
	"bytes"
	"image"
	"path"
	"strings"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Info describes one media entry.
type Info struct {
	// Name is the entry's archive name, e.g. "word/media/image1.png".
	Name string `json:"name"`
	// Format is the decoder name ("png", "jpeg", ...) for raster images,
	// or the lower-cased file extension otherwise.
	Format string `json:"format"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Size   int    `json:"size"`
	// Raster reports whether the header was decoded.
	Raster bool `json:"raster"`
}

// Probe inspects the bytes of a media entry.
func Probe(name string, data []byte) Info {
	info := Info{
		Name:   name,
		Format: extension(name),
		Size:   len(data),
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return info
	}

	info.Format = format
	info.Width = cfg.Width
	info.Height = cfg.Height
	info.Raster = true
	return info
}

func extension(name string) string {
	ext := strings.TrimPrefix(path.Ext(name), ".")
	ext = strings.ToLower(ext)
	if ext == "jpg" {
		return "jpeg"
	}
	if ext == "tif" {
		return "tiff"
	}
	return ext
}

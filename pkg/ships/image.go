package ships

import (
	"bytes"
	"io"
	"path"
)

// Image is an immutable preview image. Every Open returns an independent
// reader, so the image can be read any number of times.
type Image struct {
	name string
	data []byte
}

// NewImage copies data into a new Image.
func NewImage(name string, data []byte) Image {
	if len(data) == 0 {
		return Image{name: name}
	}
	return Image{name: name, data: bytes.Clone(data)}
}

// Present reports whether the image has any content.
func (i Image) Present() bool {
	return len(i.data) > 0
}

// Name returns the remote file name, e.g. "zephyr.png".
func (i Image) Name() string {
	return i.name
}

// Size returns the image size in bytes.
func (i Image) Size() int {
	return len(i.data)
}

// Open returns a fresh reader over the image bytes.
func (i Image) Open() io.Reader {
	return bytes.NewReader(i.data)
}

// Bytes returns a copy of the image bytes.
func (i Image) Bytes() []byte {
	return bytes.Clone(i.data)
}

// IsImageFile reports whether name ends in .png or .jpg. The match is
// case-sensitive.
func IsImageFile(name string) bool {
	ext := path.Ext(name)
	return ext == ".png" || ext == ".jpg"
}

// PickImage returns the last image file among names, or "" if there is none.
func PickImage(names []string) string {
	picked := ""
	for _, name := range names {
		if IsImageFile(name) {
			picked = name
		}
	}
	return picked
}

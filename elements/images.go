package elements

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/rmitchellscott/cloudofficeprint/optional"
)

// Image inserts a picture: {%name}. Source is base64 image data or a URL.
type Image struct {
	base
	Source              string
	MaxWidth            optional.Option[any] // pixels or a CSS size like "5cm"
	MaxHeight           optional.Option[any]
	AltText             optional.Option[string]
	WrapText            optional.Option[string] // inline, square, top-bottom, behind or in-front
	Rotation            optional.Option[int]
	Transparency        optional.Option[any] // 0-100 or "50%"
	URL                 optional.Option[string]
	Width               optional.Option[any]
	Height              optional.Option[any]
	MaintainAspectRatio optional.Option[bool]
}

func NewImage(name, source string) *Image {
	return &Image{base: base{name}, Source: source}
}

// ImageFromRaw encodes raw image bytes.
func ImageFromRaw(name string, data []byte) *Image {
	return NewImage(name, base64.StdEncoding.EncodeToString(data))
}

// ImageFromBase64 uses already encoded image data.
func ImageFromBase64(name, data string) *Image {
	return NewImage(name, data)
}

// ImageFromFile reads and encodes a local image file.
func ImageFromFile(name, path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("elements: reading image %s: %w", path, err)
	}
	return ImageFromRaw(name, data), nil
}

// ImageFromURL lets the server download the image.
func ImageFromURL(name, url string) *Image {
	return NewImage(name, url)
}

// AsDict leaves out an empty alt text, inline wrapping and a zero rotation,
// the server's defaults.
func (i *Image) AsDict() map[string]any {
	return expand(i.name, i.Source, []suffix{
		{"_max_width", i.MaxWidth},
		{"_max_height", i.MaxHeight},
		{"_alt_text", optional.Unless(i.AltText, "")},
		{"_wrap_text", optional.Unless(i.WrapText, "inline")},
		{"_rotation", optional.Unless(i.Rotation, 0)},
		{"_transparency", i.Transparency},
		{"_url", i.URL},
		{"_width", i.Width},
		{"_height", i.Height},
		{"_maintain_aspect_ratio", i.MaintainAspectRatio},
	})
}

func (i *Image) AvailableTags() []string {
	return tagSet("{%" + i.name + "}")
}

package checks

import (
	"fmt"
	"net/url"
	"strings"
)

// ChecksImage is a named image displayed in a check run's output.
type ChecksImage struct {
	alt      string
	imageURL string
	caption  string
}

// ImageOption sets an optional field of a ChecksImage.
type ImageOption func(*ChecksImage)

// ImageCaption sets a short description shown below the image.
func ImageCaption(caption string) ImageOption {
	return func(i *ChecksImage) {
		i.caption = caption
	}
}

// NewImage creates an image reference with the given alt text and absolute
// image URL.
func NewImage(alt, imageURL string, opts ...ImageOption) (ChecksImage, error) {
	if strings.TrimSpace(alt) == "" {
		return ChecksImage{}, fmt.Errorf("image alt text: %w", ErrBlank)
	}
	if strings.TrimSpace(imageURL) == "" {
		return ChecksImage{}, fmt.Errorf("image URL: %w", ErrBlank)
	}
	u, err := url.Parse(imageURL)
	if err != nil {
		return ChecksImage{}, fmt.Errorf("parsing image URL %q: %w", imageURL, err)
	}
	if !u.IsAbs() {
		return ChecksImage{}, fmt.Errorf("%w: image URL %q", ErrNotAbsolute, imageURL)
	}

	img := ChecksImage{
		alt:      alt,
		imageURL: imageURL,
	}
	for _, opt := range opts {
		opt(&img)
	}
	return img, nil
}

// Alt returns the alternative text of the image.
func (i ChecksImage) Alt() string { return i.alt }

// URL returns the absolute URL of the image.
func (i ChecksImage) URL() string { return i.imageURL }

// Caption returns the caption of the image, empty when unset.
func (i ChecksImage) Caption() string { return i.caption }

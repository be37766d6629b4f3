package handlers

import (
	"image/color"
	"log"
	"net/http"

	"github.com/disintegration/imaging"
)

const maxPlaceholderSide = 2000

// ServePlaceholder generates a flat gray JPEG at the requested dimensions.
// The public site falls back to these before any real hero images exist.
func ServePlaceholder(w http.ResponseWriter, r *http.Request) {
	width, err := idParam(r, "width")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid placeholder width")
		return
	}
	height, err := idParam(r, "height")
	if err != nil {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Invalid placeholder height")
		return
	}
	if width == 0 || height == 0 || width > maxPlaceholderSide || height > maxPlaceholderSide {
		WriteAPIError(w, http.StatusBadRequest, CodeInvalidArgument, "Placeholder dimensions out of range")
		return
	}

	img := imaging.New(int(width), int(height), color.NRGBA{R: 0x64, G: 0x74, B: 0x8b, A: 0xff})

	w.Header().Set("Content-Type", "image/jpeg")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if err := imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(70)); err != nil {
		log.Printf("handlers: failed to encode placeholder image: %v", err)
	}
}

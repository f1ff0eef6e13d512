// Package artwork draws result artwork in the grid, as terminal images
// where the terminal supports them and as half-block text otherwise.
package artwork

import "image"

// ImageProtocol builds the escape sequences that show thumbnails.
type ImageProtocol interface {
	// Prepare encodes img and returns the sequence uploading it under id.
	Prepare(img image.Image, id uint32) (string, error)

	// Place shows image id at the 1-based (row, col) cell, sized in cells.
	// Placing again with the same placementID moves the placement.
	Place(id, placementID uint32, row, col, width, height int) string

	// Unplace removes one placement and keeps the image.
	Unplace(id, placementID uint32) string

	// Delete frees the image and its placements.
	Delete(id uint32) string

	// TargetPixelSize is the pixel size an image shown in the given cells
	// should be scaled to.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}

// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package geocode

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a place name does not resolve to any location.
var ErrNotFound = errors.New("no location found")

// Coordinate is a resolved place.
type Coordinate struct {
	Lat         float64
	Lon         float64
	DisplayName string
}

// Geocoder resolves a free-text place name to coordinates.
type Geocoder interface {
	Name() string
	Search(ctx context.Context, place string) (Coordinate, error)
}

// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package region

import (
	"context"

	"github.com/wneessen/weatherdash/internal/schema"
)

// Service is implemented by each region data source.
type Service interface {
	Name() string
	RegionInfo(ctx context.Context, id int) (schema.RegionInfo, error)
}

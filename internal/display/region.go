// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package display

import (
	"context"
	"fmt"

	"github.com/wneessen/weatherdash/internal/logger"
	"github.com/wneessen/weatherdash/internal/region"
	"github.com/wneessen/weatherdash/internal/schema"
)

// RegionDisplay shows the demographic information of a region id.
type RegionDisplay = Display[int, schema.RegionInfo]

func NewRegion(service region.Service, log *logger.Logger) *RegionDisplay {
	fetch := func(ctx context.Context, id int) (schema.RegionInfo, error) {
		info, err := service.RegionInfo(ctx, id)
		if err != nil {
			return schema.RegionInfo{}, fmt.Errorf("failed to get region info: %w", err)
		}
		return info, nil
	}
	return New[int, schema.RegionInfo]("region", fetch, log)
}

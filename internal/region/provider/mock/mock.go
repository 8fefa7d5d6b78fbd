// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package mock

import (
	"context"

	"github.com/wneessen/weatherdash/internal/schema"
)

const (
	name = "mock"

	RegionName     = "Mock Region"
	RegionPeople   = 1000000
	RegionLanguage = "English"
)

// Mock returns the same region record for every id without touching the network.
type Mock struct{}

func New() *Mock {
	return &Mock{}
}

func (m *Mock) Name() string {
	return name
}

func (m *Mock) RegionInfo(ctx context.Context, id int) (schema.RegionInfo, error) {
	if err := ctx.Err(); err != nil {
		return schema.RegionInfo{}, err
	}
	return schema.NewRegionInfo(id, RegionName, RegionPeople, RegionLanguage), nil
}

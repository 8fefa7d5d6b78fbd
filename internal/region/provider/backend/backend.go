// SPDX-FileCopyrightText: Winni Neessen <wn@neessen.dev>
//
// SPDX-License-Identifier: MIT

package backend

import (
	"context"
	"fmt"
	"strconv"

	"github.com/wneessen/weatherdash/internal/backend"
	"github.com/wneessen/weatherdash/internal/schema"
)

const name = "backend"

// Backend fetches region information from the remote region API.
type Backend struct {
	client *backend.Client
}

func New(client *backend.Client) (*Backend, error) {
	if client == nil {
		return nil, fmt.Errorf("backend client is required")
	}
	return &Backend{client: client}, nil
}

func (b *Backend) Name() string {
	return name
}

// RegionInfo requests GET {baseURL}/region/{id}.
func (b *Backend) RegionInfo(ctx context.Context, id int) (schema.RegionInfo, error) {
	var info schema.RegionInfo
	if err := b.client.Get(ctx, &info, nil, "region", strconv.Itoa(id)); err != nil {
		return info, fmt.Errorf("failed to fetch region info for id %d: %w", id, err)
	}
	return info, nil
}

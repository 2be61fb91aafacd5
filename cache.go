// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Diagrams of old versions are never asked for again, so keep them briefly
	renderCacheExpiration = 10 * time.Minute
	renderCacheCleanup    = 2 * time.Minute
)

// NewRenderCache creates a cache for rendered tree diagrams
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

// renderKey identifies one diagram of one tree version.
func renderKey(version uint64, layout string, width int) string {
	return fmt.Sprintf("%d/%s/%d", version, layout, width)
}

func CacheRender(c *cache.Cache, key string, diagram string) {
	c.Set(key, diagram, renderCacheExpiration)
}

func GetRender(c *cache.Cache, key string) (string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return "", false
	}
	return val.(string), true
}

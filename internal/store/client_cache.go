// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/MKhiriev/go-marketplace/models"
)

const (
	listKeyPrefix    = "list:"
	productKeyPrefix = "product:"
)

// memoryProductCache is a [ProductCache] on top of go-cache.
type memoryProductCache struct {
	items *cache.Cache
}

// NewProductCache returns a cache whose entries expire after ttl. A
// non-positive ttl disables caching.
func NewProductCache(ttl time.Duration) ProductCache {
	if ttl <= 0 {
		return noopProductCache{}
	}
	return &memoryProductCache{items: cache.New(ttl, 2*ttl)}
}

func (c *memoryProductCache) GetList(key string) (models.ProductPage, bool) {
	v, ok := c.items.Get(listKeyPrefix + key)
	if !ok {
		return models.ProductPage{}, false
	}
	page, ok := v.(models.ProductPage)
	return page, ok
}

func (c *memoryProductCache) SetList(key string, page models.ProductPage) {
	c.items.SetDefault(listKeyPrefix+key, page)
}

func (c *memoryProductCache) GetProduct(id int64) (models.Product, bool) {
	v, ok := c.items.Get(productKey(id))
	if !ok {
		return models.Product{}, false
	}
	product, ok := v.(models.Product)
	return product, ok
}

func (c *memoryProductCache) SetProduct(product models.Product) {
	c.items.SetDefault(productKey(product.ID), product)
}

// InvalidateProduct drops the product and every cached listing, since any
// listing may contain it.
func (c *memoryProductCache) InvalidateProduct(id int64) {
	c.items.Delete(productKey(id))
	for key := range c.items.Items() {
		if strings.HasPrefix(key, listKeyPrefix) {
			c.items.Delete(key)
		}
	}
}

func (c *memoryProductCache) InvalidateAll() {
	c.items.Flush()
}

func productKey(id int64) string {
	return productKeyPrefix + strconv.FormatInt(id, 10)
}

type noopProductCache struct{}

func (noopProductCache) GetList(string) (models.ProductPage, bool) { return models.ProductPage{}, false }
func (noopProductCache) SetList(string, models.ProductPage) {}
func (noopProductCache) GetProduct(int64) (models.Product, bool) { return models.Product{}, false }
func (noopProductCache) SetProduct(models.Product) {}
func (noopProductCache) InvalidateProduct(int64) {}
func (noopProductCache) InvalidateAll() {}

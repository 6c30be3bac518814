// cache.go

/**
 * Copyright 2025 (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	// Rendered details go stale quickly once a record is modified elsewhere
	detailCacheExpiration = 30 * time.Minute
	detailCacheCleanup    = 5 * time.Minute
)

// NewDetailCache creates a cache for rendered record details
func NewDetailCache(cfg CacheConfig) *cache.Cache {
	return cache.New(cfg.Expiration, cfg.Cleanup)
}

func detailKey(roll int) string {
	return strconv.Itoa(roll)
}

func CacheDetail(c *cache.Cache, roll int, detail string) {
	c.Set(detailKey(roll), detail, cache.DefaultExpiration)
}

func GetDetail(c *cache.Cache, roll int) string {
	val, ok := c.Get(detailKey(roll))
	if !ok {
		return ""
	}
	return val.(string)
}

// ForgetDetail drops a cached rendering after the record changed or went away
func ForgetDetail(c *cache.Cache, roll int) {
	c.Delete(detailKey(roll))
}

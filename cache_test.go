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
	"testing"
	"time"
)

func TestCacheDetailAndGetDetail(t *testing.T) {
	c := NewDetailCache(defaultConfig.Cache)
	roll := 42
	detail := "Roll Number: 42"

	// Initially, GetDetail should return an empty string for a missing roll number.
	if got := GetDetail(c, roll); got != "" {
		t.Errorf("GetDetail(%d) = %q; want empty string", roll, got)
	}

	CacheDetail(c, roll, detail)

	if got := GetDetail(c, roll); got != detail {
		t.Errorf("GetDetail(%d) = %q; want %q", roll, got, detail)
	}

	ForgetDetail(c, roll)
	if got := GetDetail(c, roll); got != "" {
		t.Errorf("after ForgetDetail, GetDetail(%d) = %q; want empty string", roll, got)
	}
}

func TestCacheExpiration(t *testing.T) {
	// Create a cache with a very short expiration time to test expiry behavior.
	c := NewDetailCache(CacheConfig{Expiration: 100 * time.Millisecond, Cleanup: 50 * time.Millisecond})
	roll := 7
	detail := "This detail should expire soon."

	CacheDetail(c, roll, detail)

	if got := GetDetail(c, roll); got != detail {
		t.Errorf("GetDetail(%d) = %q; want %q", roll, got, detail)
	}

	// Wait longer than the expiration duration.
	time.Sleep(150 * time.Millisecond)

	if got := GetDetail(c, roll); got != "" {
		t.Errorf("After expiration, GetDetail(%d) = %q; want empty string", roll, got)
	}
}

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
	"iter"
	"log"
	"strconv"

	"github.com/cybrota/roster/registry"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

const (
	seenFilterCapacity = 10000 // Expected roll numbers per session
	seenFilterFalsePos = 0.01
)

// checker is implemented by indexes that can validate their own structure.
type checker interface {
	Check() error
}

// Roster is what the shells talk to. It forwards every operation to the
// record index and keeps two side structures: a bloom filter of every roll
// number registered during the session and a cache of rendered details.
type Roster struct {
	index   registry.Index
	seen    *bloom.BloomFilter
	details *cache.Cache
	verify  bool
}

func NewRoster(index registry.Index, config *Config) *Roster {
	r := &Roster{
		index:   index,
		seen:    bloom.NewWithEstimates(seenFilterCapacity, seenFilterFalsePos),
		details: NewDetailCache(config.Cache),
		verify:  config.Shell.Verify,
	}
	for rec := range index.InOrder() {
		r.seen.AddString(strconv.Itoa(rec.Key))
	}
	return r
}

// Add registers a new student. Duplicate roll numbers are rejected by the index.
func (r *Roster) Add(rec registry.Record) error {
	if err := r.index.Insert(rec); err != nil {
		return err
	}
	r.seen.AddString(strconv.Itoa(rec.Key))
	log.Printf("Added roll number %d", rec.Key)
	return r.check("add")
}

// Find looks up a student. Roll numbers never registered in this session are
// rejected by the bloom filter without touching the tree.
func (r *Roster) Find(roll int) (registry.Record, error) {
	if !r.seen.TestString(strconv.Itoa(roll)) {
		return registry.Record{}, &registry.KeyError{Op: "find", Key: roll, Err: registry.ErrNotFound}
	}
	return r.index.Find(roll)
}

// Exists reports whether roll is currently registered.
func (r *Roster) Exists(roll int) bool {
	_, err := r.Find(roll)
	return err == nil
}

// PreviouslyRegistered reports whether roll was probably registered earlier in
// the session and has since been deleted.
func (r *Roster) PreviouslyRegistered(roll int) bool {
	if !r.seen.TestString(strconv.Itoa(roll)) {
		return false
	}
	_, err := r.index.Find(roll)
	return err != nil
}

func (r *Roster) Modify(roll int, f registry.Fields) error {
	if err := r.index.Update(roll, f); err != nil {
		return err
	}
	ForgetDetail(r.details, roll)
	log.Printf("Modified roll number %d", roll)
	return r.check("modify")
}

func (r *Roster) Delete(roll int) error {
	if err := r.index.Remove(roll); err != nil {
		return err
	}
	ForgetDetail(r.details, roll)
	log.Printf("Deleted roll number %d", roll)
	return r.check("delete")
}

// All yields every student in ascending roll number order.
func (r *Roster) All() iter.Seq[registry.Record] {
	return r.index.InOrder()
}

func (r *Roster) Len() int {
	return r.index.Len()
}

// Details returns the markdown rendering of rec, rendered at most once per
// cache lifetime. render may be nil, in which case the raw markdown is used.
func (r *Roster) Details(rec registry.Record, render func(string) (string, error)) string {
	if cached := GetDetail(r.details, rec.Key); cached != "" {
		return cached
	}

	detail := FormatMarkdown(rec)
	if render != nil {
		if rendered, err := render(detail); err == nil {
			detail = rendered
		} else {
			log.Printf("Failed to render details for roll number %d: %v", rec.Key, err)
		}
	}
	CacheDetail(r.details, rec.Key, detail)
	return detail
}

func (r *Roster) check(op string) error {
	if !r.verify {
		return nil
	}
	c, ok := r.index.(checker)
	if !ok {
		return nil
	}
	if err := c.Check(); err != nil {
		log.Printf("Index check failed after %s: %v", op, err)
		return fmt.Errorf("index check failed after %s: %w", op, err)
	}
	return nil
}

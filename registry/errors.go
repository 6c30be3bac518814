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

package registry

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateKey is returned by Insert when the roll number is already stored.
	ErrDuplicateKey = errors.New("duplicate key")
	// ErrNotFound is returned when no record has the requested roll number.
	ErrNotFound = errors.New("not found")
)

// KeyError records the operation and roll number that failed.
type KeyError struct {
	Op  string
	Key int
	Err error
}

func keyErr(op string, key int, err error) error {
	return &KeyError{Op: op, Key: key, Err: err}
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Op, e.Key, e.Err)
}

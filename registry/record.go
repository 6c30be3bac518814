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

// Scores holds the marks of the five graded subjects.
type Scores struct {
	DataStructures     int
	Mathematics        int
	DigitalElectronics int
	SignalsSystems     int
	Biology            int
}

// Total returns the sum of all five subject marks.
func (s Scores) Total() int {
	return s.DataStructures + s.Mathematics + s.DigitalElectronics + s.SignalsSystems + s.Biology
}

// Fields are the mutable parts of a Record. Update replaces all of them at once.
type Fields struct {
	Name         string
	Registration int
	Scores
}

// Record is a single student entry. Key (the roll number) never changes once
// the record is stored in a Tree.
type Record struct {
	Key int
	Fields
}

// NewRecord builds a Record from a roll number and its field values.
func NewRecord(key int, f Fields) Record {
	return Record{Key: key, Fields: f}
}

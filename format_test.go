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
	"strings"
	"testing"

	"github.com/cybrota/roster/registry"
)

func sampleRecord() registry.Record {
	return registry.NewRecord(12, registry.Fields{
		Name:         "Alan Turing",
		Registration: 1912,
		Scores: registry.Scores{
			DataStructures:     95,
			Mathematics:        99,
			DigitalElectronics: 81,
			SignalsSystems:     77,
			Biology:            64,
		},
	})
}

func TestFormatDetails(t *testing.T) {
	want := "Student Details for Roll No. 12 - Alan Turing:\n" +
		"Roll Number: 12\n" +
		"Name: Alan Turing\n" +
		"Registration Number: 1912\n" +
		"Marks in Data Structure & Algorithm: 95\n" +
		"Marks in Mathematics: 99\n" +
		"Marks in Digital Electronics: 81\n" +
		"Marks in Signal & Systems: 77\n" +
		"Marks in Biology: 64\n" +
		"Total Marks: 416\n\n"

	if got := FormatDetails(sampleRecord()); got != want {
		t.Errorf("FormatDetails mismatch.\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestFormatMarkdown(t *testing.T) {
	md := FormatMarkdown(sampleRecord())
	for _, fragment := range []string{
		"# Roll No. 12",
		"**Name:** Alan Turing",
		"| Signal & Systems | 77 |",
		"| **Total** | **416** |",
	} {
		if !strings.Contains(md, fragment) {
			t.Errorf("FormatMarkdown output missing %q:\n%s", fragment, md)
		}
	}
}

func TestSubjectsWriteThrough(t *testing.T) {
	var s registry.Scores
	for i, sub := range subjects {
		*sub.Score(&s) = i + 1
	}
	if s.Total() != 15 {
		t.Errorf("expected every subject to map to a distinct score, total = %d", s.Total())
	}
	if s.Biology != 5 || s.DataStructures != 1 {
		t.Errorf("subject order mismatch: %+v", s)
	}
}

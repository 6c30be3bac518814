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
	"strings"

	"github.com/cybrota/roster/registry"
)

// subject pairs a display label with the score it reads from and writes to.
type subject struct {
	Label string
	Score func(s *registry.Scores) *int
}

var subjects = []subject{
	{"Data Structure & Algorithm", func(s *registry.Scores) *int { return &s.DataStructures }},
	{"Mathematics", func(s *registry.Scores) *int { return &s.Mathematics }},
	{"Digital Electronics", func(s *registry.Scores) *int { return &s.DigitalElectronics }},
	{"Signal & Systems", func(s *registry.Scores) *int { return &s.SignalsSystems }},
	{"Biology", func(s *registry.Scores) *int { return &s.Biology }},
}

// FormatDetails renders every field of a record as plain text.
func FormatDetails(rec registry.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Student Details for Roll No. %d - %s:\n", rec.Key, rec.Name)
	fmt.Fprintf(&b, "Roll Number: %d\n", rec.Key)
	fmt.Fprintf(&b, "Name: %s\n", rec.Name)
	fmt.Fprintf(&b, "Registration Number: %d\n", rec.Registration)
	for _, sub := range subjects {
		fmt.Fprintf(&b, "Marks in %s: %d\n", sub.Label, *sub.Score(&rec.Scores))
	}
	fmt.Fprintf(&b, "Total Marks: %d\n\n", rec.Total())
	return b.String()
}

// FormatMarkdown renders a record as a markdown document for the browser pane.
func FormatMarkdown(rec registry.Record) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Roll No. %d\n\n", rec.Key)
	fmt.Fprintf(&b, "**Name:** %s\n\n", rec.Name)
	fmt.Fprintf(&b, "**Registration Number:** %d\n\n", rec.Registration)
	b.WriteString("| Subject | Marks |\n")
	b.WriteString("|---|---:|\n")
	for _, sub := range subjects {
		fmt.Fprintf(&b, "| %s | %d |\n", sub.Label, *sub.Score(&rec.Scores))
	}
	fmt.Fprintf(&b, "| **Total** | **%d** |\n", rec.Total())
	return b.String()
}

// FormatSummary is the one-line description used in lists.
func FormatSummary(rec registry.Record) string {
	return fmt.Sprintf("Reg %d · Total %d", rec.Registration, rec.Total())
}

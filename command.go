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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/roster/registry"
	"github.com/mattn/go-shellwords"
)

const (
	VerbAdd    = "add"
	VerbFind   = "find"
	VerbModify = "modify"
	VerbDelete = "delete"
	VerbList   = "list"
)

var errUsage = errors.New("usage")

// Command is one parsed line of the command language:
//
//	add <roll> <name> <reg> <ds> <math> <de> <ss> <bio>
//	find <roll>
//	modify <roll> <name> <reg> <ds> <math> <de> <ss> <bio>
//	delete <roll>
//	list
type Command struct {
	Verb   string
	Roll   int
	Fields registry.Fields
}

var commandUsage = map[string]string{
	VerbAdd:    "add <roll> <name> <reg> <ds> <math> <de> <ss> <bio>",
	VerbFind:   "find <roll>",
	VerbModify: "modify <roll> <name> <reg> <ds> <math> <de> <ss> <bio>",
	VerbDelete: "delete <roll>",
	VerbList:   "list",
}

// ParseCommand tokenizes line with shell quoting rules. Blank lines and lines
// starting with '#' yield a nil command.
func ParseCommand(line string) (*Command, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil, nil
	}

	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", line, err)
	}
	if len(args) == 0 {
		return nil, nil
	}

	cmd := &Command{Verb: strings.ToLower(args[0])}
	args = args[1:]

	switch cmd.Verb {
	case VerbList:
		if len(args) != 0 {
			return nil, usageErr(cmd.Verb)
		}
	case VerbFind, VerbDelete:
		if len(args) != 1 {
			return nil, usageErr(cmd.Verb)
		}
		if cmd.Roll, err = parseNumber("roll number", args[0]); err != nil {
			return nil, err
		}
	case VerbAdd, VerbModify:
		if len(args) != 3+len(subjects) {
			return nil, usageErr(cmd.Verb)
		}
		if cmd.Roll, err = parseNumber("roll number", args[0]); err != nil {
			return nil, err
		}
		cmd.Fields.Name = args[1]
		if cmd.Fields.Registration, err = parseNumber("registration number", args[2]); err != nil {
			return nil, err
		}
		for i, sub := range subjects {
			if *sub.Score(&cmd.Fields.Scores), err = parseNumber(sub.Label, args[3+i]); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("unknown command %q", cmd.Verb)
	}

	return cmd, nil
}

func usageErr(verb string) error {
	return fmt.Errorf("%w: %s", errUsage, commandUsage[verb])
}

func parseNumber(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, s)
	}
	return n, nil
}

// Exec runs cmd against the roster and writes the outcome to w.
func (r *Roster) Exec(cmd *Command, w io.Writer) error {
	switch cmd.Verb {
	case VerbAdd:
		if err := r.Add(registry.NewRecord(cmd.Roll, cmd.Fields)); err != nil {
			return err
		}
		fmt.Fprintf(w, "%sStudent successfully added!%s\n\n", Green, Reset)
	case VerbFind:
		rec, err := r.Find(cmd.Roll)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Student found:")
		fmt.Fprint(w, FormatDetails(rec))
	case VerbModify:
		if err := r.Modify(cmd.Roll, cmd.Fields); err != nil {
			return err
		}
		fmt.Fprintf(w, "%sStudent data successfully modified!%s\n\n", Green, Reset)
	case VerbDelete:
		if err := r.Delete(cmd.Roll); err != nil {
			return err
		}
		fmt.Fprintf(w, "%sStudent with Roll Number %d deleted successfully.%s\n\n", Green, cmd.Roll, Reset)
	case VerbList:
		r.WriteAll(w)
	default:
		return fmt.Errorf("unknown command %q", cmd.Verb)
	}
	return nil
}

// WriteAll prints every student in roll number order.
func (r *Roster) WriteAll(w io.Writer) {
	if r.Len() == 0 {
		fmt.Fprint(w, "No students registered.\n\n")
		return
	}
	for rec := range r.All() {
		fmt.Fprint(w, FormatDetails(rec))
	}
}

// describeError turns registry errors into the messages the shells print.
func describeError(err error) string {
	var keyErr *registry.KeyError
	if errors.As(err, &keyErr) {
		switch {
		case errors.Is(err, registry.ErrDuplicateKey):
			return fmt.Sprintf("Student with Roll Number %d already exists. Please enter a unique Roll Number.", keyErr.Key)
		case errors.Is(err, registry.ErrNotFound):
			return fmt.Sprintf("Student with Roll Number %d not found.", keyErr.Key)
		}
	}
	return err.Error()
}

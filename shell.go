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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cybrota/roster/registry"
)

const menuText = `1. Add Student
2. Search Student
3. Modify Student
4. Delete Student
5. Display All Students
6. Exit
`

// MenuShell is the numbered, prompt-driven front end.
type MenuShell struct {
	roster *Roster
	in     *bufio.Reader
	out    io.Writer
}

func NewMenuShell(r *Roster, in io.Reader, out io.Writer) *MenuShell {
	return &MenuShell{roster: r, in: bufio.NewReader(in), out: out}
}

// Run loops over the menu until the user picks Exit or input runs out.
func (s *MenuShell) Run() error {
	for {
		fmt.Fprint(s.out, menuText)
		line, err := s.prompt("Enter your choice: ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		choice, convErr := strconv.Atoi(line)
		if convErr != nil {
			choice = 0
		}

		switch choice {
		case 1:
			err = s.addStudent()
		case 2:
			err = s.searchStudent()
		case 3:
			err = s.modifyStudent()
		case 4:
			err = s.deleteStudent()
		case 5:
			s.roster.WriteAll(s.out)
		case 6:
			fmt.Fprintln(s.out, "Exiting program...")
			return nil
		default:
			fmt.Fprintf(s.out, "%sInvalid choice. Please enter a valid option.%s\n\n", Warning, Reset)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

func (s *MenuShell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptNumber keeps asking until it gets a whole number.
func (s *MenuShell) promptNumber(label string) (int, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil {
			return n, nil
		}
		fmt.Fprintf(s.out, "%sPlease enter a whole number.%s\n", Warning, Reset)
	}
}

// promptFields asks for every mutable field, each label prefixed by prefix.
func (s *MenuShell) promptFields(prefix string) (registry.Fields, error) {
	var f registry.Fields
	var err error

	if f.Name, err = s.prompt(prefix + "Name: "); err != nil {
		return f, err
	}
	f.Name = strings.TrimSpace(f.Name)
	if f.Registration, err = s.promptNumber(prefix + "Registration Number: "); err != nil {
		return f, err
	}
	for _, sub := range subjects {
		if *sub.Score(&f.Scores), err = s.promptNumber(fmt.Sprintf("%sMarks in %s: ", prefix, sub.Label)); err != nil {
			return f, err
		}
	}
	return f, nil
}

func (s *MenuShell) addStudent() error {
	roll, err := s.promptNumber("Enter Roll Number: ")
	if err != nil {
		return err
	}

	// Checked up front so the user is not asked for fields that will be thrown away.
	if s.roster.Exists(roll) {
		fmt.Fprintf(s.out, "%sStudent with Roll Number %d already exists. Please enter a unique Roll Number.%s\n\n", Error, roll, Reset)
		return nil
	}

	fields, err := s.promptFields("Enter ")
	if err != nil {
		return err
	}

	if err := s.roster.Add(registry.NewRecord(roll, fields)); err != nil {
		fmt.Fprintf(s.out, "%s%s%s\n\n", Error, describeError(err), Reset)
		return nil
	}
	fmt.Fprintf(s.out, "%sStudent successfully added!%s\n\n", Green, Reset)
	return nil
}

func (s *MenuShell) searchStudent() error {
	roll, err := s.promptNumber("Enter Roll Number to Search: ")
	if err != nil {
		return err
	}

	rec, err := s.roster.Find(roll)
	if err != nil {
		fmt.Fprintf(s.out, "%sStudent with Roll Number %d not found.%s\n", Error, roll, Reset)
		if s.roster.PreviouslyRegistered(roll) {
			fmt.Fprintf(s.out, "%sRoll Number %d was registered earlier in this session and has been deleted.%s\n", Info, roll, Reset)
		}
		fmt.Fprintln(s.out)
		return nil
	}

	fmt.Fprintln(s.out, "Student found:")
	fmt.Fprint(s.out, FormatDetails(rec))
	return nil
}

func (s *MenuShell) modifyStudent() error {
	roll, err := s.promptNumber("Enter Roll Number to Modify: ")
	if err != nil {
		return err
	}

	if !s.roster.Exists(roll) {
		fmt.Fprintf(s.out, "%sStudent with Roll No. %d not found.%s\n\n", Error, roll, Reset)
		return nil
	}

	fmt.Fprintf(s.out, "Enter updated details for Roll No. %d:\n", roll)
	fields, err := s.promptFields("")
	if err != nil {
		return err
	}

	if err := s.roster.Modify(roll, fields); err != nil {
		fmt.Fprintf(s.out, "%s%s%s\n\n", Error, describeError(err), Reset)
		return nil
	}
	fmt.Fprintf(s.out, "%sStudent data successfully modified!%s\n\n", Green, Reset)
	return nil
}

func (s *MenuShell) deleteStudent() error {
	roll, err := s.promptNumber("Enter Roll Number to Delete: ")
	if err != nil {
		return err
	}

	if err := s.roster.Delete(roll); err != nil {
		fmt.Fprintf(s.out, "%s%s%s\n\n", Error, describeError(err), Reset)
		return nil
	}
	fmt.Fprintf(s.out, "%sStudent with Roll Number %d deleted successfully.%s\n\n", Green, roll, Reset)
	return nil
}

package main

import (
	"bytes"
	"strings"
	"testing"
)

// runMenu feeds input to a fresh menu shell and returns everything it printed.
func runMenu(t *testing.T, r *Roster, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := NewMenuShell(r, strings.NewReader(input), &out).Run(); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	return out.String()
}

const addTuring = "1\n12\nAlan Turing\n1912\n95\n99\n81\n77\n64\n"

func TestMenuAddAndSearch(t *testing.T) {
	r := newTestRoster()
	out := runMenu(t, r, addTuring+"2\n12\n6\n")

	for _, want := range []string{
		"Enter Roll Number: ",
		"Enter Marks in Data Structure & Algorithm: ",
		"Student successfully added!",
		"Enter Roll Number to Search: ",
		"Student found:\n" + FormatDetails(sampleRecord()),
		"Exiting program...",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("menu output missing %q:\n%s", want, out)
		}
	}
}

func TestMenuRejectsDuplicateBeforeAskingFields(t *testing.T) {
	r := newTestRoster()
	out := runMenu(t, r, addTuring+"1\n12\n6\n")

	if !strings.Contains(out, "Student with Roll Number 12 already exists. Please enter a unique Roll Number.") {
		t.Errorf("missing duplicate message:\n%s", out)
	}
	if n := strings.Count(out, "Enter Name: "); n != 1 {
		t.Errorf("name prompted %d times; want 1", n)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d; want 1", r.Len())
	}
}

func TestMenuModify(t *testing.T) {
	r := newTestRoster()
	out := runMenu(t, r, addTuring+"3\n12\nAlan M. Turing\n1912\n100\n100\n100\n100\n100\n3\n99\n6\n")

	for _, want := range []string{
		"Enter updated details for Roll No. 12:",
		"Student data successfully modified!",
		"Student with Roll No. 99 not found.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("menu output missing %q:\n%s", want, out)
		}
	}

	rec, err := r.Find(12)
	if err != nil {
		t.Fatalf("Find(12) failed: %v", err)
	}
	if rec.Name != "Alan M. Turing" || rec.Total() != 500 {
		t.Errorf("record not modified: %+v", rec)
	}
}

func TestMenuDeleteAndHint(t *testing.T) {
	r := newTestRoster()
	out := runMenu(t, r, addTuring+"4\n12\n4\n12\n2\n12\n5\n6\n")

	for _, want := range []string{
		"Student with Roll Number 12 deleted successfully.",
		"Student with Roll Number 12 not found.",
		"Roll Number 12 was registered earlier in this session and has been deleted.",
		"No students registered.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("menu output missing %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "deleted successfully"); n != 1 {
		t.Errorf("delete reported success %d times; want 1", n)
	}
}

func TestMenuInvalidInput(t *testing.T) {
	r := newTestRoster()
	out := runMenu(t, r, "9\nabc\n2\nseven\n7\n6\n")

	if n := strings.Count(out, "Invalid choice. Please enter a valid option."); n != 2 {
		t.Errorf("invalid choice reported %d times; want 2:\n%s", n, out)
	}
	if !strings.Contains(out, "Please enter a whole number.") {
		t.Errorf("non-numeric roll number not re-prompted:\n%s", out)
	}
	if !strings.Contains(out, "Student with Roll Number 7 not found.") {
		t.Errorf("missing not-found message:\n%s", out)
	}
}

func TestMenuStopsAtEndOfInput(t *testing.T) {
	r := newTestRoster()
	out := runMenu(t, r, "1\n12\nAlan")

	if strings.Contains(out, "Exiting program...") {
		t.Errorf("unexpected exit message at end of input:\n%s", out)
	}
	if r.Len() != 0 {
		t.Errorf("partial record was added: Len() = %d", r.Len())
	}
}

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
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"github.com/schollz/progressbar/v3"
)

// ScriptError ties a failed command to its line in the script.
type ScriptError struct {
	Line int
	Err  error
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ScriptError) Unwrap() error {
	return e.Err
}

// ScriptResult summarizes a script run.
type ScriptResult struct {
	Executed int
	Failures []*ScriptError
}

type scriptLine struct {
	number int
	cmd    *Command
}

// RunScriptFile executes every command in the file at path.
func (r *Roster) RunScriptFile(path string, out io.Writer, showProgress bool) (*ScriptResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open script: %w", err)
	}
	defer file.Close()

	return r.RunScript(file, out, showProgress)
}

// RunScript parses the whole script first and then executes it command by
// command. A failing command is recorded and the run continues.
func (r *Roster) RunScript(src io.Reader, out io.Writer, showProgress bool) (*ScriptResult, error) {
	result := &ScriptResult{}

	var lines []scriptLine
	scanner := bufio.NewScanner(src)
	number := 0
	for scanner.Scan() {
		number++
		cmd, err := ParseCommand(scanner.Text())
		if err != nil {
			result.Failures = append(result.Failures, &ScriptError{Line: number, Err: err})
			continue
		}
		if cmd != nil {
			lines = append(lines, scriptLine{number: number, cmd: cmd})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.NewOptions(len(lines),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("📚 Running script..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(os.Stderr, "\n✅ Script completed!\n")
			}),
		)
	}

	for _, line := range lines {
		if err := r.Exec(line.cmd, out); err != nil {
			result.Failures = append(result.Failures, &ScriptError{Line: line.number, Err: err})
			log.Printf("Script line %d failed: %v", line.number, err)
		} else {
			result.Executed++
		}
		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	slices.SortFunc(result.Failures, func(a, b *ScriptError) int {
		return a.Line - b.Line
	})

	log.Printf("Script finished. %d commands executed, %d failed", result.Executed, len(result.Failures))
	return result, nil
}

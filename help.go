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
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Roster %s**

Keep student records in a balanced search tree, keyed by roll number.
Every add and delete rebalances the tree, so lookups stay fast no matter the order records arrive in.

Built with Go %s

# 1. Shells
* **menu**: the numbered menu (add, search, modify, delete, display all, exit)
* **tui**: a full-screen browser with a command bar
* **chart**: a bar chart of each student's total marks

# 2. Command language
Used by `+"`roster run <script>`"+`, `+"`--script`"+` and the browser's command bar:

* add <roll> <name> <reg> <ds> <math> <de> <ss> <bio>
* find <roll>
* modify <roll> <name> <reg> <ds> <math> <de> <ss> <bio>
* delete <roll>
* list

Quote names with spaces: add 7 "Ada Lovelace" 1815 99 100 88 77 66

# 3. Settings
Stored in ~/.roster.yaml. Run `+"`roster settings`"+` to see them.

# Please be aware
* Records live in memory only. Use a script to load a class list at start-up.
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

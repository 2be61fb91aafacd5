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

// sessionHelp lists the shell and script commands. It is markdown that also
// reads well as plain text.
const sessionHelp = `# Commands

* insert|i|add KEYS   insert keys, duplicates are ignored
* delete|d|rm KEYS    delete keys, absent keys are ignored
* has|find KEYS       report whether each key is present
* height              height of the tree (0 when empty)
* len                 number of keys
* keys                keys in order
* min, max            smallest and largest key
* check               verify order, balance and cached heights
* print [LAYOUT]      draw the tree (auto, pyramid or sideways)
* clear               remove every key
* help                this list
* quit|exit           leave the shell

KEYS are integers or inclusive ranges such as 1..10 or 10..1.`

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avltree %s**

A self-balancing binary search tree of integer keys you can poke at from the terminal.
Every insert and delete rebalances with single or double rotations, and every diagram shows the tree exactly as it is stored.

Built with Go %s

# 1. Commands
* **build** inserts keys given as arguments or in a file and prints the tree
* **shell** opens the interactive shell (F1 shows the command reference)
* **script** runs a file of shell commands
* **stress** runs the descending/ascending stress scenario and validates after every operation
* **export** writes a YAML or JSON snapshot of the tree
* **settings** shows the configuration file, creating it when missing

# 2. Keys
* Integers, negative ones included
* Ranges like 1..100 or 100..1

# 3. Configuration
* ~/.avltree.yaml with the sections shell, stress, log and filter

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}

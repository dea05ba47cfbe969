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

// usageMarkdown is shared by the usage command and the browser help pane
func usageMarkdown() string {
	return fmt.Sprintf(`
# ordmap %s

An in-memory ordered map on an AVL tree, with rank and select in O(log n).

Built with Go %s

## Commands
* **demo** runs the classic S E A R C H E X A M P L E walkthrough
* **load FILE** prints a dataset in key order (--draw, --stats)
* **shell [FILE]** line-by-line interpreter on stdin
* **browse [FILE]** full-screen browser
* **bench** randomized insert/lookup/delete workload with invariant checks
* **settings** shows ~/.ordmap.yaml

## Shell commands
* put KEY VALUE, get KEY, del KEY, has KEY
* min, max, floor KEY, ceil KEY
* rank KEY, select N, size, height
* delmin, delmax, range LO HI, count LO HI
* print, tree, check, stats, help, quit

## Dataset files
One entry per line, either "key -> value", "key value..." or a bare
"key" whose value becomes its position. Lines starting with # are ignored.

## Browser keys
* enter runs the command typed in the prompt
* tab switches focus, f1 toggles this help, f2 toggles tree/output
* ctrl+y copies the selected key, esc quits

# License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version())
}

func getHelpMessage() string {
	result := markdown.Render(usageMarkdown(), 80, 3)
	return string(result)
}

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

 **avltree %s**

Build, inspect and replay operations on a self-balancing AVL tree of integer keys.

Built with Go %s

# 1. Commands
* **build** [keys] --file F --order in|pre|post|level --progress --copy
* **show** [keys] --file F : draw the tree sideways, right subtree on top
* **check** [keys] --file F : verify ordering, heights, sizes and balance
* **stats** [keys] --file F --markdown : size, height, min, max and rotations
* **replay** SCRIPT --watch : run an operation script, rerun on change
* **settings** : print the configuration, creating it if missing

# 2. Key files
Integers separated by spaces, newlines or commas. Text after '#' is ignored.

# 3. Scripts
One operation per line:
* insert K..., delete K..., contains K...
* traverse [in|pre|post|level], levels, show, check
* height, size, min, max, rank K, select I
* load FILE, clear

# Configuration
Settings live in ~/.avltree.yaml. Run 'avltree settings' to see them.
Colors can be changed per role under render.theme, e.g. key: "fg:green,mod:bold".

# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}

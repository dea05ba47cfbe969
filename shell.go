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
	"sort"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

const noneMarker = "(none)"

// errQuit is returned by Exec for quit/exit
var errQuit = errors.New("quit")

type shellCommand struct {
	minArgs int
	maxArgs int // -1 for no limit
	usage   string
	summary string
	run     func(sh *Shell, args []string) error
}

var shellCommands map[string]shellCommand

func init() {
	// assigned here because "help" reads the table itself
	shellCommands = map[string]shellCommand{
		"put":    {2, -1, "put KEY VALUE...", "insert or overwrite a key", shPut},
		"get":    {1, 1, "get KEY", "print the value of a key", shGet},
		"del":    {1, 1, "del KEY", "delete a key", shDel},
		"has":    {1, 1, "has KEY", "report whether a key is present", shHas},
		"min":    {0, 0, "min", "smallest key", shMin},
		"max":    {0, 0, "max", "largest key", shMax},
		"floor":  {1, 1, "floor KEY", "largest key <= KEY", shFloor},
		"ceil":   {1, 1, "ceil KEY", "smallest key >= KEY", shCeil},
		"rank":   {1, 1, "rank KEY", "number of keys < KEY", shRank},
		"select": {1, 1, "select N", "key at 0-based position N", shSelect},
		"size":   {0, 0, "size", "number of keys", shSize},
		"height": {0, 0, "height", "height of the tree", shHeight},
		"delmin": {0, 0, "delmin", "delete the smallest key", shDelMin},
		"delmax": {0, 0, "delmax", "delete the largest key", shDelMax},
		"range":  {2, 2, "range LO HI", "entries with LO <= key < HI", shRange},
		"count":  {2, 2, "count LO HI", "number of keys with LO <= key < HI", shCount},
		"print":  {0, 0, "print", "all entries in order", shPrint},
		"tree":   {0, 0, "tree", "draw the tree", shTree},
		"check":  {0, 0, "check", "verify the tree invariants", shCheck},
		"stats":  {0, 0, "stats", "tree and lookup statistics", shStats},
		"help":   {0, 0, "help", "list commands", shHelp},
		"quit":   {0, 0, "quit", "leave the shell", shQuit},
		"exit":   {0, 0, "exit", "leave the shell", shQuit},
	}
}

// Shell interprets one command per line against a Store
type Shell struct {
	store *Store
	out   io.Writer
}

func NewShell(store *Store, out io.Writer) *Shell {
	return &Shell{store: store, out: out}
}

// Exec runs a single command line. It returns errQuit for quit/exit.
func (sh *Shell) Exec(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return fmt.Errorf("cannot parse %q: %v", line, err)
	}
	if len(args) == 0 {
		return nil
	}

	name := strings.ToLower(args[0])
	cmd, ok := shellCommands[name]
	if !ok {
		return fmt.Errorf("unknown command %q, try help", args[0])
	}
	args = args[1:]
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return fmt.Errorf("usage: %s", cmd.usage)
	}
	return cmd.run(sh, args)
}

// Run reads commands until EOF or quit. Command errors are reported
// inline and do not stop the loop.
func (sh *Shell) Run(in io.Reader, prompt string) error {
	scanner := bufio.NewScanner(in)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for {
		if prompt != "" {
			fmt.Fprint(sh.out, prompt)
		}
		if !scanner.Scan() {
			break
		}
		err := sh.Exec(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(sh.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (sh *Shell) println(a ...any) {
	fmt.Fprintln(sh.out, a...)
}

func shPut(sh *Shell, args []string) error {
	if err := sh.store.Put(args[0], strings.Join(args[1:], " ")); err != nil {
		return err
	}
	sh.println("ok")
	return nil
}

func shGet(sh *Shell, args []string) error {
	value, err := sh.store.Get(args[0])
	if err != nil {
		return err
	}
	sh.println(value)
	return nil
}

func shDel(sh *Shell, args []string) error {
	if err := sh.store.Delete(args[0]); err != nil {
		return err
	}
	sh.println("ok")
	return nil
}

func shHas(sh *Shell, args []string) error {
	sh.println(sh.store.Tree().Contains(args[0]))
	return nil
}

func shMin(sh *Shell, args []string) error {
	key, err := sh.store.Tree().Min()
	if err != nil {
		return err
	}
	sh.println(key)
	return nil
}

func shMax(sh *Shell, args []string) error {
	key, err := sh.store.Tree().Max()
	if err != nil {
		return err
	}
	sh.println(key)
	return nil
}

func printOptional(sh *Shell, key string, ok bool) {
	if !ok {
		sh.println(noneMarker)
		return
	}
	sh.println(key)
}

func shFloor(sh *Shell, args []string) error {
	key, ok := sh.store.Tree().Floor(args[0])
	printOptional(sh, key, ok)
	return nil
}

func shCeil(sh *Shell, args []string) error {
	key, ok := sh.store.Tree().Ceiling(args[0])
	printOptional(sh, key, ok)
	return nil
}

func shRank(sh *Shell, args []string) error {
	sh.println(sh.store.Tree().Rank(args[0]))
	return nil
}

func shSelect(sh *Shell, args []string) error {
	k, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("select: %q is not a number", args[0])
	}
	key, ok := sh.store.Tree().Select(k)
	printOptional(sh, key, ok)
	return nil
}

func shSize(sh *Shell, args []string) error {
	sh.println(sh.store.Tree().Size())
	return nil
}

func shHeight(sh *Shell, args []string) error {
	sh.println(sh.store.Tree().Height())
	return nil
}

func shDelMin(sh *Shell, args []string) error {
	if err := sh.store.DeleteMin(); err != nil {
		return err
	}
	sh.println("ok")
	return nil
}

func shDelMax(sh *Shell, args []string) error {
	if err := sh.store.DeleteMax(); err != nil {
		return err
	}
	sh.println("ok")
	return nil
}

func shRange(sh *Shell, args []string) error {
	for _, e := range sh.store.Tree().Range(args[0], args[1]) {
		fmt.Fprintf(sh.out, "%s -> %s\n", e.Key, e.Value)
	}
	return nil
}

func shCount(sh *Shell, args []string) error {
	sh.println(sh.store.Tree().RangeCount(args[0], args[1]))
	return nil
}

func shPrint(sh *Shell, args []string) error {
	return sh.store.Tree().Print(sh.out)
}

func shTree(sh *Shell, args []string) error {
	if sh.store.Tree().IsEmpty() {
		sh.println("(empty)")
		return nil
	}
	_, err := sh.store.Tree().Draw(sh.out, true)
	return err
}

func shCheck(sh *Shell, args []string) error {
	if err := sh.store.Tree().Check(); err != nil {
		return err
	}
	sh.println("ok")
	return nil
}

func shStats(sh *Shell, args []string) error {
	sh.println(renderStats(sh.store))
	return nil
}

func shHelp(sh *Shell, args []string) error {
	names := make([]string, 0, len(shellCommands))
	for name := range shellCommands {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd := shellCommands[name]
		fmt.Fprintf(sh.out, "  %-18s %s\n", cmd.usage, cmd.summary)
	}
	return nil
}

func shQuit(sh *Shell, args []string) error {
	return errQuit
}

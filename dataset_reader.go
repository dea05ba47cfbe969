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
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// DatasetEntry is one key/value line of a dataset file
type DatasetEntry struct {
	Key   string
	Value string
}

const arrowSeparator = " -> "

// ReadDataset reads a dataset file. Accepted line forms:
//
//	key -> value
//	key value words...
//	key
//
// A bare key gets its 0-based entry index as value. Blank lines and
// lines starting with '#' are skipped.
func ReadDataset(path string) ([]DatasetEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("dataset file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	return parseDataset(file)
}

func parseDataset(r io.Reader) ([]DatasetEntry, error) {
	var entries []DatasetEntry

	scanner := bufio.NewScanner(r)
	// Increase buffer size for datasets with long values
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Example line: "S -> 0"
		if key, value, ok := strings.Cut(line, arrowSeparator); ok {
			entries = append(entries, DatasetEntry{Key: strings.TrimSpace(key), Value: strings.TrimSpace(value)})
			continue
		}

		// Example line: "'New York' big apple"
		words, err := shellwords.Parse(line)
		if err != nil {
			// unbalanced quotes, fall back to plain whitespace splitting
			words = strings.Fields(line)
		}
		if len(words) == 0 {
			continue
		}

		entry := DatasetEntry{Key: words[0]}
		if len(words) == 1 {
			entry.Value = strconv.Itoa(len(entries))
		} else {
			entry.Value = strings.Join(words[1:], " ")
		}
		entries = append(entries, entry)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

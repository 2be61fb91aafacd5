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
)

// maxRangeKeys limits how many keys a single a..b argument may expand to.
const maxRangeKeys = 1 << 20

// parseKeys turns arguments such as "7", "-3" or "10..1" into keys, in the
// order given. Ranges are inclusive and may count down.
func parseKeys(args []string) ([]int, error) {
	keys := []int{}
	for _, arg := range args {
		from, to, err := parseBounds(arg)
		if err != nil {
			return nil, err
		}
		if rangeSpan(from, to) >= maxRangeKeys {
			return nil, fmt.Errorf("range %q expands to more than %d keys", arg, maxRangeKeys)
		}
		step := 1
		if to < from {
			step = -1
		}
		for k := from; ; k += step {
			keys = append(keys, k)
			if k == to {
				break
			}
		}
	}
	return keys, nil
}

// parseBounds reads "a..b" as its two endpoints, in the order written. A
// single key is a range of one.
func parseBounds(arg string) (int, int, error) {
	from, to, isRange := strings.Cut(arg, "..")
	if !isRange {
		k, err := strconv.Atoi(arg)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid key %q", arg)
		}
		return k, k, nil
	}

	lo, err := strconv.Atoi(from)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range start in %q", arg)
	}
	hi, err := strconv.Atoi(to)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid range end in %q", arg)
	}
	return lo, hi, nil
}

// rangeSpan is |to-from| computed without overflow.
func rangeSpan(from, to int) uint64 {
	lo, hi := min(from, to), max(from, to)
	return uint64(hi) - uint64(lo)
}

// readKeys reads whitespace separated key arguments, one or more per line.
// Anything after '#' is a comment.
func readKeys(r io.Reader) ([]int, error) {
	var keys []int
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line, _, _ := strings.Cut(scanner.Text(), "#")
		parsed, err := parseKeys(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", lineNo, err)
		}
		keys = append(keys, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

func readKeysFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	keys, err := readKeys(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return keys, nil
}

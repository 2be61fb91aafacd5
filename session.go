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

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/render"
	"github.com/google/uuid"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
	"github.com/willf/bloom"
)

// errQuit is returned by Exec for "quit" and "exit".
var errQuit = errors.New("quit")

// Session runs text commands against one tree. It is used by the shell and
// by script mode and is not safe for concurrent use.
type Session struct {
	id      string
	tree    *avl.Tree
	seen    *bloom.BloomFilter // every key ever inserted since the last clear
	renders *cache.Cache
	version uint64 // bumped by every mutation
	layout  string
	width   int
	log     journal
}

func NewSession(cfg *Config, log journal) *Session {
	if log == nil {
		log = nopJournal{}
	}
	s := &Session{
		id:      uuid.NewString(),
		tree:    avl.New(),
		seen:    bloom.NewWithEstimates(cfg.Filter.ExpectedKeys, cfg.Filter.FalsePositiveRate),
		renders: NewRenderCache(),
		layout:  cfg.Shell.Layout,
		width:   cfg.Shell.Width,
		log:     log,
	}
	s.log.Infof("session %s started", s.id)
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) Tree() *avl.Tree { return s.tree }

// Exec runs one command line and returns its output.
func (s *Session) Exec(line string) (string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return "", fmt.Errorf("cannot parse %q: %v", line, err)
	}
	if len(args) == 0 {
		return "", nil
	}

	cmd, rest := strings.ToLower(args[0]), args[1:]
	switch cmd {
	case "insert", "i", "add":
		return s.insert(rest)
	case "delete", "d", "rm":
		return s.delete(rest)
	case "has", "find":
		return s.has(rest)
	case "height":
		return strconv.Itoa(s.tree.Height()), nil
	case "len":
		return strconv.Itoa(s.tree.Len()), nil
	case "keys":
		return s.keys(), nil
	case "min":
		k, ok := s.tree.Min()
		return emptyOr(k, ok), nil
	case "max":
		k, ok := s.tree.Max()
		return emptyOr(k, ok), nil
	case "check":
		if err := s.tree.Validate(); err != nil {
			s.log.Errorf("session %s: validation failed: %v", s.id, err)
			return "", err
		}
		return "ok", nil
	case "print":
		layout := s.layout
		if len(rest) > 0 {
			layout = rest[0]
		}
		return s.Render(layout, s.width)
	case "clear":
		s.clear()
		return "cleared", nil
	case "help":
		return sessionHelp, nil
	case "quit", "exit":
		return "", errQuit
	}
	return "", fmt.Errorf("unknown command %q (try help)", cmd)
}

func (s *Session) insert(args []string) (string, error) {
	keys, err := needKeys(args)
	if err != nil {
		return "", err
	}
	added := s.InsertKeys(keys)
	s.log.Infof("session %s: insert %d keys, %d added", s.id, len(keys), added)
	return fmt.Sprintf("inserted %d, %d duplicate(s)", added, len(keys)-added), nil
}

func (s *Session) delete(args []string) (string, error) {
	keys, err := needKeys(args)
	if err != nil {
		return "", err
	}
	removed := s.DeleteKeys(keys)
	s.log.Infof("session %s: delete %d keys, %d removed", s.id, len(keys), removed)
	return fmt.Sprintf("deleted %d, %d absent", removed, len(keys)-removed), nil
}

// InsertKeys inserts keys in order and returns how many were new.
func (s *Session) InsertKeys(keys []int) int {
	added := 0
	for _, k := range keys {
		if s.tree.Insert(k) {
			s.seen.AddString(strconv.Itoa(k))
			added++
		}
	}
	if added > 0 {
		s.version++
	}
	return added
}

// DeleteKeys deletes keys in order and returns how many were present.
func (s *Session) DeleteKeys(keys []int) int {
	removed := 0
	for _, k := range keys {
		if !s.mayHold(k) {
			continue
		}
		if s.tree.Delete(k) {
			removed++
		}
	}
	if removed > 0 {
		s.version++
	}
	return removed
}

func (s *Session) has(args []string) (string, error) {
	keys, err := needKeys(args)
	if err != nil {
		return "", err
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		found := s.mayHold(k) && s.tree.Contains(k)
		out[i] = fmt.Sprintf("%d: %v", k, found)
	}
	return strings.Join(out, "\n"), nil
}

// mayHold is false only for keys that were never inserted.
func (s *Session) mayHold(k int) bool {
	return s.seen.TestString(strconv.Itoa(k))
}

func (s *Session) keys() string {
	keys := s.tree.Keys()
	if len(keys) == 0 {
		return "(empty)"
	}
	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = strconv.Itoa(k)
	}
	return strings.Join(out, " ")
}

func (s *Session) clear() {
	s.tree.Destroy()
	s.seen.ClearAll()
	s.renders.Flush()
	s.version++
	s.log.Infof("session %s: cleared", s.id)
}

// Render draws the tree. The auto layout picks a pyramid when it fits in
// width columns and the sideways outline otherwise.
func (s *Session) Render(layout string, width int) (string, error) {
	root := s.tree.Root()
	if layout == LayoutAuto {
		layout = LayoutSideways
		if render.Fits(root, width) {
			layout = LayoutPyramid
		}
	}

	key := renderKey(s.version, layout, width)
	if diagram, ok := GetRender(s.renders, key); ok {
		return diagram, nil
	}

	var b strings.Builder
	var err error
	switch layout {
	case LayoutPyramid:
		err = render.Pyramid(&b, root)
	case LayoutSideways:
		err = render.Sideways(&b, root)
	default:
		return "", fmt.Errorf("unknown layout %q", layout)
	}
	if err != nil {
		return "", err
	}

	diagram := strings.TrimSuffix(b.String(), "\n")
	CacheRender(s.renders, key, diagram)
	return diagram, nil
}

// RunScript executes every line of r and writes each result to w. Lines
// starting with '#' are skipped. It stops at the first failing line.
func (s *Session) RunScript(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out, err := s.Exec(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if out != "" {
			if _, err := fmt.Fprintln(w, out); err != nil {
				return err
			}
		}
	}
	return scanner.Err()
}

func needKeys(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errors.New("expected at least one key")
	}
	return parseKeys(args)
}

func emptyOr(k int, ok bool) string {
	if !ok {
		return "(empty)"
	}
	return strconv.Itoa(k)
}

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
	"bytes"
	"errors"
	"strings"
	"testing"
)

func newTestSession() *Session {
	return NewSession(DefaultConfig(), nil)
}

func TestSessionExec(t *testing.T) {
	s := newTestSession()

	steps := []struct {
		line string
		want string
	}{
		{"insert 10 5 2", "inserted 3, 0 duplicate(s)"},
		{"i 5", "inserted 0, 1 duplicate(s)"},
		{"keys", "2 5 10"},
		{"len", "3"},
		{"height", "2"},
		{"min", "2"},
		{"max", "10"},
		{"has 5 7", "5: true\n7: false"},
		{"print pyramid", "    5\n   / \\\n  2  10"},
		{"print sideways", "    10\n5\n    2"},
		{"check", "ok"},
		{"rm 5 99", "deleted 1, 1 absent"},
		{"keys", "2 10"},
		{"add '20..22'", "inserted 3, 0 duplicate(s)"},
		{"find 21", "21: true"},
		{"clear", "cleared"},
		{"keys", "(empty)"},
		{"height", "0"},
		{"min", "(empty)"},
		{"print", "(empty)"},
		{"", ""},
	}

	for _, step := range steps {
		got, err := s.Exec(step.line)
		if err != nil {
			t.Fatalf("Exec(%q) error = %v", step.line, err)
		}
		if got != step.want {
			t.Errorf("Exec(%q) = %q; want %q", step.line, got, step.want)
		}
	}
}

func TestSessionExecErrors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"unknown command", "rebalance"},
		{"missing keys", "insert"},
		{"bad key", "delete five"},
		{"bad layout", "print diagonal"},
		{"unterminated quote", "insert '1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession()
			if _, err := s.Exec(tt.line); err == nil {
				t.Errorf("Exec(%q) should fail", tt.line)
			}
		})
	}
}

func TestSessionQuit(t *testing.T) {
	s := newTestSession()
	for _, line := range []string{"quit", "exit", "QUIT"} {
		if _, err := s.Exec(line); !errors.Is(err, errQuit) {
			t.Errorf("Exec(%q) error = %v; want errQuit", line, err)
		}
	}
}

func TestSessionNeverSeenKeysSkipTree(t *testing.T) {
	s := newTestSession()
	s.InsertKeys([]int{1, 2, 3})
	version := s.version

	if removed := s.DeleteKeys([]int{1000, 2000}); removed != 0 {
		t.Errorf("DeleteKeys() of unseen keys = %d; want 0", removed)
	}
	if s.version != version {
		t.Errorf("version moved from %d to %d without a mutation", version, s.version)
	}
	if s.Tree().Len() != 3 {
		t.Errorf("Len() = %d; want 3", s.Tree().Len())
	}
}

func TestSessionRenderCache(t *testing.T) {
	s := newTestSession()
	s.InsertKeys([]int{2, 1, 3})

	first, err := s.Render(LayoutPyramid, 80)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := GetRender(s.renders, renderKey(s.version, LayoutPyramid, 80)); !ok {
		t.Fatal("diagram was not cached")
	}

	s.InsertKeys([]int{4})
	second, err := s.Render(LayoutPyramid, 80)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("Render() after insert returned the stale diagram %q", first)
	}
	if !strings.Contains(second, "4") {
		t.Errorf("Render() = %q; want it to show key 4", second)
	}
}

func TestSessionRenderAutoLayout(t *testing.T) {
	s := newTestSession()
	s.InsertKeys([]int{4, 2, 6, 1, 3, 5, 7})

	narrow, err := s.Render(LayoutAuto, 11)
	if err != nil {
		t.Fatal(err)
	}
	sideways, _ := s.Render(LayoutSideways, 11)
	if narrow != sideways {
		t.Errorf("Render(auto, 11) = %q; want the sideways outline", narrow)
	}

	wide, err := s.Render(LayoutAuto, 12)
	if err != nil {
		t.Fatal(err)
	}
	pyramid, _ := s.Render(LayoutPyramid, 12)
	if wide != pyramid {
		t.Errorf("Render(auto, 12) = %q; want the pyramid", wide)
	}
}

func TestRunScript(t *testing.T) {
	script := `# build a small tree
insert 1..3

keys
quit
keys
`
	var out bytes.Buffer
	if err := newTestSession().RunScript(strings.NewReader(script), &out); err != nil {
		t.Fatalf("RunScript() error = %v", err)
	}
	want := "inserted 3, 0 duplicate(s)\n1 2 3\n"
	if out.String() != want {
		t.Errorf("RunScript() wrote %q; want %q", out.String(), want)
	}
}

func TestRunScriptStopsAtFailure(t *testing.T) {
	var out bytes.Buffer
	err := newTestSession().RunScript(strings.NewReader("insert 1\ninsert x\ninsert 2\n"), &out)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("RunScript() error = %v; want a line 2 failure", err)
	}
	if out.String() != "inserted 1, 0 duplicate(s)\n" {
		t.Errorf("RunScript() wrote %q past the failing line", out.String())
	}
}

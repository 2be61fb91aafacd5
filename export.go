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
	"io"

	"github.com/cybrota/avltree/avl"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Snapshot is the exported structure of a tree, heights as cached.
type Snapshot struct {
	ID     string        `yaml:"id" json:"id"`
	Size   int           `yaml:"size" json:"size"`
	Height int           `yaml:"height" json:"height"`
	Root   *SnapshotNode `yaml:"root" json:"root"`
}

type SnapshotNode struct {
	Key    int           `yaml:"key" json:"key"`
	Height int           `yaml:"height" json:"height"`
	Left   *SnapshotNode `yaml:"left,omitempty" json:"left,omitempty"`
	Right  *SnapshotNode `yaml:"right,omitempty" json:"right,omitempty"`
}

func TakeSnapshot(id string, t *avl.Tree) *Snapshot {
	return &Snapshot{
		ID:     id,
		Size:   t.Len(),
		Height: t.Height(),
		Root:   snapshotNode(t.Root()),
	}
}

func snapshotNode(n *avl.Node) *SnapshotNode {
	if n == nil {
		return nil
	}
	return &SnapshotNode{
		Key:    n.Key(),
		Height: n.Height(),
		Left:   snapshotNode(n.Left()),
		Right:  snapshotNode(n.Right()),
	}
}

func WriteSnapshot(w io.Writer, snap *Snapshot, format string) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(snap); err != nil {
			return fmt.Errorf("failed to encode snapshot: %v", err)
		}
		return enc.Close()
	case FormatJSON:
		data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(snap, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode snapshot: %v", err)
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}
	return fmt.Errorf("unknown format %q, want %s or %s", format, FormatYAML, FormatJSON)
}

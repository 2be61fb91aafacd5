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
	"errors"
	"fmt"
	"io"

	"github.com/cybrota/avltree/avl"
	"github.com/schollz/progressbar/v3"
)

const (
	actionInsert = "insert"
	actionDelete = "delete"
)

var (
	errMissingAfterInsert = errors.New("key missing after insert")
	errPresentAfterDelete = errors.New("key still present after delete")
)

type StressOp struct {
	Action string
	Key    int
}

// HeightSample is the tree height after operation Op, next to the AVL bound
// for the size at that point.
type HeightSample struct {
	Op     int
	Size   int
	Height int
	Bound  int
}

type StressReport struct {
	Ops         int
	Inserted    int
	Deleted     int
	FinalSize   int
	FinalHeight int
	PeakHeight  int
	Samples     []HeightSample
}

// StressError reports the first operation after which the tree was broken.
type StressError struct {
	Op     int
	Action string
	Key    int
	Err    error
}

func (e *StressError) Error() string {
	return fmt.Sprintf("operation %d (%s %d): %v", e.Op, e.Action, e.Key, e.Err)
}

func (e *StressError) Unwrap() error { return e.Err }

// stressPlan lists the operations of cfg in the order they run.
func stressPlan(cfg StressConfig) []StressOp {
	plan := make([]StressOp, 0, 1+max(0, cfg.Descending)+max(0, cfg.Ascending))
	plan = append(plan, StressOp{actionInsert, cfg.Seed})
	for i := 1; i <= cfg.Descending; i++ {
		plan = append(plan, StressOp{actionInsert, cfg.Seed - i})
	}
	for i := 1; i <= cfg.Ascending; i++ {
		plan = append(plan, StressOp{actionInsert, cfg.Seed + i})
	}
	for k := cfg.DeleteFrom; k <= cfg.DeleteTo; k++ {
		plan = append(plan, StressOp{actionDelete, k})
	}
	return plan
}

// RunStress runs the scenario and validates the whole tree after every
// single operation. Progress goes to progress unless it is nil.
func RunStress(cfg StressConfig, progress io.Writer, log journal) (*StressReport, error) {
	if log == nil {
		log = nopJournal{}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	plan := stressPlan(cfg)

	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(len(plan),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("🌳 Stressing tree..."),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)

	tree := avl.New()
	report := &StressReport{
		Ops:     len(plan),
		Samples: make([]HeightSample, 0, len(plan)),
	}

	for i, op := range plan {
		var err error
		switch op.Action {
		case actionInsert:
			if tree.Insert(op.Key) {
				report.Inserted++
			}
			if !tree.Contains(op.Key) {
				err = errMissingAfterInsert
			}
		case actionDelete:
			if tree.Delete(op.Key) {
				report.Deleted++
			}
			if tree.Contains(op.Key) {
				err = errPresentAfterDelete
			}
		}
		if err == nil {
			err = tree.Validate()
		}
		if err != nil {
			log.Errorf("stress: operation %d (%s %d) failed: %v", i, op.Action, op.Key, err)
			return report, &StressError{Op: i, Action: op.Action, Key: op.Key, Err: err}
		}

		h := tree.Height()
		report.PeakHeight = max(report.PeakHeight, h)
		report.Samples = append(report.Samples, HeightSample{
			Op:     i,
			Size:   tree.Len(),
			Height: h,
			Bound:  avl.MaxHeight(tree.Len()),
		})
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	report.FinalSize = tree.Len()
	report.FinalHeight = tree.Height()
	log.Infof("stress: %d operations, final size %d, height %d", report.Ops, report.FinalSize, report.FinalHeight)
	return report, nil
}

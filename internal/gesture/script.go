// Package gesture replays scripted drag, resize and breakpoint gestures
// against a layout store.
package gesture

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/greenbag/intervention-cli/internal/layout"
)

// Op is a gesture kind.
type Op string

// Supported ops.
const (
	OpDrag       Op = "drag"
	OpResize     Op = "resize"
	OpBreakpoint Op = "breakpoint"
	OpReset      Op = "reset"
)

// Step is one gesture. Omitted coordinates keep the item's current value.
type Step struct {
	Op         Op                `yaml:"op"`
	ID         string            `yaml:"id,omitempty"`
	X          *int              `yaml:"x,omitempty"`
	Y          *int              `yaml:"y,omitempty"`
	W          *int              `yaml:"w,omitempty"`
	H          *int              `yaml:"h,omitempty"`
	Breakpoint layout.Breakpoint `yaml:"breakpoint,omitempty"`
}

// Script is a named sequence of gestures starting at Breakpoint.
type Script struct {
	Name       string            `yaml:"name"`
	Breakpoint layout.Breakpoint `yaml:"breakpoint"`
	Steps      []Step            `yaml:"steps"`
}

// Load reads a script file. The file name stands in for a missing name.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "gesture: read script %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, eris.Wrapf(err, "gesture: load %s", path)
	}
	if s.Name == "" {
		s.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return s, nil
}

// Parse decodes and validates a YAML script. Unknown keys are rejected.
func Parse(data []byte) (*Script, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, eris.New("gesture: empty script")
		}
		return nil, eris.Wrap(err, "gesture: parse script")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks that every step is well formed. Item ids are only checked
// during replay since they depend on the store's layouts.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		switch st.Op {
		case OpDrag:
			if st.ID == "" {
				return eris.Errorf("gesture: step %d: drag needs an id", i)
			}
			if st.X == nil && st.Y == nil {
				return eris.Errorf("gesture: step %d: drag needs x or y", i)
			}
		case OpResize:
			if st.ID == "" {
				return eris.Errorf("gesture: step %d: resize needs an id", i)
			}
			if st.W == nil && st.H == nil {
				return eris.Errorf("gesture: step %d: resize needs w or h", i)
			}
		case OpBreakpoint:
			if st.Breakpoint == "" {
				return eris.Errorf("gesture: step %d: breakpoint op needs a breakpoint", i)
			}
		case OpReset:
		default:
			return eris.Errorf("gesture: step %d: unknown op %q", i, st.Op)
		}
	}
	return nil
}

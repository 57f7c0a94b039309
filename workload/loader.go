package workload

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFilename is the default name for workload configuration files.
const DefaultFilename = "workload.yaml"

// Load loads a workload from the specified path.
// If path is a directory, it looks for workload.yaml in that directory.
// If path is empty, it looks in the current directory.
func Load(path string) (*Workload, error) {
	if path == "" {
		path = "."
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat path: %w", err)
	}

	if info.IsDir() {
		path = filepath.Join(path, DefaultFilename)
	}

	return LoadFile(path)
}

// LoadFile loads a workload from a specific file.
func LoadFile(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workload file: %w", err)
	}

	return Parse(data)
}

// Parse parses a workload from YAML bytes.
func Parse(data []byte) (*Workload, error) {
	var w Workload
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse workload YAML: %w", err)
	}

	return &w, nil
}

// Validate checks structural consistency: unique cell and stage names, step
// operands referring to known cells, known ops, and dependencies referring
// to known stages. It does not detect aliased two-cell steps (e.g. swapping
// a cell with itself); those abort at run time, which is the point of the
// primitive being exercised.
func (w *Workload) Validate() error {
	if w.Name == "" {
		return fmt.Errorf("workload has no name")
	}
	if len(w.Cells) == 0 {
		return fmt.Errorf("workload %q defines no cells", w.Name)
	}

	cells := make(map[string]bool)
	for _, c := range w.Cells {
		if c.Name == "" {
			return fmt.Errorf("workload %q has a cell with no name", w.Name)
		}
		if cells[c.Name] {
			return fmt.Errorf("duplicate cell %q", c.Name)
		}
		cells[c.Name] = true
	}

	stages := make(map[string]bool)
	for _, s := range w.Stages {
		if s.Name == "" {
			return fmt.Errorf("workload %q has a stage with no name", w.Name)
		}
		if stages[s.Name] {
			return fmt.Errorf("duplicate stage %q", s.Name)
		}
		stages[s.Name] = true
	}

	for _, s := range w.Stages {
		for _, dep := range s.DependsOn {
			if !stages[dep] {
				return fmt.Errorf("stage %q depends on unknown stage %q", s.Name, dep)
			}
		}
		for i, step := range s.Steps {
			if err := validateStep(step, cells); err != nil {
				return fmt.Errorf("stage %q step %d: %w", s.Name, i+1, err)
			}
		}
	}

	return nil
}

func validateStep(step Step, cells map[string]bool) error {
	ref := func(field, name string) error {
		if name == "" {
			return fmt.Errorf("op %q requires %s", step.Op, field)
		}
		if !cells[name] {
			return fmt.Errorf("op %q refers to unknown cell %q", step.Op, name)
		}
		return nil
	}

	switch step.Op {
	case "add", "check":
		return ref("cell", step.Cell)
	case "swap":
		if err := ref("a", step.A); err != nil {
			return err
		}
		return ref("b", step.B)
	case "transfer":
		if err := ref("from", step.From); err != nil {
			return err
		}
		return ref("to", step.To)
	case "":
		return fmt.Errorf("step has no op")
	default:
		return fmt.Errorf("unknown op %q", step.Op)
	}
}

// StageOrder returns stage names in dependency order (dependencies first).
// Returns an error if there are circular dependencies.
func (w *Workload) StageOrder() ([]string, error) {
	all := make(map[string]bool)
	for _, s := range w.Stages {
		all[s.Name] = true
	}

	for _, s := range w.Stages {
		for _, dep := range s.DependsOn {
			if !all[dep] {
				return nil, fmt.Errorf("stage %q depends on unknown stage %q", s.Name, dep)
			}
		}
	}

	// Topological sort using Kahn's algorithm
	inDegree := make(map[string]int)
	for _, s := range w.Stages {
		inDegree[s.Name] = len(s.DependsOn)
	}

	var queue []string
	for _, s := range w.Stages {
		if inDegree[s.Name] == 0 {
			queue = append(queue, s.Name)
		}
	}

	var result []string
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		result = append(result, current)

		for _, s := range w.Stages {
			for _, dep := range s.DependsOn {
				if dep == current {
					inDegree[s.Name]--
					if inDegree[s.Name] == 0 {
						queue = append(queue, s.Name)
					}
				}
			}
		}
	}

	if len(result) != len(all) {
		return nil, fmt.Errorf("circular dependency detected in stages")
	}

	return result, nil
}

// Package workload provides types and utilities for declarative cell
// workload definitions.
//
// A workload names a set of cells with initial values and a set of stages,
// each holding ordered mutation steps. Stages may depend on other stages;
// execution follows dependency order. Workloads exist to exercise an
// ownership domain end to end and are the engine behind the tagcell CLI.
package workload

// Workload represents one workload configuration.
type Workload struct {
	// Name is the workload identifier
	Name string `yaml:"name"`

	// Description explains what this workload demonstrates
	Description string `yaml:"description,omitempty"`

	// Cells lists the cells to create before any stage runs
	Cells []CellSpec `yaml:"cells"`

	// Stages lists the stages in declaration order
	Stages []StageSpec `yaml:"stages"`
}

// GetCell returns the cell spec with the given name, or nil if not found.
func (w *Workload) GetCell(name string) *CellSpec {
	for i := range w.Cells {
		if w.Cells[i].Name == name {
			return &w.Cells[i]
		}
	}
	return nil
}

// GetStage returns the stage spec with the given name, or nil if not found.
func (w *Workload) GetStage(name string) *StageSpec {
	for i := range w.Stages {
		if w.Stages[i].Name == name {
			return &w.Stages[i]
		}
	}
	return nil
}

// CellSpec defines one cell and its initial value.
type CellSpec struct {
	// Name is the cell identifier, unique within the workload
	Name string `yaml:"name"`

	// Value is the cell's initial contents
	Value int64 `yaml:"value"`
}

// StageSpec defines a named group of steps.
type StageSpec struct {
	// Name is the stage identifier, unique within the workload
	Name string `yaml:"name"`

	// DependsOn lists stages that must run before this one
	DependsOn []string `yaml:"depends_on,omitempty"`

	// Steps run in order within the stage
	Steps []Step `yaml:"steps"`
}

// Step is one operation against the workload's cells.
//
// Supported ops:
//   - add: add Amount to Cell
//   - swap: exchange the contents of A and B (two-cell exclusive borrow)
//   - transfer: move Amount from From to To (two-cell exclusive borrow)
//   - check: fail the run unless Cell holds Expect
type Step struct {
	// Op is one of "add", "swap", "transfer", "check"
	Op string `yaml:"op"`

	// Cell is the target for add and check
	Cell string `yaml:"cell,omitempty"`

	// A and B are the swap operands
	A string `yaml:"a,omitempty"`
	B string `yaml:"b,omitempty"`

	// From and To are the transfer endpoints
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to,omitempty"`

	// Amount is the operand for add and transfer
	Amount int64 `yaml:"amount,omitempty"`

	// Expect is the asserted value for check
	Expect int64 `yaml:"expect,omitempty"`
}

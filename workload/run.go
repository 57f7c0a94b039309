package workload

import (
	"fmt"

	"github.com/lex00/tagcell-go/dyncell"
)

// StepResult records one executed step.
type StepResult struct {
	// Stage is the stage the step belongs to
	Stage string
	// Index is the 1-based position of the step within its stage
	Index int
	// Op is the step's operation
	Op string
	// Detail is a human-readable summary of what the step did
	Detail string
}

// Report summarizes one workload run.
type Report struct {
	// Workload is the workload name
	Workload string
	// Order is the stage execution order that was used
	Order []string
	// Steps lists every executed step in order
	Steps []StepResult
	// Final maps each cell name to its value after the last stage
	Final map[string]int64
}

// Run validates the workload and executes it against a fresh runtime
// ownership domain. Each workload run gets its own dyncell.Owner; cells are
// created up front and every step flows through the owner's borrow API, so
// a run is an end-to-end exercise of the primitive. A failed check aborts
// the run with an error; an aliased two-cell step panics, exactly as a
// direct caller of the borrow API would.
func Run(w *Workload) (*Report, error) {
	if err := w.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}

	order, err := w.StageOrder()
	if err != nil {
		return nil, err
	}

	owner := dyncell.NewOwner()
	cells := make(map[string]*dyncell.Cell[int64], len(w.Cells))
	for _, c := range w.Cells {
		cells[c.Name] = dyncell.NewCell(owner, c.Value)
	}

	report := &Report{Workload: w.Name, Order: order}
	for _, name := range order {
		stage := w.GetStage(name)
		for i, step := range stage.Steps {
			detail, err := runStep(owner, cells, step)
			if err != nil {
				return nil, fmt.Errorf("stage %q step %d: %w", name, i+1, err)
			}
			report.Steps = append(report.Steps, StepResult{
				Stage:  name,
				Index:  i + 1,
				Op:     step.Op,
				Detail: detail,
			})
		}
	}

	report.Final = make(map[string]int64, len(cells))
	for name, c := range cells {
		report.Final[name] = dyncell.Get(owner, c)
	}

	return report, nil
}

func runStep(owner *dyncell.Owner, cells map[string]*dyncell.Cell[int64], step Step) (string, error) {
	switch step.Op {
	case "add":
		*dyncell.GetMut(owner, cells[step.Cell]) += step.Amount
		return fmt.Sprintf("%s += %d", step.Cell, step.Amount), nil

	case "swap":
		pa, pb := dyncell.GetMut2(owner, cells[step.A], cells[step.B])
		*pa, *pb = *pb, *pa
		return fmt.Sprintf("%s <-> %s", step.A, step.B), nil

	case "transfer":
		from, to := dyncell.GetMut2(owner, cells[step.From], cells[step.To])
		*from -= step.Amount
		*to += step.Amount
		return fmt.Sprintf("%s -> %s: %d", step.From, step.To, step.Amount), nil

	case "check":
		got := dyncell.Get(owner, cells[step.Cell])
		if got != step.Expect {
			return "", fmt.Errorf("check failed: %s = %d, want %d", step.Cell, got, step.Expect)
		}
		return fmt.Sprintf("%s == %d", step.Cell, step.Expect), nil

	default:
		// Validate rejects unknown ops before execution starts.
		return "", fmt.Errorf("unknown op %q", step.Op)
	}
}

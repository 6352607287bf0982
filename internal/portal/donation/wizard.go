// Package donation implements the five-step donation wizard.
//
// The wizard is a linear state machine: next advances one step when the
// current step's guard passes, back retreats one step, and Confirmation is
// terminal. Nothing is charged; completing the flow only records state.
package donation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/looplab/fsm"
)

// State names one wizard step.
type State string

const (
	StateProgramSelection State = "program_selection"
	StateTypeSelection    State = "type_selection"
	StateAmountAndDetails State = "amount_and_details"
	StatePaymentInfo      State = "payment_info"
	StateConfirmation     State = "confirmation"
)

// TotalSteps is the number of wizard steps including Confirmation.
const TotalSteps = 5

// Events accepted by the wizard.
const (
	EventNext = "next"
	EventBack = "back"
)

var steps = []State{
	StateProgramSelection,
	StateTypeSelection,
	StateAmountAndDetails,
	StatePaymentInfo,
	StateConfirmation,
}

// Guard failures and unavailable transitions.
var (
	ErrProgramRequired        = errors.New("select a program to continue")
	ErrAmountRequired         = errors.New("enter an amount greater than zero")
	ErrPaymentDetailsRequired = errors.New("choose a payment method and enter your name and email")
	ErrBackUnavailable        = errors.New("back is unavailable on this step")
	ErrCompleted              = errors.New("donation is already confirmed")
)

// Snapshot is the persistable form of a wizard.
type Snapshot struct {
	State       State     `json:"state"`
	Data        Data      `json:"data"`
	CompletedAt time.Time `json:"completedAt,omitzero"`
}

// Wizard tracks one donor's progress through the flow. It is not safe for
// concurrent use.
type Wizard struct {
	data        Data
	machine     *fsm.FSM
	completedAt time.Time
	now         func() time.Time
}

// New starts a wizard at ProgramSelection with default data.
func New() *Wizard {
	return newWizard(StateProgramSelection, DefaultData())
}

// Restore rebuilds a wizard from a snapshot.
func Restore(snapshot Snapshot) (*Wizard, error) {
	if StepOf(snapshot.State) == 0 {
		return nil, fmt.Errorf("unknown wizard state %q", snapshot.State)
	}
	w := newWizard(snapshot.State, snapshot.Data)
	w.completedAt = snapshot.CompletedAt
	return w, nil
}

func newWizard(initial State, data Data) *Wizard {
	w := &Wizard{
		data: data,
		now:  func() time.Time { return time.Now().UTC() },
	}
	var events fsm.Events
	for i := 0; i < len(steps)-1; i++ {
		events = append(events,
			fsm.EventDesc{Name: EventNext, Src: []string{string(steps[i])}, Dst: string(steps[i+1])},
		)
	}
	// Confirmation has no way back.
	for i := 1; i < len(steps)-1; i++ {
		events = append(events,
			fsm.EventDesc{Name: EventBack, Src: []string{string(steps[i])}, Dst: string(steps[i-1])},
		)
	}
	w.machine = fsm.NewFSM(string(initial), events, fsm.Callbacks{
		"before_" + EventNext: func(_ context.Context, e *fsm.Event) {
			if err := w.guard(State(e.Src)); err != nil {
				e.Cancel(err)
			}
		},
		"enter_" + string(StateConfirmation): func(context.Context, *fsm.Event) {
			w.completedAt = w.now()
		},
	})
	return w
}

// State returns the current step.
func (w *Wizard) State() State { return State(w.machine.Current()) }

// Step returns the 1-based step number.
func (w *Wizard) Step() int { return StepOf(w.State()) }

// Progress returns step/5 as a whole percentage.
func (w *Wizard) Progress() int { return w.Step() * 100 / TotalSteps }

// Data returns a copy of the entered data.
func (w *Wizard) Data() Data { return w.data }

// Completed reports whether the wizard reached Confirmation.
func (w *Wizard) Completed() bool { return w.State() == StateConfirmation }

// CompletedAt is when Confirmation was entered.
func (w *Wizard) CompletedAt() time.Time { return w.completedAt }

// Update applies edits to the entered data. Confirmed wizards are frozen.
func (w *Wizard) Update(edit func(*Data)) error {
	if w.Completed() {
		return ErrCompleted
	}
	if edit != nil {
		edit(&w.data)
	}
	return nil
}

// CanNext reports whether next would advance from the current step.
func (w *Wizard) CanNext() bool {
	return w.machine.Can(EventNext) && w.guard(w.State()) == nil
}

// CanBack reports whether back is available on the current step.
func (w *Wizard) CanBack() bool { return w.machine.Can(EventBack) }

// Next advances one step. A failing guard leaves the step unchanged and
// returns the guard error.
func (w *Wizard) Next(ctx context.Context) error {
	if w.Completed() {
		return ErrCompleted
	}
	return w.fire(ctx, EventNext)
}

// Back retreats one step. It is unavailable on the first step and on
// Confirmation.
func (w *Wizard) Back(ctx context.Context) error {
	if w.Completed() {
		return ErrCompleted
	}
	if !w.machine.Can(EventBack) {
		return ErrBackUnavailable
	}
	return w.fire(ctx, EventBack)
}

// Snapshot captures the wizard for persistence.
func (w *Wizard) Snapshot() Snapshot {
	return Snapshot{State: w.State(), Data: w.data, CompletedAt: w.completedAt}
}

func (w *Wizard) fire(ctx context.Context, event string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	err := w.machine.Event(ctx, event)
	if err == nil {
		return nil
	}
	var canceled fsm.CanceledError
	if errors.As(err, &canceled) && canceled.Err != nil {
		return canceled.Err
	}
	return fmt.Errorf("wizard %s: %w", event, err)
}

func (w *Wizard) guard(from State) error {
	d := w.data
	switch from {
	case StateProgramSelection:
		if strings.TrimSpace(d.Program) == "" {
			return ErrProgramRequired
		}
	case StateAmountAndDetails:
		if !d.SelectedAmount().IsPositive() {
			return ErrAmountRequired
		}
	case StatePaymentInfo:
		if d.PaymentMethod == "" || strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Email) == "" {
			return ErrPaymentDetailsRequired
		}
	}
	return nil
}

// StepOf maps a state to its 1-based step number, or 0 when unknown.
func StepOf(state State) int {
	for i, s := range steps {
		if s == state {
			return i + 1
		}
	}
	return 0
}

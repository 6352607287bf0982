package donate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/lceo-rwanda/portal/internal/portal/donation"
	"github.com/lceo-rwanda/portal/internal/portal/mockdata"
	"github.com/lceo-rwanda/portal/internal/services/web/module"
)

// wizardKey is the browser storage key holding the in-progress wizard.
const wizardKey = "donation_wizard"

type service struct {
	store module.KeyValue
}

func newService(store module.KeyValue) service {
	return service{store: store}
}

// load returns the browser's wizard, or a fresh one when nothing usable is
// stored.
func (s service) load(ctx context.Context, namespace string) (*donation.Wizard, error) {
	raw, ok, err := s.store.GetValue(ctx, namespace, wizardKey)
	if err != nil {
		return nil, fmt.Errorf("load donation wizard: %w", err)
	}
	if !ok {
		return donation.New(), nil
	}
	var snapshot donation.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return donation.New(), nil
	}
	wiz, err := donation.Restore(snapshot)
	if err != nil {
		return donation.New(), nil
	}
	return wiz, nil
}

func (s service) save(ctx context.Context, namespace string, wiz *donation.Wizard) error {
	payload, err := json.Marshal(wiz.Snapshot())
	if err != nil {
		return fmt.Errorf("encode donation wizard: %w", err)
	}
	if err := s.store.PutValue(ctx, namespace, wizardKey, payload); err != nil {
		return fmt.Errorf("save donation wizard: %w", err)
	}
	return nil
}

func (s service) reset(ctx context.Context, namespace string) error {
	if err := s.store.DeleteValue(ctx, namespace, wizardKey); err != nil {
		return fmt.Errorf("reset donation wizard: %w", err)
	}
	return nil
}

// programChoice is one selectable destination for a gift.
type programChoice struct {
	ID   string
	Name string
}

// programChoices lists the general fund followed by the active programs.
func programChoices(lang mockdata.Language) []programChoice {
	active := mockdata.ActivePrograms()
	choices := make([]programChoice, 0, len(active)+1)
	choices = append(choices, programChoice{ID: donation.GeneralFund, Name: generalFundLabel})
	for _, p := range active {
		choices = append(choices, programChoice{ID: p.ID, Name: p.Name.In(lang)})
	}
	return choices
}

const generalFundLabel = "Where it's needed most"

// programName resolves a selected program id for display.
func programName(id string, lang mockdata.Language) string {
	if id == donation.GeneralFund {
		return generalFundLabel
	}
	if p, ok := mockdata.ProgramByID(id); ok {
		return p.Name.In(lang)
	}
	return id
}

// selectableProgram reports whether id may receive gifts.
func selectableProgram(id string) bool {
	if id == donation.GeneralFund {
		return true
	}
	p, ok := mockdata.ProgramByID(id)
	return ok && p.Status == mockdata.ProgramActive
}

// suggestedAmount parses a preset amount choice.
func suggestedAmount(raw string) (int64, bool) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	for _, amount := range donation.SuggestedAmounts {
		if amount == n {
			return n, true
		}
	}
	return 0, false
}

// guardKey maps a wizard guard failure to its catalog key.
func guardKey(err error) (string, bool) {
	switch {
	case errors.Is(err, donation.ErrProgramRequired):
		return "donate.guard.program", true
	case errors.Is(err, donation.ErrAmountRequired):
		return "donate.guard.amount", true
	case errors.Is(err, donation.ErrPaymentDetailsRequired):
		return "donate.guard.payment", true
	}
	return "", false
}

package configurator

import (
	"context"
)

// StepKey identifies a wizard step.
type StepKey string

const (
	StepProduit    StepKey = "produit"
	StepDimensions StepKey = "dimensions"
	StepMateriau   StepKey = "materiau"
	StepOptions    StepKey = "options"
	StepRecap      StepKey = "recap"
)

// Step is one entry of the ordered wizard. Validate gates Next(); a nil
// predicate means the step is always passable.
type Step struct {
	Key      StepKey
	Label    string
	Validate func(Selection) bool
}

// Submitter persists a finished configuration. The wizard never retries
// on its own; a failure leaves the state untouched for the caller.
type Submitter interface {
	Submit(ctx context.Context, sel Selection, contact Contact) (quoteNumber string, err error)
}

// Wizard sequences the configuration steps for one session. Navigation
// is synchronous and I/O-free; Submit is the single blocking operation.
type Wizard struct {
	steps      []Step
	current    int
	maxReached int
	inFlight   bool
	submitted  bool
}

// NewWizard starts at the first step with an empty frontier.
func NewWizard(steps []Step) *Wizard {
	if len(steps) == 0 {
		panic("wizard requires at least one step")
	}
	return &Wizard{steps: steps}
}

// DefaultSteps is the observed flow: product choice, dimensions,
// material, options, review. Dimensions and options carry no predicate:
// clamping keeps them valid by construction.
func DefaultSteps(labels map[string]string) []Step {
	label := func(key, fallback string) string {
		if v, ok := labels[key]; ok {
			return v
		}
		return fallback
	}

	return []Step{
		{
			Key:   StepProduit,
			Label: label("step.produit", "Produit"),
			Validate: func(sel Selection) bool {
				return sel.ProductType != ""
			},
		},
		{
			Key:   StepDimensions,
			Label: label("step.dimensions", "Dimensions"),
		},
		{
			Key:   StepMateriau,
			Label: label("step.materiau", "Matériau"),
			Validate: func(sel Selection) bool {
				return sel.MaterialID != ""
			},
		},
		{
			Key:   StepOptions,
			Label: label("step.options", "Options"),
		},
		{
			Key:   StepRecap,
			Label: label("step.recap", "Récapitulatif"),
		},
	}
}

// Current returns the index of the active step.
func (w *Wizard) Current() int { return w.current }

// MaxReached returns the furthest step ever visited. It never decreases.
func (w *Wizard) MaxReached() int { return w.maxReached }

// Steps returns the ordered step definitions.
func (w *Wizard) Steps() []Step { return w.steps }

// Submitted reports whether the wizard reached its terminal state.
func (w *Wizard) Submitted() bool { return w.submitted }

// Goto jumps to an already-reached step. Jumps beyond the frontier are
// silent no-ops: the UI simply never exposes those controls, and the
// engine does not treat a stray click as an error.
func (w *Wizard) Goto(n int) bool {
	if w.submitted {
		return false
	}
	if n < 0 || n >= len(w.steps) || n > w.maxReached {
		return false
	}
	w.current = n
	return true
}

// Next advances one step after the current step's predicate accepts the
// selection. On the last step it is a no-op.
func (w *Wizard) Next(sel Selection) error {
	if w.submitted || w.current >= len(w.steps)-1 {
		return nil
	}

	if v := w.steps[w.current].Validate; v != nil && !v(sel) {
		return ErrStepInvalid
	}

	w.current++
	if w.current > w.maxReached {
		w.maxReached = w.current
	}
	return nil
}

// Prev steps back. The frontier is untouched.
func (w *Wizard) Prev() bool {
	if w.submitted || w.current == 0 {
		return false
	}
	w.current--
	return true
}

// Submit hands the finished selection to the submitter. Only callable
// on the last step; re-entrant calls while a submission is outstanding
// are rejected so one logical request never creates two quotes. Success
// is terminal; failure preserves all state so the caller can retry.
func (w *Wizard) Submit(ctx context.Context, submitter Submitter, sel Selection, contact Contact) (string, error) {
	if w.submitted {
		return "", ErrAlreadySubmitted
	}
	if w.current != len(w.steps)-1 {
		return "", ErrNotOnFinalStep
	}
	if w.inFlight {
		return "", ErrSubmissionInFlight
	}

	w.inFlight = true
	quoteNumber, err := submitter.Submit(ctx, sel, contact)
	w.inFlight = false

	if err != nil {
		return "", err
	}

	w.submitted = true
	return quoteNumber, nil
}

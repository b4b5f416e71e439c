package configurator

import "errors"

var (
	// -- Wizard transitions --
	ErrStepInvalid        = errors.New("current step is not valid")
	ErrNotOnFinalStep     = errors.New("submission only allowed on the final step")
	ErrSubmissionInFlight = errors.New("a submission is already in flight")
	ErrAlreadySubmitted   = errors.New("configuration already submitted")
)

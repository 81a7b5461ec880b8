package credential

import (
	"errors"
)

var (
	ErrNotFound = errors.New("credential not found")
	// ErrForbidden means the credential exists but belongs to another owner.
	// Handlers collapse it with ErrNotFound so callers cannot probe for
	// foreign record ids; the distinction survives internally for logging.
	ErrForbidden    = errors.New("credential belongs to another owner")
	ErrInvalidInput = errors.New("invalid credential data")
	// ErrInvalidState means the operation is not allowed from the record's
	// current lifecycle state, e.g. purging a credential that is not in trash.
	ErrInvalidState = errors.New("invalid credential state")
)

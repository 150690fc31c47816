/*
 * micronix - host reconnaissance to privilege-escalation planning problems
 * License: MIT
 */
package extractor

import "errors"

// These sentinel errors are the fatal kinds of the error taxonomy, matched
// with errors.Is. Run aborts on them when they come from a required step
// (identity, users, groups, executables); errors from the later steps are
// logged and the corresponding field is left empty.
var (
	// ErrTransportUnreachable: the remote command channel failed.
	ErrTransportUnreachable = errors.New("transport unreachable")

	// ErrRequiredParseFailed is fatal: a required step (id, users, groups,
	// executables) produced output the parser could not make sense of.
	ErrRequiredParseFailed = errors.New("required command output unparseable")
)

// IsFatal reports whether err should abort the extraction run.
func IsFatal(err error) bool {
	return errors.Is(err, ErrTransportUnreachable) || errors.Is(err, ErrRequiredParseFailed)
}

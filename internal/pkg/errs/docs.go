// Package errs provides the error taxonomy shared by the back office.
//
// Validation failures:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed or already taken
//   - ValueIsOutOfRangeError: a value is outside of its allowed bounds
//
// Workflow failures:
//   - StateConflictError: the operation is not allowed in the current lifecycle state
//   - ObjectNotFoundError: a referenced entity is absent
//   - AuthorizationError: the actor lacks the role or ownership required
//   - ExternalCollaboratorError: document storage, push transport or PDF rendering failed
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions
//   - Error() method for formatting the error message
//   - Unwrap() returning the sentinel so errors.Is classifies the error
//
// The HTTP adapter maps the sentinels to status codes; nothing else in the
// application inspects error strings.
package errs

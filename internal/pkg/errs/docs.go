// Package errs provides standardized error types for the water delivery service.
//
// The package includes:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: lookups by identifier that found nothing
//   - StateError: order operations rejected by the current status (not pending,
//     invalid state, already assigned)
//   - ForbiddenError: a courier acting on an order assigned to someone else
//
// Each error type unwraps to a sentinel (ErrValueIsInvalid, ErrObjectNotFound, ...),
// so callers classify errors with errors.Is. CodeOf maps any error to the
// transport-neutral Code used in API responses.
package errs

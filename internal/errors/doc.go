// Package errors provides structured errors for the tactics engine.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// optional metadata. Codes translate to gRPC status codes at the transport
// boundary and to HTTP status codes in the web gateway.
//
// # Codes used by the engine
//
//   - InvalidArgument: a selection outside any legal move or attack set, or a
//     snapshot that fails validation
//   - NotFound: a stale or absent character id, or a missing saved snapshot
//   - FailedPrecondition: input while the enemy acts or after the game ended
//   - Aborted: the enemy found no approach cell; the turn evaluator converts it
//     into a forfeited turn
//   - DataLoss: a stored snapshot that cannot be decoded
//
// # Usage
//
//	err := errors.NotFound("character not found").
//	    WithMeta("character_id", id)
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to load snapshot")
//	}
//
//	if errors.IsAborted(err) {
//	    // forfeit
//	}
package errors

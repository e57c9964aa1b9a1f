// Package errors provides structured error handling for tibiabot.
//
// Errors carry a code, a message, an optional cause, and optional metadata.
//
// Creating errors:
//
//	err := errors.NotFoundf("no wikitext for page %q", page)
//	err := errors.Unavailable("wiki API request failed")
//
// Wrapping errors:
//
//	if err := client.GetCreature(ctx, name); err != nil {
//	    return errors.Wrap(err, "failed to fetch creature record")
//	}
//
// Checking errors:
//
//	if errors.IsNotFound(err) {
//	    // upstream answered, but the record is missing
//	}
//
// Layer guidelines:
//   - Clients return NotFound when the upstream answered without the expected
//     data, and Unavailable for transport failures, non-2xx statuses, and
//     malformed payloads.
//   - Orchestrators validate inputs (InvalidArgument) and wrap client errors
//     with pipeline context.
//   - Handlers log the error and render a fixed user-facing message; internal
//     detail never reaches chat.
package errors

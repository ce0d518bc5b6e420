// Package errs defines the error shapes the API sends to its clients.
//
// Every failure that reaches the HTTP boundary is turned into an *HTTPError
// so mobile and web clients always receive the same JSON structure, with a
// `message` they can show and optional field-level errors for forms such as
// the collection point registration form.
package errs

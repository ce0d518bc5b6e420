// Package handler is the HTTP layer, the first entry point after the
// router.
//
// Handlers receive bound and validated request DTOs through the generic
// Handle pipeline, call the service layer and turn its results into
// response DTOs.
package handler

// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated input from handlers, orchestrates the repository, image
// storage and job queue, and maps domain failures to client errors.
package service

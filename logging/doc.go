// Package logging builds the structured logger used by the application:
// log/slog with a JSON handler by default, or a text handler on request.
package logging

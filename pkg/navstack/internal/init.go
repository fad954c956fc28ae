// Package internal contains the shared infrastructure for navstack:
// structured logging and the localized message catalog.
// Types and functions in this package are not part of the public API.
package internal

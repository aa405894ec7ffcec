// Package cli is the interactive front end of AutoPrime.
//
// Root prints a greeting, restores the persisted view and runs a line-based
// REPL. Each command either lists state or walks the user through a short
// form. Forms are validated with go-playground/validator before any service
// call, and addorder checks stock availability first. When stdin is not a
// terminal the prompts are suppressed so scripted input produces clean
// output.
package cli

// Package application provides application initialization and dependency wiring.
// It connects the content loader, the search engine and the output writer,
// keeping the main package focused on CLI parsing and exit codes.
package application

// Package main provides the vista CLI for compiling authorized views.
//
// The CLI supports:
//   - compile: Compile a single view definition into SQL
//   - generate: Compile all view definitions in a directory
//   - validate: Check share and view definition documents
//   - config: Show effective configuration
//
// Definitions and share configuration are loaded from local files, HTTP
// URLs, or s3:// locations; compiled SQL is written to stdout or files.
package main

func main() {
	Execute()
}

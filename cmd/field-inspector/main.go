// Package main provides the CLI entrypoint for field-inspector.
//
// field-inspector is a prototype backend for an editor property panel:
//   - Loads Go packages (go/types) or a YAML schema describing a scan scope
//   - Discovers every type deriving from a root marker type
//   - Prints the fields tagged as editable, grouped by label, with the enum
//     constants or subtypes each field can take
package main

import "field-inspector/internal/cli"

func main() {
	cli.Execute()
}

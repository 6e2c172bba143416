// Package schema reads a declarative YAML description of a scan scope.
//
// A schema file lists types, their supertypes (extends), their fields with
// an optional editor marker, and enum constants. Build turns it into the
// same analyze.TypeGraph the package loader produces, so the inspector does
// not care where the scope came from.
//
// Example:
//
//	version: "1"
//	package: example.com/scene
//	types:
//	  - name: Child1
//	    extends: [Parent]
//	    fields:
//	      - {name: moveSpeed, type: float, editor: true}
//	      - {name: startLives, type: int, editor: Interactions}
package schema

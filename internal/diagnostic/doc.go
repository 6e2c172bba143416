// Package diagnostic provides structured errors, warnings and notes
// collected while inspecting a scan scope.
//
// Key capabilities:
//   - Per-participant reflection faults that drop one type from the report
//   - Notes about participants that carry no inspectable fields
//   - Logging of everything collected after a run
package diagnostic

// Package inspect turns a scan scope into an inspector report.
//
// A run has three stages:
//   - Discoverer: finds every type deriving from a root marker type
//   - Classifier: keeps the fields carrying the editable marker and buckets
//     them by group label, DefaultGroup when the marker names none
//   - Inspector: combines both and resolves, for each field, the subtypes
//     or enum constants a property panel would offer
//
// Ordering is deterministic: participants and subtypes by qualified name,
// DefaultGroup first then labels in byte order, fields in declaration order,
// enum constants in source order.
package inspect

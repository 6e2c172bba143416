// Package analyze provides package loading and type graph extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of named types, their fields,
// their supertypes and, for enumerated types, their constants.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/enum/interface/pointer/...),
//     direct supertypes (embedded types, implemented interfaces)
//   - FieldInfo: describes field name, type, tags, and embedding
//   - TypeGraph: the scan scope consumed by the inspector
package analyze

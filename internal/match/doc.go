// Package match suggests the closest known name for a misspelled one.
//
// Key functions:
//   - NormalizeIdent: folds case and separators before comparing
//   - Levenshtein: computes edit distance between strings
//   - Suggest: picks the best candidate above a similarity threshold
package match

// Package report renders inspector reports.
//
// Text is the canonical nested format: one block per participant, tab
// indented groups, fields and options. Table flattens the same report into
// one row per field using tablewriter.
package report

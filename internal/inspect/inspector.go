package inspect

import (
	"errors"

	"field-inspector/internal/analyze"
	"field-inspector/internal/diagnostic"
)

// Report is the outcome of one inspection, ready to be rendered.
type Report struct {
	Root        analyze.TypeID
	Types       []TypeReport
	Diagnostics diagnostic.Diagnostics
}

// TypeReport lists the editable fields of one participant.
type TypeReport struct {
	ID     analyze.TypeID
	Groups []GroupReport
}

// GroupReport is a group with its fields already rendered to strings.
type GroupReport struct {
	Name   string
	Fields []FieldReport
}

// IsDefault reports whether the group is the unlabelled one.
func (g GroupReport) IsDefault() bool {
	return g.Name == DefaultGroup
}

// FieldReport describes one editable field. Options holds the qualified
// names of discoverable subtypes for object fields, or the constants of an
// enum field.
type FieldReport struct {
	Name     string
	TypeName string
	Class    FieldClass
	Options  []string
}

// Config configures an Inspector.
type Config struct {
	// TagKey is the struct tag key of the editable marker.
	TagKey string
}

// DefaultConfig returns the default inspector configuration.
func DefaultConfig() Config {
	return Config{TagKey: DefaultTagKey}
}

// Inspector discovers participants of a root marker and classifies their
// fields. It holds no state between Inspect calls.
type Inspector struct {
	graph      *analyze.TypeGraph
	discoverer *Discoverer
	classifier *Classifier
	stringer   *analyze.TypeStringer
}

// NewInspector creates an Inspector over the scan scope graph.
func NewInspector(graph *analyze.TypeGraph, cfg Config) *Inspector {
	return &Inspector{
		graph:      graph,
		discoverer: NewDiscoverer(graph),
		classifier: NewClassifier(cfg.TagKey),
		stringer:   analyze.NewTypeStringer(),
	}
}

// Inspect builds the report for every participant deriving from root, sorted
// by qualified name. A root missing from the scope is a ScopeError. A
// participant whose metadata cannot be read is left out of the report and
// recorded as an error diagnostic; the other participants are unaffected.
func (in *Inspector) Inspect(root analyze.TypeID) (*Report, error) {
	ids, err := in.discoverer.Participants(root)
	if err != nil {
		return nil, err
	}

	report := &Report{Root: root}
	for _, id := range ids {
		info := in.graph.GetType(id)

		tr, err := in.inspectType(info)
		if err != nil {
			message, field := err.Error(), ""
			var fe *FaultError
			if errors.As(err, &fe) {
				message = fe.Reason
				if fe.Field != "" {
					field = in.stringer.FieldPath(id.Name, fe.Field)
				}
			}
			report.Diagnostics.AddError(diagnostic.CodeReflectionFault, message, id.String(), field)

			continue
		}

		switch {
		case info.Kind != analyze.TypeKindStruct:
			report.Diagnostics.AddInfo(diagnostic.CodeNoFields,
				"non-struct participant ("+info.Kind.String()+") has no fields", id.String(), "")
		case len(tr.Groups) == 0:
			report.Diagnostics.AddInfo(diagnostic.CodeNoEditable,
				"participant has no editable fields", id.String(), "")
		}

		report.Types = append(report.Types, tr)
	}

	return report, nil
}

// inspectType classifies one participant and resolves field options.
func (in *Inspector) inspectType(info *analyze.TypeInfo) (TypeReport, error) {
	tr := TypeReport{ID: info.ID}

	groups, err := in.classifier.Classify(info)
	if err != nil {
		return tr, err
	}

	for _, g := range groups {
		gr := GroupReport{Name: g.Name}

		for _, f := range g.Fields {
			fr := FieldReport{
				Name:     f.Name,
				TypeName: in.stringer.TypeString(f.Type, info.ID.PkgPath),
				Class:    f.Class,
			}

			switch f.Class {
			case ClassEnum:
				fr.Options = append(fr.Options, f.Type.Target().Constants...)
			case ClassObject:
				for _, sub := range in.discoverer.SubtypesOfType(f.Type) {
					fr.Options = append(fr.Options, sub.String())
				}
			}

			gr.Fields = append(gr.Fields, fr)
		}

		tr.Groups = append(tr.Groups, gr)
	}

	return tr, nil
}

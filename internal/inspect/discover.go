package inspect

import (
	"slices"

	"field-inspector/internal/analyze"
	"field-inspector/internal/match"
)

// Discoverer finds the types deriving from a given type within a scan scope.
type Discoverer struct {
	graph    *analyze.TypeGraph
	children map[analyze.TypeID][]analyze.TypeID
}

// NewDiscoverer indexes the direct supertype links of graph.
func NewDiscoverer(graph *analyze.TypeGraph) *Discoverer {
	d := &Discoverer{
		graph:    graph,
		children: make(map[analyze.TypeID][]analyze.TypeID),
	}

	for _, id := range graph.SortedIDs() {
		for _, super := range graph.Types[id].Supertypes {
			d.children[super] = append(d.children[super], id)
		}
	}

	return d
}

// SubtypesOf returns every type in scope deriving from root, directly or
// transitively, excluding root itself, sorted by qualified name. A root
// unknown to the scope has no subtypes.
func (d *Discoverer) SubtypesOf(root analyze.TypeID) []analyze.TypeID {
	seen := map[analyze.TypeID]bool{root: true}
	queue := []analyze.TypeID{root}

	var found []analyze.TypeID
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, child := range d.children[cur] {
			if seen[child] {
				continue
			}
			seen[child] = true
			found = append(found, child)
			queue = append(queue, child)
		}
	}

	slices.SortFunc(found, analyze.CompareTypeIDs)

	return found
}

// SubtypesOfType returns the subtypes of the type a field refers to.
// Pointers are followed; unnamed types have no subtypes.
func (d *Discoverer) SubtypesOfType(t *analyze.TypeInfo) []analyze.TypeID {
	target := t.Target()
	if target == nil || !target.IsNamed() {
		return nil
	}

	return d.SubtypesOf(target.ID)
}

// Participants returns the subtypes of the root marker. Unlike SubtypesOf it
// reports a root missing from the scope as a ScopeError.
func (d *Discoverer) Participants(root analyze.TypeID) ([]analyze.TypeID, error) {
	if d.graph.GetType(root) == nil {
		return nil, NewScopeError(root.String(), d.suggest(root))
	}

	return d.SubtypesOf(root), nil
}

// suggest looks for a type named like root, preferring root's own package.
// When root's package is not in scope, a type with a similar name in any
// package is suggested.
func (d *Discoverer) suggest(root analyze.TypeID) string {
	var local, names []string
	byName := make(map[string]analyze.TypeID)
	for _, id := range d.graph.SortedIDs() {
		if id.PkgPath == root.PkgPath {
			local = append(local, id.Name)
		}
		if _, ok := byName[id.Name]; !ok {
			byName[id.Name] = id
			names = append(names, id.Name)
		}
	}

	if len(local) > 0 {
		if name := match.Suggest(root.Name, local); name != "" {
			return analyze.TypeID{PkgPath: root.PkgPath, Name: name}.String()
		}
		return ""
	}

	if name := match.Suggest(root.Name, names); name != "" {
		return byName[name].String()
	}

	return ""
}

package catalog

// Resolution is the outcome of looking up an instruction page.
type Resolution struct {
	Groups            []InstructionGroup
	ActiveGroup       *InstructionGroup
	ActiveInstruction *Instruction
}

// ResolveInstruction finds the group called group and, inside it, the
// instruction with the given slug. Either may be absent. The result
// points into a copy, never into the catalog.
func (c *Catalog) ResolveInstruction(group, slug string) Resolution {
	res := Resolution{Groups: c.InstructionGroups()}

	for i := range res.Groups {
		if res.Groups[i].Name != group {
			continue
		}
		res.ActiveGroup = &res.Groups[i]
		for j := range res.ActiveGroup.Instructions {
			if res.ActiveGroup.Instructions[j].Slug == slug {
				res.ActiveInstruction = &res.ActiveGroup.Instructions[j]
				break
			}
		}
		break
	}

	return res
}

// Found reports whether both the group and the instruction were found.
func (r Resolution) Found() bool {
	return r.ActiveGroup != nil && r.ActiveInstruction != nil
}

// Fallback names the page to send a reader to when the requested one is
// missing: the first instruction of the active group, or the first
// instruction of the first non-empty group when the group itself is
// unknown. ok is false when nothing is missing or nothing can stand in.
func (r Resolution) Fallback() (group, slug string, ok bool) {
	if r.Found() {
		return "", "", false
	}

	if r.ActiveGroup != nil {
		if len(r.ActiveGroup.Instructions) == 0 {
			return "", "", false
		}
		return r.ActiveGroup.Name, r.ActiveGroup.Instructions[0].Slug, true
	}

	return firstInstruction(r.Groups)
}

// FirstInstruction returns the first instruction of the first group that
// has one.
func (c *Catalog) FirstInstruction() (group, slug string, ok bool) {
	return firstInstruction(c.groups)
}

func firstInstruction(groups []InstructionGroup) (string, string, bool) {
	for _, g := range groups {
		if len(g.Instructions) > 0 {
			return g.Name, g.Instructions[0].Slug, true
		}
	}
	return "", "", false
}

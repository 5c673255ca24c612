package interfaceblock

import "github.com/gogpu/glitz/memlayout"

// CheckCompatibility checks that a host layout backs every unit a shader
// reports for a uniform block. Both sequences must be sorted by offset.
//
// Units are walked in lock-step. A shader unit whose offset no host unit
// occupies is a MissingUnit; equal offsets with different layouts are a
// UnitLayoutMismatch. Host units the shader never reports are skipped, so a
// host type may declare more fields than the shader consumes but never fewer.
func CheckCompatibility(derived, reflected []memlayout.MemoryUnit) error {
	j := 0
	for _, r := range reflected {
		for j < len(derived) && derived[j].Offset < r.Offset {
			j++
		}
		if j == len(derived) || derived[j].Offset > r.Offset {
			return &IncompatibleError{Kind: MissingUnit, Unit: r}
		}
		if derived[j].Layout != r.Layout {
			return &IncompatibleError{Kind: UnitLayoutMismatch, Unit: r, Expected: derived[j].Layout}
		}
		j++
	}
	return nil
}

package resources

import "github.com/gogpu/glitz/reflection"

// SlotBinding pairs a reflected slot with the declaration backing it.
type SlotBinding struct {
	Slot reflection.ResourceSlot

	// Resource is the index of the backing declaration in the layout.
	Resource int

	// Binding is the uniform buffer binding index or texture unit assigned
	// to the declaration.
	Binding uint32
}

// ConfirmSlotBindings checks that every reflected slot is backed by a
// compatible declaration and returns the binding plan. Declarations the
// program does not use are permitted.
func ConfirmSlotBindings(l *Layout, slots []reflection.ResourceSlot) ([]SlotBinding, error) {
	plan := make([]SlotBinding, 0, len(slots))
	for _, slot := range slots {
		i, ok := l.Lookup(slot.Identifier)
		if !ok {
			return nil, &IncompatibleError{Kind: MissingResource, Slot: slot}
		}
		d := l.decls[i]

		switch slot.Kind {
		case reflection.SlotUniformBlock:
			if d.Kind != KindBuffer {
				return nil, &IncompatibleError{Kind: ResourceTypeMismatch, Slot: slot}
			}
			if err := d.Block.CheckCompatibility(slot.Block.Units); err != nil {
				return nil, &IncompatibleError{Kind: IncompatibleInterface, Slot: slot, Err: err}
			}
		case reflection.SlotTextureSampler:
			if d.Kind != KindTexture || d.Sampler != slot.Sampler.Kind {
				return nil, &IncompatibleError{Kind: ResourceTypeMismatch, Slot: slot}
			}
		}
		plan = append(plan, SlotBinding{Slot: slot, Resource: i, Binding: l.bindings[i]})
	}
	return plan, nil
}

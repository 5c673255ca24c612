package reflection

import "github.com/gogpu/glitz/driver"

// Binder issues the commands that attach a program's resource slots to
// binding points.
type Binder interface {
	UniformBlockBinding(p driver.ProgramID, blockIndex, binding uint32)
	Uniform1i(loc driver.UniformLocation, v int32)
}

// AssignUniformBlockBinding attaches a uniform block slot to a uniform buffer
// binding point.
func AssignUniformBlockBinding(b Binder, p driver.ProgramID, slot UniformBlockSlot, binding uint32) {
	b.UniformBlockBinding(p, slot.Index, binding)
}

// AssignTextureUnit points a sampler slot at a texture unit. The program must
// be in use.
func AssignTextureUnit(b Binder, slot TextureSamplerSlot, unit uint32) {
	b.Uniform1i(slot.Location, int32(unit))
}

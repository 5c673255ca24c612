// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"fmt"
	"slices"

	"github.com/gogpu/naga/ir"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/memlayout"
	"github.com/gogpu/glitz/reflection"
)

// typeID returns the WebGL2 type enumeration of a scalar, vector, matrix
// or texture type.
func typeID(m *ir.Module, h ir.TypeHandle) (driver.TypeID, bool) {
	if int(h) >= len(m.Types) {
		return 0, false
	}
	switch t := m.Types[h].Inner.(type) {
	case ir.ScalarType:
		return scalarTypeID(t.Kind, 1)
	case ir.VectorType:
		return scalarTypeID(t.Scalar.Kind, int(t.Size))
	case ir.MatrixType:
		if t.Scalar.Kind != ir.ScalarFloat {
			return 0, false
		}
		return matrixTypeID(int(t.Columns), int(t.Rows))
	case ir.ImageType:
		return imageTypeID(t)
	}
	return 0, false
}

var scalarTypeIDs = map[ir.ScalarKind][4]driver.TypeID{
	ir.ScalarFloat: {driver.TypeFloat, driver.TypeFloatVec2, driver.TypeFloatVec3, driver.TypeFloatVec4},
	ir.ScalarSint:  {driver.TypeInt, driver.TypeIntVec2, driver.TypeIntVec3, driver.TypeIntVec4},
	ir.ScalarUint:  {driver.TypeUnsignedInt, driver.TypeUnsignedIntVec2, driver.TypeUnsignedIntVec3, driver.TypeUnsignedIntVec4},
	ir.ScalarBool:  {driver.TypeBool, driver.TypeBoolVec2, driver.TypeBoolVec3, driver.TypeBoolVec4},
}

func scalarTypeID(k ir.ScalarKind, n int) (driver.TypeID, bool) {
	ids, ok := scalarTypeIDs[k]
	if !ok || n < 1 || n > 4 {
		return 0, false
	}
	return ids[n-1], true
}

var matrixTypeIDs = [3][3]driver.TypeID{
	{driver.TypeFloatMat2, driver.TypeFloatMat2x3, driver.TypeFloatMat2x4},
	{driver.TypeFloatMat3x2, driver.TypeFloatMat3, driver.TypeFloatMat3x4},
	{driver.TypeFloatMat4x2, driver.TypeFloatMat4x3, driver.TypeFloatMat4},
}

func matrixTypeID(cols, rows int) (driver.TypeID, bool) {
	if cols < 2 || cols > 4 || rows < 2 || rows > 4 {
		return 0, false
	}
	return matrixTypeIDs[cols-2][rows-2], true
}

// imageTypeID maps a texture to its combined sampler type. The IR does not
// carry the sampled component type, so sampled textures are float samplers.
func imageTypeID(t ir.ImageType) (driver.TypeID, bool) {
	if t.Multisampled {
		return 0, false
	}
	depth := t.Class == ir.ImageClassDepth
	if t.Class != ir.ImageClassSampled && !depth {
		return 0, false
	}
	switch {
	case t.Dim == ir.Dim2D && !t.Arrayed && depth:
		return driver.TypeSampler2DShadow, true
	case t.Dim == ir.Dim2D && !t.Arrayed:
		return driver.TypeSampler2D, true
	case t.Dim == ir.Dim2D && depth:
		return driver.TypeSampler2DArrayShadow, true
	case t.Dim == ir.Dim2D:
		return driver.TypeSampler2DArray, true
	case t.Dim == ir.Dim3D && !t.Arrayed && !depth:
		return driver.TypeSampler3D, true
	case t.Dim == ir.DimCube && !t.Arrayed && depth:
		return driver.TypeSamplerCubeShadow, true
	case t.Dim == ir.DimCube && !t.Arrayed:
		return driver.TypeSamplerCube, true
	}
	return 0, false
}

// location is one user-defined shader interface variable.
type location struct {
	name     string
	location uint32
	typ      driver.TypeID
}

// bindings collects the location-bound variables of an argument or result,
// descending into struct members.
func bindings(m *ir.Module, name string, h ir.TypeHandle, b *ir.Binding, out []location) ([]location, error) {
	if b != nil {
		lb, ok := (*b).(ir.LocationBinding)
		if !ok {
			return out, nil
		}
		id, ok := typeID(m, h)
		if !ok {
			return nil, fmt.Errorf("%s has no WebGL2 type", name)
		}
		return append(out, location{name: name, location: lb.Location, typ: id}), nil
	}

	st, ok := structType(m, h)
	if !ok {
		return out, nil
	}
	var err error
	for _, mem := range st.Members {
		out, err = bindings(m, mem.Name, mem.Type, mem.Binding, out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func inputs(m *ir.Module, fn *ir.Function) ([]location, error) {
	var out []location
	var err error
	for _, arg := range fn.Arguments {
		out, err = bindings(m, arg.Name, arg.Type, arg.Binding, out)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func outputs(m *ir.Module, fn *ir.Function) ([]location, error) {
	if fn.Result == nil {
		return nil, nil
	}
	return bindings(m, fn.Name, fn.Result.Type, fn.Result.Binding, nil)
}

func vertexInputs(m *ir.Module, fn *ir.Function) ([]driver.AttributeInfo, error) {
	locs, err := inputs(m, fn)
	if err != nil {
		return nil, err
	}
	attrs := make([]driver.AttributeInfo, 0, len(locs))
	for _, l := range locs {
		attrs = append(attrs, driver.AttributeInfo{
			Name:     l.name,
			Type:     l.typ,
			Size:     1,
			Location: int32(l.location),
		})
	}
	return attrs, nil
}

// matchInterface checks that every fragment input is written by the vertex
// stage with the same type.
func matchInterface(vm *ir.Module, vfn *ir.Function, fm *ir.Module, ffn *ir.Function) error {
	outs, err := outputs(vm, vfn)
	if err != nil {
		return err
	}
	ins, err := inputs(fm, ffn)
	if err != nil {
		return err
	}
	for _, in := range ins {
		i := slices.IndexFunc(outs, func(o location) bool { return o.location == in.location })
		if i < 0 {
			return fmt.Errorf("fragment input %s at location %d is not written by the vertex stage", in.name, in.location)
		}
		if outs[i].typ != in.typ {
			return fmt.Errorf("fragment input %s at location %d is %s, vertex output is %s",
				in.name, in.location, in.typ, outs[i].typ)
		}
	}
	return nil
}

// reflector accumulates the uniform interface of the stages of a program.
type reflector struct {
	uniforms  []driver.UniformInfo
	blocks    []blockLayout
	samplers  []driver.UniformInfo
	locations map[string]driver.UniformLocation
}

type blockLayout struct {
	name     string
	members  []driver.UniformInfo
	dataSize uint32
}

func (r *reflector) addGlobals(m *ir.Module) error {
	for _, g := range m.GlobalVariables {
		switch g.Space {
		case ir.SpaceUniform:
			b, err := layoutBlock(m, g)
			if err != nil {
				return err
			}
			if err := r.addBlock(b); err != nil {
				return err
			}
		case ir.SpaceHandle:
			if int(g.Type) >= len(m.Types) {
				continue
			}
			if _, isSampler := m.Types[g.Type].Inner.(ir.SamplerType); isSampler {
				// Sampler state comes from sampler objects bound to units.
				continue
			}
			id, ok := typeID(m, g.Type)
			if !ok {
				return fmt.Errorf("texture %s has no WebGL2 sampler type", g.Name)
			}
			r.addSampler(g.Name, id)
		case ir.SpaceStorage:
			return fmt.Errorf("storage buffer %s is not available in WebGL2", g.Name)
		}
	}
	return nil
}

func (r *reflector) addBlock(b blockLayout) error {
	for _, have := range r.blocks {
		if have.name != b.name {
			continue
		}
		if !slices.Equal(have.members, b.members) {
			return fmt.Errorf("uniform block %s is declared differently in the vertex and fragment stages", b.name)
		}
		return nil
	}
	r.blocks = append(r.blocks, b)
	return nil
}

func (r *reflector) addSampler(name string, id driver.TypeID) {
	if _, dup := r.locations[name]; dup {
		return
	}
	r.locations[name] = driver.UniformLocation(len(r.samplers))
	r.samplers = append(r.samplers, driver.UniformInfo{
		Name:         name,
		Type:         id,
		Size:         1,
		BlockIndex:   -1,
		Offset:       -1,
		ArrayStride:  -1,
		MatrixStride: -1,
	})
}

// blockInfos finalizes the uniform list: block members in block order,
// then samplers.
func (r *reflector) blockInfos() []driver.UniformBlockInfo {
	infos := make([]driver.UniformBlockInfo, len(r.blocks))
	r.uniforms = r.uniforms[:0]
	for i, b := range r.blocks {
		info := driver.UniformBlockInfo{Name: b.name, Index: uint32(i), DataSize: int32(b.dataSize)}
		for _, m := range b.members {
			m.BlockIndex = int32(i)
			info.ActiveUniforms = append(info.ActiveUniforms, uint32(len(r.uniforms)))
			r.uniforms = append(r.uniforms, m)
		}
		infos[i] = info
	}
	r.uniforms = append(r.uniforms, r.samplers...)
	return infos
}

// layoutBlock computes the std140 layout of a uniform global. A struct
// global contributes its members; any other type becomes a single member
// named after the global.
func layoutBlock(m *ir.Module, g ir.GlobalVariable) (blockLayout, error) {
	l := &blockLayouter{module: m}
	var end uint32
	var err error
	if st, ok := structType(m, g.Type); ok {
		end, err = l.placeStruct(st, 0, g.Name)
	} else {
		end, err = l.place(g.Type, 0, g.Name)
	}
	if err != nil {
		return blockLayout{}, fmt.Errorf("uniform block %s: %w", g.Name, err)
	}
	return blockLayout{
		name:     g.Name,
		members:  l.members,
		dataSize: memlayout.RoundUp(end, memlayout.Std140VectorAlign),
	}, nil
}

func structType(m *ir.Module, h ir.TypeHandle) (ir.StructType, bool) {
	if int(h) >= len(m.Types) {
		return ir.StructType{}, false
	}
	st, ok := m.Types[h].Inner.(ir.StructType)
	return st, ok
}

type blockLayouter struct {
	module  *ir.Module
	members []driver.UniformInfo
}

func (l *blockLayouter) placeStruct(st ir.StructType, off uint32, path string) (uint32, error) {
	start := memlayout.RoundUp(off, memlayout.Std140VectorAlign)
	off = start
	for _, mem := range st.Members {
		var err error
		off, err = l.place(mem.Type, off, path+"."+mem.Name)
		if err != nil {
			return 0, err
		}
	}
	return start + memlayout.RoundUp(off-start, memlayout.Std140VectorAlign), nil
}

func (l *blockLayouter) place(h ir.TypeHandle, off uint32, path string) (uint32, error) {
	if int(h) >= len(l.module.Types) {
		return 0, fmt.Errorf("%s: unknown type %d", path, h)
	}
	inner := l.module.Types[h].Inner

	if id, ok := typeID(l.module, h); ok {
		k, ok := reflection.UnitKind(id)
		if !ok {
			return 0, fmt.Errorf("%s: %s cannot be a block member", path, id)
		}
		u := memlayout.Std140(k, memlayout.ColumnMajor)
		off = memlayout.RoundUp(off, u.Alignment())
		l.add(path, id, 1, off, u)
		return off + u.Size(), nil
	}

	switch t := inner.(type) {
	case ir.StructType:
		return l.placeStruct(t, off, path)

	case ir.ArrayType:
		if t.Size.Constant == nil {
			return 0, fmt.Errorf("%s: runtime-sized arrays are not supported", path)
		}
		n := *t.Size.Constant
		if id, ok := typeID(l.module, t.Base); ok {
			k, ok := reflection.UnitKind(id)
			if !ok {
				return 0, fmt.Errorf("%s: %s cannot be a block member", path, id)
			}
			u := memlayout.Std140Array(k, memlayout.ColumnMajor, n)
			off = memlayout.RoundUp(off, u.Alignment())
			l.add(path+"[0]", id, int(n), off, u)
			return off + u.Size(), nil
		}
		st, ok := structType(l.module, t.Base)
		if !ok {
			return 0, fmt.Errorf("%s: arrays of arrays are not supported", path)
		}
		for i := uint32(0); i < n; i++ {
			var err error
			off, err = l.placeStruct(st, off, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return 0, err
			}
		}
		return off, nil
	}
	return 0, fmt.Errorf("%s: unsupported block member type", path)
}

func (l *blockLayouter) add(name string, id driver.TypeID, size int, off uint32, u memlayout.UnitLayout) {
	l.members = append(l.members, driver.UniformInfo{
		Name:         name,
		Type:         id,
		Size:         size,
		Offset:       int32(off),
		ArrayStride:  int32(u.ArrayStride),
		MatrixStride: int32(u.MatrixStride),
		RowMajor:     u.Order == memlayout.RowMajor,
	})
}

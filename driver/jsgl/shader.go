// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build js && wasm

package jsgl

import (
	"fmt"
	"strings"
	"syscall/js"

	"github.com/gogpu/glitz"
	"github.com/gogpu/glitz/driver"
)

var shaderTypes = map[driver.ShaderStage]int{
	driver.StageVertex:   0x8B31,
	driver.StageFragment: 0x8B30,
}

// CreateShader compiles a GLSL ES 3.00 or WGSL shader.
func (d *Device) CreateShader(stage driver.ShaderStage, source string) (driver.ShaderID, error) {
	src, err := translate(stage, source)
	if err != nil {
		glitz.Logger().Debug("jsgl: shader translation failed", "stage", stage, "err", err)
		return driver.InvalidID, err
	}
	s := d.gl.Call("createShader", shaderTypes[stage])
	id, err := d.track(s, driver.ObjectShader)
	if err != nil {
		return driver.InvalidID, err
	}
	d.gl.Call("shaderSource", s, src)
	d.gl.Call("compileShader", s)
	if !d.gl.Call("getShaderParameter", s, glCompileStatus).Truthy() {
		log := d.gl.Call("getShaderInfoLog", s).String()
		d.Delete(driver.ObjectShader, id)
		return driver.InvalidID, fmt.Errorf("%w: %s: %s", driver.ErrCompileFailed, stage, log)
	}
	return driver.ShaderID(id), nil
}

// LinkProgram links p.
func (d *Device) LinkProgram(p driver.ProgramID) error {
	prog := d.obj(uint64(p))
	if prog.IsNull() {
		return fmt.Errorf("%w: program %d", driver.ErrUnknownObject, p)
	}
	d.gl.Call("linkProgram", prog)
	if !d.gl.Call("getProgramParameter", prog, glLinkStatus).Truthy() {
		log := d.gl.Call("getProgramInfoLog", prog).String()
		glitz.Logger().Debug("jsgl: link failed", "program", p, "log", log)
		return fmt.Errorf("%w: %s", driver.ErrLinkFailed, log)
	}
	return nil
}

func (d *Device) program(p driver.ProgramID) (js.Value, error) {
	prog := d.obj(uint64(p))
	if prog.IsNull() {
		return prog, fmt.Errorf("%w: program %d", driver.ErrUnknownObject, p)
	}
	return prog, nil
}

// ActiveAttributes returns the program's active vertex attributes.
func (d *Device) ActiveAttributes(p driver.ProgramID) ([]driver.AttributeInfo, error) {
	prog, err := d.program(p)
	if err != nil {
		return nil, err
	}
	n := d.gl.Call("getProgramParameter", prog, glActiveAttributes).Int()
	out := make([]driver.AttributeInfo, 0, n)
	for i := range n {
		info := d.gl.Call("getActiveAttrib", prog, i)
		name := info.Get("name").String()
		if strings.HasPrefix(name, "gl_") {
			continue
		}
		out = append(out, driver.AttributeInfo{
			Name:     name,
			Type:     driver.TypeID(info.Get("type").Int()),
			Size:     info.Get("size").Int(),
			Location: int32(d.gl.Call("getAttribLocation", prog, name).Int()),
		})
	}
	return out, nil
}

// ActiveUniforms returns every active uniform, block members included.
func (d *Device) ActiveUniforms(p driver.ProgramID) ([]driver.UniformInfo, error) {
	prog, err := d.program(p)
	if err != nil {
		return nil, err
	}
	n := d.gl.Call("getProgramParameter", prog, glActiveUniforms).Int()
	if n == 0 {
		return nil, nil
	}
	indices := make([]any, n)
	for i := range indices {
		indices[i] = i
	}
	query := func(pname int) js.Value {
		return d.gl.Call("getActiveUniforms", prog, js.ValueOf(indices), pname)
	}
	blocks := query(glUniformBlockIndex)
	offsets := query(glUniformOffset)
	arrayStrides := query(glUniformArrayStride)
	matrixStrides := query(glUniformMatrixStride)
	rowMajor := query(glUniformIsRowMajor)

	out := make([]driver.UniformInfo, n)
	for i := range n {
		info := d.gl.Call("getActiveUniform", prog, i)
		out[i] = driver.UniformInfo{
			Name:         info.Get("name").String(),
			Type:         driver.TypeID(info.Get("type").Int()),
			Size:         info.Get("size").Int(),
			BlockIndex:   int32(blocks.Index(i).Int()),
			Offset:       int32(offsets.Index(i).Int()),
			ArrayStride:  int32(arrayStrides.Index(i).Int()),
			MatrixStride: int32(matrixStrides.Index(i).Int()),
			RowMajor:     rowMajor.Index(i).Bool(),
		}
	}
	return out, nil
}

// ActiveUniformBlocks returns the program's active uniform blocks.
func (d *Device) ActiveUniformBlocks(p driver.ProgramID) ([]driver.UniformBlockInfo, error) {
	prog, err := d.program(p)
	if err != nil {
		return nil, err
	}
	n := d.gl.Call("getProgramParameter", prog, glActiveUniformBlocks).Int()
	out := make([]driver.UniformBlockInfo, n)
	for i := range n {
		members := d.gl.Call("getActiveUniformBlockParameter", prog, i, glUniformBlockActiveUniformIdxs)
		active := make([]uint32, members.Length())
		for j := range active {
			active[j] = uint32(members.Index(j).Int())
		}
		out[i] = driver.UniformBlockInfo{
			Name:           d.gl.Call("getActiveUniformBlockName", prog, i).String(),
			Index:          uint32(i),
			DataSize:       int32(d.gl.Call("getActiveUniformBlockParameter", prog, i, glUniformBlockDataSize).Int()),
			ActiveUniforms: active,
		}
	}
	return out, nil
}

// UniformLocation returns the location of a standalone uniform.
func (d *Device) UniformLocation(p driver.ProgramID, name string) driver.UniformLocation {
	prog, err := d.program(p)
	if err != nil {
		return driver.NoLocation
	}
	v := d.gl.Call("getUniformLocation", prog, name)
	if v.IsNull() {
		return driver.NoLocation
	}
	loc := driver.UniformLocation(d.nextLocation)
	d.nextLocation++
	d.locations[loc] = uniformLocation{program: p, value: v}
	return loc
}

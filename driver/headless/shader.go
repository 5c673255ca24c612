// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package headless

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/glitz/driver"
)

type program struct {
	attached []*shader
	linked   bool
	infoLog  string

	attributes []driver.AttributeInfo
	uniforms   []driver.UniformInfo
	blocks     []driver.UniformBlockInfo
	locations  map[string]driver.UniformLocation

	blockBindings map[uint32]uint32
	samplerUnits  map[driver.UniformLocation]int32
}

var irStages = map[driver.ShaderStage]ir.ShaderStage{
	driver.StageVertex:   ir.StageVertex,
	driver.StageFragment: ir.StageFragment,
}

// CreateShader compiles a WGSL shader. The module must declare an entry
// point for the stage.
func (d *Device) CreateShader(stage driver.ShaderStage, source string) (driver.ShaderID, error) {
	module, err := compileWGSL(stage, source)
	if err != nil {
		slogger().Debug("headless: shader compilation failed", "stage", stage, "err", err)
		return driver.InvalidID, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	id := driver.ShaderID(d.newID())
	d.shaders[id] = &shader{stage: stage, source: source, module: module}
	d.record("CreateShader", stage, id)
	return id, nil
}

func compileWGSL(stage driver.ShaderStage, source string) (*ir.Module, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", driver.ErrCompileFailed, stage, err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", driver.ErrCompileFailed, stage, err)
	}
	verrs, err := naga.Validate(module)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", driver.ErrCompileFailed, stage, err)
	}
	if len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, e := range verrs {
			msgs[i] = e.Error()
		}
		return nil, fmt.Errorf("%w: %s: %s", driver.ErrCompileFailed, stage, strings.Join(msgs, "; "))
	}
	if entryPoint(module, irStages[stage]) == nil {
		return nil, fmt.Errorf("%w: %s: no %s entry point", driver.ErrCompileFailed, stage, stage)
	}
	return module, nil
}

func entryPoint(m *ir.Module, stage ir.ShaderStage) *ir.EntryPoint {
	for i := range m.EntryPoints {
		if m.EntryPoints[i].Stage == stage {
			return &m.EntryPoints[i]
		}
	}
	return nil
}

// LinkProgram links the attached vertex and fragment shaders and computes
// the program's reflection data.
func (d *Device) LinkProgram(p driver.ProgramID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.record("LinkProgram", p)

	prog, ok := d.programs[p]
	if !ok {
		return fmt.Errorf("%w: program %d", driver.ErrUnknownObject, p)
	}
	prog.linked = false
	if err := prog.link(); err != nil {
		prog.infoLog = err.Error()
		slogger().Debug("headless: link failed", "program", p, "err", err)
		return fmt.Errorf("%w: %w", driver.ErrLinkFailed, err)
	}
	prog.linked = true
	prog.infoLog = ""
	return nil
}

func (p *program) link() error {
	var vs, fs *shader
	for _, s := range p.attached {
		switch s.stage {
		case driver.StageVertex:
			vs = s
		case driver.StageFragment:
			fs = s
		}
	}
	if vs == nil {
		return errors.New("missing vertex shader")
	}
	if fs == nil {
		return errors.New("missing fragment shader")
	}

	vep := entryPoint(vs.module, ir.StageVertex)
	fep := entryPoint(fs.module, ir.StageFragment)

	attrs, err := vertexInputs(vs.module, &vs.module.Functions[vep.Function])
	if err != nil {
		return err
	}
	if err := matchInterface(vs.module, &vs.module.Functions[vep.Function], fs.module, &fs.module.Functions[fep.Function]); err != nil {
		return err
	}

	r := &reflector{locations: make(map[string]driver.UniformLocation)}
	for _, s := range []*shader{vs, fs} {
		if err := r.addGlobals(s.module); err != nil {
			return err
		}
	}

	p.attributes = attrs
	// blockInfos fills r.uniforms.
	p.blocks = r.blockInfos()
	p.uniforms = r.uniforms
	p.locations = r.locations
	p.blockBindings = make(map[uint32]uint32)
	p.samplerUnits = make(map[driver.UniformLocation]int32)
	return nil
}

// Reflection queries.

func (d *Device) linkedProgram(p driver.ProgramID) (*program, error) {
	prog, ok := d.programs[p]
	if !ok {
		return nil, fmt.Errorf("%w: program %d", driver.ErrUnknownObject, p)
	}
	if !prog.linked {
		return nil, fmt.Errorf("%w: program %d is not linked", ErrInvalidOperation, p)
	}
	return prog, nil
}

// ActiveAttributes returns the vertex inputs of the program.
func (d *Device) ActiveAttributes(p driver.ProgramID) ([]driver.AttributeInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	prog, err := d.linkedProgram(p)
	if err != nil {
		return nil, err
	}
	return append([]driver.AttributeInfo(nil), prog.attributes...), nil
}

// ActiveUniforms returns block members followed by sampler uniforms.
func (d *Device) ActiveUniforms(p driver.ProgramID) ([]driver.UniformInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	prog, err := d.linkedProgram(p)
	if err != nil {
		return nil, err
	}
	return append([]driver.UniformInfo(nil), prog.uniforms...), nil
}

// ActiveUniformBlocks returns the uniform blocks of the program.
func (d *Device) ActiveUniformBlocks(p driver.ProgramID) ([]driver.UniformBlockInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	prog, err := d.linkedProgram(p)
	if err != nil {
		return nil, err
	}
	out := make([]driver.UniformBlockInfo, len(prog.blocks))
	for i, b := range prog.blocks {
		b.ActiveUniforms = append([]uint32(nil), b.ActiveUniforms...)
		out[i] = b
	}
	return out, nil
}

// UniformLocation returns the location of a sampler uniform.
func (d *Device) UniformLocation(p driver.ProgramID, name string) driver.UniformLocation {
	d.mu.Lock()
	defer d.mu.Unlock()
	prog, err := d.linkedProgram(p)
	if err != nil {
		return driver.NoLocation
	}
	if loc, ok := prog.locations[name]; ok {
		return loc
	}
	return driver.NoLocation
}

// BlockBinding returns the binding assigned to a uniform block.
func (d *Device) BlockBinding(p driver.ProgramID, blockIndex uint32) (uint32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	prog, ok := d.programs[p]
	if !ok {
		return 0, false
	}
	b, ok := prog.blockBindings[blockIndex]
	return b, ok
}

// SamplerUnit returns the texture unit assigned to a sampler uniform.
func (d *Device) SamplerUnit(p driver.ProgramID, loc driver.UniformLocation) (int32, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	prog, ok := d.programs[p]
	if !ok {
		return 0, false
	}
	u, ok := prog.samplerUnits[loc]
	return u, ok
}

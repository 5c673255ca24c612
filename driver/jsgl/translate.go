// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package jsgl

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
	"github.com/gogpu/naga/ir"

	"github.com/gogpu/glitz/driver"
)

var irStages = map[driver.ShaderStage]ir.ShaderStage{
	driver.StageVertex:   ir.StageVertex,
	driver.StageFragment: ir.StageFragment,
}

// GLSL ES 3.00 has no binding layout qualifier; bindings are assigned after
// linking.
var bindingQualifier = regexp.MustCompile(`layout\s*\(\s*binding\s*=\s*\d+\s*\)\s*`)

// translate returns source unchanged if it is GLSL, and the GLSL ES 3.00
// translation of the stage's entry point if it is WGSL.
func translate(stage driver.ShaderStage, source string) (string, error) {
	if strings.HasPrefix(strings.TrimSpace(source), "#version") {
		return source, nil
	}
	ast, err := naga.Parse(source)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", driver.ErrCompileFailed, stage, err)
	}
	module, err := naga.LowerWithSource(ast, source)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", driver.ErrCompileFailed, stage, err)
	}
	entry := ""
	for _, ep := range module.EntryPoints {
		if ep.Stage == irStages[stage] {
			entry = ep.Name
			break
		}
	}
	if entry == "" {
		return "", fmt.Errorf("%w: %s: no %s entry point", driver.ErrCompileFailed, stage, stage)
	}
	out, _, err := glsl.Compile(module, glsl.Options{
		LangVersion:        glsl.VersionES300,
		EntryPoint:         entry,
		ForceHighPrecision: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", driver.ErrCompileFailed, stage, err)
	}
	return bindingQualifier.ReplaceAllString(out, ""), nil
}

package pipeline

import (
	"fmt"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/reflection"
	"github.com/gogpu/glitz/resources"
	"github.com/gogpu/glitz/state"
)

// Stage is a state of the pipeline build machine.
type Stage uint8

// Build stages, in transition order. StageFailed is terminal.
const (
	StageUnbuilt Stage = iota
	StageShadersAttached
	StageLinked
	StageReflectionComplete
	StageValidated
	StageFailed
)

// String returns the stage name.
func (s Stage) String() string {
	switch s {
	case StageUnbuilt:
		return "unbuilt"
	case StageShadersAttached:
		return "shaders attached"
	case StageLinked:
		return "linked"
	case StageReflectionComplete:
		return "reflection complete"
	case StageValidated:
		return "validated"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Machine drives one pipeline build attempt. A Machine is single use.
type Machine struct {
	desc    *Descriptor
	stage   Stage
	program driver.ProgramID

	reflected *reflection.Program
	plan      []resources.SlotBinding
}

// NewMachine returns a machine in StageUnbuilt for desc.
func NewMachine(desc *Descriptor) *Machine {
	return &Machine{desc: desc}
}

// Stage returns the current stage.
func (m *Machine) Stage() Stage { return m.stage }

// advance moves to the next stage. Stages are never re-entered.
func (m *Machine) advance(to Stage) {
	if m.stage == StageFailed || to != m.stage+1 {
		panic(fmt.Sprintf("pipeline: invalid stage transition %s -> %s", m.stage, to))
	}
	m.stage = to
}

// fail moves to StageFailed and deletes the program created so far.
func (m *Machine) fail(conn *state.Connection, attempted Stage, err error) error {
	if m.program != driver.InvalidID {
		conn.DeleteObject(driver.ObjectProgram, uint64(m.program))
		m.program = driver.InvalidID
	}
	m.stage = StageFailed
	slogger().Debug("pipeline: build failed", "stage", attempted, "error", err)
	return &BuildError{Stage: attempted, Err: err}
}

// Run drives the machine from StageUnbuilt to StageValidated and returns
// the pipeline. On failure the machine ends in StageFailed and no driver
// object created by the attempt survives.
func (m *Machine) Run(conn *state.Connection) (*Pipeline, error) {
	if m.stage != StageUnbuilt {
		panic("pipeline: machine run twice")
	}
	steps := []struct {
		to  Stage
		run func(*state.Connection) error
	}{
		{StageShadersAttached, m.attachShaders},
		{StageLinked, m.link},
		{StageReflectionComplete, m.reflect},
		{StageValidated, m.validate},
	}
	for _, s := range steps {
		if err := s.run(conn); err != nil {
			return nil, m.fail(conn, s.to, err)
		}
		m.advance(s.to)
	}
	return m.finish(conn), nil
}

func (m *Machine) attachShaders(conn *state.Connection) error {
	vs, fs := m.desc.vertexShader, m.desc.fragmentShader
	if vs.stage != driver.StageVertex || fs.stage != driver.StageFragment {
		return ErrShaderStage
	}
	if vs.ContextID() != conn.ID() || fs.ContextID() != conn.ID() {
		return fmt.Errorf("%w: shader", ErrForeignObject)
	}
	p, err := conn.Device().CreateProgram()
	if err != nil {
		return err
	}
	m.program = p
	conn.Device().AttachShader(p, vs.id)
	conn.Device().AttachShader(p, fs.id)
	return nil
}

func (m *Machine) link(conn *state.Connection) error {
	return conn.Device().LinkProgram(m.program)
}

func (m *Machine) reflect(conn *state.Connection) error {
	r, err := reflection.Reflect(conn.Device(), m.program)
	if err != nil {
		return err
	}
	m.reflected = r
	return nil
}

func (m *Machine) validate(conn *state.Connection) error {
	if err := m.desc.vertexLayout.CheckCompatibility(m.reflected.Attributes); err != nil {
		return err
	}
	rl := m.desc.resourceLayout
	limits := conn.Limits()
	if rl.Buffers() > limits.MaxUniformBufferBindings || rl.Textures() > limits.MaxCombinedTextureUnits {
		return fmt.Errorf("%w: %d buffers, %d textures", ErrTooManyBindings, rl.Buffers(), rl.Textures())
	}
	plan, err := resources.ConfirmSlotBindings(rl, m.reflected.Resources)
	if err != nil {
		return err
	}
	m.plan = plan
	return nil
}

// finish applies the binding plan and wraps the program in a Pipeline.
func (m *Machine) finish(conn *state.Connection) *Pipeline {
	dev := conn.Device()
	for _, b := range m.plan {
		switch b.Slot.Kind {
		case reflection.SlotUniformBlock:
			reflection.AssignUniformBlockBinding(dev, m.program, b.Slot.Block, b.Binding)
		case reflection.SlotTextureSampler:
			conn.UseProgram(m.program)
			reflection.AssignTextureUnit(dev, b.Slot.Sampler, b.Binding)
		}
	}

	p := &Pipeline{
		conn:      conn,
		program:   m.program,
		handle:    conn.Track(driver.ObjectProgram, uint64(m.program)),
		desc:      m.desc,
		reflected: m.reflected,
		plan:      m.plan,
	}
	p.refs.Store(1)
	slogger().Info("pipeline: created",
		"program", m.program,
		"context", conn.ID(),
		"attributes", len(m.reflected.Attributes),
		"resources", len(m.reflected.Resources),
		"hash", m.desc.hash)
	return p
}

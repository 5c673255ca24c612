package pipeline

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/internal/fnvhash"
	"github.com/gogpu/glitz/state"
)

// Shader is a compiled shader object owned by one connection.
type Shader struct {
	conn     *state.Connection
	stage    driver.ShaderStage
	id       driver.ShaderID
	handle   state.Handle
	hash     uint64
	released atomic.Bool
}

// CompileShader creates and compiles a shader object. Compile errors wrap
// driver.ErrCompileFailed.
func CompileShader(conn *state.Connection, stage driver.ShaderStage, source string) (*Shader, error) {
	id, err := conn.Device().CreateShader(stage, source)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %s shader: %w", stage, err)
	}
	h := fnvhash.New()
	fnvhash.WriteUint32(h, uint32(stage))
	fnvhash.WriteString(h, source)

	s := &Shader{
		conn:   conn,
		stage:  stage,
		id:     id,
		handle: conn.Track(driver.ObjectShader, uint64(id)),
		hash:   h.Sum64(),
	}
	slogger().Debug("pipeline: shader compiled", "stage", stage, "shader", id, "context", conn.ID())
	return s, nil
}

// Stage returns the shader's stage.
func (s *Shader) Stage() driver.ShaderStage { return s.stage }

// ID returns the driver shader id.
func (s *Shader) ID() driver.ShaderID { return s.id }

// ContextID returns the id of the owning connection.
func (s *Shader) ContextID() uint64 { return s.conn.ID() }

// Hash returns the hash of the shader's stage and source.
func (s *Shader) Hash() uint64 { return s.hash }

// Release queues the shader object for deletion. Programs already linked
// with it are unaffected. Release is safe to call from any goroutine and
// more than once.
func (s *Shader) Release() {
	if s.released.Swap(true) {
		return
	}
	s.conn.Release(s.handle)
}

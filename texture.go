package glitz

import (
	"fmt"
	"image"
	"math/bits"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/state"
	"github.com/gogpu/glitz/task"
)

// TextureDescriptor describes a texture's storage.
type TextureDescriptor struct {
	Format gputypes.TextureFormat
	Width  int
	Height int

	// Depth is the depth of a 3D texture or the layer count of a 2D array
	// texture. It is ignored for 2D and cube textures.
	Depth int

	// Levels is the number of mip levels. Zero means one level.
	Levels int
}

// Texture is a texture owned by a context.
type Texture struct {
	ctx      *Context
	id       driver.TextureID
	handle   state.Handle
	target   driver.TextureTarget
	info     driver.FormatInfo
	desc     TextureDescriptor
	released atomic.Bool
}

func maxLevels(w, h, d int) int {
	return bits.Len(uint(max(w, h, d)))
}

// CreateTexture2D creates a two-dimensional texture.
func (c *Context) CreateTexture2D(desc TextureDescriptor) (*Texture, error) {
	desc.Depth = 1
	return c.createTexture(driver.Texture2D, desc)
}

// CreateTexture2DArray creates an array of Depth two-dimensional layers.
func (c *Context) CreateTexture2DArray(desc TextureDescriptor) (*Texture, error) {
	return c.createTexture(driver.Texture2DArray, desc)
}

// CreateTexture3D creates a three-dimensional texture.
func (c *Context) CreateTexture3D(desc TextureDescriptor) (*Texture, error) {
	return c.createTexture(driver.Texture3D, desc)
}

// CreateTextureCube creates a cube map with square faces of Width texels.
func (c *Context) CreateTextureCube(desc TextureDescriptor) (*Texture, error) {
	if desc.Width != desc.Height {
		return nil, fmt.Errorf("%w: cube faces must be square, got %dx%d", ErrInvalidSize, desc.Width, desc.Height)
	}
	desc.Depth = 6
	return c.createTexture(driver.TextureCubeMap, desc)
}

func (c *Context) createTexture(target driver.TextureTarget, desc TextureDescriptor) (*Texture, error) {
	info, ok := driver.LookupFormat(desc.Format)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, desc.Format)
	}
	if desc.Width <= 0 || desc.Height <= 0 || desc.Depth <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidSize, desc.Width, desc.Height, desc.Depth)
	}
	if desc.Levels == 0 {
		desc.Levels = 1
	}
	mipDepth := 1
	if target == driver.Texture3D {
		mipDepth = desc.Depth
	}
	if limit := maxLevels(desc.Width, desc.Height, mipDepth); desc.Levels < 0 || desc.Levels > limit {
		return nil, fmt.Errorf("%w: %d levels for a %dx%dx%d texture, at most %d", ErrInvalidSize, desc.Levels, desc.Width, desc.Height, mipDepth, limit)
	}

	t := &Texture{ctx: c, target: target, info: info, desc: desc}
	err := c.do(func(conn *state.Connection) error {
		id, err := conn.Device().CreateTexture()
		if err != nil {
			return fmt.Errorf("glitz: create texture: %w", err)
		}
		t.id = id
		t.handle = conn.Track(driver.ObjectTexture, uint64(id))
		conn.SetActiveTextureLRU()
		conn.BindTexture(target, id)
		conn.Device().TexStorage(target, desc.Levels, desc.Format, desc.Width, desc.Height, desc.Depth)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ContextID returns the id of the owning context.
func (t *Texture) ContextID() uint64 { return t.ctx.ID() }

// TextureID returns the driver texture id.
func (t *Texture) TextureID() driver.TextureID { return t.id }

// Target returns the texture target.
func (t *Texture) Target() driver.TextureTarget { return t.target }

// SampleClass returns the kind of value sampling the texture yields.
func (t *Texture) SampleClass() driver.SampleClass { return t.info.Class }

// Descriptor returns the texture's storage description.
func (t *Texture) Descriptor() TextureDescriptor { return t.desc }

// LevelSize returns the dimensions of a mip level.
func (t *Texture) LevelSize(level int) (w, h, d int) {
	w = max(t.desc.Width>>level, 1)
	h = max(t.desc.Height>>level, 1)
	d = t.desc.Depth
	if t.target == driver.Texture3D {
		d = max(d>>level, 1)
	}
	return w, h, d
}

// Release queues the texture for deletion. Release is idempotent.
func (t *Texture) Release() {
	if t.released.Swap(true) {
		return
	}
	t.ctx.conn.Release(t.handle)
}

// Upload returns a task replacing a whole mip level with data, tightly
// packed in the format's client layout. Layers and cube faces follow each
// other in order.
func (t *Texture) Upload(level int, data []byte) (task.Task[struct{}], error) {
	if t.released.Load() {
		return nil, ErrReleased
	}
	if level < 0 || level >= t.desc.Levels {
		return nil, fmt.Errorf("%w: level %d of %d", ErrInvalidSize, level, t.desc.Levels)
	}
	w, h, d := t.LevelSize(level)
	if want := w * h * d * t.info.BytesPerTexel; len(data) != want {
		return nil, fmt.Errorf("%w: level %d needs %d bytes, got %d", ErrInvalidSize, level, want, len(data))
	}
	return task.Func(task.ID(t.ctx.ID()), func(conn *state.Connection) struct{} {
		t.bindScratch(conn)
		conn.Device().TexSubImage(t.target, level, 0, 0, 0, w, h, d, t.desc.Format, data)
		return struct{}{}
	}), nil
}

// GenerateMipmaps returns a task filling every level below the first from
// level 0 on the GPU.
func (t *Texture) GenerateMipmaps() task.Task[struct{}] {
	return task.Func(task.ID(t.ctx.ID()), func(conn *state.Connection) struct{} {
		t.bindScratch(conn)
		conn.Device().GenerateMipmap(t.target)
		return struct{}{}
	})
}

// bindScratch binds the texture on the least recently used unit so that
// textures bound for drawing stay bound.
func (t *Texture) bindScratch(conn *state.Connection) {
	conn.SetActiveTextureLRU()
	conn.BindTexture(t.target, t.id)
}

// UploadImage returns a task replacing every level of a 2D RGBA8 texture
// with img. The image is scaled to the texture size if needed and the mip
// chain is downsampled on the CPU.
func (t *Texture) UploadImage(img image.Image) (task.Task[struct{}], error) {
	if t.target != driver.Texture2D || t.info.BytesPerTexel != 4 || t.info.Class != driver.SampleFloat {
		return nil, fmt.Errorf("%w: images upload into 2D 8-bit RGBA textures only", ErrUnsupportedFormat)
	}
	levels := mipChain(img, t.desc.Width, t.desc.Height, t.desc.Levels)
	uploads := make([]task.Task[struct{}], len(levels))
	for i, l := range levels {
		u, err := t.Upload(i, l.Pix)
		if err != nil {
			return nil, err
		}
		uploads[i] = u
	}
	return task.Map(task.SequenceAll(uploads...), func([]struct{}) struct{} { return struct{}{} }), nil
}

// mipChain converts img to w x h RGBA and derives the smaller levels, each
// scaled from the one above.
func mipChain(img image.Image, w, h, levels int) []*image.RGBA {
	out := make([]*image.RGBA, levels)
	base := image.NewRGBA(image.Rect(0, 0, w, h))
	if img.Bounds().Dx() == w && img.Bounds().Dy() == h {
		draw.Draw(base, base.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(base, base.Bounds(), img, img.Bounds(), draw.Src, nil)
	}
	out[0] = base
	for i := 1; i < levels; i++ {
		prev := out[i-1]
		next := image.NewRGBA(image.Rect(0, 0, max(w>>i, 1), max(h>>i, 1)))
		draw.ApproxBiLinear.Scale(next, next.Bounds(), prev, prev.Bounds(), draw.Src, nil)
		out[i] = next
	}
	return out
}

// CreateTexture2DFromImage creates an RGBA8 texture the size of img and
// uploads it. With mipmaps the full mip chain is allocated and filled.
func (c *Context) CreateTexture2DFromImage(img image.Image, srgb, mipmaps bool) (*Texture, error) {
	b := img.Bounds()
	desc := TextureDescriptor{Format: gputypes.TextureFormatRGBA8Unorm, Width: b.Dx(), Height: b.Dy()}
	if srgb {
		desc.Format = gputypes.TextureFormatRGBA8UnormSrgb
	}
	if mipmaps {
		desc.Levels = maxLevels(desc.Width, desc.Height, 1)
	}
	t, err := c.CreateTexture2D(desc)
	if err != nil {
		return nil, err
	}
	up, err := t.UploadImage(img)
	if err != nil {
		t.Release()
		return nil, err
	}
	if _, err := Submit(c, up); err != nil {
		t.Release()
		return nil, err
	}
	return t, nil
}

package glbackend

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/zmann/noiseg8/engine/assets"
	"github.com/zmann/noiseg8/engine/colors"
	"github.com/zmann/noiseg8/engine/core"
	"github.com/zmann/noiseg8/engine/ui"
)

type glTexture struct {
	name          uint32
	width, height int
}

// GLPainter draws ui primitives with an OpenGL 3.3 core context.
type GLPainter struct {
	program  uint32
	vao      uint32
	vbo      uint32
	ebo      uint32
	uScreen  int32
	uTex     int32
	maxSide  int
	textures map[ui.TextureID]glTexture
	log      *slog.Logger
}

// NewGLPainter loads GL entry points through ctx and compiles the shader.
// The context must be current.
func NewGLPainter(ctx core.GLContext, log *slog.Logger) (Painter, error) {
	if err := gl.InitWithProcAddrFunc(ctx.GetProcAddress); err != nil {
		return nil, fmt.Errorf("load gl: %w", err)
	}
	log.Info("GL", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	vs, err := assets.LoadShader("ui.vert")
	if err != nil {
		return nil, err
	}
	fs, err := assets.LoadShader("ui.frag")
	if err != nil {
		return nil, err
	}

	p := &GLPainter{textures: map[ui.TextureID]glTexture{}, log: log}
	p.program, err = makeProgram(vs, fs)
	if err != nil {
		return nil, err
	}
	p.uScreen = gl.GetUniformLocation(p.program, gl.Str("uScreenSize\x00"))
	p.uTex = gl.GetUniformLocation(p.program, gl.Str("uTex\x00"))

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.GenBuffers(1, &p.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)

	// layout(location = 0) in vec2 aPos;
	// layout(location = 1) in vec2 aUV;
	// layout(location = 2) in vec4 aColor; (normalized u8)
	stride := int32(unsafe.Sizeof(ui.Vertex{}))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 4, gl.UNSIGNED_BYTE, true, stride, 4*4)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	var maxSide int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxSide)
	p.maxSide = int(maxSide)

	if e := gl.GetError(); e != gl.NO_ERROR {
		p.Destroy()
		return nil, fmt.Errorf("gl error 0x%x during painter setup", e)
	}
	return p, nil
}

func (p *GLPainter) MaxTextureSide() int { return p.maxSide }

func (p *GLPainter) Clear(size core.PhySize, c colors.Color) {
	gl.Disable(gl.SCISSOR_TEST)
	gl.Viewport(0, 0, int32(size.Width), int32(size.Height))
	gl.ClearColor(c.R(), c.G(), c.B(), c.A())
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (p *GLPainter) SetTexture(id ui.TextureID, delta ui.ImageDelta) {
	img := delta.Image
	if img.Width <= 0 || img.Height <= 0 || len(img.Pixels) < img.Width*img.Height*4 {
		p.log.Warn("ignoring malformed texture delta", "texture", id, "w", img.Width, "h", img.Height)
		return
	}
	if img.Width > p.maxSide || img.Height > p.maxSide {
		p.log.Warn("texture exceeds max side", "texture", id, "w", img.Width, "h", img.Height, "max", p.maxSide)
		return
	}

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	tex, ok := p.textures[id]
	if delta.IsWhole() {
		if !ok {
			gl.GenTextures(1, &tex.name)
		}
		gl.BindTexture(gl.TEXTURE_2D, tex.name)
		filter := int32(gl.LINEAR)
		if delta.Filter == ui.FilterNearest {
			filter = gl.NEAREST
		}
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(img.Width), int32(img.Height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels))
		tex.width, tex.height = img.Width, img.Height
		p.textures[id] = tex
	} else {
		if !ok {
			p.log.Warn("partial update of unknown texture", "texture", id)
			return
		}
		gl.BindTexture(gl.TEXTURE_2D, tex.name)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(delta.Pos[0]), int32(delta.Pos[1]),
			int32(img.Width), int32(img.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pixels))
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (p *GLPainter) PaintPrimitives(size core.PhySize, ppp float32, prims []ui.ClippedPrimitive) {
	if size.Width == 0 || size.Height == 0 || ppp <= 0 {
		return
	}
	w, h := float32(size.Width), float32(size.Height)

	gl.Viewport(0, 0, int32(size.Width), int32(size.Height))
	gl.Enable(gl.BLEND)
	// Vertex colours and textures are premultiplied.
	gl.BlendFuncSeparate(gl.ONE, gl.ONE_MINUS_SRC_ALPHA, gl.ONE_MINUS_DST_ALPHA, gl.ONE)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.UseProgram(p.program)
	gl.Uniform2f(p.uScreen, w/ppp, h/ppp)
	gl.Uniform1i(p.uTex, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, p.ebo)

	for i := range prims {
		prim := &prims[i]
		if prim.Mesh.IsEmpty() {
			continue
		}
		tex, ok := p.textures[prim.Mesh.Texture]
		if !ok {
			p.log.Debug("skipping primitive with unknown texture", "texture", prim.Mesh.Texture)
			continue
		}

		// Clip rect in pixels, GL origin bottom-left.
		x0 := clampPx(float32(math.Round(float64(prim.Clip.Min.X*ppp))), w)
		y0 := clampPx(float32(math.Round(float64(prim.Clip.Min.Y*ppp))), h)
		x1 := clampPx(float32(math.Round(float64(prim.Clip.Max.X*ppp))), w)
		y1 := clampPx(float32(math.Round(float64(prim.Clip.Max.Y*ppp))), h)
		if x1 <= x0 || y1 <= y0 {
			continue
		}
		gl.Scissor(int32(x0), int32(h-y1), int32(x1-x0), int32(y1-y0))

		gl.BindTexture(gl.TEXTURE_2D, tex.name)
		verts, inds := prim.Mesh.Vertices, prim.Mesh.Indices
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*int(unsafe.Sizeof(ui.Vertex{})), unsafe.Pointer(&verts[0]), gl.STREAM_DRAW)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(inds)*4, gl.Ptr(inds), gl.STREAM_DRAW)
		gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(inds)), gl.UNSIGNED_INT, 0)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)
	gl.Disable(gl.SCISSOR_TEST)
}

func (p *GLPainter) FreeTexture(id ui.TextureID) {
	tex, ok := p.textures[id]
	if !ok {
		return
	}
	gl.DeleteTextures(1, &tex.name)
	delete(p.textures, id)
}

// Destroy deletes every GL object the painter created.
func (p *GLPainter) Destroy() {
	for id, tex := range p.textures {
		gl.DeleteTextures(1, &tex.name)
		delete(p.textures, id)
	}
	if p.ebo != 0 {
		gl.DeleteBuffers(1, &p.ebo)
		p.ebo = 0
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
		p.vbo = 0
	}
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
		p.vao = 0
	}
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

func clampPx(v, hi float32) float32 {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Shader utilities ---

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", log)
	}
	return sh, nil
}

func makeProgram(vsSrc, fsSrc string) (uint32, error) {
	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return 0, err
	}
	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return 0, fmt.Errorf("program link error: %s", log)
	}
	return prog, nil
}

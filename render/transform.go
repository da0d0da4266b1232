package render

import "math"

// Affine is a 2D affine map: x' = A*x + B*y + TX, y' = C*x + D*y + TY
// Element layout matches ebiten.GeoM rows so backends copy it directly
type Affine struct {
	A, B, TX float64
	C, D, TY float64
}

// Identity returns the identity transform
func Identity() Affine {
	return Affine{A: 1, D: 1}
}

// Translation returns a pure translation
func Translation(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, TX: tx, TY: ty}
}

// Rotation returns a clockwise rotation in screen space (y down)
func Rotation(theta float64) Affine {
	sin, cos := math.Sincos(theta)
	return Affine{A: cos, B: -sin, C: sin, D: cos}
}

// Scaling returns an axis-aligned scale
func Scaling(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Mul returns m∘o: o is applied to points first
func (m Affine) Mul(o Affine) Affine {
	return Affine{
		A:  m.A*o.A + m.B*o.C,
		B:  m.A*o.B + m.B*o.D,
		TX: m.A*o.TX + m.B*o.TY + m.TX,
		C:  m.C*o.A + m.D*o.C,
		D:  m.C*o.B + m.D*o.D,
		TY: m.C*o.TX + m.D*o.TY + m.TY,
	}
}

// Apply maps a point
func (m Affine) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.B*y + m.TX, m.C*x + m.D*y + m.TY
}

// TransformStack is an immediate-mode save/restore transform like a 2D canvas context
// Each operation is composed onto the current transform and applies to subsequently drawn points first
type TransformStack struct {
	cur   Affine
	saved []Affine
}

// NewTransformStack starts at identity
func NewTransformStack() *TransformStack {
	return &TransformStack{cur: Identity(), saved: make([]Affine, 0, 4)}
}

func (s *TransformStack) Save() {
	s.saved = append(s.saved, s.cur)
}

// Restore pops the last saved transform; unbalanced calls reset to identity
func (s *TransformStack) Restore() {
	if len(s.saved) == 0 {
		s.cur = Identity()
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *TransformStack) Translate(tx, ty float64) {
	s.cur = s.cur.Mul(Translation(tx, ty))
}

func (s *TransformStack) Rotate(theta float64) {
	s.cur = s.cur.Mul(Rotation(theta))
}

func (s *TransformStack) Scale(sx, sy float64) {
	s.cur = s.cur.Mul(Scaling(sx, sy))
}

// Current returns the composed transform
func (s *TransformStack) Current() Affine {
	return s.cur
}

// Depth returns the number of saved transforms
func (s *TransformStack) Depth() int {
	return len(s.saved)
}

// SpriteModel is the per-sprite model matrix: scale, then rotate, then translate
func SpriteModel(x, y, w, h, rotation float64) Affine {
	return Translation(x, y).Mul(Rotation(rotation)).Mul(Scaling(w, h))
}

// Vec2 is a 2D vector
type Vec2 struct {
	X, Y float64
}

// UnitQuad is the model-space sprite quad in TL, TR, BR, BL order
var UnitQuad = [4]Vec2{{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5}}

// UnitQuadUV holds texture coordinates matching UnitQuad
var UnitQuadUV = [4]Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// QuadIndices splits the quad into two triangles
var QuadIndices = [6]uint16{0, 1, 2, 0, 2, 3}

// Viewport maps between pixel space and clip space
type Viewport struct {
	Width, Height float64
}

// ToClip maps pixels to clip space: x right in [-1,1], y up in [-1,1]
func (v Viewport) ToClip(p Vec2) Vec2 {
	return Vec2{X: 2*p.X/v.Width - 1, Y: 1 - 2*p.Y/v.Height}
}

// ToPixel is the inverse of ToClip
func (v Viewport) ToPixel(c Vec2) Vec2 {
	return Vec2{X: (c.X + 1) * v.Width / 2, Y: (1 - c.Y) * v.Height / 2}
}

// SpriteQuad runs the vertex stage: unit quad through the model matrix into clip space
func SpriteQuad(vp Viewport, x, y, w, h, rotation float64) [4]Vec2 {
	m := SpriteModel(x, y, w, h, rotation)
	var out [4]Vec2
	for i, c := range UnitQuad {
		px, py := m.Apply(c.X, c.Y)
		out[i] = vp.ToClip(Vec2{X: px, Y: py})
	}
	return out
}

// SpriteTransform composes the software placement of an iw by ih image on the stack:
// translate to the sprite centre, rotate, offset by half the size, scale the image to w by h
// The stack is left unchanged
func SpriteTransform(s *TransformStack, iw, ih, x, y, w, h, rotation float64) Affine {
	s.Save()
	defer s.Restore()
	s.Translate(x, y)
	s.Rotate(rotation)
	s.Translate(-w/2, -h/2)
	s.Scale(w/iw, h/ih)
	return s.Current()
}

// StackQuad returns the pixel corners of SpriteTransform in TL, TR, BR, BL order
func StackQuad(s *TransformStack, iw, ih, x, y, w, h, rotation float64) [4]Vec2 {
	m := SpriteTransform(s, iw, ih, x, y, w, h, rotation)
	corners := [4]Vec2{{0, 0}, {iw, 0}, {iw, ih}, {0, ih}}
	var out [4]Vec2
	for i, c := range corners {
		out[i].X, out[i].Y = m.Apply(c.X, c.Y)
	}
	return out
}

package globe

// SurfaceState tracks the one-time texture load.
type SurfaceState int

const (
	SurfaceNotLoaded SurfaceState = iota
	SurfaceLoaded
	SurfaceFailed
)

func (s SurfaceState) String() string {
	switch s {
	case SurfaceLoaded:
		return "loaded"
	case SurfaceFailed:
		return "failed"
	default:
		return "not loaded"
	}
}

// Surface is the globe mesh's texture. It moves NotLoaded -> Loaded or
// NotLoaded -> Failed exactly once; a failed surface stays failed.
type Surface struct {
	state   SurfaceState
	texture *Texture
	err     error
}

// Resolve records the load outcome. It reports whether the state changed.
func (s *Surface) Resolve(tex *Texture, err error) bool {
	if s.state != SurfaceNotLoaded {
		return false
	}
	if err != nil || tex == nil {
		s.state = SurfaceFailed
		s.err = err
		return true
	}
	s.state = SurfaceLoaded
	s.texture = tex
	return true
}

func (s *Surface) State() SurfaceState { return s.state }
func (s *Surface) Ready() bool         { return s.state == SurfaceLoaded }
func (s *Surface) Texture() *Texture   { return s.texture }
func (s *Surface) Err() error          { return s.err }

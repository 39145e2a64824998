package component

// AnimState is the coarse pose classification handed to the renderer.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimRun
	AnimJump
	AnimSwim
)

func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimRun:
		return "run"
	case AnimJump:
		return "jump"
	case AnimSwim:
		return "swim"
	default:
		return "unknown"
	}
}

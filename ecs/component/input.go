package component

// Input stores the per-step signals from the input source. Jump and Pause
// are edge-triggered: true for exactly one step per physical press.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Jump  bool
	Pause bool
}

var InputComponent = NewComponent[Input]()

// ClearEdges resets the edge-triggered signals after they were consumed.
func (i *Input) ClearEdges() {
	i.Jump = false
	i.Pause = false
}

package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pipescroller/ecs/component"
)

// FindTrigger reports whether box uses a gate of lvl this step. Pipes are
// checked first in list order and the first activated one wins; the index of
// that pipe is returned. The flag needs no input and is reported as -1.
func FindTrigger(box cp.BB, in component.Input, lvl *component.Level) (int, bool) {
	if lvl == nil {
		return 0, false
	}
	for i, p := range lvl.Pipes {
		if component.Overlaps(box, p.Bounds) && p.Activated(in) {
			return i, true
		}
	}
	if lvl.Flag != nil && component.Overlaps(box, lvl.Flag.Bounds) {
		return -1, true
	}
	return 0, false
}

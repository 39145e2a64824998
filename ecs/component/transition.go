package component

import "github.com/milk9111/pipescroller/transition"

// TransitionComponent holds the single fade effect that gates level swaps.
var TransitionComponent = NewComponent[transition.Effect]()

package reconcile

import "github.com/xriskon/librarian/internal/library"

// Observer receives progress callbacks as a pass advances. Advancement
// is strictly sequential, so implementations need no synchronization.
// The interactive front-end backs this with a progress bar; headless
// runs use NopObserver.
type Observer interface {
	// Start announces a batch of items for one section kind.
	Start(kind library.Kind, total int)
	// Advance marks one item finished, success or failure.
	Advance()
	// Finish closes the current batch.
	Finish()
}

// NopObserver ignores all progress events.
type NopObserver struct{}

func (NopObserver) Start(library.Kind, int) {}
func (NopObserver) Advance()                {}
func (NopObserver) Finish()                 {}

package chops

// Iterator describes a pull-style cursor over a data structure,
// such as the tree iterators in go.lepak.sg/bst/tree/iterator.
// It must not require closing at the end of iteration,
// as CoIterate may abandon it at any time.
type Iterator[T any] interface {
	Next() bool
	Item() T
}

// CoIterator is returned from CoIterate and abstracts
// communication with the iterating goroutine.
type CoIterator[T any] struct {
	items <-chan T
	stop  chan<- struct{}
}

// Items returns a channel on which the items from the iterator
// will be sent, in the order the iterator yields them.
// The channel is closed once the iterator is exhausted or Stop is called.
func (c CoIterator[T]) Items() <-chan T {
	return c.items
}

// Stop stops the iteration. This must not be called more than once.
// If the Items channel is closed, this doesn't need to be called.
// Stop from multiple goroutines through a sync.Once.
func (c CoIterator[T]) Stop() {
	close(c.stop)
}

// CoIterate starts coroutine-style iteration.
// The usage is as follows:
//
//	co := CoIterate[T](someTree.Iterator())
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//		}
//	}
//
// CoIterate starts a goroutine that owns iterator from then on;
// the caller must not touch iterator again. The goroutine exits
// when either Stop is called or the iteration is finished, so
// with the usage above it does not outlive the for-range loop.
//
// The goroutine only reads through iterator. If iterator walks a
// tree, the tree must not be inserted into until Items is closed.
//
// A nil iterator yields an already closed Items channel.
// If you might pass a typed nil pointer into CoIterate,
// make sure your underlying type's methods can handle
// being called with a nil receiver.
func CoIterate[T any](iterator Iterator[T]) CoIterator[T] {
	out := make(chan T)
	stop := make(chan struct{})
	co := CoIterator[T]{
		items: out,
		stop:  stop,
	}

	if iterator == nil {
		close(out)
		return co
	}

	go func(out chan<- T, stop <-chan struct{}, i Iterator[T]) {
		defer close(out)
		for i.Next() {
			select {
			case out <- i.Item():
			case <-stop:
				return
			}
		}
	}(out, stop, iterator)

	return co
}

package Queues

type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() T
	Empty() bool
}

// DoubleEnded is a Queue that can also be pushed to and popped from on the other end.
// Push and Pop act on the back and the front respectively, so it behaves like a plain
// FIFO Queue when only those are used.
type DoubleEnded[T any] interface {
	Queue[T]
	PushBack(item T)
	PushFront(item T)
	PopFront() (T, bool)
	PopBack() (T, bool)
	Size() uint
	Shrink()
	Clear()
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}

package Queues

var _ DoubleEnded[int] = (*Deque[int])(nil)

// Deque is a double-ended queue backed by a circular array.
// The zero value is an empty Deque ready to use.
type Deque[T any] struct {
	sz, head uint
	content  []T
}

// MakeDeque with room for initCap items before the first resize.
func MakeDeque[T any](initCap uint) *Deque[T] {
	return &Deque[T]{content: make([]T, initCap)}
}

func (u *Deque[T]) Empty() bool {
	return u.sz == 0
}

func (u *Deque[T]) Size() uint {
	return u.sz
}

// at maps the i-th logical position to its index in content. content must not be empty.
func (u *Deque[T]) at(i uint) uint {
	return (u.head + i) % uint(len(u.content))
}

func (u *Deque[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if end := u.head + u.sz; end <= uint(len(u.content)) {
		copy(nc, u.content[u.head:end])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:end-uint(len(u.content))])
	}
	u.content, u.head = nc, 0
}

func (u *Deque[T]) grow() {
	if u.sz == uint(len(u.content)) {
		u.resize(max(u.sz*3/2, u.sz+4))
	}
}

// Shrink the backing array to fit the current items.
func (u *Deque[T]) Shrink() {
	u.resize(u.sz | 1)
}

func (u *Deque[T]) Clear() {
	clear(u.content)
	u.head, u.sz = 0, 0
}

func (u *Deque[T]) PushBack(item T) {
	u.grow()
	u.content[u.at(u.sz)] = item
	u.sz++
}

func (u *Deque[T]) PushFront(item T) {
	u.grow()
	u.head = u.at(uint(len(u.content)) - 1)
	u.content[u.head] = item
	u.sz++
}

// PopFront returns false if the Deque is empty.
func (u *Deque[T]) PopFront() (item T, ok bool) {
	if u.sz == 0 {
		return
	}
	item, ok = u.content[u.head], true
	u.content[u.head] = *new(T)
	u.head = u.at(1)
	u.sz--
	return
}

// PopBack returns false if the Deque is empty.
func (u *Deque[T]) PopBack() (item T, ok bool) {
	if u.sz == 0 {
		return
	}
	i := u.at(u.sz - 1)
	item, ok = u.content[i], true
	u.content[i] = *new(T)
	u.sz--
	return
}

func (u *Deque[T]) Push(item T) {
	u.PushBack(item)
}

func (u *Deque[T]) Pop() (T, error) {
	if item, ok := u.PopFront(); ok {
		return item, nil
	}
	return *new(T), &EmptyQueueError{}
}

// Peek at the front. Returns the zero value if the Deque is empty.
func (u *Deque[T]) Peek() (item T) {
	if u.sz != 0 {
		item = u.content[u.head]
	}
	return
}

// PeekBack is Peek for the back end.
func (u *Deque[T]) PeekBack() (item T) {
	if u.sz != 0 {
		item = u.content[u.at(u.sz-1)]
	}
	return
}

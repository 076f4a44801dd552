// Package lru provides the recency list behind the layout cache.
package lru

import "iter"

// Node is an element of a List. It carries the key so that the owner can
// delete the matching map entry when the node is evicted.
type Node[K comparable, V any] struct {
	Key   K
	Value V

	prev *Node[K, V]
	next *Node[K, V]
}

// List is a doubly-linked list ordered by recency: the front is the most
// recently used node, the back the least recently used.
// The list is not thread-safe; callers must handle synchronization.
// The zero value is an empty list.
type List[K comparable, V any] struct {
	front *Node[K, V]
	back  *Node[K, V]
	len   int
}

// Len returns the number of nodes in the list.
func (l *List[K, V]) Len() int {
	return l.len
}

// PushFront inserts a new node at the front and returns it.
func (l *List[K, V]) PushFront(key K, value V) *Node[K, V] {
	n := &Node[K, V]{Key: key, Value: value}
	l.linkFront(n)
	return n
}

// MoveToFront marks n as the most recently used node.
func (l *List[K, V]) MoveToFront(n *Node[K, V]) {
	if n == nil || n == l.front {
		return
	}
	l.unlink(n)
	l.linkFront(n)
}

// Remove removes n from the list.
func (l *List[K, V]) Remove(n *Node[K, V]) {
	if n == nil {
		return
	}
	l.unlink(n)
}

// Back returns the least recently used node, or nil if the list is empty.
func (l *List[K, V]) Back() *Node[K, V] {
	return l.back
}

// PopBack removes and returns the least recently used node, or nil if the
// list is empty.
func (l *List[K, V]) PopBack() *Node[K, V] {
	n := l.back
	if n != nil {
		l.unlink(n)
	}
	return n
}

// Clear removes all nodes.
func (l *List[K, V]) Clear() {
	l.front, l.back, l.len = nil, nil, 0
}

// All yields the nodes from most to least recently used.
func (l *List[K, V]) All() iter.Seq[*Node[K, V]] {
	return func(yield func(*Node[K, V]) bool) {
		for n := l.front; n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

func (l *List[K, V]) linkFront(n *Node[K, V]) {
	n.prev = nil
	n.next = l.front
	if l.front != nil {
		l.front.prev = n
	} else {
		l.back = n
	}
	l.front = n
	l.len++
}

// unlink detaches n and clears its links.
func (l *List[K, V]) unlink(n *Node[K, V]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.front = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.back = n.prev
	}
	n.prev, n.next = nil, nil
	l.len--
}

package uthread

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadyQueue_AddTailSingleton(t *testing.T) {
	var q readyQueue
	a := &ThreadBlock{id: 1}
	q.addTail(a)

	require.Same(t, a, q.head)
	assert.True(t, a.singleton())
	assert.True(t, q.wellFormed())
}

func TestReadyQueue_AddTailPreservesHead(t *testing.T) {
	var q readyQueue
	a, b, c := &ThreadBlock{id: 1}, &ThreadBlock{id: 2}, &ThreadBlock{id: 3}
	q.addTail(a)
	q.addTail(b)
	q.addTail(c)

	assert.Same(t, a, q.head, "AddTail must never move the head")
	require.True(t, q.wellFormed())

	// Tail insertion order: a -> b -> c -> a.
	assert.Same(t, b, a.next)
	assert.Same(t, c, b.next)
	assert.Same(t, a, c.next)
}

func TestReadyQueue_RemoveSingleton(t *testing.T) {
	var q readyQueue
	a := &ThreadBlock{id: 1}
	q.addTail(a)
	q.remove(a)

	assert.Nil(t, q.head)
	assert.Nil(t, a.next)
	assert.Nil(t, a.previous)
}

func TestReadyQueue_RemoveHeadAdvancesHead(t *testing.T) {
	var q readyQueue
	a, b, c := &ThreadBlock{id: 1}, &ThreadBlock{id: 2}, &ThreadBlock{id: 3}
	q.addTail(a)
	q.addTail(b)
	q.addTail(c)

	q.remove(a)

	require.Same(t, b, q.head, "removing the head must advance it to the removed node's successor")
	assert.True(t, q.wellFormed())
	assert.Same(t, c, b.next)
	assert.Same(t, b, c.next)
}

func TestReadyQueue_RemoveNonHead(t *testing.T) {
	var q readyQueue
	a, b, c := &ThreadBlock{id: 1}, &ThreadBlock{id: 2}, &ThreadBlock{id: 3}
	q.addTail(a)
	q.addTail(b)
	q.addTail(c)

	q.remove(b)

	assert.Same(t, a, q.head)
	assert.True(t, q.wellFormed())
	assert.Same(t, c, a.next)
	assert.Same(t, a, c.next)
}

func TestReadyQueue_MoveToHeadRotation(t *testing.T) {
	var q readyQueue
	a, b := &ThreadBlock{id: 1}, &ThreadBlock{id: 2}
	q.addTail(a)
	q.addTail(b)

	q.moveToHead(b)

	assert.Same(t, b, q.head)
	assert.True(t, q.wellFormed(), "moveToHead must not disturb ring links")
}

func TestReadyQueue_Find(t *testing.T) {
	var q readyQueue
	a, b, c := &ThreadBlock{id: 1}, &ThreadBlock{id: 2}, &ThreadBlock{id: 3}
	q.addTail(a)
	q.addTail(b)
	q.addTail(c)

	assert.Same(t, b, q.find(2))
	assert.Nil(t, q.find(99))

	var empty readyQueue
	assert.Nil(t, empty.find(1))
}

package ecs

// Commands buffers structural changes and deferred work until every system
// of a frame has run, so systems never mutate storage mid-iteration.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	defers  []func()
	stop    bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed, after spawns and deletes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Spawn queues an entity spawn with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues an entity deletion.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// Stop asks the scheduler's Run loop to return after the current frame.
func (c *Commands) Stop() {
	c.stop = true
}

// Stopped reports whether Stop was called during the frame.
func (c *Commands) Stopped() bool {
	return c.stop
}

// Flush applies all commands to storage in order: deletes, spawns, then
// deferred functions. It resets the buffer but keeps the stop request.
func (c *Commands) Flush(storage *Storage) {
	for _, id := range c.deletes {
		storage.Delete(id)
	}

	for _, components := range c.spawns {
		storage.Spawn(components...)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.defers = c.defers[:0]
}

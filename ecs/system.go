package ecs

// System is one stage of a frame. Systems run in registration order and may
// keep their own state between frames. Exported Query and Singleton fields
// are bound to the scheduler's storage when the system is registered.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a function to System.
type SystemFunc func(frame *UpdateFrame)

func (f SystemFunc) Execute(frame *UpdateFrame) { f(frame) }

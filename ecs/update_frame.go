package ecs

// UpdateFrame carries the inputs of a single scheduler pass.
type UpdateFrame struct {
	// DeltaTime is the elapsed time since the previous frame, in seconds.
	DeltaTime float64
	Commands  *Commands
	Storage   *Storage
}

func newUpdateFrame(dt float64, storage *Storage) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		Storage:   storage,
	}
}

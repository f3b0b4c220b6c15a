package monitor

// State is the shared mutable record owned by the main loop. It is
// constructed once at startup and passed by pointer to each collaborator;
// the single-threaded loop is the only mutator, so no locking is needed.
type State struct {
	Simulation bool    // Synthetic readings instead of sampled ones
	Debug      bool    // Print intermediate measurement values
	RoomTemp   float32 // Most recent room temperature (°C)
	AlgaeTemp  float32 // Most recent algae temperature (°C)
}

// NewState returns a state record with power-up defaults.
func NewState() *State {
	return &State{}
}

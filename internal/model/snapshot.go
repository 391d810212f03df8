// internal/model/snapshot.go
package model

// Summary on stats-kartasta johdettu muistin kokonaiskäyttö.
// Limited is false when any container reports no usable memory limit;
// the total is then treated as unlimited instead of summing the rest.
type Summary struct {
	UsedMiB  float64
	LimitMiB float64
	Limited  bool
}

// Snapshot is a paired, consistent view of the process and stats maps.
// Both maps are private copies: a frozen snapshot never changes after
// capture, and a live snapshot is detached from the collector's state.
type Snapshot struct {
	Processes map[string]Process
	Stats     map[string]Stats
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Processes: make(map[string]Process, len(s.Processes)),
		Stats:     make(map[string]Stats, len(s.Stats)),
	}
	for k, v := range s.Processes {
		out.Processes[k] = v
	}
	for k, v := range s.Stats {
		out.Stats[k] = v
	}
	return out
}

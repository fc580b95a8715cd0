package crdt

// VectorClock maps a device id to that device's logical counter. It
// expresses a partial ordering of events across devices without
// relying on synchronized wall clocks.
type VectorClock map[string]int64

// Ordering is the result of comparing two vector clocks.
type Ordering int

const (
	// Equal means both clocks carry identical counters.
	Equal Ordering = iota
	// Before means the receiver happened strictly before the other.
	Before
	// After means the receiver happened strictly after the other.
	After
	// Concurrent means neither clock dominates the other.
	Concurrent
)

// New returns an empty vector clock.
func New() VectorClock {
	return make(VectorClock)
}

// Clone returns an independent copy of the clock.
func (vc VectorClock) Clone() VectorClock {
	clone := make(VectorClock, len(vc))
	for device, counter := range vc {
		clone[device] = counter
	}
	return clone
}

// Tick increments the counter for the given device and returns the
// new value.
func (vc VectorClock) Tick(deviceID string) int64 {
	vc[deviceID]++
	return vc[deviceID]
}

// Merge folds another clock into this one, keeping the maximum
// counter per device.
func (vc VectorClock) Merge(other VectorClock) {
	for device, counter := range other {
		if counter > vc[device] {
			vc[device] = counter
		}
	}
}

// Compare determines the causal ordering between two clocks.
func (vc VectorClock) Compare(other VectorClock) Ordering {
	var less, greater bool

	for device, counter := range vc {
		if counter > other[device] {
			greater = true
		}
	}
	for device, counter := range other {
		if counter > vc[device] {
			less = true
		}
	}

	switch {
	case less && greater:
		return Concurrent
	case less:
		return Before
	case greater:
		return After
	default:
		return Equal
	}
}

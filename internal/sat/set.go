package sat

// ResetSet is a set of variable IDs from 0 to N-1 that can be emptied in
// constant time. Membership is a per-element timestamp compared against the
// set's current stamp; clearing just bumps the stamp. The zero value must be
// Cleared once before its first use.
type ResetSet struct {
	addedAt []uint32
	stamp   uint32
}

// Contains returns true if v is in the set.
func (rs *ResetSet) Contains(v int) bool {
	return rs.addedAt[v] == rs.stamp
}

// Add adds v to the set.
func (rs *ResetSet) Add(v int) {
	rs.addedAt[v] = rs.stamp
}

// Clear removes all elements in constant time.
func (rs *ResetSet) Clear() {
	rs.stamp++
	if rs.stamp == 0 { // overflow
		rs.stamp = 1
		for i := range rs.addedAt {
			rs.addedAt[i] = 0
		}
	}
}

// Expand increases the capacity of the set by one element.
func (rs *ResetSet) Expand() {
	rs.addedAt = append(rs.addedAt, 0)
}

package chainmap

type Stats struct {
	Size         int
	Capacity     int
	LoadFactor   float64
	Load         float64
	UsedBuckets  int
	LongestChain int
	Resizes      int
}

// Stats walks every bucket, so it's O(capacity).
func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Size:       m.size,
		Capacity:   m.capacity,
		LoadFactor: m.loadFactor,
		Load:       float64(m.size) / float64(m.capacity),
		Resizes:    m.resizes,
	}

	for i := range m.buckets {
		n := len(m.buckets[i])
		if n == 0 {
			continue
		}

		s.UsedBuckets++
		s.LongestChain = max(s.LongestChain, n)
	}

	return s
}

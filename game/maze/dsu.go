package maze

// DisjointSet is a union/find forest over arbitrary comparable ids.
// Ids join the forest the first time they are looked up.
type DisjointSet[K comparable] struct {
	parent map[K]K
}

// NewDisjointSet creates an empty forest.
func NewDisjointSet[K comparable]() *DisjointSet[K] {
	return &DisjointSet[K]{parent: make(map[K]K)}
}

// Find returns the representative of the set containing id.
func (d *DisjointSet[K]) Find(id K) K {
	p, ok := d.parent[id]
	if !ok {
		d.parent[id] = id
		return id
	}
	if p == id {
		return id
	}
	root := d.Find(p)
	d.parent[id] = root // path compression
	return root
}

// Union merges the sets of a and b. It reports false when they were already joined.
func (d *DisjointSet[K]) Union(a, b K) bool {
	rootA, rootB := d.Find(a), d.Find(b)
	if rootA == rootB {
		return false
	}
	d.parent[rootA] = rootB
	return true
}

// Connected reports whether a and b share a representative.
func (d *DisjointSet[K]) Connected(a, b K) bool {
	return d.Find(a) == d.Find(b)
}

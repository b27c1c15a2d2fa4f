package gomoryhu

// TreeEdge is one edge of the constructed cut tree: the tree edge
// between V and its tree-parent U, carrying the min-cut weight W between
// them within the tree (not necessarily an edge of the original graph).
type TreeEdge struct {
	U int
	V int
	W int64
}

// edgeSpec records one undirected input edge for later replay into each
// iteration's fresh residual.Graph copy.
type edgeSpec struct {
	u, v int
	w    int64
}

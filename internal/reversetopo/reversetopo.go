// Package reversetopo implements the generic reverse-topological graph-walk
// engine shared by the content-graph visitor and the chunk-group walk: a
// single recursive post-order traversal with key-based deduplication and an
// in-band abort signal, parameterized over the node and dedup-key types.
package reversetopo

// ControlFlow is the per-edge decision a Visitor makes after deduplication.
type ControlFlow int

const (
	// Continue keeps walking: the node is recorded and its edges expanded.
	Continue ControlFlow = iota
	// Abort unwinds the whole walk without error; Walk reports aborted=true.
	Abort
)

// Edge pairs a node with its optional dedup key. HasKey=false disables
// dedup for this edge (it is always visited, matching the base spec's
// `edge_key = None` case).
type Edge[N any, K comparable] struct {
	Key    K
	HasKey bool
	Node   N
}

// Visitor supplies the per-node decision and expansion used by Walk.
type Visitor[N any, K comparable] interface {
	// Visit is invoked once per edge that survived deduplication. Returning
	// Abort stops the entire walk: the edge's node is neither expanded nor
	// recorded, and Walk returns no nodes.
	Visit(e Edge[N, K]) ControlFlow
	// Edges returns the outgoing edges of node. Leaves (nodes with no
	// further expansion) return (nil, nil).
	Edges(n N) ([]Edge[N, K], error)
}

// Walk performs a reverse-topological traversal starting from roots: every
// node is appended to the result only after all nodes reachable from it
// (along traversed edges) have already been appended. Duplicate edges,
// identified by Key, are suppressed at first-visit time — the second
// occurrence of a key is dropped without expansion, which is what breaks
// cycles in the underlying reference graph.
func Walk[N any, K comparable](roots []Edge[N, K], v Visitor[N, K]) (nodes []N, aborted bool, err error) {
	seen := make(map[K]struct{})
	var order []N

	var walkNode func(e Edge[N, K]) error
	walkNode = func(e Edge[N, K]) error {
		if aborted {
			return nil
		}
		if e.HasKey {
			if _, dup := seen[e.Key]; dup {
				return nil
			}
			seen[e.Key] = struct{}{}
		}

		if flow := v.Visit(e); flow == Abort {
			aborted = true
			return nil
		}

		children, cerr := v.Edges(e.Node)
		if cerr != nil {
			return cerr
		}
		for _, c := range children {
			if werr := walkNode(c); werr != nil {
				return werr
			}
			if aborted {
				return nil
			}
		}

		order = append(order, e.Node)
		return nil
	}

	for _, r := range roots {
		if werr := walkNode(r); werr != nil {
			return nil, false, werr
		}
		if aborted {
			return nil, true, nil
		}
	}
	return order, false, nil
}

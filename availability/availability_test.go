package availability

import (
	"testing"

	"github.com/tenzoki/agen/chunkgraph/asset"
)

func TestSetIncludesWalksParentChain(t *testing.T) {
	a := asset.Ident{Path: "a.js"}
	b := asset.Ident{Path: "b.js"}
	c := asset.Ident{Path: "c.js"}

	root := NewSet(nil, a)
	mid := NewSet(root, b)

	if !mid.Includes(a) {
		t.Errorf("expected mid layer to include ancestor member a")
	}
	if !mid.Includes(b) {
		t.Errorf("expected mid layer to include its own member b")
	}
	if mid.Includes(c) {
		t.Errorf("did not expect mid layer to include unrelated member c")
	}
	if root.Includes(b) {
		t.Errorf("root layer must not see its descendant's members")
	}
}

func TestSetStructuralSharing(t *testing.T) {
	a := asset.Ident{Path: "a.js"}
	root := NewSet(nil, a)

	left := NewSet(root, asset.Ident{Path: "left.js"})
	right := NewSet(root, asset.Ident{Path: "right.js"})

	if !left.Includes(a) || !right.Includes(a) {
		t.Fatalf("both branches should see the shared root member")
	}
	if left.Includes(asset.Ident{Path: "right.js"}) {
		t.Errorf("sibling layers must not see each other's members")
	}
}

func TestInfoRootHasNoAvailableSet(t *testing.T) {
	info := NewRoot(asset.Ident{Path: "entry.js"})
	if info.Kind() != Root {
		t.Fatalf("expected Root kind")
	}
	if _, ok := info.AvailableAssets(); ok {
		t.Errorf("a Root Info must not report an available-assets set")
	}
}

func TestExtendAccumulatesAvailability(t *testing.T) {
	root := NewRoot(asset.Ident{Path: "entry.js"})
	ext1 := Extend(root, []asset.Ident{{Path: "a.js"}})
	ext2 := Extend(ext1, []asset.Ident{{Path: "b.js"}})

	set, ok := ext2.AvailableAssets()
	if !ok {
		t.Fatalf("expected an Extension to report an available-assets set")
	}
	if !set.Includes(asset.Ident{Path: "a.js"}) {
		t.Errorf("expected ext2 to inherit a.js from ext1")
	}
	if !set.Includes(asset.Ident{Path: "b.js"}) {
		t.Errorf("expected ext2 to include its own newly-available b.js")
	}
	if ext2.CurrentRoot() != root.CurrentRoot() {
		t.Errorf("Extend must preserve the original availability root")
	}
}

func TestDigestStringStableForSharedLayer(t *testing.T) {
	root := NewRoot(asset.Ident{Path: "entry.js"})
	ext := Extend(root, []asset.Ident{{Path: "a.js"}})

	if ext.DigestString() != ext.DigestString() {
		t.Errorf("DigestString must be stable across calls for the same Info")
	}
	if root.DigestString() == ext.DigestString() {
		t.Errorf("Root and Extension digests must differ")
	}
}

package lineage_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitreaper/lineage"
	"github.com/bitreaper/lineage/pkg/domain"
	"github.com/bitreaper/lineage/pkg/dsl"
	"github.com/bitreaper/lineage/pkg/resolve"
)

func TestHierarchy_ChainLifecycle(t *testing.T) {
	h := lineage.NewChain(lineage.WithName("acuity"))

	v10, err := h.Register("1.0", nil)
	require.NoError(t, err)
	v11, err := h.Register("1.1", v10)
	require.NoError(t, err)
	v20, err := h.Register("2.0", v11)
	require.NoError(t, err)
	h.Finalize()

	got, err := h.FindVersion("1.5")
	require.NoError(t, err)
	assert.Same(t, v11, got)

	got, err = h.FindVersion("9.0")
	require.NoError(t, err)
	assert.Same(t, v20, got)

	prev, err := h.FindPreviousVersion(v20)
	require.NoError(t, err)
	assert.Same(t, v11, prev)

	anc, err := h.FindAncestor(v20, "1.0")
	require.NoError(t, err)
	assert.Same(t, v10, anc)

	_, err = h.Register("3.0", v20)
	assert.ErrorIs(t, err, domain.ErrFinalized)
}

func TestHierarchy_Tree(t *testing.T) {
	h := lineage.NewTree(lineage.WithName("phones"))

	phone, err := h.Register("Phone", nil)
	require.NoError(t, err)
	iphone, err := h.Register("iPhone", phone)
	require.NoError(t, err)
	_, err = h.Register("iPhone6", iphone)
	require.NoError(t, err)
	seven, err := h.Register("iPhone7", iphone)
	require.NoError(t, err)
	_, err = h.Register("Pixel", phone)
	require.NoError(t, err)
	h.Finalize()

	got, err := h.FindModel("iPhone7")
	require.NoError(t, err)
	assert.Same(t, seven, got)

	_, err = h.FindModel("Galaxy")
	var notFound *domain.ModelNotFoundError
	assert.ErrorAs(t, err, &notFound)

	got, err = h.FindModel("Galaxy", resolve.FallbackToRoot())
	require.NoError(t, err)
	assert.Same(t, phone, got)
}

func TestHierarchy_ConcurrentLookups(t *testing.T) {
	h := lineage.NewChain()
	var parent *domain.Node
	for _, tag := range []string{"1.0", "1.1", "1.2", "2.0", "2.1"} {
		node, err := h.Register(tag, parent)
		require.NoError(t, err)
		parent = node
	}
	h.Finalize()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				node, err := h.FindVersion("1.5")
				assert.NoError(t, err)
				assert.Equal(t, "1.2", node.Tag)
			}
		}()
	}
	wg.Wait()
}

func TestFromRegistry(t *testing.T) {
	b := dsl.Chain("1.0")
	b.RootBuilder().Version("2.0")
	reg, err := b.Build()
	require.NoError(t, err)

	h := lineage.FromRegistry(reg, lineage.WithName("built"))
	assert.Equal(t, "built", h.Name())
	assert.Equal(t, domain.Chain, h.Topology())
	assert.Equal(t, 2, h.Len())

	got, err := h.FindVersion("2.0")
	require.NoError(t, err)
	assert.Equal(t, "2.0", got.Tag)
}

package manifest_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitreaper/lineage/pkg/domain"
	"github.com/bitreaper/lineage/pkg/manifest"
)

const phoneManifest = `
name: phones
topology: tree
root:
  tag: Phone
  attrs:
    vendor: generic
  children:
    - tag: iPhone
      children:
        - tag: iPhone6
        - tag: iPhone7
          aliases: [A1660, A1778]
          attrs:
            vendor: apple
            year: 2016
    - tag: Pixel
`

const acuityManifest = `
name: acuity
topology: chain
root:
  tag: "1.0"
  children:
    - tag: "1.1"
      children:
        - tag: "2.0"
`

func TestParse_Tree(t *testing.T) {
	h, err := manifest.Parse(strings.NewReader(phoneManifest))
	require.NoError(t, err)

	assert.Equal(t, "phones", h.Name())
	assert.Equal(t, domain.Tree, h.Topology())
	assert.Equal(t, 5, h.Len())
	assert.True(t, h.Registry().Finalized())

	node, err := h.FindModel("A1778")
	require.NoError(t, err)
	assert.Equal(t, "iPhone7", node.Tag)

	// Declaration order from the YAML survives into the graph.
	root := h.Root()
	require.Len(t, root.Children, 2)
	assert.Equal(t, "iPhone", root.Children[0].Tag)
	assert.Equal(t, "Pixel", root.Children[1].Tag)
}

func TestParse_Chain(t *testing.T) {
	h, err := manifest.Parse(strings.NewReader(acuityManifest))
	require.NoError(t, err)

	assert.Equal(t, domain.Chain, h.Topology())

	node, err := h.FindVersion("1.5")
	require.NoError(t, err)
	assert.Equal(t, "1.1", node.Tag)
}

func TestParse_ChainDefect(t *testing.T) {
	bad := `
topology: chain
root:
  tag: "1.0"
  children:
    - tag: "2.0"
    - tag: "2.0-alt"
`
	_, err := manifest.Parse(strings.NewReader(bad))
	var chainErr *domain.NonLinearChainError
	require.ErrorAs(t, err, &chainErr)
}

func TestParse_BadTopology(t *testing.T) {
	_, err := manifest.Parse(strings.NewReader("topology: ring\nroot:\n  tag: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown topology")

	_, err = manifest.Parse(strings.NewReader("root:\n  tag: x\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing topology")
}

func TestParse_UnknownKeysRejected(t *testing.T) {
	_, err := manifest.Parse(strings.NewReader("topology: tree\nshape: odd\nroot:\n  tag: x\n"))
	require.Error(t, err)
}

func TestLoad_FallbackName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sensors.yaml")
	content := `
topology: chain
root:
  tag: "1.0"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	h, err := manifest.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sensors", h.Name())
}

func TestDecodeAttrs(t *testing.T) {
	h, err := manifest.Parse(strings.NewReader(phoneManifest))
	require.NoError(t, err)

	node, err := h.FindModel("iPhone7")
	require.NoError(t, err)

	var info struct {
		Vendor string `mapstructure:"vendor"`
		Year   int    `mapstructure:"year"`
	}
	require.NoError(t, manifest.DecodeAttrs(node, &info))
	assert.Equal(t, "apple", info.Vendor)
	assert.Equal(t, 2016, info.Year)

	// Nodes without attrs cannot be decoded.
	pixel, err := h.FindModel("Pixel")
	require.NoError(t, err)
	assert.Error(t, manifest.DecodeAttrs(pixel, &info))
}

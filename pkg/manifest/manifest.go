// Package manifest loads hierarchy declarations from YAML files. A manifest
// is the declarative counterpart of pkg/dsl: the same chain or tree an entity
// would declare in code, written once and shipped next to configuration.
package manifest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/bitreaper/lineage"
	"github.com/bitreaper/lineage/pkg/domain"
	"github.com/bitreaper/lineage/pkg/registry"
)

// Manifest is the top-level YAML document.
type Manifest struct {
	Name     string   `mapstructure:"name"`
	Topology string   `mapstructure:"topology"`
	Root     NodeSpec `mapstructure:"root"`
}

// NodeSpec declares one specialization. Attrs are free-form and become the
// node payload; DecodeAttrs maps them onto caller structs.
type NodeSpec struct {
	Tag      string         `mapstructure:"tag"`
	Aliases  []string       `mapstructure:"aliases"`
	Attrs    map[string]any `mapstructure:"attrs"`
	Children []NodeSpec     `mapstructure:"children"`
}

// Parse reads a YAML manifest and builds the declared hierarchy.
func Parse(r io.Reader) (*lineage.Hierarchy, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	// Decode to a generic map first, then map onto the DTO. Keeps YAML key
	// handling in one place and gives mapstructure's field errors.
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest yaml: %w", err)
	}

	var m Manifest
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &m,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}

	return m.Build()
}

// Load reads and builds the manifest at path. The file's base name (without
// extension) is the fallback hierarchy name.
func Load(path string) (*lineage.Hierarchy, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening manifest: %w", err)
	}
	defer f.Close()

	h, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	if h.Name() == "" {
		base := filepath.Base(path)
		name := base[:len(base)-len(filepath.Ext(base))]
		return lineage.FromRegistry(h.Registry(), lineage.WithName(name)), nil
	}
	return h, nil
}

// Build registers the declared nodes depth-first, preserving declaration
// order, and returns the finalized hierarchy.
func (m *Manifest) Build() (*lineage.Hierarchy, error) {
	topology, err := parseTopology(m.Topology)
	if err != nil {
		return nil, err
	}
	if m.Root.Tag == "" && topology == domain.Tree {
		return nil, fmt.Errorf("manifest root needs a tag")
	}

	var opts []lineage.Option
	if m.Name != "" {
		opts = append(opts, lineage.WithName(m.Name))
	}
	h := lineage.New(topology, opts...)

	if err := registerSpec(h, &m.Root, nil); err != nil {
		return nil, err
	}
	h.Finalize()
	return h, nil
}

func registerSpec(h *lineage.Hierarchy, spec *NodeSpec, parent *domain.Node) error {
	var opts []registry.NodeOption
	if len(spec.Aliases) > 0 {
		opts = append(opts, registry.WithAliases(spec.Aliases...))
	}
	if len(spec.Attrs) > 0 {
		opts = append(opts, registry.WithPayload(spec.Attrs))
	}

	node, err := h.Register(spec.Tag, parent, opts...)
	if err != nil {
		return fmt.Errorf("registering %q: %w", spec.Tag, err)
	}
	for i := range spec.Children {
		if err := registerSpec(h, &spec.Children[i], node); err != nil {
			return err
		}
	}
	return nil
}

func parseTopology(s string) (domain.Topology, error) {
	switch s {
	case "chain":
		return domain.Chain, nil
	case "tree":
		return domain.Tree, nil
	case "":
		return 0, fmt.Errorf("manifest missing topology (chain or tree)")
	default:
		return 0, fmt.Errorf("unknown topology %q (want chain or tree)", s)
	}
}

// DecodeAttrs maps a node's attribute payload onto out, a pointer to a
// caller-defined struct with mapstructure tags. It fails when the payload is
// not an attribute map.
func DecodeAttrs(node *domain.Node, out any) error {
	attrs, ok := node.Payload.(map[string]any)
	if !ok {
		return fmt.Errorf("node %q carries no attribute map", node.Tag)
	}
	return mapstructure.Decode(attrs, out)
}

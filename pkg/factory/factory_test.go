package factory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitreaper/lineage/pkg/domain"
	"github.com/bitreaper/lineage/pkg/factory"
	"github.com/bitreaper/lineage/pkg/registry"
	"github.com/bitreaper/lineage/pkg/resolve"
)

type fakeDriver struct {
	version string
	baud    int
}

func driverCtor(version string) factory.Constructor {
	return func(_ context.Context, args map[string]any) (any, error) {
		d := &fakeDriver{version: version}
		if b, ok := args["baud"].(int); ok {
			d.baud = b
		}
		return d, nil
	}
}

func buildDriverChain(t *testing.T) *domain.Node {
	t.Helper()
	r := registry.New(domain.Chain)
	root, err := r.Register("1.0", nil, registry.WithPayload(driverCtor("1.0")))
	require.NoError(t, err)
	v11, err := r.Register("1.1", root, registry.WithPayload(driverCtor("1.1")))
	require.NoError(t, err)
	_, err = r.Register("2.0", v11, registry.WithPayload(driverCtor("2.0")))
	require.NoError(t, err)
	r.Finalize()
	return root
}

func TestNewFromVersion(t *testing.T) {
	root := buildDriverChain(t)
	ctx := context.Background()

	got, err := factory.NewFromVersion(ctx, root, "1.5", map[string]any{"baud": 9600})
	require.NoError(t, err)
	drv, ok := got.(*fakeDriver)
	require.True(t, ok)
	assert.Equal(t, "1.1", drv.version)
	assert.Equal(t, 9600, drv.baud)
}

func TestNewFromVersion_ResolutionErrorPassesThrough(t *testing.T) {
	root := buildDriverChain(t)

	_, err := factory.NewFromVersion(context.Background(), root, "0.5", nil)
	var notFound *domain.VersionNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestNewFromModel(t *testing.T) {
	r := registry.New(domain.Tree)
	phone, err := r.Register("Phone", nil)
	require.NoError(t, err)
	_, err = r.Register("iPhone7", phone,
		registry.WithAliases("A1660"),
		registry.WithPayload(factory.Constructor(func(_ context.Context, _ map[string]any) (any, error) {
			return "iphone7-handler", nil
		})),
	)
	require.NoError(t, err)
	r.Finalize()

	got, err := factory.NewFromModel(context.Background(), phone, "A1660", nil)
	require.NoError(t, err)
	assert.Equal(t, "iphone7-handler", got)
}

func TestNewPrevious(t *testing.T) {
	root := buildDriverChain(t)

	newest, err := resolve.FindVersion(root, "2.0")
	require.NoError(t, err)

	got, err := factory.NewPrevious(context.Background(), newest, nil)
	require.NoError(t, err)
	drv := got.(*fakeDriver)
	assert.Equal(t, "1.1", drv.version)

	_, err = factory.NewPrevious(context.Background(), root, nil)
	var noPrev *domain.NoPreviousVersionError
	assert.ErrorAs(t, err, &noPrev)
}

func TestInstantiate_PayloadKinds(t *testing.T) {
	ctx := context.Background()

	t.Run("static payload returned as is", func(t *testing.T) {
		node := &domain.Node{Tag: "1.0", Payload: "static-handler"}
		got, err := factory.Instantiate(ctx, node, nil)
		require.NoError(t, err)
		assert.Equal(t, "static-handler", got)
	})

	t.Run("bare func payload is invoked", func(t *testing.T) {
		node := &domain.Node{Tag: "1.0", Payload: func(_ context.Context, _ map[string]any) (any, error) {
			return 7, nil
		}}
		got, err := factory.Instantiate(ctx, node, nil)
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("nil payload fails", func(t *testing.T) {
		node := &domain.Node{Tag: "1.0"}
		_, err := factory.Instantiate(ctx, node, nil)
		var noCtor *domain.NoConstructorError
		require.ErrorAs(t, err, &noCtor)
		assert.Equal(t, "1.0", noCtor.Tag)
	})
}

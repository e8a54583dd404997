package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AtRiskMedia/sitegen-go/internal/domain/entities/builder"
	"github.com/AtRiskMedia/sitegen-go/internal/infrastructure/observability/logging"
)

type mapReader map[string][]byte

func (m mapReader) ReadAsset(_ context.Context, source string) ([]byte, error) {
	if b, ok := m[source]; ok {
		return b, nil
	}
	return nil, errors.New("not found")
}

func component(id string, t builder.ComponentType, props map[string]any) builder.ComponentInstance {
	return builder.ComponentInstance{ID: id, Type: t, Name: id, Props: builder.DecodeProps(t, props)}
}

func image(id, src string) builder.ComponentInstance {
	return component(id, builder.TypeImage, map[string]any{"src": src})
}

func TestCollectAssets_DedupesBySource(t *testing.T) {
	svc := NewAssetService(logging.NewDiscardLogger())
	assets := svc.CollectAssets([]builder.ComponentInstance{
		image("a", "/uploads/cat.png"),
		image("b", "/uploads/cat.png"),
		component("t", builder.TypeText, map[string]any{"text": "/uploads/dog.png"}),
	})

	require.Len(t, assets, 3)
	assert.Equal(t, Asset{OriginalPathOrURL: "/uploads/cat.png", NewPathInOutput: "assets/images/cat.png", Type: AssetImage}, assets[0])
	assert.Equal(t, "assets/fonts/madefor-display.woff2", assets[1].NewPathInOutput)
	assert.Equal(t, AssetFont, assets[1].Type)
	assert.Equal(t, "assets/fonts/madefor-text.woff2", assets[2].NewPathInOutput)
}

func TestCollectAssets_ExternalAndRelative(t *testing.T) {
	svc := NewAssetService(logging.NewDiscardLogger())
	assets := svc.CollectAssets([]builder.ComponentInstance{
		image("a", "https://cdn.example.com/a.jpg"),
		image("b", "//cdn.example.com/b.jpg"),
		image("c", "http://example.com/c.jpg"),
		image("d", "relative/d.jpg"),
		image("e", ""),
	})

	require.Len(t, assets, 5)
	for _, a := range assets[:3] {
		assert.True(t, a.External, a.OriginalPathOrURL)
		assert.Empty(t, a.NewPathInOutput)
	}
	assert.Empty(t, RewriteMap(assets))
}

func TestCollectAssets_OutputCollisions(t *testing.T) {
	svc := NewAssetService(logging.NewDiscardLogger())
	assets := svc.CollectAssets([]builder.ComponentInstance{
		image("a", "/one/logo.png"),
		image("b", "/two/logo.png"),
		image("c", "/three/logo.png?v=3"),
		image("d", "/"),
	})

	outputs := []string{assets[0].NewPathInOutput, assets[1].NewPathInOutput, assets[2].NewPathInOutput, assets[3].NewPathInOutput}
	assert.Equal(t, []string{
		"assets/images/logo.png",
		"assets/images/logo-2.png",
		"assets/images/logo-3.png",
		"assets/images/asset",
	}, outputs)
}

func TestRewriteMap(t *testing.T) {
	svc := NewAssetService(logging.NewDiscardLogger())
	assets := svc.CollectAssets([]builder.ComponentInstance{
		image("a", "/uploads/cat.png"),
		image("b", "https://cdn.example.com/a.jpg"),
	})
	assert.Equal(t, map[string]string{"/uploads/cat.png": "/assets/images/cat.png"}, RewriteMap(assets))
}

func TestLoadContent(t *testing.T) {
	svc := NewAssetService(logging.NewDiscardLogger())
	manifest := svc.CollectAssets([]builder.ComponentInstance{
		image("a", "/uploads/cat.png"),
		image("b", "/uploads/missing.png"),
		image("c", "https://cdn.example.com/a.jpg"),
	})

	reader := mapReader{
		"/uploads/cat.png":             []byte("png"),
		"/fonts/madefor-display.woff2": []byte("font"),
		"/fonts/madefor-text.woff2":    {},
	}
	loaded, err := svc.LoadContent(context.Background(), manifest, reader)
	require.NoError(t, err)
	require.Len(t, loaded, len(manifest))

	assert.Equal(t, []byte("png"), loaded[0].Content)
	assert.False(t, loaded[1].HasContent())
	assert.False(t, loaded[2].HasContent())
	assert.True(t, loaded[4].HasContent(), "empty files still count as loaded")
	assert.Nil(t, manifest[0].Content, "input manifest is not mutated")
}

func TestLoadContent_Canceled(t *testing.T) {
	svc := NewAssetService(logging.NewDiscardLogger())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.LoadContent(ctx, svc.CollectAssets(nil), mapReader{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsExternalURL(t *testing.T) {
	assert.True(t, IsExternalURL("https://a"))
	assert.True(t, IsExternalURL("//a"))
	assert.False(t, IsExternalURL("/a"))
	assert.False(t, IsExternalURL("data:image/png;base64,xx"))
}

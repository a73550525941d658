package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("icons.yaml", 12, underlying)

	var parseErr *ParseError
	require.True(t, stdErrors.As(err, &parseErr))
	require.Equal(t, "icons.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.ErrorIs(t, err, underlying)
	require.Contains(t, err.Error(), "icons.yaml:12")
}

func TestConfigErrorMessageIncludesField(t *testing.T) {
	t.Parallel()

	err := NewConfigError("background.color", "invalid hex color", nil)
	require.Contains(t, err.Error(), "background.color")
	require.Contains(t, err.Error(), "invalid hex color")
}

func TestAssetErrorMessageIncludesName(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("source image unreadable")
	err := NewAssetError("ios/icon-1024.png", underlying)
	require.Contains(t, err.Error(), "ios/icon-1024.png")
	require.ErrorIs(t, err, underlying)
}

func TestArtifactErrorMessageIncludesArtifact(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("encode failed")
	err := NewArtifactError("web/favicon.ico", underlying)
	require.Contains(t, err.Error(), "web/favicon.ico")
	require.ErrorIs(t, err, underlying)
}

func TestWriteErrorMessageIncludesPath(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("permission denied")
	err := NewWriteError("/out/web/site.webmanifest", underlying)
	require.Contains(t, err.Error(), "/out/web/site.webmanifest")
	require.ErrorIs(t, err, underlying)
}

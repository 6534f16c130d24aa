package listfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/olusolaa/rpm-diff/internal/adapters/rpmname"
	portsmocks "github.com/olusolaa/rpm-diff/internal/core/ports/mocks"
	apperrors "github.com/olusolaa/rpm-diff/internal/errors"
)

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "packages.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newTestLoader(t *testing.T) (*Loader, *portsmocks.Logger) {
	t.Helper()
	logger := portsmocks.NewLogger(t)
	return NewLoader(rpmname.Config{MaxLineLength: rpmname.DefaultMaxLineLength}, logger), logger
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps order and skips noise", func(t *testing.T) {
		loader, logger := newTestLoader(t)
		path := writeList(t, "zlib-1.2.11-40.el9.x86_64\n\nbadline\nbash-5.1.8-6.el9.x86_64\r\n\r\nmy-tool-1.2-3.noarch")

		list, err := loader.Load(ctx, path)
		require.NoError(t, err)

		assert.Equal(t, path, list.Source)
		assert.Equal(t, 3, list.Loaded())
		assert.Equal(t, 2, list.Blank)
		assert.Equal(t, 1, list.Malformed)
		names := make([]string, 0, list.Loaded())
		for _, p := range list.Packages {
			names = append(names, p.Name)
		}
		assert.Equal(t, []string{"zlib", "bash", "my-tool"}, names)
		assert.Equal(t, "bash-5.1.8-6.el9.x86_64", list.Packages[1].RawLine)

		logger.AssertCalled(t, "Debugf", mock.Anything, "Skipping %s:%d: %v", mock.Anything)
	})

	t.Run("empty file", func(t *testing.T) {
		loader, _ := newTestLoader(t)
		list, err := loader.Load(ctx, writeList(t, ""))
		require.NoError(t, err)
		assert.Equal(t, 0, list.Loaded())
		assert.NotNil(t, list.Packages)
	})

	t.Run("line without dot is dropped", func(t *testing.T) {
		loader, _ := newTestLoader(t)
		list, err := loader.Load(ctx, writeList(t, "badline\n"))
		require.NoError(t, err)
		assert.Equal(t, 0, list.Loaded())
		assert.Equal(t, 1, list.Malformed)
	})

	t.Run("no size cap", func(t *testing.T) {
		loader, _ := newTestLoader(t)
		var b strings.Builder
		for i := 0; i < 12000; i++ {
			b.WriteString("pkg-1.0-1.x86_64\n")
		}
		list, err := loader.Load(ctx, writeList(t, b.String()))
		require.NoError(t, err)
		assert.Equal(t, 12000, list.Loaded())
	})

	t.Run("missing file", func(t *testing.T) {
		loader, _ := newTestLoader(t)
		path := filepath.Join(t.TempDir(), "nope.txt")

		_, err := loader.Load(ctx, path)
		require.Error(t, err)

		var appErr *apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperrors.CodeFileOpen, appErr.Code)
		assert.True(t, appErr.IsUserFacing)
		assert.Contains(t, appErr.Message, path)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoader_ReadError(t *testing.T) {
	loader, _ := newTestLoader(t)
	r := iotest.TimeoutReader(strings.NewReader(strings.Repeat("pkg-1.0-1.x86_64\n", 1000)))

	_, err := loader.read(context.Background(), "broken.txt", r)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeFileRead))
}

package i18n

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	b, err := Default("es")
	require.NoError(t, err)

	assert.Equal(t, []string{"es", "en"}, b.Supported())
	assert.Equal(t, "Autor desconocido", b.T("es", "book.unknown_author"))
	assert.Equal(t, "Unknown author", b.T("en", "book.unknown_author"))
	assert.Equal(t, "Libros de Historia", b.Tf("es", "list.of", "Historia"))
}

func TestBundle_TFallbacks(t *testing.T) {
	fsys := fstest.MapFS{
		"l/es.json": {Data: []byte(`{"a":"uno","b":"dos"}`)},
		"l/en.json": {Data: []byte(`{"a":"one"}`)},
	}
	b, err := Load(fsys, "l", "es", []string{"es", "en"})
	require.NoError(t, err)

	assert.Equal(t, "one", b.T("en", "a"))
	assert.Equal(t, "dos", b.T("en", "b"))
	assert.Equal(t, "missing.key", b.T("en", "missing.key"))
	assert.Equal(t, "uno", b.T("fr", "a"))
}

func TestBundle_Resolve(t *testing.T) {
	b, err := Default("es")
	require.NoError(t, err)

	tests := []struct {
		header string
		want   string
	}{
		{"", "es"},
		{"en-US,en;q=0.9", "en"},
		{"es-MX", "es"},
		{"fr-FR,en;q=0.5", "en"},
		{"ja", "es"},
		{"en;q=0.3,es;q=0.8", "es"},
		{";;;garbage", "es"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.Resolve(tt.header), "header %q", tt.header)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing fallback", func(t *testing.T) {
		_, err := Load(fstest.MapFS{}, "l", "es", []string{"es"})
		assert.Error(t, err)
	})

	t.Run("missing optional locale", func(t *testing.T) {
		fsys := fstest.MapFS{"l/es.json": {Data: []byte(`{}`)}}
		b, err := Load(fsys, "l", "es", []string{"es", "en"})
		require.NoError(t, err)
		assert.Equal(t, []string{"es"}, b.Supported())
	})

	t.Run("bad json", func(t *testing.T) {
		fsys := fstest.MapFS{"l/es.json": {Data: []byte(`{`)}}
		_, err := Load(fsys, "l", "es", []string{"es"})
		assert.Error(t, err)
	})
}

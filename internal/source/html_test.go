package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const workbookHTML = `<html><body>
<table id="entries">
  <tr><th>title</th><th>loc</th><th>description_1</th></tr>
  <tr><td>Engineer</td><td>Berlin</td><td>Built X</td></tr>
  <tr><td>Analyst</td><td></td><td></td></tr>
</table>
<table id="list">
  <tr><th>section</th><th>item</th></tr>
  <tr><td>skills</td><td>Go</td></tr>
</table>
</body></html>`

func TestHTMLSource_LocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workbook.html")
	require.NoError(t, os.WriteFile(path, []byte(workbookHTML), 0644))

	src, err := NewHTMLSource(context.Background(), path)
	require.NoError(t, err)

	table, err := src.ReadTable(context.Background(), "entries")
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "loc", "description_1"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Engineer", table.Rows[0].Get("title"))
	assert.Equal(t, "Built X", table.Rows[0].Get("description_1"))
	assert.Equal(t, "Analyst", table.Rows[1].Get("title"))
}

func TestHTMLSource_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(workbookHTML))
	}))
	defer server.Close()

	src, err := NewHTMLSource(context.Background(), server.URL)
	require.NoError(t, err)

	table, err := src.ReadTable(context.Background(), "list")
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Go", table.Rows[0].Get("item"))
}

func TestHTMLSource_MissingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "workbook.html")
	require.NoError(t, os.WriteFile(path, []byte(workbookHTML), 0644))

	src, err := NewHTMLSource(context.Background(), path)
	require.NoError(t, err)

	_, err = src.ReadTable(context.Background(), "side")
	var srcErr *Error
	require.ErrorAs(t, err, &srcErr)
	assert.Equal(t, "side", srcErr.Table)
}

func TestHTMLSource_FetchFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := NewHTMLSource(context.Background(), server.URL)
	require.Error(t, err)
}

func TestHTMLSource_MissingFile(t *testing.T) {
	_, err := NewHTMLSource(context.Background(), filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
}

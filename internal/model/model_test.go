package model

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/cv-renderer/internal/source"
)

// fakeSource serves tables from memory for model tests.
type fakeSource struct {
	tables map[string]*source.Table
}

func (f *fakeSource) ReadTable(_ context.Context, name string) (*source.Table, error) {
	table, ok := f.tables[name]
	if !ok {
		return nil, &source.Error{Location: "fake", Table: name, Message: "table not found"}
	}
	return table, nil
}

// newFakeSource provides empty versions of every required table, overridden
// by the given tables.
func newFakeSource(tables ...*source.Table) *fakeSource {
	f := &fakeSource{tables: make(map[string]*source.Table)}
	for _, name := range source.RequiredTables {
		f.tables[name] = &source.Table{Name: name}
	}
	for _, table := range tables {
		f.tables[table.Name] = table
	}
	return f
}

func workEntries() *source.Table {
	return &source.Table{
		Name:   source.TableEntries,
		Header: []string{"title", "loc", "institution", "start", "end", "section", "in_resume", "description_1", "description_2"},
		Rows: []source.Row{
			{
				"title": "Engineer", "start": "NULL", "end": "2021",
				"section": "work", "in_resume": "TRUE",
				"description_1": "Built X", "description_2": "",
			},
		},
	}
}

func TestLoad_MissingTableIsFatal(t *testing.T) {
	f := newFakeSource()
	delete(f.tables, source.TableSide)

	_, err := Load(context.Background(), f, Options{})

	require.Error(t, err)
	var srcErr *source.Error
	assert.ErrorAs(t, err, &srcErr, "missing table should surface the source error")
}

func TestRenderEntries_EndToEnd(t *testing.T) {
	m, err := Load(context.Background(), newFakeSource(workEntries()), Options{})
	require.NoError(t, err)

	fragment := m.RenderEntries("work")

	assert.Contains(t, fragment, "### Engineer")
	assert.Contains(t, fragment, "2021")
	assert.Contains(t, fragment, "- Built X")
	assert.NotContains(t, fragment, "description_2", "empty numbered columns leave no artifact")

	require.Len(t, m.Entries(), 1)
	assert.Equal(t, "2021", m.Entries()[0].Timeline)
	assert.Equal(t, "- Built X", m.Entries()[0].DescriptionBullets)
}

func TestRenderEntries_UnknownSectionIsEmpty(t *testing.T) {
	m, err := Load(context.Background(), newFakeSource(workEntries()), Options{})
	require.NoError(t, err)

	assert.Equal(t, "", m.RenderEntries("no-such-section"))
}

func TestRenderTextBlock(t *testing.T) {
	blocks := &source.Table{
		Name:   source.TableTextBlocks,
		Header: []string{"loc", "text"},
		Rows:   []source.Row{{"loc": "intro", "text": "About me."}},
	}

	m, err := Load(context.Background(), newFakeSource(blocks), Options{})
	require.NoError(t, err)

	assert.Equal(t, "About me.", m.RenderTextBlock("intro"))
	assert.Equal(t, "", m.RenderTextBlock("missing"))
}

func TestRenderList_FiltersFlag(t *testing.T) {
	lists := &source.Table{
		Name:   source.TableList,
		Header: []string{"section", "icon", "item", "in_resume"},
		Rows: []source.Row{
			{"section": "skills", "icon": "code", "item": "Go", "in_resume": "TRUE"},
			{"section": "skills", "icon": "code", "item": "Hidden", "in_resume": "FALSE"},
		},
	}

	m, err := Load(context.Background(), newFakeSource(lists), Options{})
	require.NoError(t, err)

	fragment := m.RenderList("skills")
	assert.Contains(t, fragment, "Go")
	assert.NotContains(t, fragment, "Hidden")
}

func TestPDFMode_CollectsLinks(t *testing.T) {
	blocks := &source.Table{
		Name:   source.TableTextBlocks,
		Header: []string{"loc", "text"},
		Rows:   []source.Row{{"loc": "intro", "text": "Visit [my site](https://example.com)."}},
	}

	m, err := Load(context.Background(), newFakeSource(blocks), Options{PDFMode: true})
	require.NoError(t, err)

	fragment := m.RenderTextBlock("intro")
	assert.Equal(t, "Visit my site<sup>1</sup>.", fragment)
	assert.Equal(t, "1. https://example.com", m.RenderLinkList())
}

func TestPDFModeOff_KeepsLinks(t *testing.T) {
	blocks := &source.Table{
		Name:   source.TableTextBlocks,
		Header: []string{"loc", "text"},
		Rows:   []source.Row{{"loc": "intro", "text": "Visit [my site](https://example.com)."}},
	}

	m, err := Load(context.Background(), newFakeSource(blocks), Options{PDFMode: false})
	require.NoError(t, err)

	assert.Equal(t, "Visit [my site](https://example.com).", m.RenderTextBlock("intro"))
	assert.Equal(t, "", m.RenderLinkList())
}

func TestPrintChaining(t *testing.T) {
	var buf bytes.Buffer
	m, err := Load(context.Background(), newFakeSource(workEntries()), Options{Out: &buf})
	require.NoError(t, err)

	returned := m.PrintEntries("work").PrintContactInfo().PrintLinkList()

	assert.Same(t, m, returned, "print calls should chain on the same model")
	assert.Contains(t, buf.String(), "### Engineer")
}

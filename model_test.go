package tablo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "tablo/entity"
	"tablo/frame"
	"tablo/message"
	"tablo/pager"
	"tablo/store/mem"
)

type fakeLogger struct {
	errors []error
}

func (lgr *fakeLogger) Info(ctx context.Context, msg string, kv ...any) {}

func (lgr *fakeLogger) Error(ctx context.Context, msg string, err error, kv ...any) {
	lgr.errors = append(lgr.errors, err)
}

type fakeHost struct {
	heights []int
}

func (host *fakeHost) SetFrameHeight(height int) {
	host.heights = append(host.heights, height)
}

func cities(t *testing.T) Store {
	t.Helper()

	names := []string{"Oslo", "Lima", "Pune", "Lyon", "Kyiv", "Baku", "Doha", "Riga", "Rome", "Bern",
		"Lomé", "Apia", "Suva", "Male", "Nuuk"}

	rows := make([][]nt.Value, len(names))
	for i, name := range names {
		rows[i] = []nt.Value{{Raw: name}, {Raw: int64(i * 100)}}
	}

	frm, err := frame.New([]string{"city", "pop"}, nil, rows)
	require.NoError(t, err)

	return mem.New("cities", frm, &fakeLogger{})
}

func newModel(t *testing.T, cfg Config) (Model, *fakeHost, *fakeLogger) {
	t.Helper()

	host := &fakeHost{}
	lgr := &fakeLogger{}

	model, err := cfg.New(context.Background(), cities(t), host, lgr)
	require.NoError(t, err)

	return model, host, lgr
}

// send updates the model with msg and then with whatever its command yields,
// until a command yields nothing more for the model.
func send(t *testing.T, model Model, msg tea.Msg) Model {
	t.Helper()

	for msg != nil {
		next, cmd := model.Update(msg)
		model = next.(Model)

		msg = nil
		if cmd != nil {
			msg = cmd()
		}
	}
	return model
}

func press(text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(text)[0], Text: text}
}

func typeText(t *testing.T, model Model, text string) Model {
	t.Helper()

	for _, r := range text {
		next, _ := model.Update(press(string(r)))
		model = next.(Model)
	}
	return model
}

func TestLoadAndReport(t *testing.T) {

	model, host, _ := newModel(t, Config{})

	model = send(t, model, tea.WindowSizeMsg{Width: 80, Height: 30})
	assert.Empty(t, host.heights)

	model = send(t, model, model.Init()())

	require.Len(t, host.heights, 1)
	assert.Equal(t, model.Widget.Height(), host.heights[0])
	assert.Equal(t, 15, model.count)

	view := ansi.Strip(model.View().Content)
	assert.Contains(t, view, "Oslo")
	assert.Contains(t, view, "1–10 of 15")
	assert.Contains(t, view, "15 rows")
	assert.Contains(t, view, "cities")

	model = send(t, model, press("l"))
	assert.Equal(t, 1, model.Widget.Pager().Page())
	require.Len(t, host.heights, 2, "shorter last page is reported")
	assert.Less(t, host.heights[1], host.heights[0])
}

func TestSearch(t *testing.T) {

	model, _, _ := newModel(t, Config{})
	model = send(t, model, model.Init()())

	next, _ := model.Update(press("/"))
	model = next.(Model)
	require.True(t, model.searching)

	model = typeText(t, model, "lo")
	assert.Contains(t, ansi.Strip(model.View().Content), "/ lo")

	model = send(t, model, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.False(t, model.searching)
	assert.Equal(t, "lo", model.query)

	// Oslo, Lomé
	assert.Equal(t, 2, model.count)
	assert.Contains(t, ansi.Strip(model.View().Content), `2 rows matching "lo"`)

	model = send(t, model, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, "", model.query)
	assert.Equal(t, 15, model.count)
}

func TestSearchCancel(t *testing.T) {

	model, _, _ := newModel(t, Config{})
	model = send(t, model, model.Init()())

	next, _ := model.Update(press("/"))
	model = typeText(t, next.(Model), "q")

	model = send(t, model, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.False(t, model.searching)
	assert.Equal(t, "", model.query)
	assert.Equal(t, 15, model.count)
}

func TestError(t *testing.T) {

	model, _, lgr := newModel(t, Config{})
	model.Layout.Columns = []nt.Column{{Field: "area"}}

	model = send(t, model, model.Init()())
	require.Len(t, lgr.errors, 1)
	assert.Contains(t, ansi.Strip(model.View().Content), "no such column: area")

	model = send(t, model, press("?"))
	assert.Equal(t, "", model.errorString)
}

func TestQuit(t *testing.T) {

	model, _, _ := newModel(t, Config{})

	_, cmd := model.Update(press("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestFrameHeightForwarded(t *testing.T) {

	model, host, _ := newModel(t, Config{})

	send(t, model, message.FrameHeightMsg{Height: 42})
	assert.Equal(t, []int{42}, host.heights)
}

func TestLayoutFile(t *testing.T) {

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
columns:
  - field: pop
  - field: city
    hidden: true
search: [city]
page_size: 20
direction: rtl
max_width: 12
`), 0644))

	model, _, _ := newModel(t, Config{Layout: path})

	assert.Equal(t, []string{"pop"}, model.Layout.columns())
	assert.Equal(t, pager.RTL, model.Widget.Pager().Direction())
	assert.Equal(t, 25, model.Widget.Pager().Size())

	model = send(t, model, model.Init()())
	assert.Equal(t, 2, model.Widget.Grid().Columns, "index and pop")

	// searches city though it is hidden
	next, _ := model.Update(press("/"))
	model = typeText(t, next.(Model), "rome")
	model = send(t, model, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 1, model.count)
}

func TestLayoutFilter(t *testing.T) {

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
filter:
  op: gte
  field: pop
  value: 500
`), 0644))

	model, _, _ := newModel(t, Config{Layout: path})
	require.Equal(t, nt.Gte, model.Layout.Filter.Op)

	model = send(t, model, model.Init()())
	assert.Equal(t, 10, model.count, "pop 500 and up")
	assert.NotContains(t, ansi.Strip(model.View().Content), "Oslo")

	// Doha, Rome, Lomé and not Oslo, Lyon
	next, _ := model.Update(press("/"))
	model = typeText(t, next.(Model), "o")
	model = send(t, model, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, 3, model.count)

	model = send(t, model, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 10, model.count, "clearing the search keeps the filter")
}

func TestLayoutView(t *testing.T) {

	available := []nt.Field{{Name: "city"}, {Name: "pop"}}
	pop := nt.Filter{Op: nt.Gt, Field: "pop", Value: 1}

	layout := &Layout{}
	assert.True(t, layout.view("", available).IsZero())
	assert.Equal(t, nt.SearchFilter("x", []string{"city", "pop"}), layout.view("x", available))

	layout.Filter = pop
	assert.Equal(t, pop, layout.view("", available))

	both := layout.view("x", available)
	assert.Equal(t, nt.And, both.Op)
	require.Len(t, both.Children, 2)
	assert.Equal(t, pop, both.Children[0])
	assert.Equal(t, nt.Or, both.Children[1].Op)
}

func TestLayoutWidths(t *testing.T) {

	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
columns:
  - field: city
    width: 3
  - field: pop
`), 0644))

	model, _, _ := newModel(t, Config{Layout: path})
	assert.Equal(t, map[string]int{"city": 3}, model.Layout.widths())

	model = send(t, model, tea.WindowSizeMsg{Width: 80, Height: 30})
	model = send(t, model, model.Init()())

	view := ansi.Strip(model.View().Content)
	assert.Contains(t, view, "Os…")
	assert.NotContains(t, view, "Oslo")
	assert.Contains(t, view, "900")
}

func TestLayoutOverride(t *testing.T) {

	model, _, _ := newModel(t, Config{PageSize: 100, RTL: true})

	assert.Equal(t, 100, model.Widget.Pager().Size())
	assert.Equal(t, pager.RTL, model.Widget.Pager().Direction())
}

func TestLoadLayout(t *testing.T) {

	layout, err := LoadLayout(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, &Layout{}, layout)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("direction: up\n"), 0644))
	_, err = LoadLayout(path)
	assert.Error(t, err)

	path = filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, SampleLayout, 0644))
	layout, err = LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, 10, layout.PageSize)
	assert.Equal(t, 40, layout.MaxWidth)
}

func TestSearchFields(t *testing.T) {

	available := []nt.Field{{Name: "id"}, {Name: "city"}, {Name: "pop"}}

	layout := &Layout{Index: "id"}
	assert.Equal(t, []string{"city", "pop"}, layout.searchFields(available))

	layout.Columns = []nt.Column{{Field: "pop"}}
	assert.Equal(t, []string{"pop"}, layout.searchFields(available))

	layout.Search = []string{"city"}
	assert.Equal(t, []string{"city"}, layout.searchFields(available))
}

func TestRenderFooter(t *testing.T) {

	footer := ansi.Strip(RenderFooter(3, "", "data.csv", 30))
	assert.Equal(t, 30, len(footer))
	assert.Equal(t, "3 rows", footer[:6])
	assert.Equal(t, "data.csv", footer[22:])

	footer = ansi.Strip(RenderFooter(1, "x", "data.csv", 0))
	assert.Equal(t, `1 rows matching "x" data.csv`, footer)
}

package widget

import (
	"context"
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "tablo/entity"
	"tablo/frame"
	"tablo/grid"
	"tablo/message"
	"tablo/pager"
)

type fakeLogger struct {
	infos  []string
	errors []error
}

func (lgr *fakeLogger) Info(ctx context.Context, msg string, kv ...any) {
	lgr.infos = append(lgr.infos, msg)
}

func (lgr *fakeLogger) Error(ctx context.Context, msg string, err error, kv ...any) {
	lgr.errors = append(lgr.errors, err)
}

type badSource struct {
	*frame.Frame
	row int
}

func (src badSource) Cell(row, col int) (cell nt.Cell, err error) {
	if row == src.row && col == 1 {
		cell.Kind = nt.Kind(-1)
		return
	}
	return src.Frame.Cell(row, col)
}

func numbered(t *testing.T, n int) *frame.Frame {
	t.Helper()

	rows := make([][]nt.Value, n)
	for i := range rows {
		rows[i] = []nt.Value{{Raw: fmt.Sprintf("row-%03d", i)}}
	}

	frm, err := frame.New([]string{"name"}, nil, rows)
	require.NoError(t, err)
	return frm
}

func press(text string) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: []rune(text)[0], Text: text}
}

func newWidget(t *testing.T, cfg Config) (Widget, *fakeLogger) {
	t.Helper()

	lgr := &fakeLogger{}
	return New(context.Background(), cfg, lgr), lgr
}

// run feeds msg and any message its command yields back into the widget,
// collecting messages meant for the host.
func run(wgt Widget, msg tea.Msg) (Widget, []tea.Msg) {

	var out []tea.Msg
	queue := []tea.Msg{msg}

	for len(queue) > 0 {
		var cmd tea.Cmd
		wgt, cmd = wgt.Update(queue[0])
		queue = queue[1:]

		if cmd == nil {
			continue
		}
		switch next := cmd().(type) {
		case pager.ChangedMsg:
			queue = append(queue, next)
		default:
			out = append(out, next)
		}
	}
	return wgt, out
}

func TestLoading(t *testing.T) {

	wgt, _ := newWidget(t, Config{})

	assert.Equal(t, loading, ansi.Strip(wgt.View().Content))

	wgt, cmd := wgt.Update(SizeMsg{Width: 80, Height: 24})
	assert.Nil(t, cmd)
	assert.Equal(t, loading, ansi.Strip(wgt.View().Content))
}

func TestDataReportsHeight(t *testing.T) {

	wgt, _ := newWidget(t, Config{})

	wgt, out := run(wgt, DataMsg{Source: numbered(t, 95)})
	require.Len(t, out, 1)
	assert.Equal(t, message.FrameHeightMsg{Height: wgt.Height()}, out[0])

	// header, separator, ten rows, controls
	assert.Equal(t, 13, wgt.Height())

	wgt, out = run(wgt, press("l"))
	assert.Empty(t, out, "same height is not reported again")
	assert.Equal(t, 1, wgt.Pager().Page())

	wgt, out = run(wgt, press("G"))
	require.Len(t, out, 1)
	assert.Equal(t, message.FrameHeightMsg{Height: 8}, out[0])
	assert.Equal(t, 9, wgt.Pager().Page())
}

func TestPaging(t *testing.T) {

	wgt, _ := newWidget(t, Config{})
	wgt, _ = run(wgt, DataMsg{Source: numbered(t, 100)})

	keys := func(grd grid.Grid) (out []int) {
		for _, row := range grd.Body {
			out = append(out, row.Key)
		}
		return
	}

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, keys(wgt.Grid()))

	wgt, _ = run(wgt, tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, []int{11, 12, 13, 14, 15, 16, 17, 18, 19, 20}, keys(wgt.Grid()))

	wgt, _ = run(wgt, tea.KeyPressMsg{Code: tea.KeyEnd})
	assert.Equal(t, 91, wgt.Grid().Body[0].Key)
	assert.Equal(t, 100, wgt.Grid().Body[9].Key)

	wgt, _ = run(wgt, press("s"))
	assert.Equal(t, 25, wgt.Pager().Size())
	assert.Equal(t, 0, wgt.Pager().Page())
	assert.Len(t, wgt.Grid().Body, 25)

	view := ansi.Strip(wgt.View().Content)
	assert.Contains(t, view, "row-000")
	assert.Contains(t, view, "row-024")
	assert.NotContains(t, view, "row-025")
	assert.Contains(t, view, "1–25 of 100")
}

func TestNoMovePastEnds(t *testing.T) {

	wgt, _ := newWidget(t, Config{})
	wgt, _ = run(wgt, DataMsg{Source: numbered(t, 15)})

	wgt, cmd := wgt.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Nil(t, cmd)

	wgt, _ = run(wgt, tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, 1, wgt.Pager().Page())

	_, cmd = wgt.Update(tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Nil(t, cmd)
}

func TestRTL(t *testing.T) {

	wgt, _ := newWidget(t, Config{Direction: pager.RTL})
	wgt, _ = run(wgt, DataMsg{Source: numbered(t, 30)})

	wgt, _ = run(wgt, tea.KeyPressMsg{Code: tea.KeyLeft})
	assert.Equal(t, 1, wgt.Pager().Page())

	wgt, _ = run(wgt, tea.KeyPressMsg{Code: tea.KeyRight})
	assert.Equal(t, 0, wgt.Pager().Page())
}

func TestSelection(t *testing.T) {

	wgt, _ := newWidget(t, Config{})
	wgt, _ = run(wgt, DataMsg{Source: numbered(t, 30)})
	assert.Equal(t, 1, wgt.Selected())

	wgt, _ = run(wgt, press("j"))
	wgt, _ = run(wgt, press("j"))
	assert.Equal(t, 3, wgt.Selected())

	wgt, _ = run(wgt, press("k"))
	assert.Equal(t, 2, wgt.Selected())

	wgt, _ = run(wgt, press("k"))
	wgt, _ = run(wgt, press("k"))
	assert.Equal(t, 1, wgt.Selected(), "stays on the first row")

	wgt, _ = run(wgt, press("l"))
	assert.Equal(t, 11, wgt.Selected(), "moves with the page, never onto another row's position")

	for range 12 {
		wgt, _ = run(wgt, press("j"))
	}
	assert.Equal(t, 20, wgt.Selected(), "stays on the last row")
}

func TestDataReplacementClamps(t *testing.T) {

	wgt, _ := newWidget(t, Config{})
	wgt, _ = run(wgt, DataMsg{Source: numbered(t, 100)})
	wgt, _ = run(wgt, press("G"))
	require.Equal(t, 9, wgt.Pager().Page())

	wgt, _ = run(wgt, DataMsg{Source: numbered(t, 25)})
	assert.Equal(t, 2, wgt.Pager().Page())
	assert.Len(t, wgt.Grid().Body, 5)
	assert.Equal(t, 21, wgt.Selected())
}

func TestEmpty(t *testing.T) {

	wgt, _ := newWidget(t, Config{})
	wgt, out := run(wgt, DataMsg{Source: numbered(t, 0)})
	require.Len(t, out, 1)

	assert.Empty(t, wgt.Grid().Body)
	assert.Equal(t, -1, wgt.Selected())
	assert.Contains(t, ansi.Strip(wgt.View().Content), "0–0 of 0")

	_, cmd := wgt.Update(press("l"))
	assert.Nil(t, cmd)
}

func TestRenderError(t *testing.T) {

	wgt, lgr := newWidget(t, Config{})
	wgt, out := run(wgt, DataMsg{Source: badSource{Frame: numbered(t, 30), row: 14}})

	// the first page renders
	require.NoError(t, wgt.Err())
	require.Len(t, out, 1)

	wgt, out = run(wgt, press("l"))
	require.Error(t, wgt.Err())
	assert.Equal(t, []tea.Msg{message.FrameHeightMsg{Height: 1}}, out, "error view is one line")
	assert.True(t, errors.Is(wgt.Err(), grid.ErrCellKind))
	assert.Contains(t, ansi.Strip(wgt.View().Content), "cannot parse cell type")
	require.Len(t, lgr.errors, 1)

	wgt, out = run(wgt, press("h"))
	assert.NoError(t, wgt.Err())
	assert.Equal(t, []tea.Msg{message.FrameHeightMsg{Height: wgt.Height()}}, out)
	assert.True(t, strings.Contains(ansi.Strip(wgt.View().Content), "row-000"))
}

func TestHelp(t *testing.T) {

	wgt, _ := newWidget(t, Config{})
	wgt, _ = run(wgt, DataMsg{Source: numbered(t, 30)})

	short := wgt.ShortHelp()
	require.NotEmpty(t, short)
	assert.True(t, short[0].Enabled())

	full := wgt.FullHelp()
	require.Len(t, full, 3)
	assert.False(t, full[1][0].Enabled(), "first page is disabled on the first page")
	assert.True(t, full[1][3].Enabled(), "last page is enabled")
}

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	usecase "github.com/alexanderramin/ember/internal/app"
	"github.com/alexanderramin/ember/internal/calendar"
	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/alexanderramin/ember/internal/domain"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ── key map ──────────────────────────────────────────────────────────────────

type dashboardKeyMap struct {
	Toggle key.Binding
	Prev   key.Binding
	Next   key.Binding
	Today  key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func newDashboardKeyMap() dashboardKeyMap {
	return dashboardKeyMap{
		Toggle: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "week/month")),
		Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "previous")),
		Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k dashboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Prev, k.Next, k.Today, k.Reload, k.Quit}
}

func (k dashboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// ── messages ─────────────────────────────────────────────────────────────────

// dashboardLoadedMsg carries one load result. seq lets the view drop
// results that a later keypress has made stale.
type dashboardLoadedMsg struct {
	seq   int
	chart *usecase.ChartResponse
	trend *usecase.TrendResponse
	err   error
}

// ── view ─────────────────────────────────────────────────────────────────────

// dashboardView shows the trend banner above a week or month chart.
type dashboardView struct {
	app  *App
	kind domain.WindowKind
	ref  time.Time

	chart   *usecase.ChartResponse
	trend   *usecase.TrendResponse
	loading bool
	err     error
	seq     int

	keys dashboardKeyMap
	help help.Model
}

func newDashboardView(app *App) *dashboardView {
	return &dashboardView{
		app:     app,
		kind:    domain.WindowWeek,
		ref:     domain.CivilDate(app.now()),
		loading: true,
		keys:    newDashboardKeyMap(),
		help:    help.New(),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.load()
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *dashboardView) load() tea.Cmd {
	v.seq++
	v.loading = true
	seq, kind, ref, app := v.seq, v.kind, v.ref, v.app

	return func() tea.Msg {
		ctx := context.Background()
		now := app.nowPtr()

		chart, err := app.Insights.Chart(ctx, usecase.ChartRequest{Window: kind, Reference: &ref, Now: now})
		if err != nil {
			return dashboardLoadedMsg{seq: seq, err: err}
		}
		trend, err := app.Insights.Trend(ctx, usecase.TrendRequest{Now: now})
		if err != nil {
			return dashboardLoadedMsg{seq: seq, err: err}
		}
		return dashboardLoadedMsg{seq: seq, chart: chart, trend: trend}
	}
}

// shift pages the reference date by n windows of the current kind.
func (v *dashboardView) shift(n int) {
	spec, err := calendar.NewWindow(v.kind, v.ref, v.app.Prefs.WeekStart)
	if err != nil {
		v.err = err
		return
	}
	v.ref = calendar.Shift(spec, n).Reference()
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.help.Width = msg.Width
		return v, nil

	case dashboardLoadedMsg:
		if msg.seq != v.seq {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.chart = msg.chart
			v.trend = msg.trend
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Toggle):
			if v.kind == domain.WindowWeek {
				v.kind = domain.WindowMonth
			} else {
				v.kind = domain.WindowWeek
			}
			return v, v.load()
		case key.Matches(msg, v.keys.Prev):
			v.shift(-1)
			return v, v.load()
		case key.Matches(msg, v.keys.Next):
			v.shift(1)
			return v, v.load()
		case key.Matches(msg, v.keys.Today):
			v.ref = domain.CivilDate(v.app.now())
			return v, v.load()
		case key.Matches(msg, v.keys.Reload):
			return v, v.load()
		}
	}

	return v, nil
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *dashboardView) View() string {
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error()) + "\n\n  " + v.help.View(v.keys) + "\n"
	}
	if v.chart == nil {
		return "\n  " + formatter.Dim("Loading...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(indent(v.renderTrend()))
	b.WriteString("\n")

	title := formatter.StyleHeader.Render(strings.ToUpper(v.chart.Title))
	if v.loading {
		title += formatter.Dim("  loading…")
	}
	b.WriteString("  " + title + "  " + formatter.Dim("["+string(v.kind)+"]") + "\n\n")
	b.WriteString(indent(formatter.ChartRows(v.chart.Points, v.chart.Today)))
	b.WriteString("\n  " + formatter.ChartSummary(v.chart.Summary) + "\n\n")
	b.WriteString("  " + v.help.View(v.keys) + "\n")
	return b.String()
}

func (v *dashboardView) renderTrend() string {
	if v.trend == nil {
		return ""
	}
	t := v.trend.Trend
	line := "Last 7 days  " + formatter.TrendIndicator(t.Label, t.Sufficient)
	if t.Sufficient {
		line += formatter.Dim(fmt.Sprintf("  avg %s · %d risk days · ",
			formatter.FormatScore(t.AverageScore), t.RiskDayCount)) + formatter.DirectionIndicator(t.Direction)
	}
	return line + "\n"
}

func indent(s string) string {
	if s == "" {
		return s
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n") + "\n"
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tui is the interactive terminal front end of the recipe browser.
// It renders the search, results, recipe, bookmark, and add-recipe panes of
// a browser.App and turns key presses into App actions. Fetches run as
// tea.Cmds; results of superseded requests are dropped before they reach
// Update.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/forkify/internal/browser"
	"github.com/pdiddy/forkify/internal/recipe"
	"github.com/pdiddy/forkify/internal/upload"
)

type focus int

const (
	focusSearch focus = iota
	focusResults
	focusBookmarks
	focusUpload
)

const (
	listWidth     = 44
	minPaneWidth  = 40
	defaultHeight = 24
)

var formLabels = []string{"Title", "URL", "Image URL", "Publisher", "Prep time", "Servings"}

// Model is the bubbletea model of the browser.
type Model struct {
	ctx    context.Context
	app    *browser.App
	styles Styles

	focus     focus
	input     textinput.Model
	spinner   spinner.Model
	recipe    viewport.Model
	form      []textinput.Model
	formFocus int

	cursor   int
	bmCursor int
	status   string

	dismissed chan struct{}

	width, height int
}

// New returns a model driving app. ctx bounds every request the model
// issues.
func New(ctx context.Context, app *browser.App) Model {
	in := textinput.New()
	in.Placeholder = "Search over 1,000,000 recipes..."
	in.Prompt = "Search: "
	in.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	dismissed := make(chan struct{}, 1)
	app.Upload.OnDismiss = func() {
		select {
		case dismissed <- struct{}{}:
		default:
		}
	}

	return Model{
		ctx:       ctx,
		app:       app,
		styles:    DefaultStyles(),
		focus:     focusSearch,
		input:     in,
		spinner:   sp,
		recipe:    viewport.New(minPaneWidth, defaultHeight-6),
		form:      newForm(upload.DefaultForm()),
		dismissed: dismissed,
	}
}

// Init starts the cursor blink and the spinner.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// --- messages ---

type searchDoneMsg struct{ err error }

type recipeDoneMsg struct{ err error }

type bookmarkMsg struct {
	added bool
	err   error
}

type uploadDoneMsg struct{ err error }

type dismissedMsg struct{}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.recipe.Width = max(msg.Width-listWidth-6, minPaneWidth)
		m.recipe.Height = max(msg.Height-6, 5)

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)

	case searchDoneMsg:
		m.cursor = 0
		if msg.err == nil {
			m.status = ""
		}

	case recipeDoneMsg:
		m.recipe.GotoTop()

	case bookmarkMsg:
		switch {
		case msg.err != nil:
			m.status = msg.err.Error()
		case msg.added:
			m.status = "Bookmarked"
		default:
			m.status = "Bookmark removed"
		}

	case uploadDoneMsg:
		if m.app.Upload.State().Success != "" {
			m.recipe.GotoTop()
			cmd = m.waitDismiss()
		}
		if msg.err != nil {
			m.status = msg.err.Error()
		}

	case dismissedMsg:
		if m.focus == focusUpload {
			m.focus = focusResults
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.focus {
		case focusSearch:
			m, cmd = m.updateSearch(msg)
		case focusResults:
			m, cmd = m.updateResults(msg)
		case focusBookmarks:
			m, cmd = m.updateBookmarks(msg)
		case focusUpload:
			m, cmd = m.updateUpload(msg)
		}
	}

	m.syncRecipe()
	return m, cmd
}

func (m Model) updateSearch(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return m, nil
		}
		m.input.SetValue("")
		m.input.Blur()
		m.focus = focusResults
		return m, tea.Batch(m.searchCmd(query), m.spinner.Tick)
	case tea.KeyEsc, tea.KeyTab:
		m.input.Blur()
		m.focus = focusResults
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateResults(msg tea.KeyMsg) (Model, tea.Cmd) {
	page := m.app.Search.State().PageResults()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.focus = focusSearch
		return m, m.input.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(page)-1 {
			m.cursor++
		}
	case "right", "n":
		m.app.Search.NextPage()
		m.cursor = 0
	case "left", "p":
		m.app.Search.PrevPage()
		m.cursor = 0
	case "esc":
		if q := m.app.Query(); q != "" {
			m.app.CancelSearch()
			m.status = fmt.Sprintf("Search for %q cancelled", q)
		}
	case "enter":
		if m.cursor < len(page) {
			return m, tea.Batch(m.selectCmd(page[m.cursor].ID), m.spinner.Tick)
		}
	case "+", "=":
		m.servingsErr(m.app.Recipe.IncreaseServings())
	case "-":
		m.servingsErr(m.app.Recipe.DecreaseServings())
	case "b":
		return m, m.bookmarkCmd()
	case "B", "tab":
		m.focus = focusBookmarks
		m.bmCursor = 0
	case "u":
		return m.openUpload()
	case "pgdown", "ctrl+d":
		m.recipe.HalfViewDown()
	case "pgup", "ctrl+u":
		m.recipe.HalfViewUp()
	}
	return m, nil
}

func (m *Model) servingsErr(err error) {
	if err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
}

func (m Model) updateBookmarks(msg tea.KeyMsg) (Model, tea.Cmd) {
	list := m.app.Bookmarks.List()
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "B", "tab":
		m.focus = focusResults
	case "up", "k":
		if m.bmCursor > 0 {
			m.bmCursor--
		}
	case "down", "j":
		if m.bmCursor < len(list)-1 {
			m.bmCursor++
		}
	case "enter":
		if m.bmCursor < len(list) {
			return m, tea.Batch(m.selectCmd(list[m.bmCursor].ID), m.spinner.Tick)
		}
	case "b":
		return m, m.bookmarkCmd()
	case "u":
		return m.openUpload()
	}
	return m, nil
}

func (m Model) openUpload() (Model, tea.Cmd) {
	m.app.Upload.Toggle()
	if !m.app.Upload.State().Open {
		return m, nil
	}
	m.focus = focusUpload
	m.form = newForm(upload.DefaultForm())
	m.formFocus = 0
	return m, m.form[0].Focus()
}

func (m Model) updateUpload(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.app.Upload.State().Loading {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.app.Upload.Close()
		m.focus = focusResults
		return m, nil
	case "tab", "down":
		return m, m.focusField(m.formFocus + 1)
	case "shift+tab", "up":
		return m, m.focusField(m.formFocus - 1)
	case "ctrl+s":
		return m, tea.Batch(m.uploadCmd(formValues(m.form)), m.spinner.Tick)
	case "enter":
		if m.formFocus < len(m.form)-1 {
			return m, m.focusField(m.formFocus + 1)
		}
		return m, tea.Batch(m.uploadCmd(formValues(m.form)), m.spinner.Tick)
	}
	var cmd tea.Cmd
	m.form[m.formFocus], cmd = m.form[m.formFocus].Update(msg)
	return m, cmd
}

func (m *Model) focusField(i int) tea.Cmd {
	n := len(m.form)
	i = (i%n + n) % n
	m.form[m.formFocus].Blur()
	m.formFocus = i
	return m.form[i].Focus()
}

// syncRecipe refreshes the recipe viewport from the App so scrolling has
// the current content.
func (m *Model) syncRecipe() {
	st := m.app.Recipe.State()
	if st.Recipe == nil {
		m.recipe.SetContent("")
		return
	}
	var b strings.Builder
	recipe.FormatRecipe(*st.Recipe, m.app.IsBookmarked(st.Recipe.ID), &b)
	b.WriteString("\n[+/-] servings  [b] bookmark")
	m.recipe.SetContent(b.String())
}

// --- views ---

// View renders the browser.
func (m Model) View() string {
	if m.focus == focusUpload {
		return m.uploadView()
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.styles.Title.Render("forkify  "),
		m.input.View(),
	)

	left := m.resultsView()
	if m.focus == focusBookmarks {
		left = m.bookmarksView()
	}
	leftPane := m.styles.Pane
	if m.focus == focusResults || m.focus == focusBookmarks {
		leftPane = m.styles.FocusedPane
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		leftPane.Width(listWidth).Render(left),
		m.styles.Pane.Width(m.recipe.Width+2).Render(m.recipeView()),
	)

	footer := m.styles.Help.Render("/ search  enter open  n/p page  esc cancel  B bookmarks  u add recipe  q quit")
	if m.status != "" {
		footer = m.styles.Muted.Render(m.status) + "\n" + footer
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) resultsView() string {
	st := m.app.Search.State()
	switch {
	case st.Loading:
		return fmt.Sprintf("%s Searching for %q...", m.spinner.View(), m.app.Query())
	case st.Err != "":
		return m.styles.Error.Render(st.Err)
	case !st.Visible():
		return m.styles.Muted.Render("Search results appear here.")
	}

	var b strings.Builder
	for i, r := range st.PageResults() {
		b.WriteString(m.row(r.ID, r.Title, r.Publisher, r.IsUserGenerated(), i == m.cursor && m.focus == focusResults))
	}
	recipe.FormatPagination(st.Page, st.NumPages(), &b)
	return b.String()
}

func (m Model) bookmarksView() string {
	list := m.app.Bookmarks.List()
	if len(list) == 0 {
		return m.styles.Muted.Render(recipe.NoBookmarks)
	}
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Bookmarks") + "\n")
	for i, r := range list {
		b.WriteString(m.row(r.ID, r.Title, r.Publisher, r.IsUserGenerated(), i == m.bmCursor))
	}
	return b.String()
}

func (m Model) row(id, title, publisher string, user, cursor bool) string {
	mark := "  "
	if cursor {
		mark = "> "
	}
	if user {
		title += " *"
	}
	line := mark + recipe.Truncate(title, listWidth-4)
	if id == m.app.SelectedID() {
		line = m.styles.Selected.Render(line)
	}
	return line + "\n" + m.styles.Muted.Render("    "+recipe.Truncate(publisher, listWidth-6)) + "\n"
}

func (m Model) recipeView() string {
	st := m.app.Recipe.State()
	switch {
	case st.Loading:
		return m.spinner.View() + " Loading recipe..."
	case st.Err != "":
		return m.styles.Error.Render(st.Err)
	case st.Placeholder():
		return m.styles.Muted.Render(recipe.Placeholder)
	}
	return m.recipe.View()
}

func (m Model) uploadView() string {
	st := m.app.Upload.State()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Upload recipe") + "\n\n")

	switch {
	case st.Success != "":
		b.WriteString(m.styles.Success.Render(st.Success) + "\n")
		return m.center(m.styles.Modal.Render(b.String()))
	case st.Loading:
		b.WriteString(m.spinner.View() + " Uploading...\n")
		return m.center(m.styles.Modal.Render(b.String()))
	}

	for i, in := range m.form {
		label := fmt.Sprintf("Ingredient %d", i-len(formLabels)+1)
		if i < len(formLabels) {
			label = formLabels[i]
		}
		b.WriteString(m.styles.Label.Render(label) + in.View() + "\n")
	}
	if st.Err != "" {
		b.WriteString("\n" + m.styles.Error.Render(st.Err) + "\n")
	}
	b.WriteString("\n" + m.styles.Help.Render("tab next field  ctrl+s upload  esc close"))
	return m.center(m.styles.Modal.Render(b.String()))
}

func (m Model) center(s string) string {
	if m.width == 0 || m.height == 0 {
		return s
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, s)
}

// --- commands ---

func (m Model) searchCmd(query string) tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		err := app.SubmitSearch(ctx, query)
		if superseded(err) {
			return nil
		}
		return searchDoneMsg{err: err}
	}
}

func (m Model) selectCmd(id string) tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		err := app.Select(ctx, id)
		if superseded(err) {
			return nil
		}
		return recipeDoneMsg{err: err}
	}
}

func (m Model) bookmarkCmd() tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		added, err := app.ToggleBookmark(ctx)
		return bookmarkMsg{added: added, err: err}
	}
}

func (m Model) uploadCmd(form upload.Form) tea.Cmd {
	app, ctx := m.app, m.ctx
	return func() tea.Msg {
		_, err := app.SubmitUpload(ctx, form)
		return uploadDoneMsg{err: err}
	}
}

func (m Model) waitDismiss() tea.Cmd {
	ch, ctx := m.dismissed, m.ctx
	return func() tea.Msg {
		select {
		case <-ch:
			return dismissedMsg{}
		case <-ctx.Done():
			return nil
		}
	}
}

// --- form helpers ---

func newForm(f upload.Form) []textinput.Model {
	values := []string{f.Title, f.SourceURL, f.ImageURL, f.Publisher, f.CookingTime, f.Servings}
	inputs := make([]textinput.Model, len(formLabels)+upload.MaxIngredients)
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Width = 40
		if i < len(formLabels) {
			in.SetValue(values[i])
		} else {
			in.Placeholder = upload.LineFormat
			if j := i - len(formLabels); j < len(f.Ingredients) {
				in.SetValue(f.Ingredients[j])
			}
		}
		inputs[i] = in
	}
	return inputs
}

func formValues(inputs []textinput.Model) upload.Form {
	v := make([]string, len(inputs))
	for i, in := range inputs {
		v[i] = in.Value()
	}
	return upload.Form{
		Title:       v[0],
		SourceURL:   v[1],
		ImageURL:    v[2],
		Publisher:   v[3],
		CookingTime: v[4],
		Servings:    v[5],
		Ingredients: v[len(formLabels):],
	}
}

func superseded(err error) bool {
	return errors.Is(err, browser.ErrSuperseded)
}

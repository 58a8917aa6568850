package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tylerneylon/rss/pkg/feed"
)

// Form styles
var (
	formLabelStyle  = styleValue
	formActiveStyle = styleTitle
	formDoneStyle   = styleDim
)

// editItem runs a small interactive form over the item's editable fields.
// Leaving a field empty keeps its current value. The second return value
// is false when the user cancelled.
func editItem(item feed.Item) (feed.Item, bool, error) {
	m := newItemForm(item)
	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return item, false, fmt.Errorf("run edit form: %w", err)
	}

	form, ok := result.(itemForm)
	if !ok || form.cancelled {
		return item, false, nil
	}

	apply := func(current, entered string) string {
		entered = strings.TrimSpace(entered)
		if entered == "" {
			return current
		}
		return entered
	}
	item.Title = apply(item.Title, form.fields[0].value)
	item.Link = apply(item.Link, form.fields[1].value)
	item.Description = apply(item.Description, form.fields[2].value)
	item.Author = apply(item.Author, form.fields[3].value)
	return item, true, nil
}

// formField is one line of the edit form.
type formField struct {
	label       string
	placeholder string
	value       string
}

// itemForm is the bubbletea model for the item edit form.
type itemForm struct {
	fields    []formField
	index     int
	cancelled bool
}

func newItemForm(item feed.Item) itemForm {
	return itemForm{
		fields: []formField{
			{label: "title", placeholder: item.Title},
			{label: "link", placeholder: item.Link},
			{label: "description", placeholder: item.Description},
			{label: "author", placeholder: item.Author},
		},
	}
}

func (m itemForm) Init() tea.Cmd {
	return nil
}

func (m itemForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit
	case tea.KeyEnter:
		if m.index == len(m.fields)-1 {
			return m, tea.Quit
		}
		m.index++
	case tea.KeyBackspace:
		v := m.fields[m.index].value
		if v != "" {
			m.fields[m.index].value = v[:len(v)-len(lastRune(v))]
		}
	case tea.KeySpace:
		m.fields[m.index].value += " "
	case tea.KeyRunes:
		m.fields[m.index].value += string(key.Runes)
	}
	return m, nil
}

func (m itemForm) View() string {
	var b strings.Builder
	b.WriteString(formActiveStyle.Render("New item") + "\n\n")
	for i, f := range m.fields {
		marker := "  "
		if i == m.index {
			marker = styleTitle.Render("> ")
		}
		shown := f.value
		if shown == "" {
			shown = formDoneStyle.Render(f.placeholder)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, formLabelStyle.Render(f.label+":"), shown))
	}
	b.WriteString("\n" + formDoneStyle.Render("enter: next field · esc: cancel · empty keeps the shown value") + "\n")
	return b.String()
}

// lastRune returns the final UTF-8 rune of s as a string.
func lastRune(s string) string {
	runes := []rune(s)
	return string(runes[len(runes)-1])
}

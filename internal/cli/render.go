package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	timeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Width(7)
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("241"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	checkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// CategoryIndex loads the current owner's categories keyed by id.
func (c *Context) CategoryIndex() (map[string]models.Category, error) {
	cats, err := c.Service.ListCategories(c.Context())
	if err != nil {
		return nil, err
	}
	index := make(map[string]models.Category, len(cats))
	for _, cat := range cats {
		index[cat.ID] = cat
	}
	return index, nil
}

// CategoryLabel renders a category in its own colour.
func CategoryLabel(cat models.Category) string {
	label := strings.TrimSpace(cat.Emoji + " " + cat.Name)
	if cat.Color == "" {
		return label
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(cat.Color)).Render(label)
}

// FormatInstance renders one line of an agenda.
func FormatInstance(inst models.TaskInstance, cats map[string]models.Category) string {
	mark := "[ ]"
	if inst.Completed {
		mark = checkStyle.Render("[x]")
	}

	when := "all day"
	if inst.DueTime != nil {
		when = *inst.DueTime
	}

	title := strings.TrimSpace(inst.Emoji + " " + inst.Title)
	if inst.Completed {
		title = doneStyle.Render(title)
	}

	parts := []string{mark, timeStyle.Render(when), title}
	if inst.CategoryID != nil {
		if cat, ok := cats[*inst.CategoryID]; ok {
			parts = append(parts, CategoryLabel(cat))
		}
	}
	if inst.Recurrence.IsRecurring() {
		parts = append(parts, mutedStyle.Render("↻ "+string(inst.Recurrence)))
	}
	parts = append(parts, mutedStyle.Render(ShortID(inst.ID)))
	return strings.Join(parts, " ")
}

// RenderDay writes the agenda for a single date.
func RenderDay(w io.Writer, date string, instances []models.TaskInstance, cats map[string]models.Category) {
	fmt.Fprintln(w, headerStyle.Render(dayHeading(date)))
	if len(instances) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("  Nothing scheduled"))
		return
	}
	for _, inst := range instances {
		fmt.Fprintf(w, "  %s\n", FormatInstance(inst, cats))
	}
}

// RenderRange writes one RenderDay block per date, in date order.
func RenderRange(w io.Writer, days map[string][]models.TaskInstance, cats map[string]models.Category) {
	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	for i, date := range dates {
		if i > 0 {
			fmt.Fprintln(w)
		}
		RenderDay(w, date, days[date], cats)
	}
}

// FormatDigest renders the reminder for date: every incomplete instance, or
// a short note when everything is done.
func FormatDigest(date string, instances []models.TaskInstance, cats map[string]models.Category) string {
	var b strings.Builder
	var open int
	for _, inst := range instances {
		if inst.Completed {
			continue
		}
		open++
		fmt.Fprintf(&b, "  %s\n", FormatInstance(inst, cats))
	}
	if open == 0 {
		return fmt.Sprintf("%s: nothing left to do\n", dayHeading(date))
	}
	return fmt.Sprintf("%s: %d open\n%s", dayHeading(date), open, b.String())
}

// ShortID returns the first eight characters of a uuid.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func dayHeading(date string) string {
	d, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return d.Format("Monday, Jan 2 2006")
}

// Instance presents a stored task as the instance on its own due date.
func Instance(t models.Task) models.TaskInstance {
	return models.TaskInstance{Task: t, Date: t.DueDate}
}

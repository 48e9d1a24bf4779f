// Package calendar groups appointments by date for the operator notification.
package calendar

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Builder строит календарное представление записей.
// Не имеет состояния, повторный вызов с теми же данными даёт тот же результат.
type Builder struct {
	html *template.Template
}

// NewBuilder создает новый экземпляр билдера
func NewBuilder() *Builder {
	return &Builder{html: calendarHTML}
}

// Render группирует записи по дате.
// Порядок дней - порядок первого появления даты во входных данных,
// порядок записей внутри дня совпадает с входным.
func (b *Builder) Render(appointments []*domain.Appointment) *View {
	view := &View{Days: make([]Day, 0)}
	index := make(map[types.Date]int)

	for _, appt := range appointments {
		if appt == nil {
			continue
		}

		i, ok := index[appt.Date]
		if !ok {
			i = len(view.Days)
			index[appt.Date] = i
			view.Days = append(view.Days, Day{
				Date:  appt.Date,
				Label: Label(appt.Date),
			})
		}

		view.Days[i].Entries = append(view.Days[i].Entries, Entry{
			Time: appt.Time,
			Name: appt.Name,
		})
	}

	return view
}

// RenderHTML возвращает HTML-фрагмент календаря. Имена экранируются.
func (b *Builder) RenderHTML(appointments []*domain.Appointment) (template.HTML, error) {
	var buf bytes.Buffer
	if err := b.html.Execute(&buf, b.Render(appointments)); err != nil {
		return "", fmt.Errorf("render calendar html: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// RenderText возвращает текстовую версию календаря
func (b *Builder) RenderText(appointments []*domain.Appointment) string {
	var sb strings.Builder
	for i, day := range b.Render(appointments).Days {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(day.Label)
		sb.WriteString("\n")
		for _, entry := range day.Entries {
			fmt.Fprintf(&sb, "  %s - %s\n", entry.Time, entry.Name)
		}
	}
	return sb.String()
}

// Label форматирует дату для заголовка дня
func Label(d types.Date) string {
	return d.Time().Format(LabelLayout)
}

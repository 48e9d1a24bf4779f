package calendar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

func appt(name, date, t string) *domain.Appointment {
	return &domain.Appointment{
		Name: name,
		Date: types.MustDate(date),
		Time: types.TimeString(t),
	}
}

func TestRenderGroupsByDate(t *testing.T) {
	b := NewBuilder()

	view := b.Render([]*domain.Appointment{
		appt("Ana", "2025-03-10", "10:00"),
		appt("Cy", "2025-03-11", "09:00"),
		appt("Ben", "2025-03-10", "09:00"),
	})

	require.Len(t, view.Days, 2)
	assert.Equal(t, "Monday, March 10, 2025", view.Days[0].Label)
	assert.Equal(t, "Tuesday, March 11, 2025", view.Days[1].Label)

	// порядок внутри дня совпадает с входным, без пересортировки по времени
	assert.Equal(t, []Entry{{Time: "10:00", Name: "Ana"}, {Time: "09:00", Name: "Ben"}}, view.Days[0].Entries)
	assert.Equal(t, []Entry{{Time: "09:00", Name: "Cy"}}, view.Days[1].Entries)
	assert.Equal(t, 3, view.Len())
}

func TestRenderEmpty(t *testing.T) {
	b := NewBuilder()

	view := b.Render(nil)
	assert.Empty(t, view.Days)

	html, err := b.RenderHTML(nil)
	require.NoError(t, err)
	assert.Empty(t, html)
	assert.Empty(t, b.RenderText(nil))
}

func TestRenderHTMLIsIdempotent(t *testing.T) {
	b := NewBuilder()
	input := []*domain.Appointment{
		appt("Ana", "2025-03-10", "10:00"),
		appt("Ben", "2025-03-10", "11:00"),
	}

	first, err := b.RenderHTML(input)
	require.NoError(t, err)
	second, err := b.RenderHTML(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, string(first), "Monday, March 10, 2025")
	assert.Contains(t, string(first), "10:00 - Ana")
	assert.Equal(t, 1, strings.Count(string(first), "<h3"))
}

func TestRenderHTMLEscapesNames(t *testing.T) {
	b := NewBuilder()

	html, err := b.RenderHTML([]*domain.Appointment{
		appt("<script>alert(1)</script>", "2025-03-10", "10:00"),
	})
	require.NoError(t, err)

	assert.NotContains(t, string(html), "<script>")
	assert.Contains(t, string(html), "&lt;script&gt;")
}

func TestRenderText(t *testing.T) {
	b := NewBuilder()

	text := b.RenderText([]*domain.Appointment{
		appt("Ana", "2025-03-10", "10:00"),
		appt("Cy", "2025-03-11", "09:00"),
	})

	assert.Equal(t, "Monday, March 10, 2025\n  10:00 - Ana\n\nTuesday, March 11, 2025\n  09:00 - Cy\n", text)
}

func TestRenderSkipsNil(t *testing.T) {
	view := NewBuilder().Render([]*domain.Appointment{nil, appt("Ana", "2025-03-10", "10:00")})
	require.Len(t, view.Days, 1)
	assert.Len(t, view.Days[0].Entries, 1)
}

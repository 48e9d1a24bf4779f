package notification

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/service/calendar"
)

var messageHTML = template.Must(template.New("message").Parse(
	`<h1>New Appointment Booking</h1>` +
		`<p>Name: {{.Name}}</p>` +
		`<p>Email: {{.Email}}</p>` +
		`<p>Date: {{.Date}}</p>` +
		`<p>Time: {{.Time}}</p>` +
		`<h2>{{.CalendarTitle}}</h2>` +
		`{{.Calendar}}`,
))

type messageData struct {
	Name          string
	Email         string
	Date          string
	Time          string
	CalendarTitle string
	Calendar      template.HTML
}

const (
	calendarTitle  = "All Upcoming Appointments"
	noAppointments = "No appointments."
)

func renderHTML(appt *domain.Appointment, cal template.HTML) (string, error) {
	if cal == "" {
		cal = template.HTML("<p>" + noAppointments + "</p>")
	}

	var buf bytes.Buffer
	err := messageHTML.Execute(&buf, messageData{
		Name:          appt.Name,
		Email:         appt.Email,
		Date:          calendar.Label(appt.Date),
		Time:          appt.Time.String(),
		CalendarTitle: calendarTitle,
		Calendar:      cal,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return buf.String(), nil
}

func renderText(appt *domain.Appointment, cal string) string {
	if cal == "" {
		cal = noAppointments + "\n"
	}

	var sb strings.Builder
	sb.WriteString("New Appointment Booking\n\n")
	fmt.Fprintf(&sb, "Name: %s\n", appt.Name)
	fmt.Fprintf(&sb, "Email: %s\n", appt.Email)
	fmt.Fprintf(&sb, "Date: %s\n", calendar.Label(appt.Date))
	fmt.Fprintf(&sb, "Time: %s\n\n", appt.Time)
	sb.WriteString(calendarTitle + "\n\n")
	sb.WriteString(cal)
	return sb.String()
}

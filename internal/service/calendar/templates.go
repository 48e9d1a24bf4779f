package calendar

import "html/template"

var calendarHTML = template.Must(template.New("calendar").Parse(
	`{{range .Days}}<div style="margin-bottom: 20px;">` +
		`<h3 style="color: #1a1a1a; margin-bottom: 10px;">{{.Label}}</h3>` +
		`<ul style="list-style: none; padding: 0;">` +
		`{{range .Entries}}<li style="padding: 10px; background-color: #f5f5f5; margin-bottom: 5px; border-radius: 4px;">{{.Time}} - {{.Name}}</li>{{end}}` +
		`</ul></div>{{end}}`,
))

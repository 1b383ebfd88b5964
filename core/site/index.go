package site

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"time"
)

// IndexEntry is one row of the generated index page.
type IndexEntry struct {
	Title   string
	Href    string
	Date    time.Time
	Summary string
	Tags    []string
}

// RenderIndex produces index.html for the site: non-draft posts,
// newest first, ties broken by title so output is stable. stylesheet
// is the href linked from the head (empty for none).
func RenderIndex(cfg Config, entries []IndexEntry, stylesheet string) ([]byte, error) {
	sorted := make([]IndexEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.After(sorted[j].Date)
		}
		return sorted[i].Title < sorted[j].Title
	})

	data := indexData{
		Site:       cfg,
		Stylesheet: stylesheet,
		Entries:    sorted,
	}

	var out bytes.Buffer
	if err := indexTmpl.Execute(&out, data); err != nil {
		return nil, fmt.Errorf("assembling index: %w", err)
	}
	return out.Bytes(), nil
}

type indexData struct {
	Site       Config
	Stylesheet string
	Entries    []IndexEntry
}

var indexTmpl = template.Must(template.New("index").Funcs(template.FuncMap{
	"date": func(t time.Time) string { return t.Format("2006-01-02") },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Site.Title}}</title>
{{if .Stylesheet}}<link rel="stylesheet" href="{{.Stylesheet}}">
{{end}}</head>
<body>
<main>
<h1>{{.Site.Title}}</h1>
{{if .Site.Author}}<p class="author">{{.Site.Author}}</p>
{{end}}<ul class="posts">
{{range .Entries}}<li>
<a href="{{.Href}}">{{.Title}}</a>
<time datetime="{{date .Date}}">{{date .Date}}</time>
{{if .Summary}}<p>{{.Summary}}</p>
{{end}}</li>
{{end}}</ul>
</main>
</body>
</html>
`))

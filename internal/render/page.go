// ABOUTME: Fixed HTML page template for individual blog posts.
// ABOUTME: Interpolates title, date, and rendered body into the site shell.
package render

import (
	"html"
	"strings"
	"text/template"
)

// SiteInfo carries the site-wide values baked into every page.
type SiteInfo struct {
	Author string
	Year   string
	// EscapeMetadata HTML-escapes title, date, and description. Off by
	// default: metadata is interpolated verbatim.
	EscapeMetadata bool
}

// DefaultSite returns the stock author and footer year.
func DefaultSite() SiteInfo {
	return SiteInfo{Author: "Jack Wittmayer", Year: "2025"}
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - {{.Author}}</title>
    <link rel="stylesheet" href="../styles.css">
</head>
<body>
    <div class="container">
        <nav class="navbar">
            <h1><a href="/">{{.Author}}</a></h1>
            <ul>
                <li><a href="/about.html">About</a></li>
            </ul>
        </nav>

        <main>
            <article class="blog-post">
                <h1>{{.Title}}</h1>
                <p class="post-date">{{.Date}}</p>

                {{.Body}}
            </article>
        </main>

        <footer>
            <p>© {{.Year}} {{.Author}}</p>
        </footer>
    </div>
</body>
</html>`))

type pageData struct {
	Title  string
	Date   string
	Body   string
	Slug   string
	Author string
	Year   string
}

// Page renders the full HTML document for one post. Values are inserted
// verbatim unless site.EscapeMetadata is set; bodyHTML is never escaped.
func Page(site SiteInfo, title, date, bodyHTML, slug string) string {
	data := pageData{
		Title:  site.metadata(title),
		Date:   site.metadata(date),
		Body:   bodyHTML,
		Slug:   slug,
		Author: site.Author,
		Year:   site.Year,
	}

	var sb strings.Builder
	_ = pageTemplate.Execute(&sb, data)
	return sb.String()
}

func (s SiteInfo) metadata(v string) string {
	if s.EscapeMetadata {
		return html.EscapeString(v)
	}
	return v
}

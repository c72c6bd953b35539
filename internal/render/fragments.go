// ABOUTME: Home page fragments built from index records.
// ABOUTME: Renders the latest-post teaser and the all-posts list.
package render

import (
	"fmt"
	"strings"

	"github.com/2389-research/blogbuild/internal/models"
)

// LatestPost renders the teaser article for the newest post.
func LatestPost(site SiteInfo, rec models.PostRecord) string {
	return fmt.Sprintf(`<article class="post">
                    <h3><a href="/posts/%[1]s.html">%[2]s</a></h3>
                    <p class="post-date">%[3]s</p>
                    <p>%[4]s</p>
                    <a href="/posts/%[1]s.html" class="read-more">Read more →</a>
                </article>`,
		rec.Slug, site.metadata(rec.Title), site.metadata(rec.Date), site.metadata(rec.Description))
}

// PostList renders every record as a linked list item, in the given order.
func PostList(site SiteInfo, recs []models.PostRecord) string {
	items := make([]string, 0, len(recs))
	for _, rec := range recs {
		items = append(items, fmt.Sprintf(`<li>
                        <a href="/posts/%s.html">%s</a>
                        <span class="post-list-date">%s</span>
                    </li>`, rec.Slug, site.metadata(rec.Title), site.metadata(rec.Date)))
	}
	return fmt.Sprintf(`<ul class="posts-list">
                %s
            </ul>`, strings.Join(items, "\n"))
}

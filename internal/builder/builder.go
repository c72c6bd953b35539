// ABOUTME: Build pipeline that turns markdown posts into HTML pages and a JSON index.
// ABOUTME: Runs scan, parse, render, slug, page write, then index serialization in one pass.
package builder

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/2389-research/blogbuild/internal/frontmatter"
	"github.com/2389-research/blogbuild/internal/logging"
	"github.com/2389-research/blogbuild/internal/models"
	"github.com/2389-research/blogbuild/internal/render"
	"github.com/2389-research/blogbuild/internal/slug"
	"github.com/2389-research/blogbuild/internal/storage"
)

// Builder runs the post build against a SiteStore.
type Builder struct {
	store storage.SiteStore
	site  render.SiteInfo
	out   io.Writer
	log   logrus.FieldLogger
}

// Option configures optional Builder dependencies.
type Option func(*Builder)

// WithOutput sets where progress lines are printed.
func WithOutput(w io.Writer) Option {
	return func(b *Builder) {
		b.out = w
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(b *Builder) {
		b.log = l
	}
}

// WithSite sets the author, footer year, and escaping used in pages.
func WithSite(site render.SiteInfo) Option {
	return func(b *Builder) {
		b.site = site
	}
}

// Result is the outcome of a successful build.
type Result struct {
	RunID        uuid.UUID
	Posts        []models.PostRecord // newest filename first
	IndexWritten bool
}

// New creates a builder. Progress goes to io.Discard unless WithOutput is given.
func New(store storage.SiteStore, opts ...Option) (*Builder, error) {
	if store == nil {
		return nil, fmt.Errorf("site store is required")
	}

	b := &Builder{
		store: store,
		site:  render.DefaultSite(),
		out:   io.Discard,
		log:   logging.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Build converts every source post and writes the index. The first failure
// aborts the run; pages already written are left in place.
func (b *Builder) Build() (*Result, error) {
	runID := uuid.New()
	log := b.log.WithField("run_id", runID.String())

	if err := b.store.EnsureOutputDir(); err != nil {
		return nil, err
	}

	paths, err := b.store.ListSources()
	if err != nil {
		return nil, err
	}
	log.WithField("count", len(paths)).Debug("sources found")

	posts := make([]models.PostRecord, 0, len(paths))
	seen := make(map[string]string, len(paths)) // slug -> first source path
	for _, path := range paths {
		rec, err := b.buildPost(log, path)
		if err != nil {
			return nil, err
		}
		if first, ok := seen[rec.Slug]; ok {
			log.WithFields(logrus.Fields{
				"slug":     rec.Slug,
				"source":   filepath.Base(path),
				"previous": filepath.Base(first),
			}).Warn("duplicate slug, page overwritten")
		} else {
			seen[rec.Slug] = path
		}
		posts = append(posts, rec)
	}

	written, err := b.store.WriteIndex(posts)
	if err != nil {
		return nil, err
	}
	if written {
		printf(b.out, "%s Generated %s with posts metadata\n", checkMark(), b.store.IndexPath())
	} else {
		log.Debug("no posts, index not written")
	}

	printf(b.out, "\n%s Successfully built %d posts!\n", checkMark(), len(posts))
	log.WithField("count", len(posts)).Info("build complete")

	return &Result{
		RunID:        runID,
		Posts:        posts,
		IndexWritten: written,
	}, nil
}

// buildPost converts one source file and writes its page.
func (b *Builder) buildPost(log logrus.FieldLogger, path string) (models.PostRecord, error) {
	src, err := b.store.ReadSource(path)
	if err != nil {
		return models.PostRecord{}, err
	}

	meta, body := frontmatter.Parse(src.Content)
	rec := models.NewPostRecord(meta, slug.FromFilename(src.Name))

	bodyHTML, err := render.Markdown(body)
	if err != nil {
		return models.PostRecord{}, fmt.Errorf("failed to render %s: %w", src.Name, err)
	}

	page := render.Page(b.site, rec.Title, rec.Date, bodyHTML, rec.Slug)
	outPath, err := b.store.WritePage(rec.Slug, page)
	if err != nil {
		return models.PostRecord{}, err
	}

	entry := log.WithFields(logrus.Fields{"source": src.Name, "slug": rec.Slug})
	if !slug.IsURLSafe(rec.Slug) {
		entry.Warn("slug is not URL safe")
	}
	if meta.Len() == 0 {
		entry.Debug("no frontmatter")
	}

	printf(b.out, "%s Built %s -> %s\n", checkMark(), src.Name, filepath.Base(outPath))
	return rec, nil
}

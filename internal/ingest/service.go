package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"cafedeslettres/internal/book"
	"cafedeslettres/internal/platform/logging"
	"cafedeslettres/internal/platform/openlibrary"
)

type Config struct {
	BooksMax          int
	PerSubject        int
	Subjects          []Subject
	FetchDescriptions bool
}

type OpenLibraryClient interface {
	SearchBySubject(ctx context.Context, subject string, limit int) (*openlibrary.SearchResponse, error)
	GetWork(ctx context.Context, workKey string) (*openlibrary.Work, error)
	CoverURL(coverID int) string
}

// BookImporter stores one imported book, idempotent on its external key.
type BookImporter interface {
	Import(ctx context.Context, b *book.Book) error
}

type Service struct {
	olClient OpenLibraryClient
	books    BookImporter
	cfg      Config
	now      func() time.Time
}

func NewService(olClient OpenLibraryClient, books BookImporter, cfg Config) *Service {
	if cfg.PerSubject <= 0 {
		cfg.PerSubject = 20
	}
	return &Service{olClient: olClient, books: books, cfg: cfg, now: time.Now}
}

// Run imports books subject by subject until BooksMax is reached. A failed
// search aborts the run; a book that cannot be stored is skipped.
func (s *Service) Run(ctx context.Context) (Result, error) {
	res := Result{StartedAt: s.now()}
	log := logging.FromContext(ctx)
	seen := make(map[string]bool)

	for _, subject := range s.cfg.Subjects {
		if s.done(res) {
			break
		}

		searchRes, err := s.olClient.SearchBySubject(ctx, subject.Name, s.cfg.PerSubject)
		if err != nil {
			res.FinishedAt = s.now()
			return res, fmt.Errorf("search subject %q: %w", subject.Name, err)
		}
		res.Fetched += len(searchRes.Docs)

		for _, doc := range searchRes.Docs {
			if s.done(res) {
				break
			}
			if doc.Key == "" || seen[doc.Key] || strings.TrimSpace(doc.Title) == "" || len(doc.AuthorNames) == 0 {
				res.Skipped++
				continue
			}
			seen[doc.Key] = true

			b := s.toBook(ctx, doc, subject)
			if err := s.books.Import(ctx, b); err != nil {
				log.WithError(err).WithField("key", doc.Key).Warn("cannot import book")
				res.Failed++
				continue
			}
			res.Imported++
		}
	}

	res.FinishedAt = s.now()
	log.WithField("imported", res.Imported).
		WithField("skipped", res.Skipped).
		WithField("failed", res.Failed).
		Info("open library import finished")
	return res, nil
}

func (s *Service) done(res Result) bool {
	return s.cfg.BooksMax > 0 && res.Imported >= s.cfg.BooksMax
}

func (s *Service) toBook(ctx context.Context, doc openlibrary.SearchDoc, subject Subject) *book.Book {
	b := &book.Book{
		Title:       doc.Title,
		Author:      doc.AuthorNames[0],
		Category:    lo.ToPtr(subject.Category),
		CoverURL:    lo.EmptyableToPtr(s.olClient.CoverURL(doc.CoverID)),
		ExternalKey: lo.ToPtr(doc.Key),
	}
	if !s.cfg.FetchDescriptions {
		return b
	}
	work, err := s.olClient.GetWork(ctx, doc.Key)
	if err != nil {
		logging.FromContext(ctx).WithError(err).WithField("key", doc.Key).Debug("no work description")
		return b
	}
	b.Description = lo.EmptyableToPtr(strings.TrimSpace(work.DescriptionText()))
	return b
}

package services

import (
	"context"
	"fmt"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/api"
	"github.com/rofaidaezzat/fashon-dashboard/internal/logging"
)

// ContactService reads customer contact-form submissions. The listing is
// read-only for the dashboard, so its cache only ever turns over when a
// caller explicitly asks for fresh data.
type ContactService interface {
	List(ctx context.Context, page int) (api.ListMessagesResult, error)
	Refresh()
}

type contactService struct {
	client api.ContactClient
	limit  int
	log    logging.Logger
	cache  *listingCache[api.ListMessagesResult]
}

// NewContactService constructs a ContactService requesting limit records
// per page.
func NewContactService(client api.ContactClient, limit int, log logging.Logger) ContactService {
	return &contactService{
		client: client,
		limit:  limit,
		log:    log,
		cache:  newListingCache[api.ListMessagesResult](),
	}
}

// List returns one page of messages, from cache when it is still current.
func (s *contactService) List(ctx context.Context, page int) (api.ListMessagesResult, error) {
	if cached, ok := s.cache.get(page); ok {
		return cached, nil
	}

	seq, gen := s.cache.beginFetch()
	res, err := s.client.ListMessages(ctx, page, s.limit)
	if err != nil {
		return api.ListMessagesResult{}, fmt.Errorf("list messages page %d: %w", page, err)
	}

	if !s.cache.commit(page, seq, gen, res) {
		s.log.Warn(ctx, "discarding stale message listing", "page", page)
	}
	return res, nil
}

// Refresh stales every cached page so the next List refetches.
func (s *contactService) Refresh() {
	s.cache.invalidate()
}

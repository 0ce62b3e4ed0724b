package api

import (
	"context"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/models"
)

type listMessagesEnvelope struct {
	Data             []models.ContactMessage `json:"data"`
	PaginationResult models.PaginationResult `json:"paginationResult"`
}

// ListMessages fetches one page of customer contact-form submissions.
func (c *HTTPClient) ListMessages(ctx context.Context, page, limit int) (ListMessagesResult, error) {
	var envelope listMessagesEnvelope
	if err := c.getJSON(ctx, "/api/v1/contact-us", pageQuery(page, limit), &envelope); err != nil {
		return ListMessagesResult{}, err
	}
	return ListMessagesResult{Items: envelope.Data, Pagination: envelope.PaginationResult}, nil
}

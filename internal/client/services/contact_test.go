package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/api"
	"github.com/rofaidaezzat/fashon-dashboard/internal/client/models"
)

// fakeContactClient implements api.ContactClient.
type fakeContactClient struct {
	ListRet api.ListMessagesResult
	ListErr error

	ListCalls     int
	LastListPage  int
	LastListLimit int
}

func (f *fakeContactClient) ListMessages(ctx context.Context, page, limit int) (api.ListMessagesResult, error) {
	f.ListCalls++
	f.LastListPage = page
	f.LastListLimit = limit
	return f.ListRet, f.ListErr
}

func TestContactService_List_CachesCurrentPage(t *testing.T) {
	client := &fakeContactClient{ListRet: api.ListMessagesResult{
		Items:      []models.ContactMessage{{ID: "m1", Name: "sara"}},
		Pagination: models.PaginationResult{NumberOfPages: 2},
	}}
	svc := NewContactService(client, 5, testLogger())
	ctx := context.Background()

	first, err := svc.List(ctx, 1)
	require.NoError(t, err)
	second, err := svc.List(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, client.ListCalls, "second read must come from cache")
	assert.Equal(t, 5, client.LastListLimit)
}

func TestContactService_List_DistinctPagesFetchSeparately(t *testing.T) {
	client := &fakeContactClient{}
	svc := NewContactService(client, 5, testLogger())
	ctx := context.Background()

	_, err := svc.List(ctx, 1)
	require.NoError(t, err)
	_, err = svc.List(ctx, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, client.ListCalls)
	assert.Equal(t, 2, client.LastListPage)
}

func TestContactService_List_Error(t *testing.T) {
	client := &fakeContactClient{ListErr: errors.New("boom")}
	svc := NewContactService(client, 5, testLogger())

	_, err := svc.List(context.Background(), 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 3")
}

func TestContactService_Refresh_StalesCache(t *testing.T) {
	client := &fakeContactClient{}
	svc := NewContactService(client, 5, testLogger())
	ctx := context.Background()

	_, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 1, client.ListCalls)

	svc.Refresh()

	_, err = svc.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, client.ListCalls)
}

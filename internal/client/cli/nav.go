package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/paginator"
)

// activePaginator returns a paginator over the listing the user is browsing,
// wired to commit accepted moves into the matching page field.
func (a *App) activePaginator() (*paginator.Paginator, bool) {
	switch a.activeView {
	case viewProducts:
		return &paginator.Paginator{
			Page:       a.productPage,
			TotalPages: a.productPages,
			OnChange:   func(n int) { a.productPage = n },
		}, true
	case viewMessages:
		return &paginator.Paginator{
			Page:       a.messagePage,
			TotalPages: a.messagePages,
			OnChange:   func(n int) { a.messagePage = n },
		}, true
	default:
		return nil, false
	}
}

func (a *App) renderActive(ctx context.Context) error {
	if a.activeView == viewMessages {
		return a.renderMessages(ctx)
	}
	return a.renderProducts(ctx)
}

// Next moves the active listing one page forward. On the last page it does
// nothing.
func (a *App) Next(ctx context.Context) error {
	p, ok := a.activePaginator()
	if !ok {
		fmt.Println("Open a listing first: 'products' or 'messages'")
		return nil
	}
	if !p.HasNext() {
		return nil
	}
	p.Next()
	return a.renderActive(ctx)
}

// Prev moves the active listing one page back. On the first page it does
// nothing.
func (a *App) Prev(ctx context.Context) error {
	p, ok := a.activePaginator()
	if !ok {
		fmt.Println("Open a listing first: 'products' or 'messages'")
		return nil
	}
	if !p.HasPrev() {
		return nil
	}
	p.Previous()
	return a.renderActive(ctx)
}

// Goto jumps the active listing to page n.
func (a *App) Goto(ctx context.Context, arg string) error {
	p, ok := a.activePaginator()
	if !ok {
		fmt.Println("Open a listing first: 'products' or 'messages'")
		return nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || (p.TotalPages >= 1 && n > p.TotalPages) {
		fmt.Println("Page is out of range")
		return nil
	}

	p.Jump(n)
	return a.renderActive(ctx)
}

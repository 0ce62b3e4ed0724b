package cli

import (
	"context"
	"fmt"
	"log"
)

// Messages renders the current contact-messages page and makes it the
// target of next/prev/goto.
func (a *App) Messages(ctx context.Context) error {
	a.activeView = viewMessages
	return a.renderMessages(ctx)
}

func (a *App) renderMessages(ctx context.Context) error {
	res, err := a.contactService.List(ctx, a.messagePage)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.messageList = res.Items
	a.messagePages = res.Pagination.NumberOfPages

	if len(res.Items) == 0 {
		fmt.Println("No messages")
	}
	for i, m := range res.Items {
		fmt.Printf("%2d. %s <%s> %s\n", i+1, m.Name, m.Email, m.Phone)
		fmt.Printf("    %s\n", m.Message)
	}
	printPager(a.messagePage, a.messagePages)
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/rofaidaezzat/fashon-dashboard/internal/client/api"
	"github.com/rofaidaezzat/fashon-dashboard/internal/validation"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for staff credentials and tries to authenticate.
//
// Validation problems are printed per field so the user can correct them.
// Wrong credentials and an unreachable server each get their own message;
// any other service error is logged as-is.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if err := a.authService.Login(ctx, email, password); err != nil {
		var verr *validation.Error
		switch {
		case errors.As(err, &verr):
			for field, msg := range verr.Fields() {
				fmt.Printf("%s %s\n", field, msg)
			}
		case errors.Is(err, api.ErrUnauthorized):
			fmt.Println("Wrong email or password")
		case errors.Is(err, api.ErrUnavailable):
			fmt.Println("Server unavailable, try again later")
		default:
			log.Printf("Login unsuccessfull: %s", err.Error())
		}
		return err
	}

	log.Printf("Login successfull")
	return nil
}

// Logout ends the local session. The session service clears the stored
// token first and notifies the server on a best-effort basis.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.activeView = viewNone
	fmt.Println("Logged out")
	return nil
}

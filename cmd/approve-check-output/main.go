// Command approve-check-output evaluates the review policy for an auto_merge_enabled
// event and sets the "approved" step output. It only fails on input or API
// errors, never on a rejected pull request.
//
// Inputs: GH_TOKEN, GH_EVENT.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/approvegate/internal/adapter/driving/actions"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := actions.RunApprovalOutput(ctx, actions.Options{})
	stop()
	os.Exit(code)
}

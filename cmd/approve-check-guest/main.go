// Command approve-check-guest runs in the merge queue: it waits for the "approve" check
// run of the queued pull request and exits 0 only if its job succeeded.
//
// Inputs: GH_TOKEN, GH_EVENT (merge_group payload), GH_REF.
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
	code := actions.RunGuestQueue(ctx, actions.Options{})
	stop()
	os.Exit(code)
}

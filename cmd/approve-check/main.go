// Command approve-check gates auto-merge on the review policy: it exits 0
// when a maintainer enabled auto-merge or two reviewer-team members approved.
//
// Inputs: GH_TOKEN, GH_EVENT (auto_merge_enabled or merge_group payload) and,
// for merge group events, GH_REF.
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
	code := actions.RunApprovalGate(ctx, actions.Options{})
	stop()
	os.Exit(code)
}

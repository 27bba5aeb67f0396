// Package v1 contains the full set of handler functions and routes
// supported by the v1 web api.
package v1

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ardanlabs/solsign/app/services/signer/handlers/v1/evtgrp"
	"github.com/ardanlabs/solsign/app/services/signer/handlers/v1/instgrp"
	"github.com/ardanlabs/solsign/app/services/signer/handlers/v1/keygrp"
	"github.com/ardanlabs/solsign/foundation/events"
	"github.com/ardanlabs/solsign/foundation/nameservice"
	"github.com/ardanlabs/solsign/foundation/web"
	"go.uber.org/zap"
)

const version = "v1"

// Config contains all the mandatory systems required by handlers.
type Config struct {
	Log  *zap.SugaredLogger
	NS   *nameservice.NameService
	Evts *events.Events
}

// Routes binds all the version 1 routes. Every operation is served at the
// root and again under the version prefix.
func Routes(app *web.App, cfg Config) {

	// Each handled operation is logged and sent to any websocket client
	// connected to the event feed.
	ev := func(ctx context.Context, kind string, v string, args ...any) {
		s := fmt.Sprintf(v, args...)
		traceID := web.GetTraceID(ctx)

		cfg.Log.Infow(s, "traceid", traceID, "kind", kind)
		cfg.Evts.Send(events.Event{
			TraceID: traceID,
			Kind:    kind,
			Message: s,
			Time:    time.Now().UTC(),
		})
	}

	kgh := keygrp.Handlers{
		Log: cfg.Log,
		NS:  cfg.NS,
		Ev:  ev,
	}

	igh := instgrp.Handlers{
		Log: cfg.Log,
		NS:  cfg.NS,
		Ev:  ev,
	}

	for _, group := range []string{"", version} {
		app.Handle(http.MethodGet, group, "/health", health)
		app.Handle(http.MethodPost, group, "/keypair", kgh.GenerateKeyPair)
		app.Handle(http.MethodPost, group, "/message/sign", kgh.Sign)
		app.Handle(http.MethodPost, group, "/message/verify", kgh.Verify)
		app.Handle(http.MethodPost, group, "/token/create", igh.CreateMint)
		app.Handle(http.MethodPost, group, "/token/mint", igh.MintTo)
		app.Handle(http.MethodPost, group, "/send/sol", igh.TransferNative)
		app.Handle(http.MethodPost, group, "/send/token", igh.TransferTokens)
	}

	egh := evtgrp.Handlers{
		Log:  cfg.Log,
		Evts: cfg.Evts,
	}

	app.Handle(http.MethodGet, version, "/events", egh.Events)
}

// health reports the service is up. The response is not enveloped.
func health(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	status := struct {
		Status string `json:"status"`
	}{
		Status: "ok",
	}

	return web.Respond(ctx, w, status, http.StatusOK)
}

// Package instgrp maintains the group of handlers that build token and
// transfer instructions.
package instgrp

import (
	"context"
	"errors"
	"net/http"

	"github.com/ardanlabs/solsign/business/core/instruction"
	"github.com/ardanlabs/solsign/business/sys/metrics"
	"github.com/ardanlabs/solsign/business/web/envelope"
	"github.com/ardanlabs/solsign/business/web/errs"
	"github.com/ardanlabs/solsign/foundation/nameservice"
	"github.com/ardanlabs/solsign/foundation/solana"
	"github.com/ardanlabs/solsign/foundation/validate"
	"github.com/ardanlabs/solsign/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of instruction endpoints.
type Handlers struct {
	Log *zap.SugaredLogger
	NS  *nameservice.NameService
	Ev  func(ctx context.Context, kind string, v string, args ...any)
}

// CreateMint builds the instruction initializing a new token mint.
func (h Handlers) CreateMint(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var nc instruction.NewCreateMint
	if err := web.Decode(r, &nc); err != nil {
		return errs.BadRequest("unable to decode payload", err)
	}

	inst, err := instruction.CreateMint(nc)
	if err != nil {
		return response(err)
	}

	h.Ev(ctx, "token/create", "token/create: mint[%s] authority[%s] decimals[%d]",
		h.NS.Lookup(nc.Mint), h.NS.Lookup(nc.MintAuthority), *nc.Decimals)

	return h.respond(ctx, w, "token/create", inst)
}

// MintTo builds the instruction minting new tokens into an account.
func (h Handlers) MintTo(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var nm instruction.NewMintTo
	if err := web.Decode(r, &nm); err != nil {
		return errs.BadRequest("unable to decode payload", err)
	}

	inst, err := instruction.MintTo(nm)
	if err != nil {
		return response(err)
	}

	h.Ev(ctx, "token/mint", "token/mint: mint[%s] destination[%s] authority[%s] amount[%d]",
		h.NS.Lookup(nm.Mint), h.NS.Lookup(nm.Destination), h.NS.Lookup(nm.Authority), nm.Amount)

	return h.respond(ctx, w, "token/mint", inst)
}

// TransferTokens builds the instruction moving tokens between accounts.
func (h Handlers) TransferTokens(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var nt instruction.NewTokenTransfer
	if err := web.Decode(r, &nt); err != nil {
		return errs.BadRequest("unable to decode payload", err)
	}

	inst, err := instruction.TransferTokens(nt)
	if err != nil {
		return response(err)
	}

	h.Ev(ctx, "send/token", "send/token: owner[%s] destination[%s] mint[%s] amount[%d]",
		h.NS.Lookup(nt.Owner), h.NS.Lookup(nt.Destination), h.NS.Lookup(nt.Mint), nt.Amount)

	return h.respond(ctx, w, "send/token", inst)
}

// TransferNative builds the instruction moving lamports between accounts.
func (h Handlers) TransferNative(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var nt instruction.NewNativeTransfer
	if err := web.Decode(r, &nt); err != nil {
		return errs.BadRequest("unable to decode payload", err)
	}

	inst, err := instruction.TransferNative(nt)
	if err != nil {
		return response(err)
	}

	h.Ev(ctx, "send/sol", "send/sol: from[%s] to[%s] lamports[%d]",
		h.NS.Lookup(nt.From), h.NS.Lookup(nt.To), nt.Lamports)

	return h.respond(ctx, w, "send/sol", inst)
}

// =============================================================================

func (h Handlers) respond(ctx context.Context, w http.ResponseWriter, operation string, inst solana.Instruction) error {
	metrics.AddOperation(ctx, operation)

	return web.Respond(ctx, w, envelope.Success(toAppInstruction(inst)), http.StatusOK)
}

// response marks validation failures as safe to show the caller. Anything
// else is passed on untouched.
func response(err error) error {
	var fe validate.FieldError
	if errors.As(err, &fe) {
		return errs.BadRequest("", err)
	}

	return err
}

// Package keygrp maintains the group of handlers for key generation,
// message signing and signature verification.
package keygrp

import (
	"context"
	"net/http"

	"github.com/ardanlabs/solsign/business/sys/metrics"
	"github.com/ardanlabs/solsign/business/web/envelope"
	"github.com/ardanlabs/solsign/business/web/errs"
	"github.com/ardanlabs/solsign/foundation/nameservice"
	"github.com/ardanlabs/solsign/foundation/signature"
	"github.com/ardanlabs/solsign/foundation/validate"
	"github.com/ardanlabs/solsign/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of key endpoints.
type Handlers struct {
	Log *zap.SugaredLogger
	NS  *nameservice.NameService
	Ev  func(ctx context.Context, kind string, v string, args ...any)
}

// GenerateKeyPair returns a fresh key pair. It never fails.
func (h Handlers) GenerateKeyPair(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	kp := signature.GenerateKeyPair()

	metrics.AddOperation(ctx, "keypair")
	h.Ev(ctx, "keypair", "keypair: generated: account[%s]", kp.PublicKey)

	resp := AppKeyPair{
		PublicKey: kp.PublicKey,
		SecretKey: kp.SecretKey,
	}

	return web.Respond(ctx, w, envelope.Success(resp), http.StatusOK)
}

// Sign signs a message with the provided secret key.
func (h Handlers) Sign(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req AppSignRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.BadRequest("unable to decode payload", err)
	}

	if err := check(req); err != nil {
		return err
	}

	sig, pub, err := signature.Sign(req.Message, req.Secret)
	if err != nil {
		return errs.BadRequest("Error signing message", err)
	}

	metrics.AddOperation(ctx, "sign")
	h.Ev(ctx, "sign", "sign: signed: account[%s] bytes[%d]", h.NS.Lookup(pub), len(req.Message))

	resp := AppSignature{
		Signature: sig,
		PublicKey: pub,
		Message:   req.Message,
	}

	return web.Respond(ctx, w, envelope.Success(resp), http.StatusOK)
}

// Verify checks a signature against a message and public key. A well formed
// signature that does not match is a successful call reporting false.
func (h Handlers) Verify(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var req AppVerifyRequest
	if err := web.Decode(r, &req); err != nil {
		return errs.BadRequest("unable to decode payload", err)
	}

	if err := check(req); err != nil {
		return err
	}

	valid, err := signature.Verify(req.Message, req.Signature, req.PublicKey)
	if err != nil {
		return errs.BadRequest("Error verifying signature", err)
	}

	metrics.AddOperation(ctx, "verify")
	h.Ev(ctx, "verify", "verify: account[%s] valid[%t]", h.NS.Lookup(req.PublicKey), valid)

	resp := AppVerification{
		Valid:     valid,
		Message:   req.Message,
		PublicKey: req.PublicKey,
	}

	return web.Respond(ctx, w, envelope.Success(resp), http.StatusOK)
}

// check validates the request and reports the first failure as a 400.
func check(val any) error {
	err := validate.Check(val)
	if err == nil {
		return nil
	}

	if fe := validate.GetFieldErrors(err); fe != nil {
		return errs.BadRequest("", fe.First())
	}

	return err
}

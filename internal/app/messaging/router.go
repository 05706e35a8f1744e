// Package messaging connects the vomnibar controller to the page hosting it:
// the Router decodes host messages, the Bridge carries them over newline
// delimited JSON.
package messaging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/logging"
)

var (
	// ErrUnknownMessage is the panic value for unrecognized message names in
	// strict mode.
	ErrUnknownMessage = errors.New("unknown message")
	// ErrMalformedMessage is returned when a payload cannot be decoded.
	ErrMalformedMessage = errors.New("malformed message")
)

// Host message names.
const (
	MessageHide     = "hide"
	MessageHidden   = "hidden"
	MessageActivate = "activate"
	MessageRefresh  = "refresh"
)

// Controller is the part of the vomnibar driven by host messages.
type Controller interface {
	Activate(ctx context.Context, opts entity.ActivateOptions) error
	Hide(ctx context.Context, onHidden func())
	OnHidden(ctx context.Context)
	Refresh(ctx context.Context)
}

// Router dispatches host messages to the controller. It must be called from
// the controller's UI loop.
type Router struct {
	controller Controller
	strict     bool
}

// NewRouter creates a router. In strict mode an unrecognized message is
// treated as a programming error and panics.
func NewRouter(controller Controller, strict bool) *Router {
	return &Router{controller: controller, strict: strict}
}

type envelope struct {
	Name string `json:"name"`
}

// activatePayload mirrors entity.ActivateOptions with optional fields so
// missing ones fall back to defaults.
type activatePayload struct {
	Name        string  `json:"name"`
	Completer   *string `json:"completer"`
	Query       *string `json:"query"`
	NewTab      *bool   `json:"newTab"`
	SelectFirst *bool   `json:"selectFirst"`
	Keyword     *string `json:"keyword"`
}

// Handle decodes payload and applies it. Decoding and validation happen
// before the controller is touched.
func (r *Router) Handle(ctx context.Context, payload []byte) error {
	name, err := MessageName(payload)
	if err != nil {
		return err
	}

	log := logging.FromContext(ctx)
	log.Debug().Str("message", name).Msg("host message")

	switch name {
	case MessageHide:
		r.controller.Hide(ctx, nil)
	case MessageHidden:
		r.controller.OnHidden(ctx)
	case MessageRefresh:
		r.controller.Refresh(ctx)
	case MessageActivate:
		opts, err := DecodeActivation(payload)
		if err != nil {
			return err
		}
		if err := opts.Validate(); err != nil {
			return err
		}
		return r.controller.Activate(ctx, opts)
	default:
		err := fmt.Errorf("%w: %q", ErrUnknownMessage, name)
		if r.strict {
			panic(err)
		}
		log.Warn().Str("message", name).Msg("ignoring unrecognized host message")
	}
	return nil
}

// MessageName extracts the "name" field of a JSON message.
func MessageName(payload []byte) (string, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if env.Name == "" {
		return "", fmt.Errorf("%w: missing name", ErrMalformedMessage)
	}
	return env.Name, nil
}

// DecodeActivation strictly decodes an activate message. Unknown fields and
// mistyped values are rejected.
func DecodeActivation(payload []byte) (entity.ActivateOptions, error) {
	var p activatePayload
	if err := decodeStrict(payload, &p); err != nil {
		return entity.ActivateOptions{}, err
	}

	opts := entity.DefaultActivateOptions()
	if p.Completer != nil {
		opts.Completer = *p.Completer
	}
	if p.Query != nil {
		opts.Query = *p.Query
	}
	if p.NewTab != nil {
		opts.NewTab = *p.NewTab
	}
	if p.SelectFirst != nil {
		opts.SelectFirst = *p.SelectFirst
	}
	if p.Keyword != nil {
		opts.Keyword = *p.Keyword
	}
	return opts, nil
}

func decodeStrict(payload []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", ErrMalformedMessage)
	}
	return nil
}

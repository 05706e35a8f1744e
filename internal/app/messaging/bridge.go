package messaging

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/vomnibar/internal/application/port"
	"github.com/bnema/vomnibar/internal/application/usecase"
	"github.com/bnema/vomnibar/internal/domain/entity"
	"github.com/bnema/vomnibar/internal/infrastructure/textinput"
	"github.com/bnema/vomnibar/internal/logging"
	"github.com/bnema/vomnibar/internal/ui/mainloop"
)

const maxFrameSize = 1 << 20

// Bridge speaks newline-delimited JSON with a host that owns the real input
// element. It is the controller's host messenger, browser and renderer, and
// feeds inbound frames to it on a single loop.
type Bridge struct {
	in      io.Reader
	loop    *mainloop.Loop
	buf     *textinput.Buffer
	events  *textinput.Dispatcher
	history *usecase.SearchHistoryUseCase
	router  *Router

	mu  sync.Mutex
	enc *json.Encoder

	completions []entity.Completion
	selection   int
}

var (
	_ port.HostMessenger = (*Bridge)(nil)
	_ port.Browser       = (*Bridge)(nil)
	_ port.Renderer      = (*Bridge)(nil)
)

// BridgeConfig holds the collaborators of a Bridge. History is optional.
type BridgeConfig struct {
	In      io.Reader
	Out     io.Writer
	Loop    *mainloop.Loop
	Input   *textinput.Buffer
	Events  *textinput.Dispatcher
	History *usecase.SearchHistoryUseCase
}

// NewBridge creates a bridge. SetRouter must be called before Run.
func NewBridge(cfg BridgeConfig) *Bridge {
	return &Bridge{
		in:        cfg.In,
		loop:      cfg.Loop,
		buf:       cfg.Input,
		events:    cfg.Events,
		history:   cfg.History,
		enc:       json.NewEncoder(cfg.Out),
		selection: -1,
	}
}

// SetRouter injects the router for host messages.
func (b *Bridge) SetRouter(router *Router) {
	b.router = router
}

// Post schedules fn on the bridge loop. It is the controller's post function.
func (b *Bridge) Post(fn func()) {
	b.loop.PostAsync(fn)
}

// Run processes frames until the input ends or ctx is cancelled. Frames
// already read when the input ends are still processed.
func (b *Bridge) Run(ctx context.Context) error {
	if b.router == nil {
		return errors.New("bridge has no router")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return b.loop.Run(gctx)
	})

	g.Go(func() error {
		scanner := bufio.NewScanner(b.in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			frame := append([]byte(nil), line...)
			if !b.loop.Post(func() { b.handleFrame(gctx, frame) }) {
				return nil
			}
		}
		if err := scanner.Err(); err != nil && gctx.Err() == nil {
			return fmt.Errorf("failed to read frames: %w", err)
		}
		// Stop after every frame read so far has run.
		b.loop.Post(cancel)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		if closer, ok := b.in.(io.Closer); ok {
			_ = closer.Close()
		}
		return nil
	})

	err := g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (b *Bridge) handleFrame(ctx context.Context, frame []byte) {
	name, err := MessageName(frame)
	if err != nil {
		b.writeError(ctx, err)
		return
	}

	switch name {
	case FrameKey:
		var f keyFrame
		if err := decodeStrict(frame, &f); err != nil {
			b.writeError(ctx, err)
			return
		}
		ev, err := f.event()
		if err != nil {
			b.writeError(ctx, err)
			return
		}
		consumed := b.events.Key(ctx, ev)
		b.write(ctx, keyResultFrame{Name: FrameKeyResult, Consumed: consumed})

	case FrameInput:
		var f inputFrame
		if err := decodeStrict(frame, &f); err != nil {
			b.writeError(ctx, err)
			return
		}
		cursor := len([]rune(f.Value))
		if f.Cursor != nil {
			cursor = *f.Cursor
		}
		b.buf.Replace(f.Value, cursor)
		b.events.Input(ctx)

	default:
		if err := b.router.Handle(ctx, frame); err != nil {
			b.writeError(ctx, err)
		}
	}
}

// PostHide asks the host to hide the vomnibar.
func (b *Bridge) PostHide(ctx context.Context) error {
	return b.write(ctx, envelope{Name: MessageHide})
}

// OpenURLInNewTab emits an openUrlInNewTab frame.
func (b *Bridge) OpenURLInNewTab(ctx context.Context, url string) error {
	b.recordVisit(ctx, url)
	return b.write(ctx, actionFrame{Name: FrameOpenURLInNewTab, URL: url})
}

// OpenURLInCurrentTab emits an openUrlInCurrentTab frame.
func (b *Bridge) OpenURLInCurrentTab(ctx context.Context, url string) error {
	b.recordVisit(ctx, url)
	return b.write(ctx, actionFrame{Name: FrameOpenURLInCurrentTab, URL: url})
}

// SelectSpecificTab emits a selectSpecificTab frame.
func (b *Bridge) SelectSpecificTab(ctx context.Context, tabID int) error {
	return b.write(ctx, actionFrame{Name: FrameSelectSpecificTab, TabID: tabID})
}

// RunSearchQuery emits a runSearchQuery frame.
func (b *Bridge) RunSearchQuery(ctx context.Context, query string, newTab bool) error {
	return b.write(ctx, actionFrame{Name: FrameRunSearchQuery, Query: query, NewTab: newTab})
}

// RenderCompletions emits the new list with the current selection.
func (b *Bridge) RenderCompletions(completions []entity.Completion) {
	b.completions = completions
	b.render()
}

// RenderSelection emits the current list with the new selection.
func (b *Bridge) RenderSelection(index int) {
	b.selection = index
	b.render()
}

// RenderInput emits the current list with the rewritten input. The value
// and cursor are read back from the buffer, which already holds them.
func (b *Bridge) RenderInput(string, int) {
	b.render()
}

func (b *Bridge) render() {
	completions := b.completions
	if completions == nil {
		completions = []entity.Completion{}
	}
	_ = b.write(context.Background(), renderFrame{
		Name:        FrameRender,
		Completions: completions,
		Selection:   b.selection,
		Value:       b.buf.Value(),
		Cursor:      b.buf.SelectionEnd(),
	})
}

func (b *Bridge) recordVisit(ctx context.Context, url string) {
	if b.history == nil {
		return
	}
	if err := b.history.Record(ctx, url, ""); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to record history")
	}
}

func (b *Bridge) writeError(ctx context.Context, err error) {
	logging.FromContext(ctx).Warn().Err(err).Msg("rejected frame")
	_ = b.write(ctx, errorFrame{Name: FrameError, Error: err.Error()})
}

func (b *Bridge) write(ctx context.Context, frame any) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.enc.Encode(frame); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to write frame")
		return fmt.Errorf("failed to write frame: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"log"
	"net/http"
	"time"

	"mandelzoom"

	"github.com/coder/websocket"
)

// streamer upgrades /ws requests and pushes rendered frames down each
// connection. Every connection zooms independently: it gets its own copy of
// the starting viewport and its own frame clock.
type streamer struct {
	renderer *mandelzoom.Renderer
	view     mandelzoom.Viewport
	size     mandelzoom.FrameSize
	decay    float64
	interval time.Duration
}

func (s *streamer) handle(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"}, // TODO: tighten in prod
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	log.Printf("stream started: %s", r.RemoteAddr)
	log.Printf("stream ended: %s: %v", r.RemoteAddr, s.stream(r.Context(), c))
}

// stream runs one connection until the client goes away or a write fails.
// A read pump goroutine turns incoming click messages into retarget requests;
// the frame loop applies at most one of them per tick.
func (s *streamer) stream(ctx context.Context, c *websocket.Conn) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	clicks := make(chan [2]int, 1)
	go func() {
		defer cancel()
		for {
			typ, data, err := c.Read(ctx)
			if err != nil {
				return
			}
			if typ != websocket.MessageBinary || len(data) != 8 {
				continue
			}
			x := int(binary.LittleEndian.Uint32(data[0:4]))
			y := int(binary.LittleEndian.Uint32(data[4:8]))
			select {
			case clicks <- [2]int{x, y}:
			default: // a click is already pending, drop this one
			}
		}
	}()

	view := s.view
	words := make([]uint32, s.size.Width*s.size.Height)
	buf := mandelzoom.PixelBuffer{Words: words, Pitch: s.size.Width * 4}

	// one reused frame message: 8 byte header + RGBA pixels
	msg := make([]byte, 8+s.size.Width*s.size.Height*4)
	binary.LittleEndian.PutUint32(msg[0:4], uint32(s.size.Width))
	binary.LittleEndian.PutUint32(msg[4:8], uint32(s.size.Height))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return context.Cause(ctx)
		case <-ticker.C:
		}

		select {
		case click := <-clicks:
			view.Recenter(click[0], click[1], s.size)
		default:
		}
		view.Advance(s.decay)

		if err := s.renderer.RenderFrame(buf, s.size, view); err != nil {
			return err
		}

		pix := msg[8:]
		for i, w := range words {
			pix[4*i+0] = byte(w >> 16)
			pix[4*i+1] = byte(w >> 8)
			pix[4*i+2] = byte(w)
			pix[4*i+3] = byte(w >> 24)
		}

		wctx, wcancel := context.WithTimeout(ctx, 5*time.Second)
		err := c.Write(wctx, websocket.MessageBinary, msg)
		wcancel()
		if err != nil {
			return fmt.Errorf("write frame: %w", err)
		}
	}
}

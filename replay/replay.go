package replay

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/oomph-ac/strider"
	"github.com/oomph-ac/strider/game"
	"github.com/zeebo/xxh3"
)

// Trace is the recorded outcome of a replayed script.
type Trace struct {
	Name   string
	Frames []strider.Frame
	// Digest is the xxh3 hash of every formatted frame. Replaying the same script with the same
	// settings always yields the same digest.
	Digest uint64
}

// Run replays the script on the controller passed. It stops early with the context's error if ctx is
// cancelled.
func Run(ctx context.Context, c *strider.Controller, script *Script) (*Trace, error) {
	if err := script.Validate(); err != nil {
		return nil, err
	}

	trace := &Trace{Name: script.Name, Frames: make([]strider.Frame, 0, script.FrameCount())}
	hasher := xxh3.New()
	for _, step := range script.Steps {
		in := step.Input()
		for range step.Frames {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("replay stopped at frame %d: %w", len(trace.Frames), err)
			}
			f := c.Update(in, script.Delta)
			trace.Frames = append(trace.Frames, f)
			_, _ = hasher.WriteString(FormatFrame(f))
			_, _ = hasher.WriteString("\n")
		}
	}
	trace.Digest = hasher.Sum64()
	return trace, nil
}

// FormatFrame renders a frame as a single line of key=value pairs in a stable order.
func FormatFrame(f strider.Frame) string {
	data := f.Data()
	data.Set("x", game.Round32(f.Position.X(), 4))
	data.Set("y", game.Round32(f.Position.Y(), 4))
	data.Set("z", game.Round32(f.Position.Z(), 4))
	data.Set("pitch", game.Round32(f.Pitch, 4))
	data.Set("respawned", f.Respawned)

	var sb strings.Builder
	fmt.Fprintf(&sb, "frame=%d", f.Index)
	for _, key := range data.Keys() {
		value, _ := data.Get(key)
		fmt.Fprintf(&sb, " %s=%v", key, value)
	}
	return sb.String()
}

// WriteTo writes every frame of the trace followed by its digest.
func (t *Trace) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, f := range t.Frames {
		n, err := fmt.Fprintln(w, FormatFrame(f))
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	n, err := fmt.Fprintf(w, "digest=%016x frames=%d\n", t.Digest, len(t.Frames))
	return written + int64(n), err
}

package pipeline

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/bacon/core"
)

// Hop is one step of a path: From appeared with To in Title.
type Hop struct {
	Index int
	From  string
	Title string
	To    string
}

// LabelHops pairs consecutive names of path with the edge label stored on
// the earlier vertex. A name missing from g is ErrUnknownActor; a pair with
// no recorded label gets an empty Title.
func LabelHops(g *core.Graph, path []string) ([]Hop, error) {
	if len(path) < 2 {
		return []Hop{}, nil
	}
	out := make([]Hop, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		v, ok := g.FindVertex(path[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownActor, path[i])
		}
		title, _ := v.Edge(path[i+1])
		out = append(out, Hop{Index: i, From: path[i], Title: title, To: path[i+1]})
	}

	return out, nil
}

// Report is a found (or empty) path with its labeled hops.
type Report struct {
	Path []string
	Hops []Hop
}

// Found reports whether the path is non-empty.
func (r *Report) Found() bool { return len(r.Path) > 0 }

// BaconNumber is the hop count of the path.
func (r *Report) BaconNumber() int { return hops(r.Path) }

// String renders the hop chain on one line.
func (h Hop) String() string {
	return fmt.Sprintf("%d. %s -> %s -> %s", h.Index, h.From, h.Title, h.To)
}

// Render writes the report:
//
//	0. A -> M1 -> B -> 1. B -> M2 -> C
//
//	C's Bacon Number is 2
//
// or "No path found." for an empty path.
func (r *Report) Render(w io.Writer) error {
	if !r.Found() {
		_, err := fmt.Fprintln(w, "No path found.")
		return err
	}

	var b strings.Builder
	if len(r.Hops) > 0 {
		parts := make([]string, len(r.Hops))
		for i, h := range r.Hops {
			parts[i] = h.String()
		}
		b.WriteString(strings.Join(parts, " -> "))
		b.WriteString("\n\n")
	}
	fmt.Fprintf(&b, "%s's Bacon Number is %d\n", r.Path[len(r.Path)-1], r.BaconNumber())

	_, err := io.WriteString(w, b.String())
	return err
}

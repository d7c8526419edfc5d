package brep

import (
	"errors"
	"fmt"
)

var ErrOpenShell = errors.New("shell is not closed")

// CheckClosed verifies the manifold property: every loop is a connected
// cycle, and every edge of the shell is used by exactly two loops, once in
// each direction.
func (s *Shell) CheckClosed() error {
	type use struct{ fwd, rev int }
	uses := make(map[*Edge]*use, len(s.Edges))
	for _, e := range s.Edges {
		uses[e] = &use{}
	}
	for fi, f := range s.Faces {
		for li, l := range f.Loops() {
			if len(l) == 0 {
				return fmt.Errorf("%w: face %d (%s) loop %d is empty", ErrOpenShell, fi, f.Kind, li)
			}
			for k, oe := range l {
				u, ok := uses[oe.Edge]
				if !ok {
					return fmt.Errorf("%w: face %d (%s) uses an edge outside the shell", ErrOpenShell, fi, f.Kind)
				}
				if oe.Forward {
					u.fwd++
				} else {
					u.rev++
				}
				if next := l[(k+1)%len(l)]; oe.To() != next.From() {
					return fmt.Errorf("%w: face %d (%s) loop %d breaks after edge %d", ErrOpenShell, fi, f.Kind, li, k)
				}
			}
		}
	}
	for _, e := range s.Edges {
		if u := uses[e]; u.fwd != 1 || u.rev != 1 {
			return fmt.Errorf("%w: edge ring %d index %d kind %d used %d forward, %d reversed",
				ErrOpenShell, e.Ring, e.Index, e.Kind, u.fwd, u.rev)
		}
	}
	return nil
}

// CheckClosed runs Shell.CheckClosed on every solid.
func (b *Body) CheckClosed() error {
	for _, s := range b.Solids {
		if err := s.Shell.CheckClosed(); err != nil {
			return fmt.Errorf("solid %s: %w", s.Name, err)
		}
	}
	return nil
}

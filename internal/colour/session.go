package colour

import "fmt"

// Role tags a sampled colour as either a mixing primitive or a mixing goal.
type Role string

const (
	// RoleBase marks a colour available as a mixing primitive.
	RoleBase Role = "base"

	// RoleTarget marks a colour whose achievability is being tested.
	RoleTarget Role = "target"
)

// IsValidRole checks if the given role is recognised.
func IsValidRole(r Role) bool {
	return r == RoleBase || r == RoleTarget
}

// Colour is a sampled colour together with its role and an optional
// custom label.
type Colour struct {
	RGB   RGB    `json:"rgb"`
	Role  Role   `json:"role"`
	Label string `json:"label,omitempty"`
}

// Hex returns the colour's lowercase hex code, derived from RGB so the
// two can never disagree.
func (c Colour) Hex() string {
	return c.RGB.Hex()
}

// DisplayLabel returns the custom label, falling back to the role name
// when no custom label was set.
func (c Colour) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return string(c.Role)
}

// Session owns an ordered collection of sampled colours. Colours are
// addressed by positional index; removing a colour shifts every later
// index down by one. Mutation happens only through Session methods, so
// callers never share the underlying slice.
type Session struct {
	colours []Colour
}

// NewSession creates a Session seeded with the given colours. The input
// slice is copied.
func NewSession(colours ...Colour) *Session {
	s := &Session{colours: make([]Colour, len(colours))}
	copy(s.colours, colours)
	return s
}

// Len returns the number of colours in the session.
func (s *Session) Len() int {
	return len(s.colours)
}

// At returns the colour at the given index.
func (s *Session) At(index int) (Colour, error) {
	if err := s.checkIndex(index); err != nil {
		return Colour{}, err
	}
	return s.colours[index], nil
}

// Add appends a colour to the session and returns its index.
func (s *Session) Add(c Colour) int {
	s.colours = append(s.colours, c)
	return len(s.colours) - 1
}

// RelabelAt sets the custom label of the colour at the given index.
func (s *Session) RelabelAt(index int, label string) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.colours[index].Label = label
	return nil
}

// RemoveAt deletes the colour at the given index. Colours after it
// shift down by one position.
func (s *Session) RemoveAt(index int) error {
	if err := s.checkIndex(index); err != nil {
		return err
	}
	s.colours = append(s.colours[:index], s.colours[index+1:]...)
	return nil
}

// Clear removes every colour from the session.
func (s *Session) Clear() {
	s.colours = nil
}

// ImportLabels assigns labels positionally: the i-th label goes to the
// i-th colour. Extra labels are ignored. Returns how many were applied.
func (s *Session) ImportLabels(labels []string) int {
	applied := 0
	for i, label := range labels {
		if i >= len(s.colours) {
			break
		}
		s.colours[i].Label = label
		applied++
	}
	return applied
}

// All returns a snapshot copy of every colour in session order.
func (s *Session) All() []Colour {
	out := make([]Colour, len(s.colours))
	copy(out, s.colours)
	return out
}

// Bases returns a snapshot of the base colours in session order.
func (s *Session) Bases() []Colour {
	return s.withRole(RoleBase)
}

// Targets returns a snapshot of the target colours in session order.
func (s *Session) Targets() []Colour {
	return s.withRole(RoleTarget)
}

func (s *Session) withRole(role Role) []Colour {
	var out []Colour
	for _, c := range s.colours {
		if c.Role == role {
			out = append(out, c)
		}
	}
	return out
}

func (s *Session) checkIndex(index int) error {
	if index < 0 || index >= len(s.colours) {
		return fmt.Errorf("index out of bounds: %d (session has %d colours)", index, len(s.colours))
	}
	return nil
}

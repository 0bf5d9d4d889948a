package scene

import "fmt"

// Scene owns every shape and light of a render. It is built once by a loader
// and treated as read-only while rendering.
type Scene struct {
	Background Color
	Shapes     []Shape
	Lights     []Light
}

// Validate checks every shape and reports the first configuration error with its index.
func (s *Scene) Validate() error {
	for i := range s.Shapes {
		if err := s.Shapes[i].Validate(); err != nil {
			return fmt.Errorf("scene: shape %d (%s): %w", i, s.Shapes[i].Kind, err)
		}
	}
	return nil
}

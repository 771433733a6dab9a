package replay

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strider/game"
	"github.com/oomph-ac/strider/motor"
	"github.com/oomph-ac/strider/oerror"
	"gopkg.in/yaml.v3"
)

// Script is a fixed-step sequence of inputs.
type Script struct {
	Name string `yaml:"name"`
	// Delta is the frame time used for every frame of the script.
	Delta float32   `yaml:"dt"`
	Steps []Segment `yaml:"steps"`
}

// Segment holds one input for a number of consecutive frames. The input is created once for the
// segment, so a jump that is not accepted stays pending across its frames.
type Segment struct {
	Frames int        `yaml:"frames"`
	Move   [2]float32 `yaml:"move"`
	Look   [2]float32 `yaml:"look"`
	Sprint bool       `yaml:"sprint"`
	Jump   bool       `yaml:"jump"`
	Analog bool       `yaml:"analog"`
	// Device is "pointer" or "other". Empty means pointer.
	Device string `yaml:"device"`
}

// Input returns a fresh input for the segment.
func (s Segment) Input() *motor.InputState {
	in := &motor.InputState{
		Move:           mgl32.Vec2{s.Move[0], s.Move[1]},
		Look:           mgl32.Vec2{s.Look[0], s.Look[1]},
		Sprint:         s.Sprint,
		Jump:           s.Jump,
		AnalogMovement: s.Analog,
	}
	if s.Device == "other" {
		in.Device = motor.DeviceOther
	}
	return in
}

// LoadScript reads a script from a YAML file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	return ParseScript(data)
}

// ParseScript decodes and validates a YAML script.
func ParseScript(data []byte) (*Script, error) {
	s := &Script{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("error decoding script: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate returns an error if the script cannot be replayed.
func (s *Script) Validate() error {
	if s.Delta <= 0 {
		return oerror.New(game.ErrorInvalidConfigValue, "dt", s.Delta, "must be positive")
	}
	if len(s.Steps) == 0 {
		return oerror.New(game.ErrorInvalidConfigValue, "steps", len(s.Steps), "script has no steps")
	}
	for i, step := range s.Steps {
		if step.Frames <= 0 {
			return oerror.New(game.ErrorInvalidConfigValue, fmt.Sprintf("steps[%d].frames", i), step.Frames, "must be positive")
		}
		if step.Device != "" && step.Device != "pointer" && step.Device != "other" {
			return oerror.New(game.ErrorInvalidConfigValue, fmt.Sprintf("steps[%d].device", i), step.Device, "must be pointer or other")
		}
	}
	return nil
}

// FrameCount returns the total number of frames in the script.
func (s *Script) FrameCount() int {
	var n int
	for _, step := range s.Steps {
		n += step.Frames
	}
	return n
}

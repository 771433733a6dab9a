package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml"
)

// EnvPrefix prefixes every environment variable that overrides a setting.
const EnvPrefix = "STRIDER_"

// Settings contains everything that can be configured for a character controller and the world it
// is simulated in.
type Settings struct {
	Logging Logging
	Motor   Motor
	Camera  Camera
	World   World
}

// Logging configures the logger of the controller.
type Logging struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `env:"LEVEL"`
	// Format is either "text" or "json".
	Format string `env:"FORMAT"`
}

// Motor holds the tunable parameters of the character motor.
type Motor struct {
	MoveSpeed       float32 `env:"MOVE_SPEED"`
	SprintSpeed     float32 `env:"SPRINT_SPEED"`
	SpeedChangeRate float32 `env:"SPEED_CHANGE_RATE"`

	JumpHeight       float32 `env:"JUMP_HEIGHT"`
	Gravity          float32 `env:"GRAVITY"`
	TerminalVelocity float32 `env:"TERMINAL_VELOCITY"`
	JumpTimeout      float32 `env:"JUMP_TIMEOUT"`
	FallTimeout      float32 `env:"FALL_TIMEOUT"`
	ExtraJumpCount   int     `env:"EXTRA_JUMP_COUNT"`

	GroundedOffset float32 `env:"GROUNDED_OFFSET"`
	GroundedRadius float32 `env:"GROUNDED_RADIUS"`
	// GroundLayers are the names of the layers the ground check considers.
	GroundLayers []string `env:"GROUND_LAYERS" envSeparator:","`

	FallThreshold   float32 `env:"FALL_THRESHOLD"`
	RespawnPosition Vec3

	ClimbSpeed     float32 `env:"CLIMB_SPEED"`
	LadderPushback float32 `env:"LADDER_PUSHBACK"`
}

// Camera holds the tunable parameters of the camera.
type Camera struct {
	RotationSpeed float32 `env:"ROTATION_SPEED"`
	TopClamp      float32 `env:"TOP_CLAMP"`
	BottomClamp   float32 `env:"BOTTOM_CLAMP"`
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return errors.New("settings file already exists")
	}

	data, err := toml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed encoding default settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed creating settings file: %w", err)
	}
	return nil
}

// Load will load the settings from your settings file, apply overrides from the environment and
// validate the result. An error is returned if the file does not exist.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %w", err)
	}

	settings := Default()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err = ApplyEnv(&settings); err != nil {
		return Settings{}, err
	}
	if err = settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}

// ApplyEnv overrides settings with the environment variables that are set. Variables are named after
// the section and the setting, for example STRIDER_MOTOR_MOVE_SPEED or STRIDER_LOG_LEVEL.
func ApplyEnv(s *Settings) error {
	sections := []struct {
		prefix string
		target any
	}{
		{EnvPrefix + "LOG_", &s.Logging},
		{EnvPrefix + "MOTOR_", &s.Motor},
		{EnvPrefix + "CAMERA_", &s.Camera},
	}
	for _, section := range sections {
		if err := env.ParseWithOptions(section.target, env.Options{Prefix: section.prefix}); err != nil {
			return fmt.Errorf("parse env %s*: %w", section.prefix, err)
		}
	}
	return nil
}

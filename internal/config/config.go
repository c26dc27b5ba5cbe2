package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ericogr/saber-duel/internal/game"
	"github.com/ericogr/saber-duel/internal/keys"
)

type characterEntry struct {
	Name         string `json:"name"`
	HealthPoints int    `json:"health_points"`
	AttackPower  int    `json:"attack_power"`
	Image        string `json:"image"`
}

type rawConfig struct {
	CharacterList []characterEntry `json:"character_list"`
	Server        *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the roster every session starts from and the
// server address to bind to.
type LoadedConfig struct {
	Roster        []game.Character
	ServerAddress string
}

// LoadConfig reads the roster file at path. It requires the key
// `character_list` (snake_case). An empty path selects the built-in roster.
func LoadConfig(path string) (*LoadedConfig, error) {
	if path == "" {
		return &LoadedConfig{Roster: game.DefaultRoster()}, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	entries := rc.CharacterList
	if len(entries) < 2 {
		return nil, fmt.Errorf("config file %s: character_list needs at least two characters", path)
	}

	out := make([]game.Character, 0, len(entries))
	nameSet := make(map[string]struct{}, len(entries))
	keySet := make(map[string]string, len(entries))
	for _, e := range entries {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("config file %s: character entry missing 'name'", path)
		}
		if e.HealthPoints <= 0 {
			return nil, fmt.Errorf("config file %s: character '%s' needs positive health_points", path, name)
		}
		if e.AttackPower <= 0 {
			return nil, fmt.Errorf("config file %s: character '%s' needs positive attack_power", path, name)
		}
		folded := keys.Fold(name)
		if _, exists := nameSet[folded]; exists {
			return nil, fmt.Errorf("config file %s: duplicate character name '%s'", path, name)
		}
		nameSet[folded] = struct{}{}
		// Portraits and views are addressed by key, so keys must be unique too.
		key := keys.CharacterKey(name)
		if key == "" {
			return nil, fmt.Errorf("config file %s: character '%s' has no usable key characters", path, name)
		}
		if other, exists := keySet[key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate character key '%s' for '%s' and '%s'", path, key, other, name)
		}
		keySet[key] = name
		out = append(out, game.NewCharacter(name, e.HealthPoints, e.AttackPower, false, strings.TrimSpace(e.Image)))
	}

	addr := ""
	if rc.Server != nil {
		addr = strings.TrimSpace(rc.Server.Address)
	}
	return &LoadedConfig{Roster: out, ServerAddress: addr}, nil
}

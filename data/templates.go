package data

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"invaders/components"
	"invaders/ecs"
)

// Archetype IDs
const (
	PlayerID      = "player"
	PlayerLaserID = "player_laser"
	EnemyID       = "enemy"
	EnemyLaserID  = "enemy_laser"
	ExplosionID   = "explosion"
)

// ArchetypeTemplate holds the per-archetype constants used when spawning entities
type ArchetypeTemplate struct {
	// Basic info
	ID   string `json:"id"`   // Unique identifier
	Name string `json:"name"` // Display name

	// Visual appearance
	Sprite string `json:"sprite"` // Texture handle, opaque to the simulation
	Color  string `json:"color"`  // Fallback color in hex format (e.g. "#00FF00")
	Length int    `json:"length"` // Sprite-sheet frames, 0 for a still sprite

	// Collision box, unscaled
	Width  float64 `json:"width"`
	Height float64 `json:"height"`

	Mass float64  `json:"mass"` // Physics variant
	Tags []string `json:"tags"` // Category tags applied on spawn
}

// TagSet resolves the template's tag names
func (t *ArchetypeTemplate) TagSet() (ecs.TagSet, error) {
	return components.ParseTags(t.Tags)
}

// ArchetypeManager manages all archetype templates
type ArchetypeManager struct {
	Templates map[string]*ArchetypeTemplate
}

// NewArchetypeManager creates a manager preloaded with the built-in archetypes
func NewArchetypeManager() *ArchetypeManager {
	m := &ArchetypeManager{
		Templates: make(map[string]*ArchetypeTemplate),
	}
	for _, t := range builtin() {
		m.Templates[t.ID] = t
	}
	return m
}

func builtin() []*ArchetypeTemplate {
	return []*ArchetypeTemplate{
		{ID: PlayerID, Name: "Player", Sprite: "player_b_01.png", Color: "#4040bf",
			Width: 98, Height: 75, Mass: 10, Tags: []string{"Player"}},
		{ID: PlayerLaserID, Name: "Player laser", Sprite: "laser_a_01.png", Color: "#40ff40",
			Width: 9, Height: 54, Mass: 0.1, Tags: []string{"Laser", "FromPlayer"}},
		{ID: EnemyID, Name: "Enemy", Sprite: "enemy_a_01.png", Color: "#ff4040",
			Width: 93, Height: 84, Mass: 50, Tags: []string{"Enemy"}},
		{ID: EnemyLaserID, Name: "Enemy laser", Sprite: "laser_b_01.png", Color: "#ffa040",
			Width: 17, Height: 55, Mass: 0.1, Tags: []string{"Laser", "FromEnemy"}},
		{ID: ExplosionID, Name: "Explosion", Sprite: "explo_a_sheet.png", Color: "#ffff40",
			Width: 64, Height: 64, Length: 16, Tags: []string{"Explosion"}},
	}
}

// LoadTemplatesFromDirectory loads all JSON template files from a directory,
// replacing built-in archetypes with the same ID
func (m *ArchetypeManager) LoadTemplatesFromDirectory(dirPath string) error {
	files, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read template directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		fullPath := filepath.Join(dirPath, file.Name())
		if err := m.LoadTemplateFromFile(fullPath); err != nil {
			return fmt.Errorf("failed to load template from %s: %w", file.Name(), err)
		}
	}

	return nil
}

// LoadTemplateFromFile loads a single archetype template from a JSON file
func (m *ArchetypeManager) LoadTemplateFromFile(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	var template ArchetypeTemplate
	if err := json.Unmarshal(data, &template); err != nil {
		return err
	}

	if err := ValidateTemplate(&template); err != nil {
		return fmt.Errorf("invalid template in %s: %w", filePath, err)
	}

	m.Templates[template.ID] = &template
	return nil
}

// GetTemplate returns a template by ID
func (m *ArchetypeManager) GetTemplate(id string) (*ArchetypeTemplate, bool) {
	template, ok := m.Templates[id]
	return template, ok
}

// MustTemplate returns a template by ID and panics if it is missing
func (m *ArchetypeManager) MustTemplate(id string) *ArchetypeTemplate {
	template, ok := m.Templates[id]
	if !ok {
		panic(fmt.Sprintf("archetype %q not registered", id))
	}
	return template
}

// requiredTags are the category tags each built-in archetype must keep.
// The systems select entities by these tags, so an override without them
// would spawn entities that nothing collides with or counts.
var requiredTags = map[string]ecs.TagSet{
	PlayerID:      components.Player,
	PlayerLaserID: components.Laser | components.FromPlayer,
	EnemyID:       components.Enemy,
	EnemyLaserID:  components.Laser | components.FromEnemy,
	ExplosionID:   components.Explosion,
}

// ValidateTemplate ensures that the template has all required fields
func ValidateTemplate(template *ArchetypeTemplate) error {
	if template.ID == "" {
		return fmt.Errorf("template missing ID")
	}
	if template.Width < 0 || template.Height < 0 {
		return fmt.Errorf("template '%s' has negative size", template.ID)
	}
	if template.Mass < 0 {
		return fmt.Errorf("template '%s' has negative mass", template.ID)
	}
	tags, err := template.TagSet()
	if err != nil {
		return fmt.Errorf("template '%s': %w", template.ID, err)
	}

	required, builtin := requiredTags[template.ID]
	if !builtin {
		return nil
	}
	if !tags.Has(required) {
		return fmt.Errorf("template '%s' must carry tags %v, got %v",
			template.ID, components.TagNames(required), components.TagNames(tags))
	}
	if template.ID == ExplosionID {
		if template.Length <= 0 {
			return fmt.Errorf("template '%s' needs a positive frame count", template.ID)
		}
	} else if template.Width <= 0 || template.Height <= 0 {
		return fmt.Errorf("template '%s' is collidable and needs a positive size", template.ID)
	}
	return nil
}

// ParseHexColor converts a hex string to a color.RGBA
func ParseHexColor(hex string) (c color.RGBA) {
	c.A = 0xff

	if len(hex) < 7 {
		return
	}

	format := "#%02x%02x%02x"
	_, err := fmt.Sscanf(hex, format, &c.R, &c.G, &c.B)
	if err != nil {
		return color.RGBA{255, 255, 255, 255} // Default white on error
	}

	return
}

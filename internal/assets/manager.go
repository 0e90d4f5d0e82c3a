package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	_ "image/png" // Register PNG format

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed images/*.png
var projectAssets embed.FS

const (
	PlayerSprite = "player.png"
	GoalSprite   = "goal.png"
)

// LoadImage decodes an embedded PNG into VRAM.
func LoadImage(name string) (*ebiten.Image, error) {
	fileData, err := projectAssets.ReadFile("images/" + name)
	if err != nil {
		return nil, fmt.Errorf("read image '%s': %w", name, err)
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("decode image '%s': %w", name, err)
	}

	return ebiten.NewImageFromImage(img), nil
}

// Sprites are the two textures the maze renderer draws.
type Sprites struct {
	Player *ebiten.Image
	Goal   *ebiten.Image
}

func LoadSprites() (*Sprites, error) {
	player, err := LoadImage(PlayerSprite)
	if err != nil {
		return nil, err
	}
	goal, err := LoadImage(GoalSprite)
	if err != nil {
		player.Deallocate()
		return nil, err
	}
	return &Sprites{Player: player, Goal: goal}, nil
}

// Release frees the GPU side of every sprite.
func (s *Sprites) Release() {
	s.Player.Deallocate()
	s.Goal.Deallocate()
}

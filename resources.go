package flappy

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"flappy/internal/config"
	"flappy/internal/sprite"
	"flappy/internal/world"
)

// ResourceManager loads assets from a file system and caches the decoded
// images and their GPU textures.
type ResourceManager struct {
	fsys     fs.FS
	images   map[string]image.Image
	textures map[*sprite.Sprite]*ebiten.Image
	logger   *log.Logger
}

// NewResourceManager creates a resource manager reading from fsys.
func NewResourceManager(fsys fs.FS, logger *log.Logger) *ResourceManager {
	return &ResourceManager{
		fsys:     fsys,
		images:   make(map[string]image.Image),
		textures: make(map[*sprite.Sprite]*ebiten.Image),
		logger:   logger,
	}
}

// LoadImage decodes the named image, once.
func (rm *ResourceManager) LoadImage(name string) (image.Image, error) {
	if img, ok := rm.images[name]; ok {
		return img, nil
	}

	f, err := rm.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset %s: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", name, err)
	}
	rm.images[name] = img
	rm.logger.Debug("loaded image", "name", name, "size", img.Bounds().Size())
	return img, nil
}

// LoadSound reads the named sound file.
func (rm *ResourceManager) LoadSound(name string) ([]byte, error) {
	b, err := fs.ReadFile(rm.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound %s: %w", name, err)
	}
	rm.logger.Debug("loaded sound", "name", name, "bytes", len(b))
	return b, nil
}

// LoadSprites builds every entity frame: avatar frames as drawn, obstacles and
// ground scaled to the configured size, the top obstacle flipped.
func (rm *ResourceManager) LoadSprites(cfg config.Config) (*world.Sprites, error) {
	s := &world.Sprites{}
	for _, name := range cfg.Assets.AvatarFrames {
		img, err := rm.LoadImage(name)
		if err != nil {
			return nil, err
		}
		s.AvatarFrames = append(s.AvatarFrames, sprite.New(img))
	}

	pipe, err := rm.LoadImage(cfg.Assets.Obstacle)
	if err != nil {
		return nil, err
	}
	scaled := sprite.Scale(pipe, cfg.World.ObstacleWidth, cfg.World.ObstacleHeight)
	s.Obstacle = sprite.New(scaled)
	s.ObstacleInverted = sprite.New(sprite.FlipVertical(scaled))

	ground, err := rm.LoadImage(cfg.Assets.Ground)
	if err != nil {
		return nil, err
	}
	s.Ground = sprite.New(sprite.Scale(ground, cfg.World.GroundWidth, cfg.World.GroundHeight))

	return s, nil
}

// Texture returns the GPU image for s, uploading it on first use.
func (rm *ResourceManager) Texture(s *sprite.Sprite) *ebiten.Image {
	if img, ok := rm.textures[s]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(s.Image)
	rm.textures[s] = img
	return img
}

// Background returns the named image as a texture.
func (rm *ResourceManager) Background(name string) (*ebiten.Image, error) {
	img, err := rm.LoadImage(name)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

// Clear releases every cached texture.
func (rm *ResourceManager) Clear() {
	for _, img := range rm.textures {
		img.Deallocate()
	}
	rm.textures = make(map[*sprite.Sprite]*ebiten.Image)
	rm.images = make(map[string]image.Image)
}

// LoadFont returns the text face for overlays.
func LoadFont(size float64) (text.Face, error) {
	ft, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return text.NewGoXFace(face), nil
}

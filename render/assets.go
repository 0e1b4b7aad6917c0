package render

import (
	_ "image/png"
	"path/filepath"

	"runner-game/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	log "github.com/sirupsen/logrus"
)

// Sprites holds the images the scene is drawn with. Any of them may be nil
// when the file could not be loaded; the scene then draws a flat shape.
type Sprites struct {
	Run    [3]*ebiten.Image
	Duck   [2]*ebiten.Image
	Jump   *ebiten.Image
	Dead   [2]*ebiten.Image
	Cactus [3]*ebiten.Image
	Bird   [2]*ebiten.Image
	Cloud  *ebiten.Image
}

func LoadSprites(dir string) *Sprites {
	s := &Sprites{}
	failed := 0
	load := func(name string) *ebiten.Image {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, name))
		if err != nil {
			failed++
			log.WithError(err).WithField("sprite", name).Debug("Failed to load sprite")
			return nil
		}
		return img
	}

	s.Run = [3]*ebiten.Image{load("dino-run-1.png"), load("dino-run-2.png"), load("dino-run-3.png")}
	s.Duck = [2]*ebiten.Image{load("dino-duck-1.png"), load("dino-duck-2.png")}
	s.Jump = load("dino-jump.png")
	s.Dead = [2]*ebiten.Image{load("dino-dead-1.png"), load("dino-dead-2.png")}
	s.Cactus = [3]*ebiten.Image{load("cactus-small.png"), load("cactus-tall.png"), load("cactus-multiple.png")}
	s.Bird = [2]*ebiten.Image{load("bird-1.png"), load("bird-2.png")}
	s.Cloud = load("cloud.png")

	if failed > 0 {
		log.WithFields(log.Fields{
			"dir":    dir,
			"failed": failed,
		}).Warn("Some sprites could not be loaded, using flat shapes")
	}
	return s
}

// player picks the sprite for posture and the current animation frame.
func (s *Sprites) player(posture game.Posture, a game.Animation) *ebiten.Image {
	switch posture {
	case game.Jumping:
		return s.Jump
	case game.Ducking:
		return s.Duck[a.DuckFrame%len(s.Duck)]
	case game.Dead:
		return s.Dead[a.DeathFrame%len(s.Dead)]
	}
	return s.Run[a.RunFrame%len(s.Run)]
}

func drawSprite(dst, img *ebiten.Image, x, y, w, h, alpha float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(img, op)
}

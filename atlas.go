package twig

import (
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"maps"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// Atlas holds one or more page images and a map of named regions. Regions are
// handed out as sub-images, ready for a RegionActor or an Animation.
type Atlas struct {
	// Pages contains the atlas page images indexed by page number.
	Pages []*ebiten.Image

	// Logger receives missing-region warnings. May be nil.
	Logger Logger

	regions map[string]atlasRegion
}

type atlasRegion struct {
	page   int
	bounds image.Rectangle
}

// Region returns the named region as a sub-image of its page. A missing name
// is logged and yields a 1x1 magenta placeholder so the mistake is visible.
func (a *Atlas) Region(name string) *ebiten.Image {
	r, ok := a.regions[name]
	if !ok || r.page >= len(a.Pages) || a.Pages[r.page] == nil {
		logf(a.Logger, "atlas region %q not found, using magenta placeholder", name)
		return magentaImage()
	}
	return a.Pages[r.page].SubImage(r.bounds).(*ebiten.Image)
}

// Has reports whether the atlas defines name.
func (a *Atlas) Has(name string) bool {
	_, ok := a.regions[name]
	return ok
}

// Names returns every region name in sorted order.
func (a *Atlas) Names() []string {
	return slices.Sorted(maps.Keys(a.regions))
}

// Frames returns the regions whose names start with prefix, sorted by name.
// TexturePacker names animation frames "walk_00", "walk_01" and so on, so
// the result can be passed straight to NewAnimation.
func (a *Atlas) Frames(prefix string) []*ebiten.Image {
	var out []*ebiten.Image
	for _, name := range a.Names() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, a.Region(name))
		}
	}
	return out
}

// Dispose releases every page image.
func (a *Atlas) Dispose() error {
	ds := make([]Disposable, len(a.Pages))
	for i, p := range a.Pages {
		ds[i] = ImageDisposer(p)
	}
	a.Pages = nil
	return DisposeAll(a.Logger, ds...)
}

var placeholder *ebiten.Image

func magentaImage() *ebiten.Image {
	if placeholder == nil {
		placeholder = ebiten.NewImage(1, 1)
		placeholder.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	}
	return placeholder
}

// LoadAtlas parses TexturePacker JSON data and associates the given page images.
// Supports both the hash format (single "frames" object) and the array format
// ("textures" array with per-page frame lists). Rotated frames are rejected
// since a sub-image cannot undo the rotation.
func LoadAtlas(jsonData []byte, pages []*ebiten.Image) (*Atlas, error) {
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("twig: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{
		Pages:   pages,
		regions: make(map[string]atlasRegion),
	}

	switch {
	case probe.Textures != nil:
		var textures []jsonTexturePage
		if err := json.Unmarshal(probe.Textures, &textures); err != nil {
			return nil, fmt.Errorf("twig: failed to parse atlas textures array: %w", err)
		}
		for i, tex := range textures {
			if err := atlas.addFrames(tex.Frames, i); err != nil {
				return nil, err
			}
		}
	case probe.Frames != nil:
		var frames map[string]jsonFrame
		if err := json.Unmarshal(probe.Frames, &frames); err != nil {
			return nil, fmt.Errorf("twig: failed to parse atlas frames: %w", err)
		}
		if err := atlas.addFrames(frames, 0); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("twig: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return atlas, nil
}

func (a *Atlas) addFrames(frames map[string]jsonFrame, page int) error {
	for name, f := range frames {
		if f.Rotated {
			return fmt.Errorf("twig: atlas region %q is rotated", name)
		}
		a.regions[name] = atlasRegion{
			page:   page,
			bounds: image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H),
		}
	}
	return nil
}

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

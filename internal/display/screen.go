// Package display reports the primary screen resolution.
package display

import (
	"fmt"

	"github.com/genricoloni/wallfetch/internal/domain"
	"github.com/kbinani/screenshot"
	"go.uber.org/zap"
)

// ScreenshotProbe queries active displays through kbinani/screenshot
type ScreenshotProbe struct {
	logger *zap.Logger
}

// NewScreenshotProbe creates a new display probe
func NewScreenshotProbe(logger *zap.Logger) *ScreenshotProbe {
	return &ScreenshotProbe{logger: logger}
}

// Resolution returns the bounds of the primary monitor (index 0)
func (p *ScreenshotProbe) Resolution() (domain.ScreenResolution, error) {
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return domain.ScreenResolution{}, fmt.Errorf("no active displays detected")
	}

	bounds := screenshot.GetDisplayBounds(0)
	res := domain.ScreenResolution{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
	if res.Width <= 0 || res.Height <= 0 {
		return domain.ScreenResolution{}, fmt.Errorf("invalid display bounds: %dx%d", res.Width, res.Height)
	}

	p.logger.Debug("Screen resolution detected",
		zap.Int("width", res.Width),
		zap.Int("height", res.Height),
		zap.Int("displays", n))
	return res, nil
}

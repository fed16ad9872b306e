package render

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/Mavwarf/appicon/internal/tmpl"
)

// DefaultInterpreter is the Swift toolchain shipped with Xcode's command
// line tools.
const DefaultInterpreter = "/usr/bin/swift"

// swiftProgram draws into an explicit bitmap rep so the PNG has exactly
// size×size pixels regardless of the display's backing scale. The context
// is flipped to a top-left origin to share proportions with the in-process
// renderers.
const swiftProgram = `import Cocoa
let size = {size}
let s = CGFloat(size)
let rep = NSBitmapImageRep(bitmapDataPlanes: nil, pixelsWide: size, pixelsHigh: size,
    bitsPerSample: 8, samplesPerPixel: 4, hasAlpha: true, isPlanar: false,
    colorSpaceName: .deviceRGB, bytesPerRow: 0, bitsPerPixel: 0)!
NSGraphicsContext.current = NSGraphicsContext(bitmapImageRep: rep)
let ctx = NSGraphicsContext.current!.cgContext
ctx.translateBy(x: 0, y: s)
ctx.scaleBy(x: 1, y: -1)
let inset = s * 0.05
let frame = CGRect(x: inset, y: inset, width: s - inset*2, height: s - inset*2)
ctx.addPath(CGPath(roundedRect: frame, cornerWidth: s * 0.22, cornerHeight: s * 0.22, transform: nil))
ctx.setFillColor(red: 0.16, green: 0.47, blue: 1.0, alpha: 1.0)
ctx.fillPath()
let cardW = s * 0.52; let cardH = s * 0.46
let cardX = (s - cardW) / 2; let cardY = s * 0.34
let card = CGRect(x: cardX, y: cardY, width: cardW, height: cardH)
ctx.addPath(CGPath(roundedRect: card, cornerWidth: s * 0.03, cornerHeight: s * 0.03, transform: nil))
ctx.setFillColor(red: 1, green: 1, blue: 1, alpha: 0.95)
ctx.fillPath()
for off: CGFloat in [0.18, 0.43, 0.65] {
    ctx.addRect(CGRect(x: cardX + cardW * off, y: cardY + s * 0.03, width: s * 0.06, height: s * 0.14))
}
ctx.setFillColor(red: 0.16, green: 0.47, blue: 1.0, alpha: 1.0)
ctx.fillPath()
let cx = s * 0.5; let tip = s * 0.12; let a = s * 0.15
ctx.move(to: CGPoint(x: cx, y: tip))
ctx.addLine(to: CGPoint(x: cx - a*0.7, y: tip + a*0.7))
ctx.addLine(to: CGPoint(x: cx - a*0.25, y: tip + a*0.7))
ctx.addLine(to: CGPoint(x: cx - a*0.25, y: tip + a*1.3))
ctx.addLine(to: CGPoint(x: cx + a*0.25, y: tip + a*1.3))
ctx.addLine(to: CGPoint(x: cx + a*0.25, y: tip + a*0.7))
ctx.addLine(to: CGPoint(x: cx + a*0.7, y: tip + a*0.7))
ctx.closePath()
ctx.setFillColor(red: 1, green: 1, blue: 1, alpha: 0.9)
ctx.fillPath()
NSGraphicsContext.current = nil
let png = rep.representation(using: .png, properties: [:])!
try! png.write(to: URL(fileURLWithPath: "{path}"))
`

// SwiftProgram returns the drawing program for one edge length and
// destination path.
func SwiftProgram(size int, path string) string {
	return tmpl.Expand(swiftProgram, tmpl.Vars{Size: size, Path: tmpl.EscapeSwift(path)})
}

// Swift renders by running `<Interpreter> -e <program>` and waiting for it.
type Swift struct {
	Interpreter string // defaults to DefaultInterpreter
}

func (s Swift) Render(ctx context.Context, path string, size int) error {
	if err := checkSize(size); err != nil {
		return err
	}
	interp := s.Interpreter
	if interp == "" {
		interp = DefaultInterpreter
	}
	if _, err := exec.LookPath(interp); err != nil {
		return fmt.Errorf("swift interpreter not found (required for the swift renderer): %w", err)
	}

	// A stale file from an earlier run must not pass for this run's output.
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	cmd := exec.CommandContext(ctx, interp, "-e", SwiftProgram(size, path))
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s -e <program> (size %d): %w\n%s", interp, size, err, out)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%s exited cleanly but wrote no image: %w", interp, err)
	}
	return nil
}

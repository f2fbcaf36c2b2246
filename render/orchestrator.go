package render

import (
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/midnight-awake/world"
)

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
	rng       *rand.Rand
}

// NewRenderOrchestrator creates an orchestrator drawing to screen
func NewRenderOrchestrator(screen tcell.Screen, rng *rand.Rand) *RenderOrchestrator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 8),
		rng:       rng,
	}
}

// NewDefaultOrchestrator registers the standard layers for layout
func NewDefaultOrchestrator(screen tcell.Screen, layout *world.Layout, rng *rand.Rand) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen, rng)
	o.Register(NewWorldRenderer(layout), PriorityWorld)
	o.Register(NewPostProcessRenderer(o.rng), PriorityPostProcess)
	o.Register(NewHUDRenderer(), PriorityHUD)
	o.Register(NewMenuRenderer(), PriorityMenu)
	o.Register(NewJumpscareRenderer(o.rng), PriorityOverlay)
	o.Register(NewDebugRenderer(), PriorityDebug)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize(width, height int) {
	o.buffer.Resize(width, height)
	o.screen.Sync()
}

// Buffer exposes the last composited frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext) {
	w, h := o.buffer.Bounds()
	ctx.Width, ctx.Height = w, h
	ctx.Effects = ComputeEffects(ctx.State, o.rng)

	o.buffer.Clear(ctx.Effects.Sky)

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible(ctx) {
			continue
		}
		entry.renderer.Render(ctx, o.buffer)
	}

	o.buffer.FlushToScreen(o.screen)
}

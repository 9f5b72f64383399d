// Package quill is a retained-mode 2D vector renderer for [Ebitengine] with
// pixel-accurate picking.
//
// Clients build a tree of nodes, each carrying a command buffer of drawing
// commands. Every frame the stage compiles each buffer into a triangle list
// and submits it in one draw call per node. A second, offscreen pass draws
// every pickable node in a flat color derived from its id; reading that
// buffer back tells which node is under the pointer.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	stage := quill.NewStage(quill.NewEbitenBackend(), nil)
//	// ... add nodes ...
//	quill.Run(stage, quill.RunConfig{
//		Title: "My App", Width: 640, Height: 480,
//	})
//
// [LoadRunConfig] fills the same configuration from environment variables.
//
// For full control, implement [ebiten.Game] yourself, call
// [Stage.ProcessInput] from Update, and [EbitenBackend.SetScreen] followed
// by [Stage.Update] from Draw.
//
// # Drawing
//
// Shapes record commands on their [Graphics]; nothing is rasterized until
// the stage traverses the tree:
//
//	box := stage.NewShape("box")
//	box.Graphics.
//		BeginFill(quill.MustParseColor("#3366cc")).
//		DrawRect(0, 0, 80, 40)
//	box.SetPosition(100, 50)
//	stage.Root().AddChild(box)
//
// LineTo strokes with the current stroke color and width, DrawRect and
// DrawCircle fill with the fill color, and ClosePath fills the polygon
// traced by the preceding MoveTo/LineTo run using ear clipping.
//
// # Transforms
//
// Each node has a local scale, rotation and translation composed as
// Scale · Rotation · Translation. [Node.GlobalToLocal] and
// [Node.LocalToGlobal] convert points between stage and node space.
//
// # Events
//
// Nodes and the stage carry listener tables ([Node.AddEventListener]).
// [Stage.HandlePointer] resolves the node under a pointer sample, fires
// mouseover/mouseout when it changes, and dispatches the sample's own event.
// With [Run], mouse input is polled and fed in automatically. Events can also
// be forwarded to an ECS via [Stage.SetEventSink] (see quill/ecs).
//
// # Automated input
//
// [Stage.InjectMove], [Stage.InjectClick] and friends queue synthetic pointer
// samples consumed one per [Stage.ProcessInput]. [LoadTestScript] and
// [LoadTestScriptYAML] turn a script of such steps, plus waits and
// [Stage.DumpPickBuffer] calls, into a [TestRunner].
//
// quill is single-threaded. Listeners must not modify the node tree while an
// event is being dispatched.
//
// [Ebitengine]: https://ebitengine.org
package quill

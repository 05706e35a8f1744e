package port

import "github.com/bnema/vomnibar/internal/domain/entity"

// Renderer draws the completion list. Markup generation per completion is
// the renderer's concern.
type Renderer interface {
	RenderCompletions(completions []entity.Completion)
	RenderSelection(index int)

	// RenderInput is called when the controller itself rewrote the input
	// text or moved the cursor, as opposed to the user typing.
	RenderInput(value string, cursor int)
}

package pinball

import "fmt"

// StatusText formats the lives and points label.
func StatusText(r RoundState) string {
	return fmt.Sprintf("LIVES: %d\nPOINTS: %d", r.Lives, r.Points)
}

// Presenter pushes the round's text to the display every frame.
type Presenter struct {
	display Display
}

// NewPresenter creates a presenter writing to d.
func NewPresenter(d Display) *Presenter {
	return &Presenter{display: d}
}

// Sync writes the status and prompt labels.
func (p *Presenter) Sync(r RoundState, prompt string) {
	p.display.SetText(LabelStatus, StatusText(r))
	p.display.SetText(LabelPrompt, prompt)
}

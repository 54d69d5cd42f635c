package questionnaire

import "learnstyle/internal/soal"

// Item is one question on the current page together with its answer.
type Item struct {
	Number   int
	Question soal.Question
	Answer   Answer
}

// Snapshot is a read-only view of the controller state for rendering.
type Snapshot struct {
	Ready      bool
	Page       Pagination
	Items      []Item
	Answered   int
	Progress   int
	Banner     string
	Missing    []int
	Validation string
	Submitting bool
}

// Snapshot captures the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := Snapshot{
		Ready:      c.ready,
		Page:       c.page,
		Answered:   c.answers.Count(),
		Banner:     c.banner,
		Submitting: c.submitting,
	}
	snap.Progress = progressPercent(snap.Answered)
	if len(c.missing) > 0 {
		snap.Missing = append([]int(nil), c.missing...)
		snap.Validation = c.messages.Incomplete(c.missing, c.missingAll)
	}
	if !c.ready {
		return snap
	}
	start, end := c.page.Bounds(c.page.CurrentPage)
	snap.Items = make([]Item, 0, end-start)
	for i := start; i < end; i++ {
		snap.Items = append(snap.Items, Item{
			Number:   i + 1,
			Question: c.questions[i],
			Answer:   c.answers[i],
		})
	}
	return snap
}

// Messages returns the controller's localized texts.
func (c *Controller) Messages() Messages {
	return c.messages
}

package vtcore

// PromptPhase tags which part of a semantic prompt (OSC 133) a PromptMark
// records.
type PromptPhase uint8

const (
	PromptPhaseStart PromptPhase = iota
	PromptPhaseContinuation
	PromptPhaseEnd
	PromptPhaseEndOfInput
	PromptPhaseEndOfCommand
)

// PromptMark records one semantic prompt event for scrollback navigation.
// Row is absolute, including whatever scrollback offset was in effect when
// the mark was recorded; ExitCode is only meaningful for
// PromptPhaseEndOfCommand.
type PromptMark struct {
	Phase    PromptPhase
	Row      int
	ExitCode int
}

func (t *Terminal) recordMark(phase PromptPhase, exitCode int) {
	scrollbackLen := t.primaryBuffer.ScrollbackLen()
	absoluteRow := t.cursor.Row + scrollbackLen
	t.promptMarks = append(t.promptMarks, PromptMark{Phase: phase, Row: absoluteRow, ExitCode: exitCode})
}

// MarkPromptStart records a prompt-start mark (OSC 133;A). shellRedraws
// signals the "A;redraw" variant some shells emit when they intend to
// repaint the prompt themselves; it is latched onto the terminal's
// flags.shell_redraws_prompt until the next prompt_start.
func (t *Terminal) MarkPromptStart(shellRedraws bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.shellRedrawsPrompt = shellRedraws
	t.recordMark(PromptPhaseStart, -1)
}

// ShellRedrawsPrompt reports whether the most recent prompt_start marked
// itself as shell-redrawn.
func (t *Terminal) ShellRedrawsPrompt() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.shellRedrawsPrompt
}

// MarkPromptContinuation records a continuation-line mark (OSC 133;A;k=c... ).
func (t *Terminal) MarkPromptContinuation() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recordMark(PromptPhaseContinuation, -1)
}

// MarkPromptEnd records the end of the prompt / start of user input (OSC 133;B).
func (t *Terminal) MarkPromptEnd() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recordMark(PromptPhaseEnd, -1)
}

// MarkEndOfInput records the end of input / start of command output (OSC 133;C).
func (t *Terminal) MarkEndOfInput() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recordMark(PromptPhaseEndOfInput, -1)
}

// MarkEndOfCommand records the command's exit code (OSC 133;D;exitCode).
func (t *Terminal) MarkEndOfCommand(exitCode int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recordMark(PromptPhaseEndOfCommand, exitCode)
}

// PromptMarks returns a copy of every recorded mark.
func (t *Terminal) PromptMarks() []PromptMark {
	t.mu.RLock()
	defer t.mu.RUnlock()
	marks := make([]PromptMark, len(t.promptMarks))
	copy(marks, t.promptMarks)
	return marks
}

// PromptMarkCount returns the number of recorded marks.
func (t *Terminal) PromptMarkCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.promptMarks)
}

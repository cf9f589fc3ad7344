/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carverauto/prtgcli/pkg/tagger"
)

const (
	promptText  = "Continue? (Y/N) "
	affirmative = "Y"
	inputWidth  = 8
)

// PromptApprover asks for confirmation on a line-oriented reader. Only an
// exact "Y" approves; end of input declines.
type PromptApprover struct {
	in     *bufio.Reader
	out    io.Writer
	styles styles
}

var _ tagger.Approver = (*PromptApprover)(nil)

// NewPromptApprover creates a PromptApprover reading answers from in.
func NewPromptApprover(in io.Reader, out io.Writer) *PromptApprover {
	return &PromptApprover{
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(),
	}
}

// Approve implements tagger.Approver.
func (a *PromptApprover) Approve(ctx context.Context, _ *tagger.Job) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	if _, err := fmt.Fprint(a.out, a.styles.prompt.Render(promptText)); err != nil {
		return false, err
	}

	line, err := a.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("reading confirmation: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return false, err
	}

	return strings.TrimRight(line, "\r\n") == affirmative, nil
}

// TerminalApprover asks for confirmation with an interactive text input.
type TerminalApprover struct {
	in  io.Reader
	out io.Writer
}

var _ tagger.Approver = (*TerminalApprover)(nil)

// Approve implements tagger.Approver. Esc and Ctrl+C decline.
func (a *TerminalApprover) Approve(ctx context.Context, job *tagger.Job) (bool, error) {
	p := tea.NewProgram(newConfirmModel(job),
		tea.WithContext(ctx),
		tea.WithInput(a.in),
		tea.WithOutput(a.out))

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}

	m, ok := final.(*confirmModel)
	if !ok {
		return false, nil
	}

	return m.approved(), nil
}

// NewApprover picks the interactive approver when in is a terminal and the
// line prompt otherwise.
func NewApprover(in *os.File, out io.Writer) tagger.Approver {
	if IsTerminal(in) {
		return &TerminalApprover{in: in, out: out}
	}

	return NewPromptApprover(in, out)
}

type confirmModel struct {
	input   textinput.Model
	job     *tagger.Job
	answer  string
	done    bool
	aborted bool
	styles  styles
}

func newConfirmModel(job *tagger.Job) *confirmModel {
	s := newStyles()

	ti := textinput.New()
	ti.Prompt = promptText
	ti.Placeholder = "Y"
	ti.CharLimit = inputWidth
	ti.Width = inputWidth
	ti.PromptStyle = s.prompt
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaForeground))
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaComment))
	ti.Focus()

	return &confirmModel{input: ti, job: job, styles: s}
}

func (*confirmModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // Default case handles all unlisted keys
		switch keyMsg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true

			return m, tea.Quit
		case tea.KeyEnter:
			m.answer = m.input.Value()
			m.done = true

			return m, tea.Quit
		default:
		}
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *confirmModel) View() string {
	if m.done || m.aborted {
		return ""
	}

	hint := "enter to submit, esc to decline"
	if m.job != nil && m.job.Device != nil {
		hint = fmt.Sprintf("device %d (%s): %s", m.job.ParentID, m.job.Device.Name, hint)
	}

	return m.input.View() + "\n" + m.styles.warning.Render(hint) + "\n"
}

func (m *confirmModel) approved() bool {
	return m.done && !m.aborted && m.answer == affirmative
}

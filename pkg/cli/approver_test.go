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
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/prtgcli/pkg/prtg"
	"github.com/carverauto/prtgcli/pkg/tagger"
)

func TestPromptApprover(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "exact Y", input: "Y\n", want: true},
		{name: "windows newline", input: "Y\r\n", want: true},
		{name: "Y at end of input", input: "Y", want: true},
		{name: "lower case", input: "y\n", want: false},
		{name: "yes", input: "Yes\n", want: false},
		{name: "padded", input: " Y\n", want: false},
		{name: "N", input: "N\n", want: false},
		{name: "empty line", input: "\n", want: false},
		{name: "end of input", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer

			a := NewPromptApprover(strings.NewReader(tt.input), &out)

			got, err := a.Approve(context.Background(), &tagger.Job{ParentID: 1})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Continue? (Y/N) ")
		})
	}
}

func TestPromptApprover_ReadsOneAnswerPerJob(t *testing.T) {
	a := NewPromptApprover(strings.NewReader("Y\nN\n"), &bytes.Buffer{})

	first, err := a.Approve(context.Background(), &tagger.Job{ParentID: 1})
	require.NoError(t, err)

	second, err := a.Approve(context.Background(), &tagger.Job{ParentID: 2})
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}

func TestPromptApprover_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewPromptApprover(strings.NewReader("Y\n"), &bytes.Buffer{}).Approve(ctx, &tagger.Job{})
	require.ErrorIs(t, err, context.Canceled)
}

func typeRunes(m *confirmModel, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func TestConfirmModel(t *testing.T) {
	job := &tagger.Job{ParentID: 40, Device: &prtg.Device{ObjID: 40, Name: "core-sw"}}

	t.Run("Y approves", func(t *testing.T) {
		m := newConfirmModel(job)
		assert.Contains(t, m.View(), "core-sw")

		typeRunes(m, "Y")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		require.NotNil(t, cmd)
		assert.True(t, m.approved())
		assert.Empty(t, m.View())
	})

	t.Run("anything else declines", func(t *testing.T) {
		m := newConfirmModel(job)
		typeRunes(m, "yes")
		m.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.True(t, m.done)
		assert.False(t, m.approved())
	})

	t.Run("escape declines", func(t *testing.T) {
		m := newConfirmModel(job)
		typeRunes(m, "Y")

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		require.NotNil(t, cmd)
		assert.True(t, m.aborted)
		assert.False(t, m.approved())
	})
}

func TestNewApprover_NonTerminal(t *testing.T) {
	assert.IsType(t, &PromptApprover{}, NewApprover(nil, &bytes.Buffer{}))
	assert.False(t, IsTerminal(nil))
}

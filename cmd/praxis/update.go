package main

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/praxis-dev/client/challenge"
	"github.com/praxis-dev/client/subm"
	"github.com/praxis-dev/client/uimsg"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case errMsg:
		m.statusLine = uimsg.ForError(msg.err, msg.ctx)
		if m.state == stateLoading || m.state == stateSubmitting {
			m.state = stateList
		}
		return m, nil

	case challengesLoadedMsg:
		m.challenges = msg
		m.cursor = 0
		m.state = stateList
		return m, nil

	case profileLoadedMsg:
		m.prof = msg.prof
		m.attrs = msg.attrs
		m.state = stateProfile
		return m, nil

	case countdownMsg:
		m.remaining = time.Duration(msg)
		return m, waitCountdown(m.ticks)

	case countdownDoneMsg:
		m.remaining = 0
		return m, nil

	case submitDoneMsg:
		result := subm.Result(msg)
		m.result = &result
		m.closeChallenge()
		m.state = stateResult
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.state == stateChallenge {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.closeChallenge()
		return m, tea.Quit
	}

	switch m.state {
	case stateList:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.challenges)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor < len(m.challenges) {
				return m, m.openChallenge(m.challenges[m.cursor])
			}
		case "g":
			m.state = stateLoading
			m.statusLine = ""
			return m, tea.Batch(m.spinner.Tick, m.loadChallenges(true))
		case "p":
			m.state = stateLoading
			m.statusLine = ""
			return m, tea.Batch(m.spinner.Tick, m.loadProfile())
		}
		return m, nil

	case stateChallenge:
		switch msg.Type {
		case tea.KeyEsc:
			m.closeChallenge()
			m.state = stateList
			return m, nil
		case tea.KeyCtrlS:
			return m.advanceOrSubmit()
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case stateResult:
		if msg.Type == tea.KeyEnter {
			m.result = nil
			m.state = stateLoading
			return m, tea.Batch(m.spinner.Tick, m.loadChallenges(false))
		}
		return m, nil

	case stateProfile:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyEnter:
			m.state = stateList
		}
		return m, nil
	}
	return m, nil
}

// advanceOrSubmit moves organization challenges from the plan phase to
// the implementation phase; everything else submits.
func (m model) advanceOrSubmit() (tea.Model, tea.Cmd) {
	if m.current.Category == challenge.CategoryOrganization && m.phase == phaseMain {
		m.planText = m.input.Value()
		m.phase = phaseImplementation
		m.input.Reset()
		m.input.Placeholder = "Detalhe a implementação (mínimo 100 caracteres)..."
		m.statusLine = ""
		return m, nil
	}

	s, ok := m.buildSubmission()
	if !ok {
		return m, nil
	}
	m.state = stateSubmitting
	m.statusLine = ""
	return m, tea.Batch(m.spinner.Tick, m.submit(s))
}

package main

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/praxis-dev/client/api"
	"github.com/praxis-dev/client/challenge"
	"github.com/praxis-dev/client/profile"
	"github.com/praxis-dev/client/session"
	"github.com/praxis-dev/client/subm"
	"github.com/praxis-dev/client/uimsg"
)

type state int

const (
	stateLoading state = iota
	stateList
	stateChallenge
	stateSubmitting
	stateResult
	stateProfile
)

// Input phases while working on a challenge. Organization challenges
// collect the plan first and the implementation after.
type inputPhase int

const (
	phaseMain inputPhase = iota
	phaseImplementation
)

type model struct {
	ctx    context.Context
	client *api.Client
	sess   session.Session

	state      state
	spinner    spinner.Model
	input      textarea.Model
	phase      inputPhase
	planText   string
	statusLine string // inline validation / error line

	challenges []challenge.Challenge
	cursor     int

	current       *challenge.Challenge
	remaining     time.Duration
	stopCountdown context.CancelFunc
	ticks         <-chan time.Duration
	startedAt     time.Time

	result *subm.Result

	prof  profile.Profile
	attrs profile.Attributes
}

type (
	challengesLoadedMsg []challenge.Challenge
	countdownMsg        time.Duration
	countdownDoneMsg    struct{}
	submitDoneMsg       subm.Result
	profileLoadedMsg    struct {
		prof  profile.Profile
		attrs profile.Attributes
	}
	errMsg struct {
		err error
		ctx uimsg.Context
	}
)

func initialModel(ctx context.Context, client *api.Client, sess session.Session) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))

	ta := textarea.New()
	ta.Placeholder = "Escreva sua resposta aqui..."
	ta.SetWidth(76)
	ta.SetHeight(10)
	ta.CharLimit = 0

	return model{
		ctx:     ctx,
		client:  client,
		sess:    sess,
		state:   stateLoading,
		spinner: sp,
		input:   ta,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadChallenges(false))
}

func (m model) loadChallenges(generate bool) tea.Cmd {
	return func() tea.Msg {
		if generate {
			list, err := m.client.GenerateChallenges(m.ctx)
			if err != nil {
				return errMsg{err, uimsg.CtxChallenge}
			}
			return challengesLoadedMsg(list)
		}
		list, err := m.client.ActiveChallenges(m.ctx, 3)
		if err != nil {
			return errMsg{err, uimsg.CtxChallenge}
		}
		return challengesLoadedMsg(list)
	}
}

func (m model) loadProfile() tea.Cmd {
	return func() tea.Msg {
		prof, err := m.client.Profile(m.ctx)
		if err != nil {
			return errMsg{err, uimsg.CtxGeneral}
		}
		attrs, err := m.client.Attributes(m.ctx, prof.ID)
		if err != nil {
			return errMsg{err, uimsg.CtxGeneral}
		}
		return profileLoadedMsg{prof: prof, attrs: attrs}
	}
}

// waitCountdown pumps one tick from the countdown channel per command.
func waitCountdown(ticks <-chan time.Duration) tea.Cmd {
	return func() tea.Msg {
		remaining, ok := <-ticks
		if !ok {
			return countdownDoneMsg{}
		}
		return countdownMsg(remaining)
	}
}

func (m *model) openChallenge(ch challenge.Challenge) tea.Cmd {
	m.current = &ch
	m.state = stateChallenge
	m.phase = phaseMain
	m.planText = ""
	m.statusLine = ""
	m.startedAt = time.Now()

	m.input.Reset()
	if ch.Category == challenge.CategoryCode && ch.FS != nil {
		if content, ok := ch.FS.Contents[ch.FS.Open]; ok {
			m.input.SetValue(content)
		}
	}
	m.input.Focus()

	ctx, cancel := context.WithCancel(m.ctx)
	m.stopCountdown = cancel
	m.ticks = challenge.Countdown(ctx, ch.Difficulty.Duration())
	m.remaining = ch.Difficulty.Duration()
	return waitCountdown(m.ticks)
}

func (m *model) closeChallenge() {
	if m.stopCountdown != nil {
		m.stopCountdown()
		m.stopCountdown = nil
	}
	m.current = nil
	m.input.Blur()
}

// buildSubmission turns the current inputs into a Submission, or
// returns false with an inline validation message.
func (m *model) buildSubmission() (subm.Submission, bool) {
	ch := m.current
	elapsed := int(time.Since(m.startedAt).Seconds())

	var s subm.Submission
	switch ch.Category {
	case challenge.CategoryCode:
		mainFile := ""
		if ch.FS != nil {
			mainFile = ch.FS.Open
		}
		files := map[string]string{}
		if mainFile == "" {
			mainFile = "main.txt"
		}
		files[mainFile] = m.input.Value()
		s = subm.BuildCode(ch.ID, files, mainFile, elapsed, "resolução do desafio", "")
	case challenge.CategoryDailyTask:
		s = subm.BuildTask(ch.ID, m.input.Value(), elapsed, "")
	case challenge.CategoryOrganization:
		sections := map[string]string{"planejamento": m.planText}
		s = subm.BuildPlan(ch.ID, sections, m.input.Value(), elapsed, "")
	default:
		m.statusLine = subm.ValidationMessage(ch.Category)
		return subm.Submission{}, false
	}

	if !subm.IsValid(ch.Category, s.SubmittedCode) {
		m.statusLine = subm.ValidationMessage(ch.Category)
		return subm.Submission{}, false
	}
	return s, true
}

func (m model) submit(s subm.Submission) tea.Cmd {
	return func() tea.Msg {
		result, err := m.client.CreateSubmission(m.ctx, s)
		if err != nil {
			return errMsg{err, uimsg.CtxSubmission}
		}
		return submitDoneMsg(result)
	}
}

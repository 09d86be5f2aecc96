package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/praxis-dev/client/challenge"
	"github.com/praxis-dev/client/profile"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#e056fd"))
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#3498db"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7f8c8d"))
	alertStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
	barFill     = lipgloss.NewStyle().Foreground(lipgloss.Color("#f1c40f"))
)

func (m model) View() string {
	switch m.state {
	case stateLoading:
		return fmt.Sprintf("\n %s Carregando...\n", m.spinner.View())
	case stateList:
		return m.viewList()
	case stateChallenge:
		return m.viewChallenge()
	case stateSubmitting:
		return fmt.Sprintf("\n %s Enviando submissão...\n", m.spinner.View())
	case stateResult:
		return m.viewResult()
	case stateProfile:
		return m.viewProfile()
	}
	return ""
}

func (m model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Praxis — seus desafios") + "\n\n")

	if len(m.challenges) == 0 {
		b.WriteString(dimStyle.Render("Nenhum desafio ativo. Pressione g para gerar novos.") + "\n")
	}
	for i, ch := range m.challenges {
		cursor := "  "
		if i == m.cursor {
			cursor = accentStyle.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, ch.Title,
			dimStyle.Render(fmt.Sprintf("[%s, %s, %d min]",
				ch.Category, ch.Difficulty.Level, ch.Difficulty.TimeLimit))))
	}

	if m.statusLine != "" {
		b.WriteString("\n" + alertStyle.Render(m.statusLine) + "\n")
	}
	b.WriteString("\n" + dimStyle.Render("enter abrir · g gerar · p perfil · q sair") + "\n")
	return b.String()
}

func (m model) viewChallenge() string {
	ch := m.current
	var b strings.Builder

	clock := challenge.FormatClock(m.remaining)
	if m.remaining == 0 {
		clock = alertStyle.Render("00:00 — tempo esgotado")
	} else {
		clock = accentStyle.Render(clock)
	}
	b.WriteString(fmt.Sprintf("%s  %s\n\n", titleStyle.Render(ch.Title), clock))
	b.WriteString(ch.Description.Text + "\n")

	if email := ch.Description.EmailContent(); email != "" {
		b.WriteString("\n" + dimStyle.Render("── email original ──") + "\n" + email + "\n")
	}
	if len(ch.Description.Hints) > 0 {
		b.WriteString("\n" + dimStyle.Render("Dicas:") + "\n")
		for _, hint := range ch.Description.Hints {
			b.WriteString(dimStyle.Render("  · "+hint) + "\n")
		}
	}

	if ch.Category == challenge.CategoryOrganization {
		if m.phase == phaseMain {
			b.WriteString("\n" + accentStyle.Render("1/2 Planejamento") + "\n")
		} else {
			b.WriteString("\n" + accentStyle.Render("2/2 Implementação") + "\n")
		}
	}

	b.WriteString("\n" + m.input.View() + "\n")
	if m.statusLine != "" {
		b.WriteString(alertStyle.Render(m.statusLine) + "\n")
	}
	b.WriteString(dimStyle.Render("ctrl+s enviar · esc voltar") + "\n")
	return b.String()
}

func (m model) viewResult() string {
	r := m.result
	var b strings.Builder
	b.WriteString(titleStyle.Render("Resultado") + "\n\n")

	if r.Scored() {
		b.WriteString(fmt.Sprintf("Pontuação: %s\n", okStyle.Render(fmt.Sprintf("%d/100", *r.Score))))
	} else {
		b.WriteString("Status: " + r.Status + "\n")
	}
	if r.Feedback != "" {
		b.WriteString("\n" + r.Feedback + "\n")
	}
	if p := r.SkillsProgression; p != nil {
		b.WriteString("\n" + dimStyle.Render("Evolução de skills:") + "\n")
		for _, skill := range p.SkillsUpdated {
			b.WriteString(fmt.Sprintf("  %s %s (+%d)\n",
				renderBar(p.NewValues[skill]), skill, p.Deltas[skill]))
		}
	}
	b.WriteString("\n" + dimStyle.Render("enter voltar à lista") + "\n")
	return b.String()
}

func (m model) viewProfile() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Perfil — "+m.prof.FullName) + "\n")
	b.WriteString(dimStyle.Render(m.prof.Email) + "\n")
	if m.attrs.CareerGoal != "" {
		b.WriteString("Objetivo: " + m.attrs.CareerGoal + "\n")
	}

	b.WriteString("\n" + accentStyle.Render("Habilidades técnicas") + "\n")
	for _, bar := range profile.Bars(m.attrs.TechSkills) {
		b.WriteString(fmt.Sprintf("  %s %3d%%  %s\n", renderBar(bar.Percent), bar.Percent, bar.Name))
	}
	b.WriteString("\n" + accentStyle.Render("Soft skills") + "\n")
	for _, bar := range profile.Bars(m.attrs.SoftSkills) {
		b.WriteString(fmt.Sprintf("  %s %3d%%  %s\n", renderBar(bar.Percent), bar.Percent, bar.Name))
	}

	b.WriteString("\n" + dimStyle.Render("esc voltar") + "\n")
	return b.String()
}

// renderBar draws a 20-cell skill bar.
func renderBar(percent int) string {
	const width = 20
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	return barFill.Render(strings.Repeat("█", filled)) +
		dimStyle.Render(strings.Repeat("░", width-filled))
}

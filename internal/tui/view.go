package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/danielolaszy/flowcmd/internal/generator"
	"github.com/danielolaszy/flowcmd/pkg/models"
)

// styles

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headStyle   = lipgloss.NewStyle().Bold(true).MarginTop(1)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	labelStyle  = lipgloss.NewStyle().Width(24)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	focusedLabelStyle = labelStyle.Foreground(lipgloss.Color("205"))

	commandStyle = lipgloss.NewStyle().PaddingLeft(2)

	selectedCommandStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(lipgloss.Color("205"))

	diagramStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2)

	guidanceStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

var iconGlyphs = map[models.IconKind]string{
	models.IconDownload:    "↓",
	models.IconGitBranch:   "⑂",
	models.IconCode:        "✎",
	models.IconGitCommit:   "●",
	models.IconUpload:      "↑",
	models.IconPullRequest: "⇄",
}

// view

func (m Model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("GitFlow Commander"),
		dimStyle.Render("Generate GitFlow commands for your workflow"),
		m.renderForm(),
		headStyle.Render("Generated Commands"),
		m.renderCommands(),
		headStyle.Render("Pull Request Guidance"),
		m.renderGuidance(),
	)

	right := lipgloss.JoinVertical(lipgloss.Center,
		headStyle.Render("Workflow"),
		diagramStyle.Render(renderDiagram(m.tracker.Steps(), m.tracker.AllCompleted())),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", right)
	return lipgloss.NewStyle().Padding(1, 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, body, "", m.help.View(m.keys)),
	)
}

func (m Model) renderLabel(f focus, label string) string {
	if m.focus == f {
		return focusedLabelStyle.Render("› " + label)
	}
	return labelStyle.Render("  " + label)
}

func (m Model) renderForm() string {
	var rows []string

	mode := "HTTPS"
	if m.useSSH {
		mode = "SSH"
	}
	rows = append(rows, labelStyle.Render("  Transport")+mode+dimStyle.Render("  (ctrl+t)"))

	repoLabel := "HTTPS Repository URL"
	if m.useSSH {
		rows = append(rows, m.renderLabel(focusSSHAccount, "SSH Account Name")+m.inputs[inputIndex[focusSSHAccount]].View())
		repoLabel = "SSH Repository Path"
	}

	category := dimStyle.Render("Select commit type")
	if m.categoryIdx >= 0 {
		category = models.CommitCategories()[m.categoryIdx].Label()
	}
	if m.focus == focusCategory {
		category = "‹ " + category + " ›"
	}

	rows = append(rows,
		m.renderLabel(focusRepository, repoLabel)+m.inputs[inputIndex[focusRepository]].View(),
		m.renderLabel(focusFolder, "Repository Folder Name")+m.inputs[inputIndex[focusFolder]].View(),
		m.renderLabel(focusCategory, "Commit Type")+category,
		m.renderLabel(focusIssueTitle, "Issue Title")+m.inputs[inputIndex[focusIssueTitle]].View(),
		m.renderLabel(focusBaseBranch, "Base Branch")+m.inputs[inputIndex[focusBaseBranch]].View(),
		m.renderLabel(focusPullBranch, "Branch to Pull")+m.inputs[inputIndex[focusPullBranch]].View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) renderCommands() string {
	if !m.tracker.Form().Complete() {
		return dimStyle.Render("Complete the form to generate commands")
	}

	var b strings.Builder
	for i, c := range m.tracker.Commands() {
		marker := " "
		if m.tracker.IsComplete(c.StepID) {
			marker = okStyle.Render("✓")
		}
		if i == m.copiedIndex {
			marker = okStyle.Render("⧉")
		}

		line := fmt.Sprintf("%s %s", marker, c.CommandText)
		if m.focus == focusCommands && i == m.cursor {
			b.WriteString(selectedCommandStyle.Render(line))
		} else {
			b.WriteString(commandStyle.Render(line))
		}
		b.WriteString("\n")
	}

	if m.copyErr != nil {
		b.WriteString(errStyle.Render("Copy failed: " + m.copyErr.Error()))
		b.WriteString("\n")
	} else if m.focus != focusCommands {
		b.WriteString(dimStyle.Render("tab to the commands, enter to copy"))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderGuidance() string {
	form := m.tracker.Form()
	pr := generator.PullRequestGuidance(form.CommitCategory, form.IssueTitle)

	return guidanceStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"1. Create a Pull Request on GitHub",
		dimStyle.Render("   Look for the PR suggestion banner after pushing."),
		"2. Use the commit message as PR title",
		"   "+pr.Title,
		"3. In the PR body, include:",
		"   "+pr.Body,
	))
}

func renderDiagram(steps []models.WorkflowStep, done bool) string {
	lines := make([]string, 0, len(steps)*2+2)
	for i, s := range steps {
		node := fmt.Sprintf("%s %s", iconGlyphs[s.IconKind], s.Label)
		switch s.Status {
		case models.StatusCompleted:
			node = okStyle.Render(node + " ✓")
		case models.StatusActive:
			node = activeStyle.Render(node)
		default:
			node = dimStyle.Render(node)
		}
		lines = append(lines, node)
		if i < len(steps)-1 {
			lines = append(lines, dimStyle.Render("│"))
		}
	}
	if done {
		lines = append(lines, "", okStyle.Bold(true).Render("All steps complete"))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

package interpreter

import (
	"fmt"
	"io"
	"strings"
	"taskcli/internal/interpreter/dto"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const separator = "-----------------------"

type styles struct {
	prompt  lipgloss.Style
	banner  lipgloss.Style
	success lipgloss.Style
	notice  lipgloss.Style
	err     lipgloss.Style
	header  lipgloss.Style
	command lipgloss.Style
}

// newStyles привязывает стили к out: вне терминала и при color=false
// escape-последовательности не выводятся.
func newStyles(out io.Writer, color bool) styles {
	renderer := lipgloss.NewRenderer(out)
	if !color {
		renderer.SetColorProfile(termenv.Ascii)
	}

	return styles{
		prompt:  renderer.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		banner:  renderer.NewStyle().Foreground(lipgloss.Color("14")),
		success: renderer.NewStyle().Foreground(lipgloss.Color("10")),
		notice:  renderer.NewStyle().Foreground(lipgloss.Color("11")),
		err:     renderer.NewStyle().Foreground(lipgloss.Color("9")),
		header:  renderer.NewStyle().Bold(true),
		command: renderer.NewStyle().Foreground(lipgloss.Color("12")),
	}
}

func (i *Interpreter) printPrompt() {
	// trailing-пробелы промпта не красим
	trimmed := strings.TrimRight(i.prompt, " \t")
	fmt.Fprint(i.out, i.styles.prompt.Render(trimmed)+i.prompt[len(trimmed):])
}

func (i *Interpreter) printBanner() {
	fmt.Fprintln(i.out)
	fmt.Fprintln(i.out, separator)
	fmt.Fprintln(i.out, i.styles.banner.Render("Welcome to the Task Tracker cli!"))
	fmt.Fprintln(i.out, `To see commonly used commands, type "help"`)
	fmt.Fprintln(i.out, `To exit the cli, type "exit"`)
	fmt.Fprintln(i.out, separator)
	fmt.Fprintln(i.out)
}

func (i *Interpreter) printSuccess(format string, args ...any) {
	fmt.Fprintln(i.out, i.styles.success.Render(fmt.Sprintf(format, args...)))
}

func (i *Interpreter) printNotice(message string) {
	fmt.Fprintln(i.out, i.styles.notice.Render(message))
}

func (i *Interpreter) printError(err error) {
	commandErr := toCommandError(err)
	style := i.styles.err
	if commandErr.Kind == KindNoCommand || commandErr.Kind == KindUnknownCommand {
		style = i.styles.notice
	}
	fmt.Fprintln(i.out, style.Render(commandErr.Message))
}

// printTable выводит задачи в порядке вставки
func (i *Interpreter) printTable(rows []dto.TaskRow) error {
	w := tabwriter.NewWriter(i.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDESCRIPTION\tSTATUS\tCREATED\tUPDATED")
	for _, row := range rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", row.ID, row.Description, row.Status, row.CreatedAt, row.UpdatedAt)
	}
	return w.Flush()
}

func (i *Interpreter) printHelp() error {
	fmt.Fprintln(i.out, i.styles.header.Render("Here are all the available commands:"))

	w := tabwriter.NewWriter(i.out, 0, 0, 3, ' ', 0)
	for _, spec := range i.table {
		fmt.Fprintf(w, "  %s\t%s\n", i.styles.command.Render(spec.usage), spec.summary)
	}
	return w.Flush()
}

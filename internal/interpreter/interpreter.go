package interpreter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"taskcli/internal/logger"
	"taskcli/internal/middleware"

	"go.uber.org/zap"
)

const (
	DefaultPrompt = "task-cli "

	maxLineSize = 1024 * 1024
)

type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

type commandFunc func(ctx context.Context, args []string) error

type commandSpec struct {
	name    string
	usage   string
	summary string
	run     commandFunc
}

type Interpreter struct {
	service  TaskService
	out      io.Writer
	prompt   string
	color    bool
	styles   styles
	state    State
	table    []commandSpec
	commands map[string]commandSpec
	dispatch middleware.HandlerFunc
}

type Option func(*Interpreter)

func WithPrompt(prompt string) Option {
	return func(i *Interpreter) {
		if prompt != "" {
			i.prompt = prompt
		}
	}
}

func WithColor(enabled bool) Option {
	return func(i *Interpreter) {
		i.color = enabled
	}
}

func New(service TaskService, out io.Writer, options ...Option) *Interpreter {
	i := &Interpreter{
		service: service,
		out:     out,
		prompt:  DefaultPrompt,
		color:   true,
		state:   StateRunning,
	}
	for _, option := range options {
		option(i)
	}
	i.styles = newStyles(out, i.color)

	i.table = i.commandTable()
	i.commands = make(map[string]commandSpec, len(i.table))
	for _, spec := range i.table {
		i.commands[spec.name] = spec
	}

	i.dispatch = middleware.Chain(i.route,
		middleware.CommandID,
		middleware.Logging,
		middleware.Recover,
	)
	return i
}

func (i *Interpreter) State() State {
	return i.state
}

// Run печатает приветствие и читает команды, пока не будет exit или конец ввода
func (i *Interpreter) Run(ctx context.Context, in io.Reader) error {
	logger.Info("CLI: Сессия начата")
	i.printBanner()

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for i.state == StateRunning {
		i.printPrompt()

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				logger.Error("CLI: Ошибка чтения ввода", err)
				return fmt.Errorf("read input: %w", err)
			}
			// EOF завершает сессию так же, как exit
			fmt.Fprintln(i.out)
			i.terminate()
			break
		}

		_ = i.Execute(ctx, scanner.Text())
	}

	logger.Info("CLI: Сессия завершена")
	return nil
}

// Execute выполняет одну строку ввода. Ошибка уже выведена пользователю
// и возвращается только для вызывающего кода.
func (i *Interpreter) Execute(ctx context.Context, line string) error {
	tokens, err := Tokenize(line)
	if err != nil {
		logger.Warn("CLI: Ошибка разбора строки", zap.Error(err))
		commandErr := &CommandError{
			Kind:    KindParse,
			Message: "Error: unterminated quote, close the description with \"",
			Err:     err,
		}
		i.printError(commandErr)
		return commandErr
	}

	if len(tokens) == 0 {
		commandErr := newCommandError(KindNoCommand,
			"No command provided. Use 'help' to see available commands or 'exit' to exit the cli.")
		i.printError(commandErr)
		return commandErr
	}

	cmd := middleware.Command{
		Name: strings.ToLower(tokens[0]),
		Args: tokens[1:],
	}
	if err := i.dispatch(ctx, cmd); err != nil {
		i.printError(err)
		return err
	}
	return nil
}

func (i *Interpreter) route(ctx context.Context, cmd middleware.Command) error {
	spec, ok := i.commands[cmd.Name]
	if !ok {
		return newCommandError(KindUnknownCommand,
			"Unknown command: %s. Type 'help' to see all available commands.", cmd.Name)
	}
	return spec.run(ctx, cmd.Args)
}

func (i *Interpreter) terminate() {
	i.state = StateTerminated
	fmt.Fprintln(i.out, i.styles.banner.Render("Goodbye!"))
}

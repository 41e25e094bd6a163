package interpreter

import (
	"context"
	"fmt"
	"taskcli/internal/interpreter/dto"
	"taskcli/internal/logger"
	"taskcli/internal/models/task"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (i *Interpreter) commandTable() []commandSpec {
	return []commandSpec{
		{name: "add", usage: "add <description>", summary: "Adds a new task (quote descriptions with spaces)", run: i.add},
		{name: "update", usage: "update <id> <description>", summary: "Changes the description of a task", run: i.update},
		{name: "delete", usage: "delete <id>", summary: "Deletes a task", run: i.delete},
		{name: "mark-in-progress", usage: "mark-in-progress <id>", summary: "Marks a task as in-progress", run: i.markStatus(task.StatusInProgress)},
		{name: "mark-done", usage: "mark-done <id>", summary: "Marks a task as done", run: i.markStatus(task.StatusDone)},
		{name: "list", usage: "list [todo|in-progress|done]", summary: "Lists all tasks or only those with the given status", run: i.list},
		{name: "help", usage: "help", summary: "Shows this list of commands", run: i.help},
		{name: "exit", usage: "exit", summary: "Exits the cli", run: i.exit},
	}
}

func (i *Interpreter) add(ctx context.Context, args []string) error {
	if err := i.expectArgs("add", args, 1); err != nil {
		return err
	}

	logger.Info("CLI: Вызов сервиса для создания задачи")

	created, err := i.service.CreateTask(ctx, args[0])
	if err != nil {
		return err
	}

	i.printSuccess("Task added successfully (ID: %s)", created.ID)

	tasks, err := i.service.ListTasks(ctx, nil)
	if err != nil {
		return err
	}
	return i.printTable(dto.FromTaskList(tasks))
}

func (i *Interpreter) update(ctx context.Context, args []string) error {
	if err := i.expectArgs("update", args, 2); err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := i.service.UpdateDescription(ctx, id, args[1]); err != nil {
		return err
	}

	i.printSuccess("Task %s updated successfully", id)
	return nil
}

func (i *Interpreter) delete(ctx context.Context, args []string) error {
	if err := i.expectArgs("delete", args, 1); err != nil {
		return err
	}

	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := i.service.DeleteTask(ctx, id); err != nil {
		return err
	}

	i.printSuccess("Task %s deleted successfully", id)
	return nil
}

func (i *Interpreter) markStatus(status task.Status) commandFunc {
	name := "mark-" + status.Label()

	return func(ctx context.Context, args []string) error {
		if err := i.expectArgs(name, args, 1); err != nil {
			return err
		}

		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		if err := i.service.ChangeStatus(ctx, id, status); err != nil {
			return err
		}

		i.printSuccess("Task %s marked as %s", id, status.Label())
		return nil
	}
}

func (i *Interpreter) list(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return argumentCountError("list", "list [todo|in-progress|done]", "at most 1", len(args))
	}

	var filter *task.Status
	if len(args) == 1 {
		status, err := task.ParseStatus(args[0])
		if err != nil {
			logger.Warn("CLI: Неизвестный фильтр статуса", zap.String("filter", args[0]))
			return &CommandError{
				Kind:    KindInvalidFilter,
				Message: fmt.Sprintf("Error: unknown status %q, expected one of todo, in-progress, done", args[0]),
				Err:     err,
			}
		}
		filter = &status
	}

	tasks, err := i.service.ListTasks(ctx, filter)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		if filter == nil {
			i.printNotice("No tasks found.")
		} else {
			i.printNotice(fmt.Sprintf("No tasks with status '%s'.", filter.Label()))
		}
		return nil
	}

	return i.printTable(dto.FromTaskList(tasks))
}

// аргументы help и exit игнорируются
func (i *Interpreter) help(context.Context, []string) error {
	return i.printHelp()
}

func (i *Interpreter) exit(context.Context, []string) error {
	i.terminate()
	return nil
}

func (i *Interpreter) expectArgs(name string, args []string, want int) error {
	if len(args) == want {
		return nil
	}
	return argumentCountError(name, i.commands[name].usage, fmt.Sprintf("exactly %d", want), len(args))
}

func argumentCountError(name, usage, want string, got int) error {
	return newCommandError(KindArgumentCount,
		"Error: '%s' expects %s argument(s), got %d. Usage: %s", name, want, got, usage)
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		logger.Warn("CLI: Неверный идентификатор задачи", zap.String("id", raw))
		return uuid.Nil, &CommandError{
			Kind:    KindParse,
			Message: fmt.Sprintf("Error: %q is not a valid task ID", raw),
			Err:     err,
		}
	}
	return id, nil
}

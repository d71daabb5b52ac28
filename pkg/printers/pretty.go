package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/eisenkit/eisen/pkg/archive"
	"github.com/eisenkit/eisen/pkg/project"
	"github.com/eisenkit/eisen/pkg/quadrant"
	"github.com/eisenkit/eisen/pkg/state"
	"github.com/eisenkit/eisen/pkg/task"
	"github.com/eisenkit/eisen/pkg/timeutil"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" task")
	default:
		_, _ = c.Println(" tasks")
	}
}

// Matrix renders the whole board in the requested layout mode. Grid mode
// prints each quadrant as its own block in flat-list order; columns mode
// renders one table row per task.
func (pp *PrettyPrint) Matrix(tasks []task.Task, mode state.MatrixMode) {
	if mode == state.ModeColumns {
		pp.columns(tasks)
		return
	}
	for _, info := range quadrant.All() {
		pp.QuadrantBlock(info, tasks)
	}
	if planned := filter(tasks, quadrant.None); len(planned) > 0 {
		pp.TitleWithCount("Planned", len(planned))
		pp.Tasks(planned...)
	}
}

// QuadrantBlock renders one quadrant's filtered view of the flat list.
func (pp *PrettyPrint) QuadrantBlock(info quadrant.Info, tasks []task.Task) {
	scoped := filter(tasks, info.ID)

	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(info.Title)
	_, _ = c.Printf("  %s\n", info.Tagline)

	pp.Tasks(scoped...)
}

// Tasks renders a task list, subtasks indented underneath their parent.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	done := color.New(color.Faint, color.CrossedOut)
	due := color.New(color.FgHiYellow, color.Italic)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, e := range tasks {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			if pad := len(spacing) - len(e.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		line := t
		bullet := "●"
		if e.Completed {
			line = done
			bullet = "✘"
		}
		_, _ = line.Printf("%s %s", bullet, e.Text)
		if e.DueDate != nil && !e.Completed {
			_, _ = due.Printf("  %s", timeutil.DueLabel(e.DueDate.Time, time.Now()))
		}
		_, _ = t.Println("")

		for _, st := range e.Subtasks {
			if pp.ShowID {
				_, _ = t.Print(spacing)
			}
			sub := t
			mark := "○"
			if st.Completed {
				sub = done
				mark = "✔"
			}
			_, _ = sub.Printf("  %s %s\n", mark, st.Text)
		}
	}
	_, _ = t.Println("")
}

func (pp *PrettyPrint) columns(tasks []task.Task) {
	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("QUADRANT", "STATUS", "TASK", "DUE")
	for _, e := range tasks {
		status := "open"
		if e.Completed {
			status = "done"
		}
		dueLabel := ""
		if e.DueDate != nil {
			dueLabel = timeutil.DueLabel(e.DueDate.Time, time.Now())
		}
		title := e.Quadrant.Title()
		if e.Quadrant.Planned() {
			title = "Planned"
		}
		if pp.ShowID {
			table.AddRow(title, status, e.Text, dueLabel, e.ID)
		} else {
			table.AddRow(title, status, e.Text, dueLabel)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Projects renders the project list with per-project task counts taken
// from the active task collection.
func (pp *PrettyPrint) Projects(projects []project.Project, tasks []task.Task) {
	if len(projects) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("NAME", "STATUS", "TASKS", "CREATED", "ID")
	} else {
		table.AddRow("NAME", "STATUS", "TASKS", "CREATED")
	}
	for _, p := range projects {
		count := 0
		for _, e := range tasks {
			if e.ProjectID == p.ID {
				count++
			}
		}
		created := p.CreatedAt.Local().Format("2006-01-02")
		if pp.ShowID {
			table.AddRow(p.Name, string(p.Status), count, created, p.ID)
		} else {
			table.AddRow(p.Name, string(p.Status), count, created)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// ProjectDetail renders one project and its planned/placed tasks.
func (pp *PrettyPrint) ProjectDetail(p project.Project, tasks []task.Task) {
	pp.Title(p.Name)
	if p.Description != "" {
		c := color.New(color.Faint)
		_, _ = c.Println(p.Description)
	}
	scoped := make([]task.Task, 0, len(tasks))
	for _, e := range tasks {
		if e.ProjectID == p.ID {
			scoped = append(scoped, e)
		}
	}
	pp.Tasks(scoped...)
}

// ArchivedTasks renders the task archive with archival dates.
func (pp *PrettyPrint) ArchivedTasks(archived []archive.Task) {
	pp.TitleWithCount("Archive", len(archived))
	if len(archived) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	t := color.New(color.Faint)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, a := range archived {
		if pp.ShowID {
			_, _ = y.Print(a.ID)
			if pad := len(spacing) - len(a.ID); pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		_, _ = t.Printf("✘ %s  (archived %s)\n", a.Text, a.ArchivedAt.Local().Format("2006-01-02"))
	}
	_, _ = t.Println("")
}

// ArchivedProjects renders the project archive.
func (pp *PrettyPrint) ArchivedProjects(archived []archive.Project) {
	pp.Title("Archived projects")
	if len(archived) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	t := color.New(color.Faint)
	for _, a := range archived {
		_, _ = t.Printf("%s  (archived %s)\n", a.Name, a.ArchivedAt.Local().Format("2006-01-02"))
	}
	_, _ = t.Println("")
}

// Toast is the notification sink for the CLI: a bold title and a body
// line, the terminal stand-in for a desktop toast.
type Toast struct{}

func (Toast) Notify(title, body string) {
	b := color.New(color.Bold, color.FgHiYellow)
	_, _ = b.Println(title)
	fmt.Println(body)
	fmt.Println("")
}

func filter(tasks []task.Task, q quadrant.Quadrant) []task.Task {
	scoped := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Quadrant == q {
			scoped = append(scoped, t)
		}
	}
	return scoped
}

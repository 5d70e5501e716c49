package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"taskman/internals/auth"
	"taskman/internals/models"
	"taskman/internals/reminder"
	"taskman/internals/session"
	"taskman/internals/snapshot"
	"taskman/internals/tasks"
)

// Menu is the interactive text surface over the core stores. It owns no
// state beyond the reader/writer pair; every action delegates to the
// session-gated stores.
type Menu struct {
	src   io.Reader
	in    *bufio.Reader
	out   io.Writer
	auth  *auth.Store
	sess  *session.Session
	tasks *tasks.Store
	snaps *snapshot.Manager
}

func New(in io.Reader, out io.Writer, authStore *auth.Store, sess *session.Session, taskStore *tasks.Store, snaps *snapshot.Manager) *Menu {
	return &Menu{
		src:   in,
		in:    bufio.NewReader(in),
		out:   out,
		auth:  authStore,
		sess:  sess,
		tasks: taskStore,
		snaps: snaps,
	}
}

// Run authenticates the user and then serves menu selections until the
// user exits or input ends.
func (m *Menu) Run() error {
	if err := m.authenticate(); err != nil {
		return err
	}

	for {
		m.display()
		choice, err := m.prompt("Enter your choice: ")
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = m.addTask()
		case "2":
			err = m.viewTasks()
		case "3":
			err = m.editTask()
		case "4":
			err = m.deleteTask()
		case "5":
			err = m.saveTasks()
		case "6":
			err = m.loadTasks()
		case "7":
			err = m.searchTasks()
		case "8":
			err = m.sortTasks()
		case "9":
			err = m.setReminder()
		case "10":
			fmt.Fprintln(m.out, "Exiting Task Manager. Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (m *Menu) display() {
	fmt.Fprintln(m.out, "Task Manager")
	fmt.Fprintln(m.out, "1. Add Task")
	fmt.Fprintln(m.out, "2. View Tasks")
	fmt.Fprintln(m.out, "3. Edit Task")
	fmt.Fprintln(m.out, "4. Delete Task")
	fmt.Fprintln(m.out, "5. Save Tasks")
	fmt.Fprintln(m.out, "6. Load Tasks")
	fmt.Fprintln(m.out, "7. Search Tasks")
	fmt.Fprintln(m.out, "8. Sort Tasks")
	fmt.Fprintln(m.out, "9. Set Reminder")
	fmt.Fprintln(m.out, "10. Exit")
}

// authenticate loops over login/register until a login succeeds and the
// session is established.
func (m *Menu) authenticate() error {
	for {
		choice, err := m.prompt("1. Login\n2. Register\nChoose an option: ")
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			username, err := m.prompt("Username: ")
			if err != nil {
				return err
			}
			password, err := m.promptPassword("Password: ")
			if err != nil {
				return err
			}
			id, err := m.auth.Authenticate(username, password)
			if errors.Is(err, auth.ErrInvalidCredentials) {
				fmt.Fprintln(m.out, "Invalid credentials. Please try again.")
				continue
			} else if err != nil {
				return err
			}
			m.sess.Establish(id)
			fmt.Fprintln(m.out, "Login successful!")
			return nil
		case "2":
			username, err := m.prompt("Username: ")
			if err != nil {
				return err
			}
			password, err := m.promptPassword("Password: ")
			if err != nil {
				return err
			}
			if _, err := m.auth.Register(username, password); errors.Is(err, auth.ErrDuplicateUsername) {
				fmt.Fprintln(m.out, "Username already exists. Please try again.")
			} else if err != nil {
				return err
			} else {
				fmt.Fprintln(m.out, "Registration successful! Please login.")
			}
		default:
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) addTask() error {
	owner, err := m.sess.Current()
	if err != nil {
		fmt.Fprintln(m.out, err)
		return nil
	}

	description, err := m.prompt("Enter the task: ")
	if err != nil {
		return err
	}
	deadline, err := m.prompt("Enter the deadline (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	priority, err := m.prompt("Enter the priority (High, Medium, Low): ")
	if err != nil {
		return err
	}
	category, err := m.prompt("Enter the category: ")
	if err != nil {
		return err
	}

	if _, err := m.tasks.Add(owner, description, deadline, priority, category); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Task added successfully!")
	return nil
}

func (m *Menu) viewTasks() error {
	owner, err := m.sess.Current()
	if err != nil {
		fmt.Fprintln(m.out, err)
		return nil
	}

	list, err := m.tasks.List(owner)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No tasks available.")
		return nil
	}
	fmt.Fprintln(m.out, "Tasks:")
	m.printTasks(list)
	return nil
}

func (m *Menu) editTask() error {
	owner, err := m.sess.Current()
	if err != nil {
		fmt.Fprintln(m.out, err)
		return nil
	}
	if err := m.viewTasks(); err != nil {
		return err
	}

	id, err := m.promptId("Enter the task ID to edit: ")
	if err != nil {
		return err
	}
	if id < 0 {
		return nil
	}

	description, err := m.prompt("Enter the new task: ")
	if err != nil {
		return err
	}
	deadline, err := m.prompt("Enter the new deadline (YYYY-MM-DD): ")
	if err != nil {
		return err
	}
	priority, err := m.prompt("Enter the new priority (High, Medium, Low): ")
	if err != nil {
		return err
	}
	category, err := m.prompt("Enter the new category: ")
	if err != nil {
		return err
	}

	if err := m.tasks.Update(owner, id, description, deadline, priority, category); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Task edited successfully!")
	return nil
}

func (m *Menu) deleteTask() error {
	owner, err := m.sess.Current()
	if err != nil {
		fmt.Fprintln(m.out, err)
		return nil
	}
	if err := m.viewTasks(); err != nil {
		return err
	}

	id, err := m.promptId("Enter the task ID to delete: ")
	if err != nil {
		return err
	}
	if id < 0 {
		return nil
	}

	if err := m.tasks.Delete(owner, id); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Task deleted successfully!")
	return nil
}

func (m *Menu) saveTasks() error {
	owner, err := m.sess.Current()
	if err != nil {
		fmt.Fprintln(m.out, err)
		return nil
	}

	if _, err := m.snaps.Export(owner); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Tasks saved successfully!")
	return nil
}

func (m *Menu) loadTasks() error {
	owner, err := m.sess.Current()
	if err != nil {
		fmt.Fprintln(m.out, err)
		return nil
	}

	_, err = m.snaps.Import(owner)
	if errors.Is(err, snapshot.ErrNoSnapshot) {
		fmt.Fprintln(m.out, "No saved tasks found.")
		return nil
	} else if errors.Is(err, snapshot.ErrCorruptSnapshot) {
		fmt.Fprintln(m.out, "Saved tasks file is corrupt.")
		return nil
	} else if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Tasks loaded successfully!")
	return nil
}

func (m *Menu) searchTasks() error {
	owner, err := m.sess.Current()
	if err != nil {
		fmt.Fprintln(m.out, err)
		return nil
	}

	keyword, err := m.prompt("Enter a keyword to search: ")
	if err != nil {
		return err
	}

	list, err := m.tasks.Search(owner, keyword)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(m.out, "No tasks found with the given keyword.")
		return nil
	}
	fmt.Fprintln(m.out, "Search Results:")
	m.printTasks(list)
	return nil
}

func (m *Menu) sortTasks() error {
	owner, err := m.sess.Current()
	if err != nil {
		fmt.Fprintln(m.out, err)
		return nil
	}

	field, err := m.prompt("Sort by (description, deadline, priority, category): ")
	if err != nil {
		return err
	}

	list, err := m.tasks.SortBy(owner, field)
	if errors.Is(err, tasks.ErrInvalidSortField) {
		fmt.Fprintln(m.out, "Invalid sorting criteria.")
		return nil
	} else if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Tasks sorted by %s:\n", strings.ToLower(field))
	m.printTasks(list)
	return nil
}

func (m *Menu) setReminder() error {
	owner, err := m.sess.Current()
	if err != nil {
		fmt.Fprintln(m.out, err)
		return nil
	}
	if err := m.viewTasks(); err != nil {
		return err
	}

	id, err := m.promptId("Enter the task ID to set a reminder for: ")
	if err != nil {
		return err
	}
	if id < 0 {
		return nil
	}

	lead, err := m.prompt("Enter the reminder time before the deadline (in hours): ")
	if err != nil {
		return err
	}

	task, err := m.tasks.Get(owner, id)
	if errors.Is(err, tasks.ErrTaskNotFound) {
		fmt.Fprintln(m.out, "Task not found.")
		return nil
	} else if err != nil {
		return err
	}

	at, err := reminder.Compute(task.Deadline, lead)
	if errors.Is(err, reminder.ErrInvalidDeadline) || errors.Is(err, reminder.ErrInvalidLeadTime) {
		fmt.Fprintln(m.out, err)
		return nil
	} else if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Reminder set for task '%s' at %s\n", task.Description, at.Format("2006-01-02 15:04:05"))
	return nil
}

func (m *Menu) printTasks(list []models.Task) {
	for _, t := range list {
		fmt.Fprintf(m.out, "%d. Task: %s, Deadline: %s, Priority: %s, Category: %s\n",
			t.Id, t.Description, t.Deadline, t.Priority, t.Category)
	}
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptId returns -1 with a printed message for non-numeric input so
// callers can abort the action without failing the loop.
func (m *Menu) promptId(label string) (int64, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, err
	}
	id, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil {
		fmt.Fprintln(m.out, "Invalid task ID.")
		return -1, nil
	}
	return id, nil
}

// promptPassword suppresses echo when stdin is a terminal and falls back
// to a plain line read otherwise (piped input, tests).
func (m *Menu) promptPassword(label string) (string, error) {
	fmt.Fprint(m.out, label)
	if f, ok := m.src.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(m.out)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

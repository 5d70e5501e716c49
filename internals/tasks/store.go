package tasks

import (
	"database/sql"
	"errors"
	"strings"

	lru "github.com/hashicorp/golang-lru"
	log "github.com/sirupsen/logrus"

	"taskman/internals/models"
)

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrInvalidSortField = errors.New("invalid sorting criteria")
)

// sortColumns is the closed set of user-selectable ORDER BY fields. The
// user's input is only ever used as a key into this map; the column name
// that reaches the query text comes from the map values.
var sortColumns = map[string]string{
	"description": "description",
	"deadline":    "deadline",
	"priority":    "priority",
	"category":    "category",
}

const cacheSize = 256

type cacheKey struct {
	owner int64
	id    int64
}

// Store reads and writes tasks. Every operation is scoped to the owner
// id it is given; a task belonging to another user is invisible here no
// matter how it is addressed.
type Store struct {
	db    *sql.DB
	cache *lru.Cache
}

func New(db *sql.DB) (*Store, error) {
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, cache: cache}, nil
}

// Add inserts a new task for owner and returns it with its fresh id.
// Deadline, priority and category are stored verbatim.
func (s *Store) Add(owner int64, description, deadline, priority, category string) (*models.Task, error) {
	res, err := s.db.Exec("INSERT INTO tasks (user_id, description, deadline, priority, category) VALUES (?, ?, ?, ?, ?)",
		owner, description, deadline, priority, category)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	task := &models.Task{
		Id:          id,
		UserId:      owner,
		Description: description,
		Deadline:    deadline,
		Priority:    priority,
		Category:    category,
	}
	s.cache.Add(cacheKey{owner, id}, task)
	return task, nil
}

// List returns all of owner's tasks in insertion order. No tasks is an
// empty slice, not an error.
func (s *Store) List(owner int64) ([]models.Task, error) {
	return s.queryTasks("SELECT id, user_id, description, deadline, priority, category FROM tasks WHERE user_id = ? ORDER BY id", owner)
}

// Get returns the task when it exists and belongs to owner, otherwise
// ErrTaskNotFound.
func (s *Store) Get(owner, id int64) (*models.Task, error) {
	if v, ok := s.cache.Get(cacheKey{owner, id}); ok {
		return v.(*models.Task), nil
	}

	var task models.Task
	err := s.db.QueryRow("SELECT id, user_id, description, deadline, priority, category FROM tasks WHERE id = ? AND user_id = ?", id, owner).
		Scan(&task.Id, &task.UserId, &task.Description, &task.Deadline, &task.Priority, &task.Category)
	if err == sql.ErrNoRows {
		return nil, ErrTaskNotFound
	} else if err != nil {
		return nil, err
	}

	s.cache.Add(cacheKey{owner, id}, &task)
	return &task, nil
}

// Update replaces all fields of owner's task. A missing or foreign id is
// a silent no-op: the statement matches no rows and no error is
// returned, so callers must not assume the update happened.
func (s *Store) Update(owner, id int64, description, deadline, priority, category string) error {
	res, err := s.db.Exec("UPDATE tasks SET description = ?, deadline = ?, priority = ?, category = ? WHERE id = ? AND user_id = ?",
		description, deadline, priority, category, id, owner)
	if err != nil {
		return err
	}
	s.cache.Remove(cacheKey{owner, id})

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.WithFields(log.Fields{"task_id": id, "user_id": owner}).Debug("update matched no rows")
	}
	return nil
}

// Delete removes owner's task. Same silent no-op contract as Update for
// missing or foreign ids.
func (s *Store) Delete(owner, id int64) error {
	res, err := s.db.Exec("DELETE FROM tasks WHERE id = ? AND user_id = ?", id, owner)
	if err != nil {
		return err
	}
	s.cache.Remove(cacheKey{owner, id})

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		log.WithFields(log.Fields{"task_id": id, "user_id": owner}).Debug("delete matched no rows")
	}
	return nil
}

// Search returns owner's tasks whose description contains keyword, in
// insertion order. The match inherits SQLite's default LIKE semantics
// (ASCII case-insensitive); LIKE metacharacters in the keyword are
// escaped so they match literally.
func (s *Store) Search(owner int64, keyword string) ([]models.Task, error) {
	pattern := "%" + escapeLike(keyword) + "%"
	return s.queryTasks(`SELECT id, user_id, description, deadline, priority, category FROM tasks WHERE user_id = ? AND description LIKE ? ESCAPE '\' ORDER BY id`, owner, pattern)
}

// SortBy returns all of owner's tasks ordered ascending by field, which
// must be one of description, deadline, priority or category. Ordering
// is lexicographic: deadlines in YYYY-MM-DD form come out chronological,
// priorities come out High, Low, Medium.
func (s *Store) SortBy(owner int64, field string) ([]models.Task, error) {
	column, ok := sortColumns[strings.ToLower(field)]
	if !ok {
		return nil, ErrInvalidSortField
	}
	return s.queryTasks("SELECT id, user_id, description, deadline, priority, category FROM tasks WHERE user_id = ? ORDER BY "+column, owner)
}

func (s *Store) queryTasks(query string, args ...any) ([]models.Task, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.Id, &task.UserId, &task.Description, &task.Deadline, &task.Priority, &task.Category); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

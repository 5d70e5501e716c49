package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"

	"taskman/internals/tasks"
)

var (
	ErrNoSnapshot      = errors.New("no saved tasks found")
	ErrCorruptSnapshot = errors.New("saved tasks file is corrupt")
)

// Manager round-trips a user's tasks through a per-user JSON document.
// The document carries only the four task fields; ids and ownership are
// reattached on import.
type Manager struct {
	dir   string
	tasks *tasks.Store
}

func New(dir string, store *tasks.Store) *Manager {
	return &Manager{dir: dir, tasks: store}
}

func (m *Manager) path(owner int64) string {
	return filepath.Join(m.dir, fmt.Sprintf("tasks_%d.json", owner))
}

// Export writes owner's current tasks to the per-user document,
// overwriting any previous snapshot. It returns the number of tasks
// written.
func (m *Manager) Export(owner int64) (int, error) {
	list, err := m.tasks.List(owner)
	if err != nil {
		return 0, err
	}

	data, err := sonic.Marshal(list)
	if err != nil {
		return 0, err
	}
	if err := os.WriteFile(m.path(owner), data, 0644); err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{"user_id": owner, "count": len(list)}).Debug("exported snapshot")
	return len(list), nil
}

// Import reads the per-user document and appends every record as a new
// task owned by owner. Nothing is deduplicated: importing twice doubles
// the tasks. A missing document yields ErrNoSnapshot, undecodable
// content ErrCorruptSnapshot.
func (m *Manager) Import(owner int64) (int, error) {
	data, err := os.ReadFile(m.path(owner))
	if os.IsNotExist(err) {
		return 0, ErrNoSnapshot
	} else if err != nil {
		return 0, err
	}

	var records []struct {
		Description string `json:"task"`
		Deadline    string `json:"deadline"`
		Priority    string `json:"priority"`
		Category    string `json:"category"`
	}
	if err := sonic.Unmarshal(data, &records); err != nil {
		return 0, ErrCorruptSnapshot
	}

	for _, r := range records {
		if _, err := m.tasks.Add(owner, r.Description, r.Deadline, r.Priority, r.Category); err != nil {
			return 0, err
		}
	}

	log.WithFields(log.Fields{"user_id": owner, "count": len(records)}).Debug("imported snapshot")
	return len(records), nil
}

package models

// Task is one row of the tasks table. Deadline is kept as the raw
// YYYY-MM-DD string the user typed; priority and category are stored
// verbatim, unvalidated.
type Task struct {
	Id          int64  `db:"id" json:"-"`
	UserId      int64  `db:"user_id" json:"-"`
	Description string `db:"description" json:"task"`
	Deadline    string `db:"deadline" json:"deadline"`
	Priority    string `db:"priority" json:"priority"`
	Category    string `db:"category" json:"category"`
}

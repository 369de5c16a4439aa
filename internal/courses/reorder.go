package courses

import (
	"database/sql"
	"fmt"
)

// orderedTable describes a table with a sort_order column. scopeColumn
// restricts neighbor lookup to siblings (lessons within a course,
// questions within a lesson); courses are ordered globally.
type orderedTable struct {
	name        string
	scopeColumn string
}

var (
	coursesTable   = orderedTable{name: "courses"}
	lessonsTable   = orderedTable{name: "lessons", scopeColumn: "course_id"}
	questionsTable = orderedTable{name: "questions", scopeColumn: "lesson_id"}
)

func (s *Store) MoveCourse(courseID int64, up bool) error {
	return s.move(coursesTable, courseID, up)
}

func (s *Store) MoveLesson(lessonID int64, up bool) error {
	return s.move(lessonsTable, lessonID, up)
}

func (s *Store) MoveQuestion(questionID int64, up bool) error {
	return s.move(questionsTable, questionID, up)
}

// move swaps a row's sort_order with its neighbor in one transaction.
// Moving past the first or last position is a no-op. Both rows are
// locked before the swap so concurrent moves cannot interleave.
func (s *Store) move(t orderedTable, id int64, up bool) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin move: %w", err)
	}
	defer tx.Rollback()

	var curOrder int
	var scope int64
	if t.scopeColumn == "" {
		err = tx.QueryRow(
			fmt.Sprintf(`SELECT sort_order FROM %s WHERE id = $1 FOR UPDATE`, t.name),
			id,
		).Scan(&curOrder)
	} else {
		err = tx.QueryRow(
			fmt.Sprintf(`SELECT sort_order, %s FROM %s WHERE id = $1 FOR UPDATE`, t.scopeColumn, t.name),
			id,
		).Scan(&curOrder, &scope)
	}
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get row for move: %w", err)
	}

	cmp, dir := ">", "ASC"
	if up {
		cmp, dir = "<", "DESC"
	}

	var neighborID int64
	var neighborOrder int
	if t.scopeColumn == "" {
		err = tx.QueryRow(
			fmt.Sprintf(`SELECT id, sort_order FROM %s WHERE sort_order %s $1
			             ORDER BY sort_order %s LIMIT 1 FOR UPDATE`, t.name, cmp, dir),
			curOrder,
		).Scan(&neighborID, &neighborOrder)
	} else {
		err = tx.QueryRow(
			fmt.Sprintf(`SELECT id, sort_order FROM %s WHERE %s = $2 AND sort_order %s $1
			             ORDER BY sort_order %s LIMIT 1 FOR UPDATE`, t.name, t.scopeColumn, cmp, dir),
			curOrder, scope,
		).Scan(&neighborID, &neighborOrder)
	}
	if err == sql.ErrNoRows {
		// Already at the edge
		return nil
	}
	if err != nil {
		return fmt.Errorf("get neighbor for move: %w", err)
	}

	if _, err := tx.Exec(
		fmt.Sprintf(`UPDATE %s SET sort_order = $1 WHERE id = $2`, t.name),
		neighborOrder, id,
	); err != nil {
		return fmt.Errorf("move row: %w", err)
	}
	if _, err := tx.Exec(
		fmt.Sprintf(`UPDATE %s SET sort_order = $1 WHERE id = $2`, t.name),
		curOrder, neighborID,
	); err != nil {
		return fmt.Errorf("move neighbor: %w", err)
	}

	return tx.Commit()
}

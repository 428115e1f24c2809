package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ErrNoRows is returned when the workbook has no data rows below the header.
var ErrNoRows = errors.New("no data rows in spreadsheet")

// StudentRow is one imported student record. Column mapping: A=student_id,
// B=name, C=class_name, D=password (plaintext, hashed before insert).
type StudentRow struct {
	StudentID string
	Name      string
	ClassName string
	Password  string
}

// TeacherRow is one imported teacher record. Column mapping: A=name,
// B=contact_number, C=department, D=username, E=password,
// F=profile_photo (optional stored file name).
type TeacherRow struct {
	Name          string
	ContactNumber string
	Department    string
	Username      string
	Password      string
	ProfilePhoto  string
}

// ParseStudents reads student rows from the first sheet of an xlsx
// workbook, skipping the single header row.
func ParseStudents(r io.Reader) ([]StudentRow, error) {
	rows, err := dataRows(r, 4)
	if err != nil {
		return nil, err
	}

	students := make([]StudentRow, 0, len(rows))
	for _, cells := range rows {
		students = append(students, StudentRow{
			StudentID: cells[0],
			Name:      cells[1],
			ClassName: cells[2],
			Password:  cells[3],
		})
	}
	return students, nil
}

// ParseTeachers reads teacher rows from the first sheet of an xlsx
// workbook, skipping the single header row.
func ParseTeachers(r io.Reader) ([]TeacherRow, error) {
	rows, err := dataRows(r, 6)
	if err != nil {
		return nil, err
	}

	teachers := make([]TeacherRow, 0, len(rows))
	for _, cells := range rows {
		teachers = append(teachers, TeacherRow{
			Name:          cells[0],
			ContactNumber: cells[1],
			Department:    cells[2],
			Username:      cells[3],
			Password:      cells[4],
			ProfilePhoto:  cells[5],
		})
	}
	return teachers, nil
}

// dataRows opens the workbook, drops the header row, pads every row to
// width cells and filters out fully blank rows.
func dataRows(r io.Reader, width int) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoRows
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) <= 1 {
		return nil, ErrNoRows
	}

	var out [][]string
	for _, cells := range rows[1:] {
		padded := make([]string, width)
		blank := true
		for i := 0; i < width && i < len(cells); i++ {
			padded[i] = strings.TrimSpace(cells[i])
			if padded[i] != "" {
				blank = false
			}
		}
		if blank {
			continue
		}
		out = append(out, padded)
	}

	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

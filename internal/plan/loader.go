package plan

import (
	"fmt"
	"os"
	"strings"

	"github.com/diegoclair/workout-reminder-bot/internal/domain"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/workout-reminder-bot/internal/domain/entity"
	"github.com/xuri/excelize/v2"
)

type excelLoader struct {
	sheet string
}

// NewExcelLoader reads plans from an .xlsx workbook.
// An empty sheet name means the first sheet of the workbook.
func NewExcelLoader(sheet string) contract.PlanLoader {
	return &excelLoader{sheet: sheet}
}

func (l *excelLoader) Load(path string) (*entity.Plan, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrPlanLoad, path, err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open %s: %v", domain.ErrPlanLoad, path, err)
	}
	defer f.Close()

	sheet := l.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("%w: %s has no sheets", domain.ErrPlanLoad, path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read sheet %q: %v", domain.ErrPlanLoad, sheet, err)
	}

	return parseRows(rows)
}

func parseRows(rows [][]string) (*entity.Plan, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet has no header row", domain.ErrPlanLoad)
	}

	columns := make(map[string]int)
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if _, seen := columns[name]; !seen {
			columns[name] = i
		}
	}

	for _, required := range domain.RequiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: missing required column %q", domain.ErrPlanLoad, required)
		}
	}

	cell := func(row []string, column string) string {
		i, ok := columns[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	plan := &entity.Plan{}
	for _, row := range rows[1:] {
		day := cell(row, domain.ColumnDay)
		if day == "" {
			continue
		}

		plan.Rows = append(plan.Rows, entity.PlanRow{
			Day:             day,
			Exercise:        cell(row, domain.ColumnExercise),
			PrimaryTarget:   cell(row, domain.ColumnPrimary),
			SecondaryTarget: cell(row, domain.ColumnSecondary),
			TertiaryTarget:  cell(row, domain.ColumnTertiary),
		})
	}

	return plan, nil
}

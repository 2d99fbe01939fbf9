package entity

// PlanRow is one exercise of one day, as read from the plan sheet
type PlanRow struct {
	Day             string
	Exercise        string
	PrimaryTarget   string
	SecondaryTarget string
	TertiaryTarget  string
}

// Plan holds the rows of the plan sheet in sheet order
type Plan struct {
	Rows []PlanRow
}

// Days returns the unique day labels in first-seen order
func (p *Plan) Days() []string {
	seen := make(map[string]bool)
	var days []string
	for _, row := range p.Rows {
		if row.Day == "" || seen[row.Day] {
			continue
		}
		seen[row.Day] = true
		days = append(days, row.Day)
	}
	return days
}

// HasDay reports whether day is one of the plan's day labels
func (p *Plan) HasDay(day string) bool {
	for _, row := range p.Rows {
		if row.Day == day {
			return true
		}
	}
	return false
}

// RowsFor returns the rows of the given day in sheet order
func (p *Plan) RowsFor(day string) []PlanRow {
	var rows []PlanRow
	for _, row := range p.Rows {
		if row.Day == day {
			rows = append(rows, row)
		}
	}
	return rows
}

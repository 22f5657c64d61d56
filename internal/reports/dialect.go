package reports

import (
	"fmt"

	"gorm.io/gorm"
)

// sqlDialect builds the date and string expressions that differ between
// sqlite, postgres and mysql
type sqlDialect struct {
	name string
}

func dialectFor(db *gorm.DB) sqlDialect {
	return sqlDialect{name: db.Dialector.Name()}
}

// HourOf extracts the hour of day from a timestamp column as an integer
func (d sqlDialect) HourOf(column string) string {
	switch d.name {
	case "postgres":
		return fmt.Sprintf("CAST(EXTRACT(HOUR FROM %s) AS INTEGER)", column)
	case "mysql":
		return fmt.Sprintf("HOUR(%s)", column)
	default:
		return fmt.Sprintf("CAST(strftime('%%H', %s) AS INTEGER)", column)
	}
}

// DayOf formats a date column as YYYY-MM-DD
func (d sqlDialect) DayOf(column string) string {
	switch d.name {
	case "postgres":
		return fmt.Sprintf("to_char(%s, 'YYYY-MM-DD')", column)
	case "mysql":
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m-%%d')", column)
	default:
		return fmt.Sprintf("strftime('%%Y-%%m-%%d', %s)", column)
	}
}

// MonthOf formats a date column as YYYY-MM
func (d sqlDialect) MonthOf(column string) string {
	switch d.name {
	case "postgres":
		return fmt.Sprintf("to_char(%s, 'YYYY-MM')", column)
	case "mysql":
		return fmt.Sprintf("DATE_FORMAT(%s, '%%Y-%%m')", column)
	default:
		return fmt.Sprintf("strftime('%%Y-%%m', %s)", column)
	}
}

// FullName concatenates two name columns with a space
func (d sqlDialect) FullName(first, last string) string {
	if d.name == "mysql" {
		return fmt.Sprintf("CONCAT(%s, ' ', %s)", first, last)
	}
	return fmt.Sprintf("%s || ' ' || %s", first, last)
}

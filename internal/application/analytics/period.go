package analytics

import (
	"fmt"
	"time"

	"salesbi-api/internal/domain"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

// ParsePeriod normaliza el rango de fechas del request. Acepta YYYY-MM-DD o
// MM/DD/YYYY; con strings vacíos aplica defaults (primer día del mes actual y
// hoy). El fin de rango es inclusivo hasta el final del día.
func ParsePeriod(fromStr, toStr string) (from, to time.Time, err error) {
	now := time.Now()

	if fromStr == "" {
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		from, err = parseDate(fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("fromDate: %w", err)
		}
	}

	if toStr == "" {
		to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	} else {
		to, err = parseDate(toStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("toDate: %w", err)
		}
	}
	to = to.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	if from.After(to) {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}
	return from, to, nil
}

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{dateLayout, "01/02/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: fecha %q (se espera YYYY-MM-DD o MM/DD/YYYY)", domain.ErrInvalidInput, s)
}

// MonthsInRange devuelve cada mes del rango en orden ascendente ("2024-01").
// Es la base de la rectangularidad: toda serie mensual cubre estos meses,
// con ceros donde no hubo datos.
func MonthsInRange(from, to time.Time) []string {
	var months []string
	cur := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(to.Year(), to.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !cur.After(end) {
		months = append(months, cur.Format(monthLayout))
		cur = cur.AddDate(0, 1, 0)
	}
	return months
}

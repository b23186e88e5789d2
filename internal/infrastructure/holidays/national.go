package holidays

import (
	"time"

	"gestao_capacidade/internal/domain/entities"
)

// Easter returns Easter Sunday of year (Gregorian computus).
func Easter(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := (h+l-7*m+114)%31 + 1
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

type fixed struct {
	month time.Month
	day   int
	name  string
	since int
}

var fixedHolidays = []fixed{
	{time.January, 1, "Confraternização Universal", 0},
	{time.April, 21, "Tiradentes", 0},
	{time.May, 1, "Dia do Trabalho", 0},
	{time.September, 7, "Independência do Brasil", 0},
	{time.October, 12, "Nossa Senhora Aparecida", 0},
	{time.November, 2, "Finados", 0},
	{time.November, 15, "Proclamação da República", 0},
	{time.November, 20, "Dia Nacional de Zumbi e da Consciência Negra", 2024},
	{time.December, 25, "Natal", 0},
}

// National returns the Brazilian national holidays of year, ordered by date.
// Carnaval Monday and Tuesday are included.
func National(year int) []entities.Holiday {
	easter := Easter(year)
	out := []entities.Holiday{
		{Date: easter.AddDate(0, 0, -48), Name: "Carnaval"},
		{Date: easter.AddDate(0, 0, -47), Name: "Carnaval"},
		{Date: easter.AddDate(0, 0, -2), Name: "Sexta-feira Santa"},
		{Date: easter.AddDate(0, 0, 60), Name: "Corpus Christi"},
	}
	for _, f := range fixedHolidays {
		if year < f.since {
			continue
		}
		out = append(out, entities.Holiday{Date: time.Date(year, f.month, f.day, 0, 0, 0, 0, time.UTC), Name: f.name})
	}
	sortByDate(out)
	return out
}

// NationalBetween returns the national holidays in [start, end], by calendar
// day.
func NationalBetween(start, end time.Time) []entities.Holiday {
	from, to := day(start), day(end)
	if from.After(to) {
		return nil
	}
	var out []entities.Holiday
	for y := from.Year(); y <= to.Year(); y++ {
		for _, h := range National(y) {
			if h.Date.Before(from) || h.Date.After(to) {
				continue
			}
			out = append(out, h)
		}
	}
	return out
}

func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

package domain

import (
	"strconv"
	"time"
)

var monthsLong = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var monthsShort = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sept", "oct", "nov", "dic",
}

// FormatDate renders t in the long es-ES form, e.g. "20 de enero de 2025".
func FormatDate(t time.Time, loc *time.Location) string {
	t = inLocation(t, loc)
	return strconv.Itoa(t.Day()) + " de " + monthsLong[t.Month()-1] +
		" de " + strconv.Itoa(t.Year())
}

// DayLabel renders t in the short es-ES form, e.g. "20 ene".
func DayLabel(t time.Time, loc *time.Location) string {
	t = inLocation(t, loc)
	return strconv.Itoa(t.Day()) + " " + monthsShort[t.Month()-1]
}

func SameDay(a, b time.Time, loc *time.Location) bool {
	a, b = inLocation(a, loc), inLocation(b, loc)
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc)
}

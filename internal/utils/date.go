package utils

import "time"

const DateLayout = "02.01.2006"

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

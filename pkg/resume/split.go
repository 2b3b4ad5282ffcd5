package resume

import "strings"

// SplitCompany separates a trailing parenthesized location from a company
// string. "Acme Corp (Remote)" yields ("Acme Corp", "Remote"); without
// parentheses the location is empty.
func SplitCompany(raw string) (company string, location string) {
	company = strings.TrimSpace(raw)

	open := strings.Index(raw, "(")
	closing := strings.LastIndex(raw, ")")
	if open == -1 || closing == -1 || closing < open {
		return company, location
	}

	company = strings.TrimSpace(raw[:open])
	location = strings.TrimSpace(raw[open+1 : closing])
	return company, location
}

// SplitPeriod separates a free-text date range on the first "-".
// "Jan 2020 - Mar 2022" yields ("Jan 2020", "Mar 2022"); without a dash the
// whole string is the from date. Dates that themselves contain hyphens
// (e.g. "2020-01 - 2021-01") misparse; the upstream data has no
// disambiguation rule, so none is guessed here.
func SplitPeriod(raw string) (from string, to string) {
	from = strings.TrimSpace(raw)

	idx := strings.Index(raw, "-")
	if idx == -1 {
		return from, to
	}

	from = strings.TrimSpace(raw[:idx])
	to = strings.TrimSpace(raw[idx+1:])
	return from, to
}

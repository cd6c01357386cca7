package services

import (
	"strings"

	"fieldreport/model"
)

// FilterReports keeps reports whose title or reporter name contains the
// query, case-insensitive. An empty query returns the input unchanged, in
// its original order. Reports without a reporter name never match on that
// field.
func FilterReports(reports []model.Report, query string) []model.Report {
	if query == "" {
		return reports
	}
	q := strings.ToLower(query)
	filtered := make([]model.Report, 0, len(reports))
	for _, report := range reports {
		if strings.Contains(strings.ToLower(report.Title), q) {
			filtered = append(filtered, report)
			continue
		}
		if report.ReporterName != "" && strings.Contains(strings.ToLower(report.ReporterName), q) {
			filtered = append(filtered, report)
		}
	}
	return filtered
}

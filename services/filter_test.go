package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldreport/model"
	"fieldreport/services"
)

func TestFilterReports(t *testing.T) {
	reports := []model.Report{
		{ID: "1", Title: "Alpha Site", ReporterName: "Juan"},
		{ID: "2", Title: "Beta Site", ReporterName: "Maria"},
		{ID: "3", Title: "Substation Check", ReporterName: ""},
	}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "empty query keeps all in order", query: "", wantIDs: []string{"1", "2", "3"}},
		{name: "title match", query: "beta", wantIDs: []string{"2"}},
		{name: "reporter match case-insensitive", query: "JUAN", wantIDs: []string{"1"}},
		{name: "shared title substring", query: "site", wantIDs: []string{"1", "2"}},
		{name: "no match", query: "gamma", wantIDs: []string{}},
		{name: "empty reporter never matches on that field", query: "mar", wantIDs: []string{"2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := services.FilterReports(reports, tt.query)
			require.Len(t, got, len(tt.wantIDs))
			for i, id := range tt.wantIDs {
				assert.Equal(t, id, got[i].ID)
			}
		})
	}
}

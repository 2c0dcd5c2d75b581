package sheet_test

import (
	"testing"

	"github.com/smartboxadvisors-cell/mutual-funds-sub001/internal/sheet"
)

func TestDetectSchema(t *testing.T) {
	tests := []struct {
		name     string
		headers  []string
		filename string
		want     sheet.Schema
	}{
		{
			name:     "master by header triple",
			headers:  []string{"ISIN", "Issuer Name", "Credit Rating"},
			filename: "securities.xlsx",
			want:     sheet.SchemaMaster,
		},
		{
			name:     "master outranks exchange headers",
			headers:  []string{"ISIN", "Issuer Name", "Credit Rating", "Deal Size (in Rs)"},
			filename: "nse_master.csv",
			want:     sheet.SchemaMaster,
		},
		{
			name:     "filename hint outranks headers",
			headers:  []string{"ISIN", "Order Type", "Trade Amount (in Rs Lacs)"},
			filename: "nse_trades.csv",
			want:     sheet.SchemaNSE,
		},
		{
			name:     "nse by deal size header",
			headers:  []string{"ISIN", "Deal Size (in Rs)", "Price"},
			filename: "trades.csv",
			want:     sheet.SchemaNSE,
		},
		{
			name:     "nse by settlement status header",
			headers:  []string{"ISIN", "Settlement Status"},
			filename: "trades.csv",
			want:     sheet.SchemaNSE,
		},
		{
			name:     "bse by compound amount header",
			headers:  []string{"ISIN No", "Trade Amount (Rs in Lacs)"},
			filename: "trades.csv",
			want:     sheet.SchemaBSE,
		},
		{
			name:     "bse by order type header",
			headers:  []string{"ISIN", "Order Type"},
			filename: "trades.csv",
			want:     sheet.SchemaBSE,
		},
		{
			name:     "unknown when nothing matches",
			headers:  []string{"Column A", "Column B"},
			filename: "export.csv",
			want:     sheet.SchemaUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sheet.DetectSchema(tt.headers, tt.filename); got != tt.want {
				t.Errorf("DetectSchema(%v, %q) = %v, want %v", tt.headers, tt.filename, got, tt.want)
			}
		})
	}
}

// csvscan parses a bank/card CSV export offline and prints the detected SaaS
// vendors with their inferred billing cadence and projected renewals. No
// database required. With -xlsx the same report is written as a workbook.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"

	"github.com/subtally/subtally/internal/csvimport"
	"github.com/subtally/subtally/internal/entity"
	"github.com/subtally/subtally/internal/renewal"
)

func main() {
	xlsxPath := flag.String("xlsx", "", "write the vendor report to this .xlsx file")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: csvscan [-xlsx report.xlsx] <transactions.csv>")
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	raw, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: reading %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	res, err := csvimport.Parse(string(raw), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		for _, e := range res.Errors {
			fmt.Fprintf(os.Stderr, "  - %s\n", e)
		}
		os.Exit(1)
	}

	fmt.Printf("rows: %d  transactions: %d  saas: %d\n", res.TotalRows, len(res.Transactions), res.SaaSCount)
	for _, e := range res.Errors {
		fmt.Printf("row error: %s\n", e)
	}

	summaries := csvimport.CalculateVendorSummaries(res.Transactions)
	for _, s := range summaries {
		if !s.IsSaaS {
			continue
		}
		fmt.Printf("\n%s  (%s)\n", s.VendorName, s.Category)
		fmt.Printf("  charges: %d  total: %.2f  latest: %.2f\n", s.TransactionCount, s.TotalAmount, s.LatestAmount)

		dates := csvimport.DateSeries(res.Transactions, s.NormalizedVendorName)
		info, err := renewal.GetRenewalInfo(dates, "")
		if err != nil {
			continue
		}
		label, _ := renewal.UrgencyLabel(info.DaysUntilRenewal)
		fmt.Printf("  cadence: %s  next renewal: %s (%d days, %s)\n",
			info.Frequency, info.RenewalDate.Format("2006-01-02"), info.DaysUntilRenewal, label)
	}

	if *xlsxPath != "" {
		if err := writeReport(*xlsxPath, summaries, res.Transactions); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: writing %s: %v\n", *xlsxPath, err)
			os.Exit(1)
		}
		fmt.Printf("\nreport written to %s\n", *xlsxPath)
	}
}

func writeReport(path string, summaries []entity.VendorSummary, txs []entity.Transaction) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Vendors"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Vendor", "Category", "SaaS", "Charges", "Total", "Latest",
		"First Charge", "Last Charge", "Cadence", "Next Renewal", "Days", "Urgency"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, s := range summaries {
		values := []any{
			s.VendorName, s.Category, s.IsSaaS, s.TransactionCount,
			s.TotalAmount, s.LatestAmount,
			s.FirstDate.Format("2006-01-02"), s.LastDate.Format("2006-01-02"),
			"", "", "", "",
		}
		if s.IsSaaS {
			dates := csvimport.DateSeries(txs, s.NormalizedVendorName)
			if info, err := renewal.GetRenewalInfo(dates, ""); err == nil {
				label, _ := renewal.UrgencyLabel(info.DaysUntilRenewal)
				values[8] = string(info.Frequency)
				values[9] = info.RenewalDate.Format("2006-01-02")
				values[10] = info.DaysUntilRenewal
				values[11] = label
			}
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	f.SetColWidth(sheet, "A", "A", 28)
	f.SetColWidth(sheet, "B", "L", 14)

	return f.SaveAs(path)
}

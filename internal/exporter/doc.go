// Package exporter writes aggregate summaries to disk for other tools.
//
// CSVWriter: Core CSV writing with headers and a UTF-8 BOM for Excel
// compatibility. WriteSummaryCSV writes one income_by_<field>.csv per summary.
//
// WriteJSON and WriteXLSX write the whole run, filter counts and every
// summary, as summary.json and summary.xlsx.
//
// SummaryExporter ties the writers to the resolved report paths.
//
// Example usage:
//
//	paths, _ := config.NewPaths(cfg)
//	exp := exporter.NewSummaryExporter(paths, logger)
//
//	files, err := exp.ExportTables(ctx, summaries)
//	jsonPath, err := exp.ExportJSON(ctx, report)
package exporter

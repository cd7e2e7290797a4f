package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tisaghu/Work-Billing-Tracker/internal/model"
	"github.com/Tisaghu/Work-Billing-Tracker/internal/storage"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all chunks to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json")
}

func runExport(cmd *cobra.Command, args []string) error {
	switch exportFormat {
	case "csv", "json":
	default:
		return fmt.Errorf("unsupported format %q: want csv or json", exportFormat)
	}

	repo, err := openRepository()
	if err != nil {
		return err
	}
	chunks := repo.LoadAll()

	if exportFormat == "json" {
		return exportJSON(chunks)
	}
	return exportCSV(chunks)
}

func exportCSV(chunks []*model.Chunk) error {
	w := csv.NewWriter(os.Stdout)
	if err := w.Write(storage.Header); err != nil {
		return err
	}
	for _, c := range chunks {
		if err := w.Write(c.Record()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func exportJSON(chunks []*model.Chunk) error {
	type chunkJSON struct {
		ID          int    `json:"id"`
		Date        string `json:"date"`
		Minutes     int    `json:"minutes"`
		Description string `json:"description"`
	}
	out := make([]chunkJSON, 0, len(chunks))
	for _, c := range chunks {
		out = append(out, chunkJSON{
			ID:          c.ID,
			Date:        c.Date.Format(model.DateFormat),
			Minutes:     c.Minutes,
			Description: c.Description,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

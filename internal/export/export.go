// Package export serializes the learning state for user download: a
// versioned JSON package, CSV dumps and an XLSX workbook. Pure
// serialization, no scheduling logic.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/example/vocabu/internal/storage"
	"github.com/example/vocabu/pkg/models"
)

// PackageVersion tags exported JSON packages.
const PackageVersion = "vocabu-export-1"

// Package is the full exported state. Every section is optional; import
// skips absent ones.
type Package struct {
	Version    string                      `json:"version"`
	ExportedAt time.Time                   `json:"exportedAt"`
	Plan       *models.Plan                `json:"plan,omitempty"`
	Cards      map[string]models.CardState `json:"cards,omitempty"`
	Progress   *models.DailyProgress       `json:"progress,omitempty"`
	History    []models.ReviewEvent        `json:"history,omitempty"`
	UI         *UIState                    `json:"ui,omitempty"`
}

// UIState carries the last visited screen.
type UIState struct {
	Step string `json:"step,omitempty"`
}

// Exporter reads persisted entities and writes them in the supported
// formats.
type Exporter struct {
	store *storage.Store
	log   *storage.ReviewLog
}

// New creates an exporter over the given store.
func New(store *storage.Store, log *storage.ReviewLog) *Exporter {
	return &Exporter{store: store, log: log}
}

// Dump collects every persisted entity into a Package. Unreadable
// sections are simply left out.
func (e *Exporter) Dump() Package {
	pkg := Package{Version: PackageVersion, ExportedAt: time.Now()}

	var p models.Plan
	if e.store.GetJSON(storage.KeyPlan, &p) && p.CreatedAt != 0 {
		pkg.Plan = &p
	}
	cards := make(map[string]models.CardState)
	if e.store.GetJSON(storage.KeyCards, &cards) && len(cards) > 0 {
		pkg.Cards = cards
	}
	var rec models.DailyProgress
	if e.store.GetJSON(storage.KeyProgress, &rec) && !rec.Date.IsZero() {
		pkg.Progress = &rec
	}
	if history, err := e.log.All(); err == nil && len(history) > 0 {
		pkg.History = history
	}
	if step, ok := e.store.Get(storage.KeyUIStep); ok {
		pkg.UI = &UIState{Step: step}
	}
	return pkg
}

// WriteJSON writes the full package as indented JSON.
func (e *Exporter) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e.Dump())
}

// Import restores a previously exported package. Absent sections leave
// the corresponding stored entities untouched. An unknown version is
// imported anyway, with a warning.
func (e *Exporter) Import(r io.Reader) (*Package, error) {
	var pkg Package
	if err := json.NewDecoder(r).Decode(&pkg); err != nil {
		return nil, fmt.Errorf("failed to decode export package: %v", err)
	}
	if pkg.Version != PackageVersion {
		logrus.WithField("version", pkg.Version).Warn("unknown export package version, importing anyway")
	}

	if pkg.Plan != nil {
		e.store.SetJSON(storage.KeyPlan, pkg.Plan)
	}
	if pkg.Cards != nil {
		e.store.SetJSON(storage.KeyCards, pkg.Cards)
	}
	if pkg.Progress != nil {
		e.store.SetJSON(storage.KeyProgress, pkg.Progress)
	}
	for _, ev := range pkg.History {
		if err := e.log.Append(ev); err != nil {
			logrus.WithError(err).WithField("event", ev.ID).Warn("failed to import review event")
		}
	}
	if pkg.UI != nil && pkg.UI.Step != "" {
		e.store.Set(storage.KeyUIStep, pkg.UI.Step)
	}
	return &pkg, nil
}

// WritePlanCSV writes the current plan's pool as CSV rows.
func (e *Exporter) WritePlanCSV(w io.Writer) error {
	var p models.Plan
	if !e.store.GetJSON(storage.KeyPlan, &p) {
		return fmt.Errorf("no plan to export")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "term", "translation", "source"}); err != nil {
		return err
	}
	for _, word := range p.Pool {
		if err := cw.Write([]string{word.ID, word.Term, word.Translation, word.Source}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteHistoryCSV writes the review history as CSV rows.
func (e *Exporter) WriteHistoryCSV(w io.Writer) error {
	history, err := e.log.All()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "item_id", "grade", "reviewed_at"}); err != nil {
		return err
	}
	for _, ev := range history {
		row := []string{ev.ID, ev.ItemID, ev.Grade, ev.ReviewedAt.Format(time.RFC3339)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX writes a workbook with a Plan sheet and a History sheet.
func (e *Exporter) WriteXLSX(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	const planSheet = "Plan"
	f.SetSheetName("Sheet1", planSheet)

	headers := []string{"ID", "Term", "Translation", "Source"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(planSheet, cell, h)
	}

	var p models.Plan
	if e.store.GetJSON(storage.KeyPlan, &p) {
		for row, word := range p.Pool {
			values := []string{word.ID, word.Term, word.Translation, word.Source}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
				f.SetCellValue(planSheet, cell, v)
			}
		}
	}

	const historySheet = "History"
	if _, err := f.NewSheet(historySheet); err != nil {
		return fmt.Errorf("failed to create history sheet: %v", err)
	}
	histHeaders := []string{"Item", "Grade", "Reviewed at"}
	for i, h := range histHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(historySheet, cell, h)
	}
	if history, err := e.log.All(); err == nil {
		for row, ev := range history {
			cell, _ := excelize.CoordinatesToCellName(1, row+2)
			f.SetCellValue(historySheet, cell, ev.ItemID)
			cell, _ = excelize.CoordinatesToCellName(2, row+2)
			f.SetCellValue(historySheet, cell, ev.Grade)
			cell, _ = excelize.CoordinatesToCellName(3, row+2)
			f.SetCellValue(historySheet, cell, ev.ReviewedAt.Format(time.RFC3339))
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %v", err)
	}
	return nil
}

// FileName builds a timestamped export file name.
func FileName(ext string) string {
	return "vocabu_export_" + strconv.FormatInt(time.Now().Unix(), 10) + "." + ext
}

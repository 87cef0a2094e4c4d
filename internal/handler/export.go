package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/irisalmeida/registra-ai/internal/ledger"
	"github.com/irisalmeida/registra-ai/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler dumps a user's full history as CSV or XLSX.
type ExportHandler struct {
	Service *ledger.Service
}

func NewExportHandler(svc *ledger.Service) *ExportHandler {
	return &ExportHandler{Service: svc}
}

var exportHeaders = []string{"ID", "Amount", "Description", "Date"}

// ExportCSV writes the caller's records as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	records, err := h.Service.History(c.Request.Context(), user.ID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"records_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// UTF-8 BOM so spreadsheet apps detect the encoding
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	writer.Write(exportHeaders)
	for _, rec := range records {
		writer.Write([]string{
			strconv.FormatUint(uint64(rec.ID), 10),
			rec.Amount.String(),
			rec.Description,
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
}

// ExportXLSX writes the caller's records as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		return
	}

	records, err := h.Service.History(c.Request.Context(), user.ID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	f := excelize.NewFile()
	sheetName := "Records"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, "export_failed")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, rec := range records {
		row := idx + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), rec.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), rec.Amount.String())
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), rec.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), rec.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 20)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"records_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, "export_failed")
	}
}
